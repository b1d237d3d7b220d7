package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := openLogger("", "info")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	if logger == nil || closer != nil {
		t.Errorf("logger = %v, closer = %v", logger, closer)
	}
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "doodle.log")

	logger, closer, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Debug("bounce", "y", 12)
	logger.Info("game started")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"doodle", "bounce", "game started"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log missing %q:\n%s", want, data)
		}
	}
}

func TestOpenLoggerRejectsLevel(t *testing.T) {
	if _, _, err := openLogger(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"127.0.0.1:2222": "2222",
		"[::1]:22":       "22",
		"nohost":         "nohost",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, expected %q", addr, got, want)
		}
	}
}
