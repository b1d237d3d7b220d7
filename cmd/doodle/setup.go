package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/audio"
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/session"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/storage"
)

const soundVolume = 0.6

// env holds the collaborators shared by the interactive commands.
type env struct {
	cfg    config.DoodleConfig
	store  *storage.Store
	logger *log.Logger
	sound  session.SoundPlayer

	closers []func()
}

// setup loads configuration and opens the optional subsystems named by the
// global flags. Optional subsystems that fail to open are disabled with a warning.
func setup() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	// Registry-created games read the same file.
	doodle.SetConfigPath(flagConfig)

	e := &env{cfg: cfg}

	logger, logFile, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	e.logger = logger
	if logFile != nil {
		e.closers = append(e.closers, func() { logFile.Close() })
	}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		} else {
			e.store = store
			e.closers = append(e.closers, func() { store.Close() })
		}
	}

	if flagSound {
		sm := audio.NewSoundManager(soundVolume)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			e.sound = sm
			e.closers = append(e.closers, sm.Close)
		}
	}

	return e, nil
}

// Close releases everything setup opened.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
}

// tuiOptions builds terminal host options from the loaded configuration.
func (e *env) tuiOptions() tui.Options {
	return tui.Options{
		Store:      e.store,
		Logger:     e.logger,
		Sound:      e.sound,
		MaxFrameDT: e.cfg.Host.MaxFrameDT,
		HoldWindow: time.Duration(e.cfg.Host.HoldWindowMS) * time.Millisecond,
		Player:     os.Getenv("USER"),
	}
}

// recorderConfig builds the run recorder settings for the window host.
func (e *env) recorderConfig() session.Config {
	return session.Config{
		Store:  e.store,
		Logger: e.logger,
		Sound:  e.sound,
		Player: os.Getenv("USER"),
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger returns a file logger, or a discarding one when path is empty.
// The terminal is owned by the game, so logs never go to stdout or stderr.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "doodle",
		Level:           lvl,
	}), f, nil
}
