package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultDoodleConfig() {
		t.Errorf("embedded YAML and DefaultDoodleConfig() disagree:\n%+v\n%+v", cfg, DefaultDoodleConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultDoodleConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultCollisionGeometry(t *testing.T) {
	cfg := DefaultDoodleConfig()

	// The player starts resting exactly on the first tile.
	sum := cfg.Player.HalfHeight + cfg.Tile.HalfHeight
	if cfg.Spawn.PlayerY-cfg.Spawn.FirstTileY != sum {
		t.Errorf("start gap = %v, expected half height sum %v", cfg.Spawn.PlayerY-cfg.Spawn.FirstTileY, sum)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: -500\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.Gravity != -500 {
		t.Errorf("gravity = %v, expected -500", cfg.Physics.Gravity)
	}
	if cfg.Physics.LaunchVelocity != 500 {
		t.Errorf("unset keys should keep defaults, launch_velocity = %v", cfg.Physics.LaunchVelocity)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"inverted gap", "spawn:\n  gap_min: 150\n  gap_max: 100\n"},
		{"zero tile", "tile:\n  half_width: 0\n"},
		{"zero divisor", "scoring:\n  velocity_divisor: 0\n"},
		{"spawn below death", "world:\n  spawn_line_y: -300\n"},
		{"not yaml", "physics: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  gap_min: 100\n  gap_max: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawn.GapMin != 100 || cfg.Spawn.GapMax != 120 {
		t.Errorf("gap = [%v, %v], expected [100, 120]", cfg.Spawn.GapMin, cfg.Spawn.GapMax)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  gap_min: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of an invalid custom file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDoodleConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultDoodleConfig() {
		t.Error("marshalled defaults should parse back unchanged")
	}
}
