package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.World.ScreenWidth != 80 || cfg.World.ScreenHeight != 50 {
		t.Errorf("default world = %dx%d, expected 80x50", cfg.World.ScreenWidth, cfg.World.ScreenHeight)
	}
	if cfg.World.PlayerOffset != 5 {
		t.Errorf("default player_offset = %d, expected 5", cfg.World.PlayerOffset)
	}
	if cfg.Physics.Gravity != 9.8 {
		t.Errorf("default gravity = %v, expected 9.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.FlapImpulse != -15.0 {
		t.Errorf("default flap_impulse = %v, expected -15.0", cfg.Physics.FlapImpulse)
	}
	if cfg.Physics.ForwardSpeed != 15.0 {
		t.Errorf("default forward_speed = %v, expected 15.0", cfg.Physics.ForwardSpeed)
	}
	if cfg.Obstacles.GapCenterMin != 10 || cfg.Obstacles.GapCenterMax != 40 {
		t.Errorf("default gap center range = [%d, %d), expected [10, 40)", cfg.Obstacles.GapCenterMin, cfg.Obstacles.GapCenterMax)
	}
	if cfg.Obstacles.BaseGapSize != 20 || cfg.Obstacles.MinGapSize != 2 {
		t.Errorf("default gap sizes = base %d min %d, expected base 20 min 2", cfg.Obstacles.BaseGapSize, cfg.Obstacles.MinGapSize)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Keep the search path away from any real user config.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	// The embedded YAML must agree with Default() so both paths behave
	// the same.
	if cfg.Physics != Default().Physics {
		t.Errorf("embedded physics %+v differs from Default() %+v", cfg.Physics, Default().Physics)
	}
	if cfg.World != Default().World {
		t.Errorf("embedded world %+v differs from Default() %+v", cfg.World, Default().World)
	}
	if cfg.Obstacles != Default().Obstacles {
		t.Errorf("embedded obstacles %+v differs from Default() %+v", cfg.Obstacles, Default().Obstacles)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `world:
  screen_width: 100
  screen_height: 40
  player_offset: 8
physics:
  gravity: 12.0
  flap_impulse: -18.0
  forward_speed: 20.0
obstacles:
  gap_center_min: 5
  gap_center_max: 35
  base_gap_size: 16
  min_gap_size: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.World.ScreenWidth != 100 || cfg.World.ScreenHeight != 40 {
		t.Errorf("world = %dx%d, expected 100x40", cfg.World.ScreenWidth, cfg.World.ScreenHeight)
	}
	if cfg.Physics.Gravity != 12.0 {
		t.Errorf("gravity = %v, expected 12.0", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.BaseGapSize != 16 {
		t.Errorf("base_gap_size = %d, expected 16", cfg.Obstacles.BaseGapSize)
	}
}

func TestLoadMissingCustomConfig(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.World.ScreenWidth = 0 }},
		{"negative height", func(c *Config) { c.World.ScreenHeight = -1 }},
		{"offset past width", func(c *Config) { c.World.PlayerOffset = 80 }},
		{"negative offset", func(c *Config) { c.World.PlayerOffset = -1 }},
		{"inverted gap range", func(c *Config) { c.Obstacles.GapCenterMax = c.Obstacles.GapCenterMin }},
		{"zero min gap", func(c *Config) { c.Obstacles.MinGapSize = 0 }},
		{"zero forward speed", func(c *Config) { c.Physics.ForwardSpeed = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Obstacles.BaseGapSize != 24 {
		t.Errorf("easy base_gap_size = %d, expected 24", easy.Obstacles.BaseGapSize)
	}
	if easy.Physics.Gravity >= 9.8 {
		t.Errorf("easy gravity = %v, expected below 9.8", easy.Physics.Gravity)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Obstacles.BaseGapSize != 16 {
		t.Errorf("hard base_gap_size = %d, expected 16", hard.Obstacles.BaseGapSize)
	}
	if hard.Physics.Gravity <= 9.8 {
		t.Errorf("hard gravity = %v, expected above 9.8", hard.Physics.Gravity)
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should leave the config unchanged")
	}
}
