// Package config provides YAML-based game configuration loading and
// difficulty presets for Flappy Dragon.
package config

// Config contains all tunable parameters for the game.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// WorldConfig defines the fixed world geometry. The world is a character
// grid the game simulates and renders into regardless of terminal size.
type WorldConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	PlayerOffset int `yaml:"player_offset"` // Fixed screen column the player is drawn at
}

// PhysicsConfig defines physics parameters. Units are cells and seconds;
// integration uses the measured per-frame delta.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, cells/s^2
	FlapImpulse  float64 `yaml:"flap_impulse"`  // Vertical velocity set by a flap (negative = up)
	ForwardSpeed float64 `yaml:"forward_speed"` // Constant rightward world speed, cells/s
}

// ObstaclesConfig defines obstacle parameters.
type ObstaclesConfig struct {
	GapCenterMin int `yaml:"gap_center_min"` // Inclusive lower bound for random gap center
	GapCenterMax int `yaml:"gap_center_max"` // Exclusive upper bound for random gap center
	BaseGapSize  int `yaml:"base_gap_size"`  // Gap size at score 0
	MinGapSize   int `yaml:"min_gap_size"`   // Gap size floor as score grows
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts tunables for a named difficulty preset.
// Unknown or empty presets leave the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseGapSize += 4
		cfg.Physics.Gravity *= 0.8
	case DifficultyHard:
		cfg.Obstacles.BaseGapSize -= 4
		cfg.Physics.Gravity *= 1.2
	}
}
