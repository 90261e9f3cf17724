package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.flappy-dragon/config.yaml -> ./configs/flappy.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappy.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-dragon", filename)
}

// Validate checks that a loaded configuration is playable.
func (c Config) Validate() error {
	if c.World.ScreenWidth <= 0 || c.World.ScreenHeight <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", c.World.ScreenWidth, c.World.ScreenHeight)
	}
	if c.World.PlayerOffset < 0 || c.World.PlayerOffset >= c.World.ScreenWidth {
		return fmt.Errorf("player_offset %d outside screen width %d", c.World.PlayerOffset, c.World.ScreenWidth)
	}
	if c.Obstacles.GapCenterMax <= c.Obstacles.GapCenterMin {
		return fmt.Errorf("gap_center_max %d must exceed gap_center_min %d", c.Obstacles.GapCenterMax, c.Obstacles.GapCenterMin)
	}
	if c.Obstacles.MinGapSize < 1 {
		return fmt.Errorf("min_gap_size must be at least 1, got %d", c.Obstacles.MinGapSize)
	}
	if c.Physics.ForwardSpeed <= 0 {
		return fmt.Errorf("forward_speed must be positive, got %v", c.Physics.ForwardSpeed)
	}
	return nil
}
