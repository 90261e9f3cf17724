package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the default configuration. These are the reference
// tunings: an 80x50 world, gravity 9.8 cells/s^2, a -15 flap impulse,
// and a gap that starts at 20 cells and shrinks by one per point down
// to a floor of 2.
func Default() Config {
	return Config{
		World: WorldConfig{
			ScreenWidth:  80,
			ScreenHeight: 50,
			PlayerOffset: 5,
		},
		Physics: PhysicsConfig{
			Gravity:      9.8,
			FlapImpulse:  -15.0,
			ForwardSpeed: 15.0,
		},
		Obstacles: ObstaclesConfig{
			GapCenterMin: 10,
			GapCenterMax: 40,
			BaseGapSize:  20,
			MinGapSize:   2,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
