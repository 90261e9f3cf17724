package core

// RuntimeConfig contains platform-level settings passed to the game loop.
type RuntimeConfig struct {
	TickRate int   // Rendered frames (and game ticks) per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
