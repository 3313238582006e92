package core

// RuntimeConfig contains configuration passed to the session at initialization.
// Frontends use this to size the render target and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally readable state of a session.
// Returned by Session.State() to communicate status to the platform.
type GameState struct {
	Score          int    // Accumulated score
	Round          int    // Current round, starting at 1
	TimeLeft       int    // Countdown seconds remaining in the round
	VegetablesLeft int    // Vegetables currently in play
	Phase          string // Round orchestrator phase name
	GameOver       bool   // Whether the game has ended
	Paused         bool   // Whether the game is paused
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
