package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	TickRate   int   // Simulation ticks per second (default 8)
	Seed       int64 // RNG seed for deterministic gameplay
	StartLevel int   // First level of a new round (0 or 1 = level 1)
}

// DefaultConfig returns the runtime config for an 80x24 terminal at level 1.
// Shells start from it and fill in what they know.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   8,
		Seed:       0, // 0 means the shell picks one from the clock
		StartLevel: 1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 1-based
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a notable thing that happened during a tick.
// The platform logs events; games never log on their own.
type Event struct {
	Kind  string // e.g. "level_up", "caught"
	Level int
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
