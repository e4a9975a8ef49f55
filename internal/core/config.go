package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Update ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
	Player   string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Player:   "player",
	}
}

// GameState is the platform-visible summary of a game.
type GameState struct {
	Score         int  // Player's score
	OpponentScore int  // Agent's score
	Rounds        int  // Rounds played, ties included
	GameOver      bool // Match concluded
	Won           bool // Player won the concluded match
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Concluded is true only on the tick where the match ended.
	Concluded bool
}
