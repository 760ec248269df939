package core

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Arena width in pixels
	ScreenH  int   // Arena height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// ElapsedMs converts a tick count to session milliseconds.
// Integer arithmetic keeps every frontend on the same timeline.
func (c RuntimeConfig) ElapsedMs(tick int64) int64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return tick * 1000 / int64(rate)
}

// GameState represents the externally visible status of a session.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Player hp reached zero
	Won      bool // Final boss destroyed
	Paused   bool // Simulation frozen by the player
}
