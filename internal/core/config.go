package core

import (
	"time"

	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame ticks per second for frame-driven games (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Scores persists best scores. Nil means an in-memory store.
	Scores BestScoreStore
	// Sound receives tone requests. Nil means silence.
	Sound sfx.Sink
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

// FrameInterval returns the tick period implied by TickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// ScoreStore returns the configured store, falling back to a fresh memory store.
func (c RuntimeConfig) ScoreStore() BestScoreStore {
	if c.Scores == nil {
		return NewMemoryStore()
	}
	return c.Scores
}

// SoundSink returns the configured sink or a silent one.
func (c RuntimeConfig) SoundSink() sfx.Sink {
	if c.Sound == nil {
		return sfx.Nop{}
	}
	return c.Sound
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Best     int    // Best score known for this game
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused
	Status   string // Short status line, e.g. "X to move"
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// NewBest is set on the step that stored an improved best score.
	NewBest bool
}
