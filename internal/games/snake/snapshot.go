package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateWin      GameStateType = "win"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodX      int
	FoodY      int
	IntervalMS int64
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.won:
		state = StateWin
	case g.dead:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		SnakeLen:   len(g.snake),
		HeadX:      headX,
		HeadY:      headY,
		Dir:        g.applied,
		FoodX:      g.food.X,
		FoodY:      g.food.Y,
		IntervalMS: g.TickInterval().Milliseconds(),
		State:      state,
	}
}
