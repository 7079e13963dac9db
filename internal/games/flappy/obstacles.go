package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
)

// Pipe is a pair of columns with a gap between them. Coordinates are world units.
type Pipe struct {
	X       float64 // left edge
	Top     float64 // height of the top column
	BottomY float64 // y where the bottom column starts
	Scored  bool    // set once when the bird passes the trailing edge
}

// TopRect returns the collision rectangle for the top column.
func (p Pipe) TopRect(width float64) core.RectF {
	return core.NewRectF(p.X, 0, width, p.Top)
}

// BottomRect returns the collision rectangle for the bottom column.
func (p Pipe) BottomRect(width, worldH float64) core.RectF {
	return core.NewRectF(p.X, p.BottomY, width, worldH-p.BottomY)
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   *config.FlappyConfig
	timer time.Duration // simulated time since the last spawn
}

// NewPipeManager creates a pipe manager drawing gap offsets from rng.
func NewPipeManager(rng *rand.Rand, cfg *config.FlappyConfig) *PipeManager {
	return &PipeManager{
		pipes: make([]Pipe, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset clears all pipes and the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.timer = 0
}

// Update spawns when due, moves pipes left by speed*f, culls pipes that
// left the world and marks pipes whose trailing edge passed birdX.
// Returns the number of pipes scored this step.
func (pm *PipeManager) Update(dt time.Duration, f, birdX float64) int {
	pm.timer += dt
	if every := pm.cfg.Pipes.Every(); every > 0 && pm.timer > every {
		pm.timer -= every
		pm.Spawn()
	}

	width := pm.cfg.Pipes.Width
	for i := range pm.pipes {
		pm.pipes[i].X -= pm.cfg.Pipes.Speed * f
	}

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.X+width > -pm.cfg.Pipes.CullMargin {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept

	return pm.score(birdX)
}

func (pm *PipeManager) score(birdX float64) int {
	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Scored && pm.pipes[i].X+pm.cfg.Pipes.Width < birdX {
			pm.pipes[i].Scored = true
			passed++
		}
	}
	return passed
}

// Spawn appends a pipe just past the right edge with a random gap offset.
// Both columns are at least Margin tall.
func (pm *PipeManager) Spawn() {
	h := pm.cfg.World.Height
	gap := pm.cfg.Pipes.Gap
	margin := pm.cfg.Pipes.Margin

	span := h - gap - 2*margin
	if span < 0 {
		span = 0
	}
	top := margin + pm.rng.Float64()*span

	pm.pipes = append(pm.pipes, Pipe{
		X:       pm.cfg.World.Width + pm.cfg.Pipes.SpawnOffset,
		Top:     top,
		BottomY: top + gap,
	})
}

// Add places a pipe directly. The gap is Pipes.Gap tall starting at top.
func (pm *PipeManager) Add(x, top float64) {
	pm.pipes = append(pm.pipes, Pipe{X: x, Top: top, BottomY: top + pm.cfg.Pipes.Gap})
}

// Pipes returns the current list of pipes.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// CheckCollision tests if the given rectangle collides with any pipe.
func (pm *PipeManager) CheckCollision(bird core.RectF) bool {
	width := pm.cfg.Pipes.Width
	for _, p := range pm.pipes {
		if bird.Intersects(p.TopRect(width)) || bird.Intersects(p.BottomRect(width, pm.cfg.World.Height)) {
			return true
		}
	}
	return false
}
