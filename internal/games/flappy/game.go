// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

// Visual characters for rendering
const (
	BirdChar   = '█'
	PipeChar   = '█'
	StripeChar = '┆'
	GroundChar = '═'
	StripeStep = 26 // world units between background stripes
)

// Phase is the run state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseDead
)

// Game implements the Flappy game logic.
type Game struct {
	cfg    config.FlappyConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	scores core.BestScoreStore
	sound  sfx.Sink

	phase  Phase
	birdY  float64 // top of the bird hitbox
	birdVY float64
	pipes  *PipeManager
	score  int
	best   int
	paused bool
}

// New creates a Flappy game with the given configuration.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy"
}

// Reset reseeds the game and returns it to Idle.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.scores = rt.ScoreStore()
	g.sound = rt.SoundSink()
	g.pipes = NewPipeManager(g.rng, &g.cfg)
	g.best = g.scores.Get(core.KeyFlappyBest)
	g.restart()
}

// restart clears the run but keeps the RNG stream and collaborators.
func (g *Game) restart() {
	g.phase = PhaseIdle
	g.birdY = g.cfg.World.Height / 2
	g.birdVY = 0
	g.score = 0
	g.paused = false
	g.pipes.Reset()
}

// TickInterval returns the frame period.
func (g *Game) TickInterval() time.Duration {
	return g.rt.FrameInterval()
}

// Step applies the frame's intents, then advances physics by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	var res core.StepResult

	for _, it := range in.Intents {
		switch it.Action {
		case core.ActionJump, core.ActionUp:
			g.handleFlap()
		case core.ActionRestart:
			g.restart()
		case core.ActionPause:
			if g.phase == PhaseRunning {
				g.paused = !g.paused
			}
		}
	}

	if g.phase == PhaseRunning && !g.paused {
		res.NewBest = g.advance(core.ClampStep(dt))
	}

	res.State = g.State()
	return res
}

// handleFlap implements the flap intent for every phase.
func (g *Game) handleFlap() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhaseRunning
	case PhaseDead:
		g.restart()
		g.phase = PhaseRunning
	}
	if g.paused {
		return
	}
	g.birdVY = g.cfg.Physics.FlapImpulse
	g.sound.Play(sfx.Flap)
}

// advance runs one physics step. Returns true if the run ended with a new best.
func (g *Game) advance(dt time.Duration) bool {
	f := core.FrameFactor(dt)

	g.birdVY += g.cfg.Physics.Gravity * f
	g.birdY += g.birdVY * f

	if passed := g.pipes.Update(dt, f, g.cfg.Bird.X); passed > 0 {
		g.score += passed
		g.sound.Play(sfx.Score)
	}

	if g.birdY < 0 || g.birdY+g.cfg.Bird.Height > g.cfg.World.Height || g.pipes.CheckCollision(g.birdRect()) {
		return g.die()
	}
	return false
}

func (g *Game) die() bool {
	g.phase = PhaseDead
	g.sound.Play(sfx.Hit)
	best, improved := core.UpdateBest(g.scores, core.KeyFlappyBest, g.score)
	g.best = best
	return improved
}

// birdRect returns the bird's collision rectangle.
func (g *Game) birdRect() core.RectF {
	return core.NewRectF(g.cfg.Bird.X, g.birdY, g.cfg.Bird.Width, g.cfg.Bird.Height)
}

// Render draws the current game state to the screen.
// Row 0 holds the HUD and the last row the ground; the world fills the rows between.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := dst.Height() - 2
	if rows < 1 {
		return
	}
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), rows)
	top := 1

	dst.SetPen(core.ColorGray)
	for x := 0.0; x < g.cfg.World.Width; x += StripeStep {
		dst.DrawVLine(vp.X(x), top, rows, StripeChar)
	}

	dst.SetPen(core.ColorGreen)
	for _, p := range g.pipes.Pipes() {
		t := vp.Rect(p.TopRect(g.cfg.Pipes.Width))
		t.Y += top
		dst.DrawRect(t, PipeChar)
		b := vp.Rect(p.BottomRect(g.cfg.Pipes.Width, g.cfg.World.Height))
		b.Y += top
		dst.DrawRect(b, PipeChar)
	}

	bird := vp.Rect(g.birdRect())
	bird.Y += top
	if g.phase == PhaseDead {
		dst.SetPen(core.ColorRed)
	} else {
		dst.SetPen(core.ColorBrightBlue)
	}
	dst.DrawRect(bird, BirdChar)

	dst.SetPen(core.ColorGray)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar)

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d   Best: %d ", g.score, g.best))

	switch {
	case g.phase == PhaseIdle:
		dst.DrawMessageBox("FLAPPY", "Space / click to start")
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case g.phase == PhaseDead:
		dst.SetPen(core.ColorBrightRed)
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := "Flap through the gaps"
	switch {
	case g.phase == PhaseIdle:
		status = "Space / click to start"
	case g.phase == PhaseDead:
		status = "Game over, space to restart"
	}
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.phase == PhaseDead,
		Paused:   g.paused,
		Status:   status,
	}
}

// Phase returns the current run state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:       "flappy",
		Title:    "Flappy",
		Controls: "Space/Up/click flap, P pause, R reset",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(opts.Difficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
		}
		config.ApplyFlappyPreset(&cfg, preset)
		return New(cfg), nil
	})
}
