// Package jumper implements an endless runner. The player hops over ground
// blocks and ducks under flying drones while the world speeds up.
package jumper

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	GroundObs  = '▓'
	FlyingObs  = '◆'
	GroundChar = '═'
	StripeChar = '┆'
	StripeStep = 26
)

// Phase is the run state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// Game implements the Jumper game logic.
type Game struct {
	cfg    config.JumperConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	scores core.BestScoreStore
	sound  sfx.Sink

	phase     Phase
	playerY   float64 // top of the player hitbox
	playerVY  float64
	onGround  bool
	speed     float64
	distance  float64
	obstacles *ObstacleManager
	best      int
	paused    bool
}

// New creates a Jumper game with the given configuration.
func New(cfg config.JumperConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper"
}

// Reset reseeds the game and returns it to Idle.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.scores = rt.ScoreStore()
	g.sound = rt.SoundSink()
	g.obstacles = NewObstacleManager(g.rng, &g.cfg)
	g.best = g.scores.Get(core.KeyJumperBest)
	g.restart()
}

func (g *Game) restart() {
	g.phase = PhaseIdle
	g.playerY = g.groundY()
	g.playerVY = 0
	g.onGround = true
	g.speed = g.cfg.Speed.Start
	g.distance = 0
	g.paused = false
	g.obstacles.Reset()
}

// groundY is the resting y of the player's top edge.
func (g *Game) groundY() float64 {
	return g.cfg.World.Height - g.cfg.Player.GroundOffset - g.cfg.Player.Size
}

// TickInterval returns the frame period.
func (g *Game) TickInterval() time.Duration {
	return g.rt.FrameInterval()
}

// Score is the live score, floor(distance).
func (g *Game) Score() int {
	return int(math.Floor(g.distance))
}

// Speed returns the current world speed.
func (g *Game) Speed() float64 {
	return g.speed
}

// Step applies the frame's intents, then advances the world by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	var res core.StepResult

	for _, it := range in.Intents {
		switch it.Action {
		case core.ActionJump, core.ActionUp:
			g.handleJump()
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

func (g *Game) handleJump() {
	switch g.phase {
	case PhaseIdle:
		g.phase = PhaseRunning
	case PhaseGameOver:
		g.restart()
		g.phase = PhaseRunning
	}
	if g.paused || !g.onGround {
		return
	}
	g.playerVY = g.cfg.Physics.JumpImpulse
	g.onGround = false
	g.sound.Play(sfx.Jump)
}

func (g *Game) advance(dt time.Duration) bool {
	f := core.FrameFactor(dt)

	g.playerVY += g.cfg.Physics.Gravity * f
	g.playerY += g.playerVY * f
	if ground := g.groundY(); g.playerY >= ground {
		g.playerY = ground
		g.playerVY = 0
		g.onGround = true
	}

	g.obstacles.Update(dt, f, g.speed)

	frame := time.Duration(g.cfg.Obstacles.DistanceFrame) * time.Millisecond
	if frame > 0 {
		g.distance += g.speed * float64(dt) / float64(frame)
	}
	g.speed = g.cfg.Speed.Value(g.Score())

	if g.obstacles.CheckCollision(g.playerRect()) {
		g.phase = PhaseGameOver
		g.sound.Play(sfx.Hit)
		best, improved := core.UpdateBest(g.scores, core.KeyJumperBest, g.Score())
		g.best = best
		return improved
	}
	return false
}

func (g *Game) playerRect() core.RectF {
	return core.NewRectF(g.cfg.Player.X, g.playerY, g.cfg.Player.Size, g.cfg.Player.Size)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	rows := dst.Height() - 1
	if rows < 1 {
		return
	}
	top := 1
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, dst.Width(), rows)

	dst.SetPen(core.ColorGray)
	for x := 0.0; x < g.cfg.World.Width; x += StripeStep {
		dst.DrawVLine(vp.X(x), top, rows, StripeChar)
	}
	dst.DrawHLine(0, top+vp.Y(g.cfg.World.Height-g.cfg.Player.GroundOffset), dst.Width(), GroundChar)

	for _, o := range g.obstacles.Obstacles() {
		r := vp.Rect(o.Rect())
		r.Y += top
		if o.Kind == KindGround {
			dst.SetPen(core.ColorOrange)
			dst.DrawRect(r, GroundObs)
		} else {
			dst.SetPen(core.ColorMagenta)
			dst.DrawRect(r, FlyingObs)
		}
	}

	p := vp.Rect(g.playerRect())
	p.Y += top
	if g.phase == PhaseGameOver {
		dst.SetPen(core.ColorRed)
	} else {
		dst.SetPen(core.ColorBrightCyan)
	}
	dst.DrawRect(p, PlayerChar)

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d   Best: %d   Speed: %.1f ", g.Score(), g.best, g.speed))

	switch {
	case g.phase == PhaseIdle:
		dst.DrawMessageBox("JUMPER", "Space / click to start")
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case g.phase == PhaseGameOver:
		dst.SetPen(core.ColorBrightRed)
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", g.Score()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := "Jump the blocks, stay under the drones"
	switch g.phase {
	case PhaseIdle:
		status = "Space / click to start"
	case PhaseGameOver:
		status = "Game over, space to restart"
	}
	return core.GameState{
		Score:    g.Score(),
		Best:     g.best,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Status:   status,
	}
}

// Phase returns the current run state.
func (g *Game) Phase() Phase {
	return g.phase
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "jumper",
		Title:    "Jumper",
		Controls: "Space/Up/click jump, P pause, R reset",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadJumper(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(opts.Difficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
		}
		config.ApplyJumperPreset(&cfg, preset)
		return New(cfg), nil
	})
}
