// Package snake implements the classic snake on a fixed grid. The board
// either wraps around or kills on the walls, chosen at creation.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	return [...]string{"right", "down", "left", "up"}[d%4]
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Starting body, head first.
var startBody = []Point{{X: 8, Y: 10}, {X: 7, Y: 10}, {X: 6, Y: 10}}

// Game implements the Snake game.
type Game struct {
	cfg    config.SnakeConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	scores core.BestScoreStore
	sound  sfx.Sink

	tick    uint64
	snake   []Point // Head at index 0
	applied Direction
	pending Direction
	food    Point
	score   int
	best    int
	dead    bool
	won     bool // board filled, no cell left for food
	paused  bool

	free []Point // scratch for food placement
}

// New creates a Snake game with the given configuration.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Boundary returns the active boundary policy.
func (g *Game) Boundary() string {
	return g.cfg.Boundary
}

// Reset reseeds the game and starts a new run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.scores = rt.ScoreStore()
	g.sound = rt.SoundSink()
	g.best = g.scores.Get(core.KeySnakeBest)
	g.restart()
}

// restart reinitializes the body, direction, food and score.
func (g *Game) restart() {
	g.tick = 0
	g.snake = append(g.snake[:0], startBody...)
	g.applied = DirRight
	g.pending = DirRight
	g.score = 0
	g.dead = false
	g.won = false
	g.paused = false
	g.spawnFood()
}

// TickInterval is derived from the body length.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.Interval.Value(len(g.snake) - len(startBody))
	return time.Duration(ms * float64(time.Millisecond))
}

// Step applies the intents in order, then advances the snake one cell.
// dt is ignored: the platform calls Step once per TickInterval.
func (g *Game) Step(in core.InputFrame, _ time.Duration) core.StepResult {
	var res core.StepResult
	restarted := false

	for _, it := range in.Intents {
		if d, ok := directionFor(it.Action); ok {
			g.steer(d)
			continue
		}
		switch it.Action {
		case core.ActionRestart, core.ActionConfirm, core.ActionJump:
			if g.over() || it.Action == core.ActionRestart {
				g.restart()
				restarted = true
			}
		case core.ActionPause:
			if !g.over() {
				g.paused = !g.paused
			}
		}
	}

	// a fresh board waits one full interval before its first move
	if !restarted && !g.over() && !g.paused {
		res.NewBest = g.advance()
	}

	res.State = g.State()
	return res
}

// steer buffers d unless it reverses the last applied direction.
func (g *Game) steer(d Direction) {
	if g.over() || d == g.applied.Opposite() {
		return
	}
	g.pending = d
}

func (g *Game) over() bool {
	return g.dead || g.won
}

// advance moves the snake one cell. Returns true if the run ended with a new best.
func (g *Game) advance() bool {
	g.tick++
	g.applied = g.pending

	dx, dy := g.applied.Delta()
	head := Point{X: g.snake[0].X + dx, Y: g.snake[0].Y + dy}

	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	if head.X < 0 || head.X >= w || head.Y < 0 || head.Y >= h {
		if g.cfg.Boundary == config.BoundaryWall {
			return g.end(false)
		}
		head.X = (head.X + w) % w
		head.Y = (head.Y + h) % h
	}

	// every current segment counts, including the tail about to move
	if g.isSnakeAt(head) {
		return g.end(false)
	}

	g.snake = append(g.snake, Point{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = head

	if head != g.food {
		g.snake = g.snake[:len(g.snake)-1]
		return false
	}

	g.score++
	g.sound.Play(sfx.Eat)
	if !g.spawnFood() {
		return g.end(true)
	}
	return false
}

func (g *Game) end(won bool) bool {
	if won {
		g.won = true
	} else {
		g.dead = true
		g.sound.Play(sfx.Hit)
	}
	best, improved := core.UpdateBest(g.scores, core.KeySnakeBest, g.score)
	g.best = best
	return improved
}

// spawnFood places food uniformly among unoccupied cells.
// Returns false when the snake fills the board.
func (g *Game) spawnFood() bool {
	g.free = g.free[:0]
	for y := 0; y < g.cfg.Grid.Height; y++ {
		for x := 0; x < g.cfg.Grid.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				g.free = append(g.free, p)
			}
		}
	}
	if len(g.free) == 0 {
		g.food = Point{X: -1, Y: -1}
		return false
	}
	g.food = g.free[g.rng.Intn(len(g.free))]
	return true
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := fmt.Sprintf("Length %d, %s walls", len(g.snake), g.Boundary())
	switch {
	case g.won:
		status = "Board cleared!"
	case g.dead:
		status = "Game over, R to restart"
	}
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.over(),
		Paused:   g.paused,
		Status:   status,
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "snake",
		Title:    "Snake",
		Controls: "Arrows/WASD steer, P pause, R restart",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadSnake(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		preset, ok := config.ParsePreset(opts.Difficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
		}
		config.ApplySnakePreset(&cfg, preset)
		switch opts.Boundary {
		case "":
		case config.BoundaryWrap, config.BoundaryWall:
			cfg.Boundary = opts.Boundary
		default:
			return nil, fmt.Errorf("unknown boundary %q", opts.Boundary)
		}
		return New(cfg), nil
	})
}
