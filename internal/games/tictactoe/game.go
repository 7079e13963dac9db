// Package tictactoe implements Tic-Tac-Toe for two players at one keyboard
// or against a minimax CPU that never loses.
package tictactoe

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

// Tally counts finished rounds in the session.
type Tally struct {
	XWins, OWins, Draws int
}

// Points scores the session for X: two per win, one per draw.
func (t Tally) Points() int {
	return 2*t.XWins + t.Draws
}

// pendingMove is a scheduled CPU reply. It fires only while gen matches the game's.
type pendingMove struct {
	gen     uint64
	elapsed time.Duration
}

// Game implements Tic-Tac-Toe.
type Game struct {
	cfg    config.TicTacToeConfig
	rt     core.RuntimeConfig
	solver *Solver
	scores core.BestScoreStore
	sound  sfx.Sink

	board  Board
	toMove Mark
	mode   string
	cursor int
	tally  Tally
	best   int

	gen uint64 // bumped whenever the board is reset
	cpu *pendingMove

	layout layout // geometry of the last Render, for CellAt
}

// New creates a game with the given configuration.
func New(cfg config.TicTacToeConfig) *Game {
	g := &Game{cfg: cfg, mode: cfg.Mode}
	if cfg.Memoize {
		g.solver = NewSolver()
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset clears the board and the session tally.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.scores = rt.ScoreStore()
	g.sound = rt.SoundSink()
	g.best = g.scores.Get(core.KeyTicTacToeBest)
	g.tally = Tally{}
	g.newRound()
}

// newRound empties the board and cancels any scheduled CPU move.
func (g *Game) newRound() {
	g.board = Board{}
	g.toMove = X
	g.cursor = 4
	g.gen++
	g.cpu = nil
}

// TickInterval returns the frame period; it drives the CPU delay.
func (g *Game) TickInterval() time.Duration {
	return g.rt.FrameInterval()
}

// Mode returns "cpu" or "pvp".
func (g *Game) Mode() string {
	return g.mode
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// Thinking reports whether a CPU move is scheduled.
func (g *Game) Thinking() bool {
	return g.cpu != nil
}

// Step applies the intents in order and then lets a scheduled CPU move fire.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	var res core.StepResult

	for _, it := range in.Intents {
		switch it.Action {
		case core.ActionUp:
			g.moveCursor(0, -1)
		case core.ActionDown:
			g.moveCursor(0, 1)
		case core.ActionLeft:
			g.moveCursor(-1, 0)
		case core.ActionRight:
			g.moveCursor(1, 0)
		case core.ActionConfirm, core.ActionJump:
			res.NewBest = g.humanMove(g.cursor) || res.NewBest
		case core.ActionSelect:
			g.cursor = core.Clamp(it.Cell, 0, 8)
			res.NewBest = g.humanMove(it.Cell) || res.NewBest
		case core.ActionToggleMode:
			g.SetMode(otherMode(g.mode))
		case core.ActionRestart:
			g.newRound()
		}
	}

	if g.cpu != nil {
		g.cpu.elapsed += dt
		if g.cpu.elapsed >= g.cfg.CPUDelay() {
			res.NewBest = g.cpuMove() || res.NewBest
		}
	}

	res.State = g.State()
	return res
}

func otherMode(m string) string {
	if m == config.ModeCPU {
		return config.ModePvP
	}
	return config.ModeCPU
}

// SetMode switches between two players and vs CPU. The board is reset
// and the tally cleared because the scoring changes meaning.
func (g *Game) SetMode(mode string) {
	if mode != config.ModeCPU && mode != config.ModePvP {
		return
	}
	g.mode = mode
	g.tally = Tally{}
	g.newRound()
}

func (g *Game) moveCursor(dx, dy int) {
	x := core.Clamp(g.cursor%3+dx, 0, 2)
	y := core.Clamp(g.cursor/3+dy, 0, 2)
	g.cursor = y*3 + x
}

// humanMove places the mark to move at cell. A finished board starts a new
// round instead. Invalid cells are ignored.
func (g *Game) humanMove(cell int) bool {
	if g.board.Result() != InProgress {
		g.newRound()
		return false
	}
	if g.mode == config.ModeCPU && (g.toMove != Human || g.cpu != nil) {
		return false
	}
	if !g.board.CanPlace(cell) {
		return false
	}

	improved := g.place(cell)
	if g.mode == config.ModeCPU && g.board.Result() == InProgress {
		g.cpu = &pendingMove{gen: g.gen}
	}
	return improved
}

func (g *Game) cpuMove() bool {
	p := g.cpu
	g.cpu = nil
	if p.gen != g.gen || g.mode != config.ModeCPU || g.toMove != CPU {
		return false
	}
	_, move := g.solver.Best(g.board, true)
	if move < 0 || !g.board.CanPlace(move) {
		return false
	}
	return g.place(move)
}

// place marks cell for the player to move and settles a finished round.
func (g *Game) place(cell int) bool {
	g.board[cell] = g.toMove
	g.toMove = g.toMove.Other()
	g.sound.Play(sfx.Score)

	switch g.board.Result() {
	case XWins:
		g.tally.XWins++
	case OWins:
		g.tally.OWins++
		if g.mode == config.ModeCPU {
			g.sound.Play(sfx.Hit)
		}
	case Draw:
		g.tally.Draws++
	default:
		return false
	}

	if g.mode != config.ModeCPU {
		return false
	}
	best, improved := core.UpdateBest(g.scores, core.KeyTicTacToeBest, g.tally.Points())
	g.best = best
	return improved
}

// Status is the one-line turn or result summary.
func (g *Game) Status() string {
	switch r := g.board.Result(); r {
	case XWins, OWins:
		w, _ := g.board.Winner()
		return fmt.Sprintf("Winner: %s", w)
	case Draw:
		return "Draw!"
	}
	s := fmt.Sprintf("Turn: %s", g.toMove)
	if g.mode == config.ModeCPU && g.toMove == CPU {
		s += " (CPU)"
	}
	if g.cpu != nil {
		s += " thinking..."
	}
	return s
}

// State returns the current game state. Score is the session's points for X.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tally.Points(),
		Best:     g.best,
		GameOver: g.board.Result() != InProgress,
		Status:   g.Status(),
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:       "tictactoe",
		Title:    "Tic-Tac-Toe",
		Controls: "Arrows move, Enter/Space place, 1-9 or click a cell, T mode, R reset",
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadTicTacToe(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		// presets do not change the CPU, but a typo is still an error
		if _, ok := config.ParsePreset(opts.Difficulty); !ok {
			return nil, fmt.Errorf("unknown difficulty %q", opts.Difficulty)
		}
		switch opts.Mode {
		case "":
		case config.ModeCPU, config.ModePvP:
			cfg.Mode = opts.Mode
		default:
			return nil, fmt.Errorf("unknown mode %q", opts.Mode)
		}
		return New(cfg), nil
	})
}
