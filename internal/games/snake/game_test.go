package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

func newGame(t *testing.T, boundary string, seed int64) (*Game, *core.MemoryStore, *sfx.Recorder) {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Boundary = boundary
	store := core.NewMemoryStore()
	rec := &sfx.Recorder{}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: seed, Scores: store, Sound: rec})
	return g, store, rec
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _, _ := newGame(t, config.BoundaryWrap, 12345)
		for i := 0; i < 100; i++ {
			var in core.InputFrame
			switch i {
			case 20:
				in = input(core.ActionDown)
			case 40:
				in = input(core.ActionLeft)
			case 60:
				in = input(core.ActionUp)
			}
			g.Step(in, 0)
		}
		return g.Snapshot()
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestInitialState(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWrap, 1)

	if len(g.snake) != 3 || g.snake[0] != (Point{8, 10}) || g.snake[2] != (Point{6, 10}) {
		t.Errorf("initial body = %v", g.snake)
	}
	if g.applied != DirRight {
		t.Errorf("initial direction = %v, expected right", g.applied)
	}
	if g.isSnakeAt(g.food) {
		t.Error("food placed on the snake")
	}
	if g.TickInterval() != 100*time.Millisecond {
		t.Errorf("initial interval = %v, expected 100ms", g.TickInterval())
	}
}

func TestEatFoodAhead(t *testing.T) {
	g, store, rec := newGame(t, config.BoundaryWrap, 7)
	g.food = Point{X: 9, Y: 10}

	g.Step(core.NewInputFrame(), 0)

	if len(g.snake) != 4 || g.score != 1 {
		t.Fatalf("after eating: len=%d score=%d, expected 4 and 1", len(g.snake), g.score)
	}
	if g.snake[0] != (Point{9, 10}) || g.snake[3] != (Point{6, 10}) {
		t.Errorf("body after eating = %v", g.snake)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("new food %v lands on the snake", g.food)
	}
	if names := rec.Names(); len(names) != 1 || names[0] != "eat" {
		t.Errorf("tones = %v, expected eat", names)
	}
	if store.Get(core.KeySnakeBest) != 0 {
		t.Error("best is stored when the run ends, not on every bite")
	}
}

func TestLengthInvariantWithoutFood(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWrap, 7)

	for i := 0; i < 50; i++ {
		g.food = Point{X: 0, Y: 0}
		if g.snake[0].Y == 0 {
			g.food = Point{X: 0, Y: 19}
		}
		before := len(g.snake)
		g.Step(core.NewInputFrame(), 0)
		if g.dead {
			t.Fatal("snake died on an empty row")
		}
		if len(g.snake) != before {
			t.Fatalf("length changed %d -> %d without food", before, len(g.snake))
		}
	}
}

func TestReversalGuard(t *testing.T) {
	dirs := []struct {
		dir     Direction
		action  core.Action
		reverse core.Action
	}{
		{DirRight, core.ActionRight, core.ActionLeft},
		{DirDown, core.ActionDown, core.ActionUp},
		{DirLeft, core.ActionLeft, core.ActionRight},
		{DirUp, core.ActionUp, core.ActionDown},
	}

	for _, tc := range dirs {
		t.Run(tc.dir.String(), func(t *testing.T) {
			g, _, _ := newGame(t, config.BoundaryWrap, 3)
			g.food = Point{X: 0, Y: 0}

			// turn through a perpendicular direction to reach tc.dir
			if tc.dir == DirLeft {
				g.Step(input(core.ActionUp), 0)
			}
			g.Step(input(tc.action), 0)
			if g.applied != tc.dir {
				t.Fatalf("setup: applied = %v, expected %v", g.applied, tc.dir)
			}

			g.Step(input(tc.reverse), 0)
			if g.applied != tc.dir {
				t.Errorf("reverse intent changed direction to %v", g.applied)
			}
			if g.dead {
				t.Error("reverse intent should not kill the snake")
			}
		})
	}
}

func TestReversalCheckedAgainstAppliedDirection(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWrap, 3)
	g.food = Point{X: 0, Y: 0}

	// Up is accepted, then Left is the reverse of the applied Right and is dropped.
	g.Step(input(core.ActionUp, core.ActionLeft), 0)
	if g.applied != DirUp {
		t.Errorf("applied = %v, expected up", g.applied)
	}
}

func TestWrapAndWall(t *testing.T) {
	wrap, _, _ := newGame(t, config.BoundaryWrap, 1)
	wrap.snake = []Point{{19, 5}, {18, 5}, {17, 5}}
	wrap.food = Point{X: 0, Y: 0}
	wrap.Step(core.NewInputFrame(), 0)
	if wrap.dead || wrap.snake[0] != (Point{0, 5}) {
		t.Errorf("wrap: head=%v dead=%v, expected (0,5) alive", wrap.snake[0], wrap.dead)
	}

	wall, store, _ := newGame(t, config.BoundaryWall, 1)
	wall.snake = []Point{{19, 5}, {18, 5}, {17, 5}}
	wall.food = Point{X: 0, Y: 0}
	wall.score = 4
	res := wall.Step(core.NewInputFrame(), 0)
	if !res.State.GameOver || !res.NewBest {
		t.Fatalf("wall: expected death with new best, got %+v", res)
	}
	if store.Get(core.KeySnakeBest) != 4 {
		t.Errorf("stored best = %d, expected 4", store.Get(core.KeySnakeBest))
	}
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWrap, 1)
	g.snake = []Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}}
	g.applied, g.pending = DirLeft, DirLeft
	g.food = Point{X: 0, Y: 0}

	g.Step(input(core.ActionDown), 0)
	if !g.dead {
		t.Error("moving into the tail cell should kill the snake")
	}

	tick := g.tick
	g.Step(core.NewInputFrame(), 0)
	if g.tick != tick {
		t.Error("dead snake should not advance")
	}
}

func TestRestartAfterDeath(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWall, 1)
	g.snake = []Point{{19, 5}, {18, 5}, {17, 5}, {16, 5}, {15, 5}, {14, 5}}
	g.score = 3
	g.Step(core.NewInputFrame(), 0)
	if !g.dead {
		t.Fatal("setup: expected death at the wall")
	}

	g.Step(input(core.ActionRestart), 0)
	if g.dead || g.score != 0 || len(g.snake) != 3 || g.applied != DirRight {
		t.Errorf("restart left state %+v", g.Snapshot())
	}
	if g.TickInterval() != 100*time.Millisecond {
		t.Errorf("restart interval = %v, expected 100ms", g.TickInterval())
	}
}

func TestIntervalShrinksWithLength(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWrap, 1)

	tests := []struct {
		length int
		ms     int64
	}{
		{3, 100}, {5, 100}, {6, 95}, {9, 90}, {30, 55}, {200, 55},
	}
	for _, tc := range tests {
		g.snake = make([]Point, tc.length)
		if got := g.TickInterval().Milliseconds(); got != tc.ms {
			t.Errorf("length %d: interval %dms, expected %dms", tc.length, got, tc.ms)
		}
	}
}

func TestFilledBoardIsAWin(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid = config.SnakeGrid{Width: 2, Height: 2}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	g.snake = []Point{{0, 0}, {1, 0}, {1, 1}}
	g.applied, g.pending = DirLeft, DirLeft
	g.food = Point{X: 0, Y: 1}

	res := g.Step(input(core.ActionDown), 0)
	if !g.won || !res.State.GameOver {
		t.Fatalf("filling the board should win, state %+v", g.Snapshot())
	}
	if g.food.X != -1 {
		t.Errorf("no food expected on a full board, got %v", g.food)
	}
}

func TestPauseHoldsTheSnake(t *testing.T) {
	g, _, _ := newGame(t, config.BoundaryWrap, 1)
	g.Step(input(core.ActionPause), 0)
	head := g.snake[0]
	g.Step(core.NewInputFrame(), 0)
	if g.snake[0] != head {
		t.Error("paused snake moved")
	}
	g.Step(input(core.ActionPause), 0)
	if g.snake[0] == head {
		t.Error("unpaused snake should move")
	}
}

func TestHUDShowsBoundary(t *testing.T) {
	for _, boundary := range []string{config.BoundaryWrap, config.BoundaryWall} {
		g, _, _ := newGame(t, boundary, 1)
		if g.Boundary() != boundary {
			t.Errorf("Boundary() = %q, expected %q", g.Boundary(), boundary)
		}

		s := core.NewScreen(60, 24)
		g.Render(s)
		if !strings.Contains(s.String(), "["+boundary+"]") {
			t.Errorf("HUD does not name the %s boundary", boundary)
		}
	}
}
