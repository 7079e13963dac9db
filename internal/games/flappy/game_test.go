package flappy

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/sfx"
)

const frame = core.FrameDuration

func newGame(t *testing.T, seed int64) (*Game, *core.MemoryStore, *sfx.Recorder) {
	t.Helper()
	store := core.NewMemoryStore()
	rec := &sfx.Recorder{}
	g := New(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed, Scores: store, Sound: rec})
	return g, store, rec
}

func flap() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGameDeterminism(t *testing.T) {
	run := func() (int, float64, int) {
		g, _, _ := newGame(t, 12345)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%22 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(in, frame).State.GameOver {
				break
			}
		}
		return g.score, g.birdY, len(g.pipes.Pipes())
	}

	s1, y1, p1 := run()
	s2, y2, p2 := run()
	if s1 != s2 || y1 != y2 || p1 != p2 {
		t.Errorf("runs differ: (%d, %f, %d) vs (%d, %f, %d)", s1, y1, p1, s2, y2, p2)
	}
}

func TestIdleUntilFirstFlap(t *testing.T) {
	g, _, _ := newGame(t, 1)
	startY := g.birdY

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if g.Phase() != PhaseIdle || g.birdY != startY {
		t.Fatalf("bird should wait in Idle, phase=%v y=%f", g.Phase(), g.birdY)
	}

	g.Step(flap(), frame)
	if g.Phase() != PhaseRunning {
		t.Fatalf("flap should start the run, phase=%v", g.Phase())
	}
	if g.birdY >= startY {
		t.Errorf("first flap should lift the bird, was %f now %f", startY, g.birdY)
	}
}

func TestFlapIsNotAdditive(t *testing.T) {
	g, _, _ := newGame(t, 1)
	g.Step(flap(), 0)

	g.birdVY = -20
	g.Step(flap(), 0)
	if g.birdVY != g.cfg.Physics.FlapImpulse {
		t.Errorf("flap should set vy to %f, got %f", g.cfg.Physics.FlapImpulse, g.birdVY)
	}
}

func TestPipeScoredExactlyOnce(t *testing.T) {
	g, _, rec := newGame(t, 1)
	g.Step(flap(), 0)
	rec.Reset()

	// trailing edge sits just right of the bird and crosses it on the next frame
	g.pipes.Add(g.cfg.Bird.X-g.cfg.Pipes.Width+1, 150)

	g.birdVY = 0
	g.Step(core.NewInputFrame(), frame)
	if g.score != 1 {
		t.Fatalf("score = %d after crossing, expected 1", g.score)
	}

	for i := 0; i < 5; i++ {
		g.birdVY = 0
		g.Step(core.NewInputFrame(), frame)
	}
	if g.score != 1 {
		t.Errorf("score = %d after re-evaluating a scored pipe, expected 1", g.score)
	}
	if names := rec.Names(); len(names) != 1 || names[0] != "score" {
		t.Errorf("tones = %v, expected one score chime", names)
	}
}

func TestPipeAtBirdThenCeiling(t *testing.T) {
	g, _, _ := newGame(t, 1)
	g.Step(flap(), 0)

	g.birdY = g.cfg.World.Height / 2
	g.birdVY = 0
	g.pipes.Reset()
	g.pipes.Add(g.cfg.Bird.X, g.birdY-30) // gap spans birdY-30 .. birdY+70

	g.Step(core.NewInputFrame(), frame)
	if g.Phase() != PhaseRunning {
		t.Fatal("bird inside the gap should survive the frame")
	}

	g.birdY = -5
	g.birdVY = 0
	res := g.Step(core.NewInputFrame(), frame)
	if !res.State.GameOver {
		t.Error("bird above the world should die")
	}
}

func TestDeathStoresBestAndRestartFlaps(t *testing.T) {
	g, store, rec := newGame(t, 1)
	store.Set(core.KeyFlappyBest, 2)
	g.Reset(g.rt)
	if g.best != 2 {
		t.Fatalf("best read at reset = %d, expected 2", g.best)
	}

	g.Step(flap(), 0)
	g.score = 5
	g.birdY = g.cfg.World.Height
	res := g.Step(core.NewInputFrame(), frame)

	if !res.State.GameOver || !res.NewBest {
		t.Fatalf("expected game over with new best, got %+v", res)
	}
	if store.Get(core.KeyFlappyBest) != 5 {
		t.Errorf("stored best = %d, expected 5", store.Get(core.KeyFlappyBest))
	}
	if names := rec.Names(); names[len(names)-1] != "hit" {
		t.Errorf("last tone = %q, expected hit", names[len(names)-1])
	}

	// frozen while dead
	y := g.birdY
	g.Step(core.NewInputFrame(), frame)
	if g.birdY != y {
		t.Error("dead bird should not move")
	}

	g.Step(flap(), 0)
	if g.Phase() != PhaseRunning || g.score != 0 {
		t.Fatalf("input while dead should restart, phase=%v score=%d", g.Phase(), g.score)
	}
	if g.birdVY != g.cfg.Physics.FlapImpulse {
		t.Errorf("restart should carry the flap, vy=%f", g.birdVY)
	}

	// a worse run keeps the stored best
	g.score = 1
	g.birdY = -10
	g.Step(core.NewInputFrame(), frame)
	if store.Get(core.KeyFlappyBest) != 5 {
		t.Errorf("best lowered to %d", store.Get(core.KeyFlappyBest))
	}
}

func TestSpawnRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g, _, _ := newGame(t, 99)
	pm := g.pipes

	for i := 0; i < 200; i++ {
		pm.Spawn()
	}
	for _, p := range pm.Pipes() {
		if p.Top < cfg.Pipes.Margin || p.Top > cfg.World.Height-cfg.Pipes.Gap-cfg.Pipes.Margin {
			t.Fatalf("top %f outside the safe range", p.Top)
		}
		if math.Abs(p.BottomY-p.Top-cfg.Pipes.Gap) > 1e-9 {
			t.Fatalf("gap = %f, expected %f", p.BottomY-p.Top, cfg.Pipes.Gap)
		}
		if p.X != cfg.World.Width+cfg.Pipes.SpawnOffset {
			t.Fatalf("spawn x = %f", p.X)
		}
	}
}

func TestSpawnCadenceAndCull(t *testing.T) {
	g, _, _ := newGame(t, 3)
	pm := g.pipes

	pm.Update(1400*time.Millisecond, 0, 100)
	if len(pm.Pipes()) != 0 {
		t.Fatal("no pipe before the spawn period has fully elapsed")
	}
	pm.Update(time.Millisecond, 0, 100)
	if len(pm.Pipes()) != 1 {
		t.Fatalf("expected one pipe, got %d", len(pm.Pipes()))
	}

	pm.Reset()
	pm.Add(-71, 100)
	pm.Add(-69, 100)
	pm.Update(0, 0, 100)
	if len(pm.Pipes()) != 1 || pm.Pipes()[0].X != -69 {
		t.Errorf("cull kept %+v, expected only the pipe at -69", pm.Pipes())
	}
}

func TestPipesMoveLeftEveryFrame(t *testing.T) {
	g, _, _ := newGame(t, 3)
	g.Step(flap(), 0)
	g.pipes.Add(300, 120)

	prev := g.pipes.Pipes()[0].X
	for i := 0; i < 10; i++ {
		g.birdVY = 0
		g.Step(core.NewInputFrame(), frame)
		x := g.pipes.Pipes()[0].X
		if x >= prev {
			t.Fatalf("pipe x did not decrease: %f -> %f", prev, x)
		}
		prev = x
	}
}

func TestRenderDoesNotPanicOnTinyScreen(t *testing.T) {
	g, _, _ := newGame(t, 3)
	g.Step(flap(), frame)
	for _, size := range [][2]int{{80, 24}, {10, 3}, {1, 1}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}
