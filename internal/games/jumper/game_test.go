package jumper

import (
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
	g := New(config.DefaultJumperConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed, Scores: store, Sound: rec})
	return g, store, rec
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestJumpOnlyFromGround(t *testing.T) {
	g, _, rec := newGame(t, 1)

	g.Step(jump(), frame)
	if g.Phase() != PhaseRunning || g.onGround {
		t.Fatalf("first jump should start the run airborne, phase=%v onGround=%v", g.Phase(), g.onGround)
	}
	vy := g.playerVY

	g.Step(jump(), frame)
	if g.playerVY <= vy {
		t.Errorf("mid-air jump should be ignored, vy went %f -> %f", vy, g.playerVY)
	}
	if n := len(rec.Names()); n != 1 {
		t.Errorf("expected one jump tone, got %d", n)
	}
}

func TestLandingClampsToGround(t *testing.T) {
	g, _, _ := newGame(t, 1)
	g.Step(jump(), frame)

	for i := 0; i < 120 && !g.onGround; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if !g.onGround {
		t.Fatal("player never landed")
	}
	if g.playerY != g.groundY() || g.playerVY != 0 {
		t.Errorf("landing should clamp y=%f vy=%f, expected y=%f vy=0", g.playerY, g.playerVY, g.groundY())
	}
}

func TestSpeedMonotonicAndCapped(t *testing.T) {
	g, _, _ := newGame(t, 1)
	g.Step(jump(), 0)

	prev := g.Speed()
	for i := 0; i < 20000; i++ {
		g.obstacles.Reset() // keep the runner alive
		g.Step(core.NewInputFrame(), frame)
		if g.Speed() < prev {
			t.Fatalf("speed decreased at score %d: %f -> %f", g.Score(), prev, g.Speed())
		}
		if g.Speed() > g.cfg.Speed.Limit {
			t.Fatalf("speed %f exceeds max %f", g.Speed(), g.cfg.Speed.Limit)
		}
		prev = g.Speed()
	}
	if g.Speed() != g.cfg.Speed.Limit {
		t.Errorf("after a long run speed = %f, expected the cap %f", g.Speed(), g.cfg.Speed.Limit)
	}
}

func TestDistanceAccumulates(t *testing.T) {
	g, _, _ := newGame(t, 1)
	g.Step(jump(), 0)

	g.Step(core.NewInputFrame(), 16*time.Millisecond)
	if g.distance != g.cfg.Speed.Start {
		t.Errorf("one 16ms step at speed %f gave distance %f", g.cfg.Speed.Start, g.distance)
	}
}

func TestCollisionEndsRunAndRestartJumps(t *testing.T) {
	g, store, _ := newGame(t, 1)
	g.Step(jump(), 0)
	g.playerY = g.groundY()
	g.onGround = true
	g.distance = 42

	g.obstacles.Add(Obstacle{Kind: KindGround, X: g.cfg.Player.X, Y: g.groundY(), W: 20, H: 30})
	res := g.Step(core.NewInputFrame(), frame)
	if !res.State.GameOver || !res.NewBest {
		t.Fatalf("expected game over with new best, got %+v", res)
	}
	if best := store.Get(core.KeyJumperBest); best != g.Score() || best < 42 {
		t.Errorf("stored best = %d, expected the final score %d", best, g.Score())
	}

	d := g.distance
	g.Step(core.NewInputFrame(), frame)
	if g.distance != d {
		t.Error("world should freeze after game over")
	}

	g.Step(jump(), 0)
	if g.Phase() != PhaseRunning || g.Score() != 0 || g.onGround {
		t.Errorf("input after game over should restart with a jump, phase=%v score=%d onGround=%v",
			g.Phase(), g.Score(), g.onGround)
	}
}

func TestSpawnShapes(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	g, _, _ := newGame(t, 7)
	om := g.obstacles
	ground := cfg.World.Height - cfg.Player.GroundOffset

	sawGround, sawFlying, sawPair := false, false, false
	for i := 0; i < 500; i++ {
		om.Reset()
		om.Spawn(9)
		obs := om.Obstacles()
		o := obs[0]
		switch o.Kind {
		case KindGround:
			sawGround = true
			if o.H < 20 || o.H > 48 || o.W < 18 || o.W > 30 || o.Y+o.H != ground {
				t.Fatalf("bad ground obstacle %+v", o)
			}
		case KindFlying:
			sawFlying = true
			base := cfg.World.Height - cfg.Obstacles.FlyingLift
			if o.Y < base-8 || o.Y > base+8 || o.H < 14 || o.H > 20 {
				t.Fatalf("bad flying obstacle %+v", o)
			}
		}
		if len(obs) == 2 {
			sawPair = true
			gap := obs[1].X - obs[0].X
			if gap < 90 || gap > 130 {
				t.Fatalf("pair gap %f outside [90, 130]", gap)
			}
		}
	}
	if !sawGround || !sawFlying || !sawPair {
		t.Errorf("expected every shape, ground=%v flying=%v pair=%v", sawGround, sawFlying, sawPair)
	}

	for i := 0; i < 200; i++ {
		om.Reset()
		om.Spawn(cfg.Speed.Start)
		if len(om.Obstacles()) != 1 {
			t.Fatal("no pairs below the pair speed")
		}
	}
}

func TestSpawnDelayRange(t *testing.T) {
	g, _, _ := newGame(t, 11)
	for i := 0; i < 100; i++ {
		g.obstacles.Reset()
		if g.obstacles.next < 900*time.Millisecond || g.obstacles.next > 1600*time.Millisecond {
			t.Fatalf("spawn delay %v outside [900ms, 1600ms]", g.obstacles.next)
		}
	}
}
