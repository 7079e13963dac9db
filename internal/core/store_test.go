package core

import (
	"sync"
	"testing"
	"time"
)

func TestUpdateBest(t *testing.T) {
	store := NewMemoryStore()

	if best, changed := UpdateBest(store, KeyFlappyBest, 3); best != 3 || !changed {
		t.Errorf("first score: best=%d changed=%v, expected 3 true", best, changed)
	}
	if best, changed := UpdateBest(store, KeyFlappyBest, 2); best != 3 || changed {
		t.Errorf("lower score: best=%d changed=%v, expected 3 false", best, changed)
	}
	if best, changed := UpdateBest(store, KeyFlappyBest, 3); best != 3 || changed {
		t.Errorf("equal score: best=%d changed=%v, expected 3 false", best, changed)
	}
	if store.Get(KeySnakeBest) != 0 {
		t.Error("missing key should read as 0")
	}
}

// staleReadStore hides Raise so UpdateBest takes the read-then-write path.
type staleReadStore struct{ m *MemoryStore }

func (s staleReadStore) Get(key string) int    { return s.m.Get(key) }
func (s staleReadStore) Set(key string, v int) { s.m.Set(key, v) }

func TestUpdateBestConcurrentNeverRegresses(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeySnakeBest, 5)

	var wg sync.WaitGroup
	for score := 50; score >= 1; score-- {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			UpdateBest(store, KeySnakeBest, n)
		}(score)
	}
	wg.Wait()

	if got := store.Get(KeySnakeBest); got != 50 {
		t.Errorf("best = %d, expected 50", got)
	}
}

func TestUpdateBestWithoutRaise(t *testing.T) {
	store := staleReadStore{NewMemoryStore()}

	if best, changed := UpdateBest(store, KeyJumperBest, 4); best != 4 || !changed {
		t.Errorf("first score: best=%d changed=%v, expected 4 true", best, changed)
	}
	if best, changed := UpdateBest(store, KeyJumperBest, 1); best != 4 || changed {
		t.Errorf("lower score: best=%d changed=%v, expected 4 false", best, changed)
	}
}

func TestFrameClock(t *testing.T) {
	var clock FrameClock
	start := time.Unix(1000, 0)

	if dt := clock.Tick(start); dt != 0 {
		t.Errorf("first tick dt = %v, expected 0", dt)
	}
	if dt := clock.Tick(start.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Errorf("dt = %v, expected 16ms", dt)
	}
	if dt := clock.Tick(start.Add(2 * time.Second)); dt != MaxStep {
		t.Errorf("long gap dt = %v, expected clamp to %v", dt, MaxStep)
	}

	clock.Reset()
	if dt := clock.Tick(start.Add(3 * time.Second)); dt != 0 {
		t.Errorf("tick after reset dt = %v, expected 0", dt)
	}
}

func TestViewportRect(t *testing.T) {
	v := NewViewport(520, 360, 52, 18)

	r := v.Rect(NewRectF(100, 170, 28, 20))
	if r.X != 10 || r.Y != 8 {
		t.Errorf("origin = (%d, %d), expected (10, 8)", r.X, r.Y)
	}
	if r.W < 1 || r.H < 1 {
		t.Errorf("rect %+v should cover at least one cell", r)
	}

	tiny := v.Rect(NewRectF(0, 0, 0.5, 0.5))
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny rect = %+v, expected 1x1", tiny)
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Select(4)
	f.Set(ActionLeft)

	if len(f.Intents) != 3 {
		t.Fatalf("expected 3 intents, got %d", len(f.Intents))
	}
	if f.Intents[1].Action != ActionSelect || f.Intents[1].Cell != 4 {
		t.Errorf("second intent = %+v, expected Select(4)", f.Intents[1])
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}
