package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets   int
	cfg      core.RuntimeConfig
	inputs   []core.InputFrame
	dts      []time.Duration
	overAt   int // step count that ends the run, 0 never
	score    int
	interval time.Duration
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.inputs = append(g.inputs, core.InputFrame{Intents: append([]core.Intent(nil), in.Intents...)})
	g.dts = append(g.dts, dt)
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) TickInterval() time.Duration {
	if g.interval > 0 {
		return g.interval
	}
	return time.Second / 60
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	over := g.overAt > 0 && len(g.inputs) >= g.overAt
	return core.GameState{Score: g.score, GameOver: over}
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) GameModel {
	t.Helper()
	env := NewEnv(EnvConfig{Store: store})
	return NewGameModel(g, env, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelResetsWithSessionCollaborators(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	assert.Equal(t, 1, g.resets)
	assert.NotNil(t, g.cfg.Scores)
	assert.Same(t, m.env.Sound, g.cfg.Sound)
	assert.Equal(t, int64(1), g.cfg.Seed)
	assert.Equal(t, 9, m.screen.Height(), "last row is the footer")
}

func TestStaleTicksAreDropped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	t0 := time.Unix(1000, 0)

	m = update(t, m, TickMsg{Gen: m.gen + 1, At: t0})
	assert.Empty(t, g.inputs, "tick from another loop must not step")

	m = update(t, m, TickMsg{Gen: m.gen, At: t0})
	m = update(t, m, TickMsg{Gen: m.gen, At: t0.Add(10 * time.Millisecond)})
	update(t, m, TickMsg{Gen: m.gen, At: t0.Add(time.Second)})

	assert.Equal(t, []time.Duration{0, 10 * time.Millisecond, core.MaxStep}, g.dts)
}

func TestTickFollowsGameInterval(t *testing.T) {
	g := &fakeGame{interval: 150 * time.Millisecond}
	m := newTestModel(t, g, nil)

	_, cmd := m.Update(TickMsg{Gen: m.gen, At: time.Now()})
	require.NotNil(t, cmd, "every step schedules exactly one next tick")
}

func TestKeysQueueInArrivalOrder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyRunes(" "))
	m = update(t, m, keyRunes("5"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	update(t, m, TickMsg{Gen: m.gen, At: time.Now()})

	require.Len(t, g.inputs, 2)
	assert.Equal(t, []core.Intent{
		{Action: core.ActionJump, Cell: -1},
		{Action: core.ActionSelect, Cell: 4},
		{Action: core.ActionLeft, Cell: -1},
	}, g.inputs[0].Intents)
	assert.True(t, g.inputs[1].Empty(), "input is cleared after each step")
}

func TestSoundToggleIsHandledByPlatform(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	require.False(t, m.env.Sound.Muted())

	m = update(t, m, keyRunes("m"))
	assert.True(t, m.env.Sound.Muted())
	assert.Contains(t, m.View(), "♪ off")

	update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	for _, it := range g.inputs[0].Intents {
		assert.NotEqual(t, core.ActionToggleSound, it.Action)
	}
}

func TestQuitAndBack(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())
	update(t, back, TickMsg{Gen: m.gen, At: time.Now()})
	assert.Empty(t, g.inputs, "a left game stops ticking")

	m.standalone = true
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)

	next, _ = m.Update(keyRunes("q"))
	assert.True(t, next.(GameModel).IsQuitting())
	assert.Equal(t, "", next.View())
}

func TestFinishedRunIsRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	g := &fakeGame{overAt: 2, score: 7}
	m := newTestModel(t, g, store)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})
	}

	runs, err := store.TopScores("fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 7, runs[0].Score)
	assert.True(t, m.State().GameOver)
}

func TestViewHasFooter(t *testing.T) {
	m := newTestModel(t, &fakeGame{score: 3}, nil)
	m = update(t, m, TickMsg{Gen: m.gen, At: time.Now()})

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "fake")
	assert.Contains(t, lines[9], "score 3")
}
