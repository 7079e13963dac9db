package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// GameModel is the Bubble Tea model running one game.
type GameModel struct {
	env        *Env
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	clock      *core.FrameClock
	gen        uint64
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel resets game for cfg and wraps it in a model.
func NewGameModel(game registry.Game, env *Env, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = env.runtime(cfg)
	game.Reset(cfg)

	return GameModel{
		env:       env,
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:    cfg,
		clock:     &core.FrameClock{},
		gen:       nextGen(),
		gameState: game.State(),
		keyMapper: NewKeyMapper(),
	}
}

// The last terminal row belongs to the footer.
func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.gen, m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if in, ok := m.keyMapper.MapMouse(msg, m.game); ok {
			m.queue(in)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

func (m *GameModel) queue(in core.Intent) {
	if in.Action == core.ActionSelect {
		m.inputFrame.Select(in.Cell)
		return
	}
	m.inputFrame.Set(in.Action)
}

// handleKey processes keyboard input. Platform actions are handled here;
// everything else is queued for the next step.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in, ok := m.keyMapper.MapKey(msg)
	if !ok {
		return m, nil
	}

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		m.gen = 0
		return m, tea.Quit
	case core.ActionBack:
		m.gen = 0
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case core.ActionToggleSound:
		muted := m.env.Sound.Toggle()
		m.env.Logger.Debug("sound toggled", "muted", muted)
		return m, nil
	}

	m.queue(in)
	return m, nil
}

// handleTick advances the game by the measured frame time and schedules
// the next tick at the game's current interval.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Tick(now)
	prev := m.gameState

	result := m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.NewBest {
		m.env.Logger.Info("new best", "game", m.game.ID(), "score", m.gameState.Score)
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.recordRun()
	}

	return m, tickCmd(m.gen, m.game.TickInterval())
}

// recordRun appends a finished run to the history. Best effort.
func (m GameModel) recordRun() {
	score := m.gameState.Score
	if score <= 0 || m.env.Store == nil {
		return
	}
	if _, err := m.env.Store.SaveScore(m.game.ID(), score); err != nil {
		m.env.Logger.Warn("cannot record run", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.env.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.env.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.env.Logger.Info("screenshot saved", "path", path)
}

// View renders the game and the footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.env.Palette.RenderScreen(m.screen) + "\n" + m.footer()
}

func (m GameModel) footer() string {
	sound := "♪ on"
	if m.env.Sound.Muted() {
		sound = "♪ off"
	}
	state := ""
	if m.gameState.Paused {
		state = "  PAUSED"
	}
	back := "esc menu"
	if m.standalone {
		back = "esc quit"
	}

	text := fmt.Sprintf(" %s  score %d  best %d  %s%s  │ m sound · p pause · r restart · %s · q quit",
		m.game.Title(), m.gameState.Score, m.gameState.Best, sound, state, back)
	if r := []rune(text); len(r) > m.config.ScreenW {
		text = string(r[:core.Max(m.config.ScreenW, 0)])
	}
	return m.env.Palette.Footer.Width(m.config.ScreenW).Render(text)
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the current terminal until the player quits.
func Run(game registry.Game, env *Env, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, env, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
