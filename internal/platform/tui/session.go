package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

type stage int

const (
	stageMenu stage = iota
	stageChoice
	stageGame
	stageScores
)

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// It backs both the local menu command and every SSH session.
type SessionModel struct {
	env      *Env
	config   core.RuntimeConfig
	stage    stage
	menu     MenuModel
	choice   ChoiceModel
	game     GameModel
	scores   ScoreboardModel
	notice   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env *Env, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		env:    env,
		config: cfg,
		menu:   NewMenuModel(env, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageChoice:
		return m.updateChoice(msg)
	case stageGame:
		return m.updateGame(msg)
	case stageScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.menu = m.menu.resume()
	m.menu.width, m.menu.height = m.config.ScreenW, m.config.ScreenH
	return m, nil
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.notice = ""
		m.stage = stageScores
		m.scores = NewScoreboardModel(m.env, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.notice = ""
		id := m.menu.Selected().ID
		if NeedsChoice(id, m.env.Options) {
			m.stage = stageChoice
			m.choice = NewChoiceModel(m.env, id, m.config.ScreenW, m.config.ScreenH)
			return m, m.choice.Init()
		}
		return m.startGame(id, m.env.Options)
	}

	return m, cmd
}

func (m SessionModel) updateChoice(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.choice.Update(msg)
	m.choice = next.(ChoiceModel)

	switch {
	case m.choice.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.choice.WantsBack():
		return m.toMenu()
	case m.choice.Chosen() != nil:
		opts := m.env.Options
		m.choice.Apply(&opts)
		return m.startGame(m.choice.gameID, opts)
	}
	return m, cmd
}

func (m SessionModel) startGame(id string, opts registry.Options) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id, opts)
	if err != nil {
		m.env.Logger.Error("cannot start game", "game", id, "err", err)
		m.notice = err.Error()
		return m.toMenu()
	}

	m.env.Logger.Info("game started", "game", id, "boundary", opts.Boundary, "mode", opts.Mode)
	m.stage = stageGame
	m.game = NewGameModel(game, m.env, m.config)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.env.Logger.Info("game left", "game", m.game.game.ID(), "score", m.game.State().Score)
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageChoice:
		return m.choice.View()
	case stageGame:
		return m.game.View()
	case stageScores:
		return m.scores.View()
	}

	v := m.menu.View()
	if m.notice != "" {
		v += "\n" + centerText(m.env.Palette.style(core.ColorBrightRed).Render(m.notice), m.config.ScreenW)
	}
	return v
}

// RunSession runs the menu-driven session in the current terminal.
func RunSession(env *Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
