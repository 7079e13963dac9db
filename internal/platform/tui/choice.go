package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// Choice is one option of a pre-game selector.
type Choice struct {
	Label string
	Value string
	Hint  string
}

// chooser describes the selector shown before a game starts.
type chooser struct {
	title   string
	choices []Choice
	// preset reports whether opts already fixes the choice.
	preset func(opts registry.Options) bool
	apply  func(opts *registry.Options, value string)
}

var choosers = map[string]chooser{
	"snake": {
		title: "S N A K E",
		choices: []Choice{
			{Label: "Wrap around", Value: config.BoundaryWrap, Hint: "leave one edge, enter the opposite"},
			{Label: "Solid walls", Value: config.BoundaryWall, Hint: "touching an edge ends the run"},
		},
		preset: func(o registry.Options) bool { return o.Boundary != "" },
		apply:  func(o *registry.Options, v string) { o.Boundary = v },
	},
	"tictactoe": {
		title: "T I C - T A C - T O E",
		choices: []Choice{
			{Label: "Play vs Computer", Value: config.ModeCPU, Hint: "you are X, the computer never loses"},
			{Label: "Two Players", Value: config.ModePvP, Hint: "X and O share the keyboard"},
		},
		preset: func(o registry.Options) bool { return o.Mode != "" },
		apply:  func(o *registry.Options, v string) { o.Mode = v },
	},
}

// NeedsChoice reports whether gameID shows a selector for opts.
func NeedsChoice(gameID string, opts registry.Options) bool {
	c, ok := choosers[gameID]
	return ok && !c.preset(opts)
}

// ChoiceModel lets users pick a game variant before it starts.
type ChoiceModel struct {
	env       *Env
	gameID    string
	chooser   chooser
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    *Choice
	quitting  bool
	back      bool
}

// NewChoiceModel creates the selector for gameID. The game must have one.
func NewChoiceModel(env *Env, gameID string, width, height int) ChoiceModel {
	return ChoiceModel{
		env:       env,
		gameID:    gameID,
		chooser:   choosers[gameID],
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m ChoiceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ChoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ChoiceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.chooser.choices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		c := m.chooser.choices[m.cursor]
		m.chosen = &c
	case MenuActionBack:
		m.back = true
	}
	return m, nil
}

// View renders the selection.
func (m ChoiceModel) View() string {
	if m.quitting {
		return ""
	}
	p := m.env.Palette

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(p.Title.Render(m.chooser.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, c := range m.chooser.choices {
		line := "  " + c.Label
		if i == m.cursor {
			line = p.Cursor.Render("> " + c.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(p.Hint.Render(m.chooser.choices[m.cursor].Hint), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(p.Muted.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Apply writes the chosen value into opts. It is a no-op until a choice is made.
func (m ChoiceModel) Apply(opts *registry.Options) {
	if m.chosen != nil {
		m.chooser.apply(opts, m.chosen.Value)
	}
}

// Chosen returns the selection, or nil if still choosing.
func (m ChoiceModel) Chosen() *Choice {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m ChoiceModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ChoiceModel) WantsBack() bool {
	return m.back
}

// choiceProgram stops its program once the selector settles.
type choiceProgram struct {
	ChoiceModel
}

func (c choiceProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := c.ChoiceModel.Update(msg)
	c.ChoiceModel = next.(ChoiceModel)
	if c.chosen != nil || c.back {
		return c, tea.Quit
	}
	return c, cmd
}

// RunChoiceSelector shows the selector for gameID in its own program and
// applies the choice to opts. ok is false when the player backed out.
func RunChoiceSelector(env *Env, gameID string, cfg core.RuntimeConfig, opts *registry.Options) (ok bool, err error) {
	if !NeedsChoice(gameID, *opts) {
		return true, nil
	}

	p := tea.NewProgram(
		choiceProgram{NewChoiceModel(env, gameID, cfg.ScreenW, cfg.ScreenH)},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, isChoice := final.(choiceProgram)
	if !isChoice || m.chosen == nil {
		return false, nil
	}
	m.Apply(opts)
	return true, nil
}
