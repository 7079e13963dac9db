package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an intent.
// ok is false for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Intent, ok bool) {
	key := msg.String()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.Intent{Action: core.ActionSelect, Cell: int(key[0] - '1')}, true
	}

	a := core.ActionNone
	switch key {
	case "ctrl+c", "q":
		a = core.ActionQuit
	case "w", "up":
		a = core.ActionUp
	case "s", "down":
		a = core.ActionDown
	case "a", "left":
		a = core.ActionLeft
	case "d", "right":
		a = core.ActionRight
	case " ":
		a = core.ActionJump
	case "enter":
		a = core.ActionConfirm
	case "b", "esc":
		a = core.ActionBack
	case "p":
		a = core.ActionPause
	case "r":
		a = core.ActionRestart
	case "m":
		a = core.ActionToggleSound
	case "t":
		a = core.ActionToggleMode
	}
	if a == core.ActionNone {
		return core.Intent{}, false
	}
	return core.Intent{Action: a, Cell: -1}, true
}

// MapMouse translates a left-button press. Games that can pick a cell get a
// selection; the rest get a jump.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, game registry.Game) (core.Intent, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Intent{}, false
	}
	if picker, ok := game.(registry.CellPicker); ok {
		cell, hit := picker.CellAt(msg.X, msg.Y)
		if !hit {
			return core.Intent{}, false
		}
		return core.Intent{Action: core.ActionSelect, Cell: cell}, true
	}
	return core.Intent{Action: core.ActionJump, Cell: -1}, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
