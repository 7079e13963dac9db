package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - also flaps and jumps
	ActionDown               // S, Down arrow
	ActionLeft               // A, Left arrow
	ActionRight              // D, Right arrow
	ActionJump               // Space, mouse press in runners - flap or jump
	ActionConfirm            // Enter - confirm selection / place at cursor
	ActionSelect             // 1-9 or mouse click on a board cell, carries Intent.Cell
	ActionToggleSound        // M
	ActionToggleMode         // T - two players / vs CPU
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key
	ActionQuit               // Q, Ctrl+C
	ActionPause              // P
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionSelect:
		return "Select"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Intent is one action as it arrived from the player.
type Intent struct {
	Action Action
	Cell   int // board cell for ActionSelect, -1 otherwise
}

// InputFrame holds the intents collected between two simulation steps,
// in arrival order.
type InputFrame struct {
	Intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the frame.
func (f *InputFrame) Set(a Action) {
	f.Intents = append(f.Intents, Intent{Action: a, Cell: -1})
}

// Select appends a cell selection to the frame.
func (f *InputFrame) Select(cell int) {
	f.Intents = append(f.Intents, Intent{Action: ActionSelect, Cell: cell})
}

// Empty reports whether nothing arrived this frame.
func (f InputFrame) Empty() bool {
	return len(f.Intents) == 0
}

// Clear resets the frame for the next step, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Intents = f.Intents[:0]
}
