package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platform code maps keys to actions; the round controller only sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow
	ActionMoveRight        // Right arrow
	ActionRotate           // Up arrow
	ActionForceDown        // Down arrow - hard drop
	ActionQuit             // Ctrl+Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotate:
		return "Rotate"
	case ActionForceDown:
		return "ForceDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the folded input of one sub-frame.
// Several signals can be active at once, so it is a record of flags
// rather than a single action.
type InputFrame struct {
	Move      int // -1 left, 0 none, +1 right
	Rotate    bool
	ForceDown bool
	Quit      bool
}

// FoldActions collapses a batch of polled actions into one frame.
// The last horizontal move in the batch wins; the other flags accumulate.
func FoldActions(actions []Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set applies a single action to the frame.
func (f *InputFrame) Set(a Action) {
	switch a {
	case ActionMoveLeft:
		f.Move = -1
	case ActionMoveRight:
		f.Move = 1
	case ActionRotate:
		f.Rotate = true
	case ActionForceDown:
		f.ForceDown = true
	case ActionQuit:
		f.Quit = true
	}
}

// Changed reports whether the frame requests a horizontal move or rotation,
// i.e. whether the active piece may be drawn somewhere new.
func (f InputFrame) Changed() bool {
	return f.Move != 0 || f.Rotate
}
