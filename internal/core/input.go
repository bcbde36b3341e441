package core

// Action represents a semantic input event, abstracted from physical
// key presses and mouse gestures. The platform translates raw input
// into these; the engine's command mapper consumes them.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - request direction up
	ActionDown            // S, Down arrow - request direction down
	ActionLeft            // A, Left arrow - request direction left
	ActionRight           // D, Right arrow - request direction right
	ActionActivate        // Space/tap - start, pause/resume, restart depending on phase
	ActionPause           // P, Escape - pause/unpause
	ActionReset           // R, Enter - restart after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
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
	case ActionActivate:
		return "Activate"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
