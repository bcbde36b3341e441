package engine

import (
	"github.com/avolkov/serpent/internal/core"
)

// CommandKind classifies an input command.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandDirection
	CommandActivate
	CommandPauseResume
	CommandReset
)

// Command is the engine's input vocabulary. Raw keyboard scan codes,
// mouse gestures and button taps are all translated upstream into
// these.
type Command struct {
	Kind CommandKind
	Dir  Direction // Only meaningful for CommandDirection
}

// DirectionCommand requests a direction change.
func DirectionCommand(d Direction) Command {
	return Command{Kind: CommandDirection, Dir: d}
}

// ActivateCommand is the generic start/pause/restart control
// (spacebar or tap); its effect depends on the current phase.
func ActivateCommand() Command { return Command{Kind: CommandActivate} }

// PauseResumeCommand toggles between Active and Paused.
func PauseResumeCommand() Command { return Command{Kind: CommandPauseResume} }

// ResetCommand returns the engine to a fresh Idle state.
func ResetCommand() Command { return Command{Kind: CommandReset} }

// Apply runs one command through the phase state machine.
// Out-of-phase commands are silently ignored.
func (e *Engine) Apply(cmd Command) {
	switch e.phase {
	case PhaseIdle:
		switch cmd.Kind {
		case CommandDirection:
			e.requestDirection(cmd.Dir)
			e.activate()
		case CommandActivate:
			e.activate()
		case CommandReset:
			e.Reset()
		}

	case PhaseActive:
		switch cmd.Kind {
		case CommandDirection:
			e.requestDirection(cmd.Dir)
		case CommandActivate, CommandPauseResume:
			e.pause()
		case CommandReset:
			e.Reset()
		}

	case PhasePaused:
		switch cmd.Kind {
		case CommandActivate, CommandPauseResume:
			e.activate()
		case CommandReset:
			e.Reset()
		}
		// Direction inputs are ignored while paused.

	case PhaseTerminated:
		switch cmd.Kind {
		case CommandActivate, CommandReset:
			e.Reset()
		}
		// Everything else is ignored until restart.
	}
}

// requestDirection updates the pending direction unless the request
// reverses the facing direction. The filter compares against facing,
// not pending, so a queued turn cannot be laundered into a reversal
// by rapid double-input.
func (e *Engine) requestDirection(d Direction) {
	if d == e.facing.Opposite() {
		return
	}
	e.pending = d
}

// CommandForAction translates a platform action into an engine
// command. Unmapped actions yield CommandNone.
func CommandForAction(a core.Action) Command {
	switch a {
	case core.ActionUp:
		return DirectionCommand(DirUp)
	case core.ActionDown:
		return DirectionCommand(DirDown)
	case core.ActionLeft:
		return DirectionCommand(DirLeft)
	case core.ActionRight:
		return DirectionCommand(DirRight)
	case core.ActionActivate:
		return ActivateCommand()
	case core.ActionPause:
		return PauseResumeCommand()
	case core.ActionReset:
		return ResetCommand()
	}
	return Command{Kind: CommandNone}
}

// DefaultTapThreshold is the drag distance, in screen cells, below
// which a gesture counts as a tap rather than a directional swipe.
const DefaultTapThreshold = 3

// ClassifyGesture maps a press-to-release drag vector to a command.
// Short drags are taps (activate); otherwise the axis with the larger
// absolute delta wins, and an exact tie resolves to the vertical
// axis.
func ClassifyGesture(dx, dy, tapThreshold int) Command {
	if core.Abs(dx) < tapThreshold && core.Abs(dy) < tapThreshold {
		return ActivateCommand()
	}
	if core.Abs(dy) >= core.Abs(dx) {
		if dy < 0 {
			return DirectionCommand(DirUp)
		}
		return DirectionCommand(DirDown)
	}
	if dx < 0 {
		return DirectionCommand(DirLeft)
	}
	return DirectionCommand(DirRight)
}
