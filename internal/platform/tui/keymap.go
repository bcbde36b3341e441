package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/serpent/internal/core"
	"github.com/avolkov/serpent/internal/engine"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionActivate, false
	case "p", "esc":
		return core.ActionPause, false
	case "r", "enter":
		return core.ActionReset, false
	}

	return core.ActionNone, false
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
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// GestureTracker turns mouse press/release pairs into engine
// commands. A short press-release is a tap (activate); a longer drag
// is a directional swipe.
type GestureTracker struct {
	pressed bool
	startX  int
	startY  int
}

// Press records the start of a gesture at the given cell.
func (g *GestureTracker) Press(x, y int) {
	g.pressed = true
	g.startX = x
	g.startY = y
}

// Release completes a gesture and classifies it. Returns the resulting
// command and true, or a zero command and false if no press was
// recorded.
func (g *GestureTracker) Release(x, y int) (engine.Command, bool) {
	if !g.pressed {
		return engine.Command{}, false
	}
	g.pressed = false
	dx := x - g.startX
	dy := y - g.startY
	return engine.ClassifyGesture(dx, dy, engine.DefaultTapThreshold), true
}
