package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/serpent/internal/core"
	"github.com/avolkov/serpent/internal/engine"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key        string
		wantAction core.Action
		wantQuit   bool
	}{
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{" ", core.ActionActivate, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionReset, false},
		{"enter", core.ActionReset, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.wantAction || isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tt.key, action, isQuit, tt.wantAction, tt.wantQuit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"b", MenuActionBack},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}

func TestGestureTrackerSwipe(t *testing.T) {
	var g GestureTracker

	g.Press(10, 10)
	cmd, ok := g.Release(10, 20)
	if !ok {
		t.Fatal("release after press should produce a command")
	}
	if cmd.Kind != engine.CommandDirection || cmd.Dir != engine.DirDown {
		t.Errorf("downward drag should be a down swipe, got %+v", cmd)
	}
}

func TestGestureTrackerTap(t *testing.T) {
	var g GestureTracker

	g.Press(10, 10)
	cmd, ok := g.Release(11, 11)
	if !ok {
		t.Fatal("release after press should produce a command")
	}
	if cmd.Kind != engine.CommandActivate {
		t.Errorf("short drag should be a tap, got %+v", cmd)
	}
}

func TestGestureTrackerReleaseWithoutPress(t *testing.T) {
	var g GestureTracker

	if _, ok := g.Release(5, 5); ok {
		t.Error("release without press should not produce a command")
	}

	// A consumed gesture does not fire twice
	g.Press(0, 0)
	if _, ok := g.Release(0, 10); !ok {
		t.Fatal("first release should produce a command")
	}
	if _, ok := g.Release(0, 20); ok {
		t.Error("second release should not produce a command")
	}
}
