package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/serpent/internal/config"
	"github.com/avolkov/serpent/internal/engine"
)

func newTestModel(t *testing.T) GameModel {
	t.Helper()
	return NewGameModel(nil, config.Default(), 1, 80, 24)
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	gm, ok := newModel.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", newModel)
	}
	return gm, cmd
}

func TestDirectionKeyStartsGame(t *testing.T) {
	m := newTestModel(t)

	if m.eng.Phase() != engine.PhaseIdle {
		t.Fatalf("fresh model should be idle, got %v", m.eng.Phase())
	}

	m, cmd := update(t, m, keyMsg("w"))
	if m.eng.Phase() != engine.PhaseActive {
		t.Errorf("direction key should activate, got %v", m.eng.Phase())
	}
	if cmd == nil {
		t.Error("activation should arm a tick")
	}
}

func TestTickStepsEngine(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg(" "))

	handle := m.eng.Scheduler().Handle()
	before := m.eng.Snapshot().Tick

	m, cmd := update(t, m, TickMsg{Handle: handle, At: time.Now()})
	if got := m.eng.Snapshot().Tick; got != before+1 {
		t.Errorf("valid tick should step once, tick = %d, expected %d", got, before+1)
	}
	if cmd == nil {
		t.Error("a surviving game should re-arm the tick")
	}
}

func TestStaleTickDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg(" "))

	staleHandle := m.eng.Scheduler().Handle()

	// Pausing invalidates the in-flight tick
	m, _ = update(t, m, keyMsg("p"))
	if m.eng.Phase() != engine.PhasePaused {
		t.Fatalf("pause key should pause, got %v", m.eng.Phase())
	}

	before := m.eng.Snapshot()
	m, cmd := update(t, m, TickMsg{Handle: staleHandle, At: time.Now()})
	if m.eng.Snapshot() != before {
		t.Error("stale tick must not step the engine")
	}
	if cmd != nil {
		t.Error("stale tick must not re-arm")
	}
}

func TestResumeArmsFreshHandle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyMsg(" "))
	staleHandle := m.eng.Scheduler().Handle()

	m, _ = update(t, m, keyMsg("p"))
	m, cmd := update(t, m, keyMsg(" "))

	if m.eng.Phase() != engine.PhaseActive {
		t.Fatalf("space should resume, got %v", m.eng.Phase())
	}
	if cmd == nil {
		t.Error("resume should arm a tick")
	}
	if m.eng.Scheduler().Handle() == staleHandle {
		t.Error("resume should issue a fresh handle")
	}
	if m.eng.Scheduler().Valid(staleHandle) {
		t.Error("pre-pause handle should stay invalid after resume")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, keyMsg("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should produce a command")
	}
}

func TestConfigReloadChangesPeriod(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, ConfigReloadMsg{TickPeriod: 50 * time.Millisecond, Theme: "neon"})
	if got := m.eng.Scheduler().Period(); got != 50*time.Millisecond {
		t.Errorf("reload should change tick period, got %v", got)
	}
	if m.renderer.Theme().Name != "neon" {
		t.Errorf("reload should change theme, got %q", m.renderer.Theme().Name)
	}
}

func TestSwipeControlsGame(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionRelease})

	if m.eng.Phase() != engine.PhaseActive {
		t.Errorf("swipe should activate the game, got %v", m.eng.Phase())
	}
	if m.eng.Pending() != engine.DirRight {
		t.Errorf("rightward swipe should queue right, got %v", m.eng.Pending())
	}
}
