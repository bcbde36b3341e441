// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, rendering, and the
// SSH serving mode.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/serpent/internal/engine"
)

// TickMsg is sent to trigger a simulation step. It carries the
// scheduler handle that was current when the tick was armed; the model
// drops the message if the handle has since been invalidated, so a
// pause or game over never lets an in-flight tick step the engine.
type TickMsg struct {
	Handle engine.TickHandle
	At     time.Time
}

// tickCmd returns a Bubble Tea command that delivers one tick after
// the given period, tagged with the scheduler handle.
func tickCmd(period time.Duration, handle engine.TickHandle) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Handle: handle, At: t}
	})
}

// ConfigReloadMsg is sent into the program when the watched config
// file changes on disk.
type ConfigReloadMsg struct {
	TickPeriod time.Duration
	Theme      string
}
