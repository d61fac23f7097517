// Package tui provides the Bubble Tea integration for krida.
// It handles the terminal UI loop, input mapping, and generation timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when an update delay interval has elapsed.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after delay.
// The model reschedules on every tick, reading the engine's current delay,
// so there is a single chain and at most one advance per interval.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
