// Package tui provides the Bubble Tea platform layer for the snake
// core: fixed-rate ticking, key-to-event mapping, and rendering of
// frame snapshots. The simulation itself lives in internal/game and
// never sees this package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate in ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
