// Package tui hosts the runner in a terminal with Bubble Tea: the tick
// loop, input mapping, character rendering, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the frame timestamp that drives one simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame
// interval at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
