// Package tui runs games under Bubble Tea: the frame loop, key bindings,
// the variant menu and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one platform frame.
type TickMsg time.Time

// tickCmd schedules the next frame after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
