// Package tui is the Bubble Tea front end of maze-escape: it maps keys to
// session events, draws the maze and menus into a core.Screen, and serves the
// same model to local terminals and SSH clients.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the live timer and the credits scroll.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
