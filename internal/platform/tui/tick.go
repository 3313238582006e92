// Package tui runs the garden in a terminal with Bubble Tea: a fixed-rate
// frame driver, key handling, a message board for the session's
// announcements, the leaderboard screen, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulation frame.
type TickMsg time.Time

// frameInterval returns the wall time between frames at fps.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// tickCmd schedules the next frame.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
