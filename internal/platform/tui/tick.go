// Package tui provides the Bubble Tea integration for the Chomp arcade
// platform: the terminal loop, input mapping, score screens and the SSH
// frontend.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one fixed-rate simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick message at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
