// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game model with the same generation to advance.
// Ticks carrying any other generation belong to a torn-down loop and are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickGen hands out loop generations; unique across all sessions in the process.
var tickGen atomic.Uint64

func nextGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules one tick after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
