// Package tui hosts the game in a terminal with Bubble Tea.
// It handles the frame loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks, clamped to
// [0, maxDT]. The first frame has no previous tick and uses one tick interval.
func frameDelta(prev, now time.Time, tickRate int, maxDT float64) float64 {
	var dt float64
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		dt = 1 / float64(tickRate)
	} else {
		dt = now.Sub(prev).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if maxDT > 0 && dt > maxDT {
		dt = maxDT
	}
	return dt
}
