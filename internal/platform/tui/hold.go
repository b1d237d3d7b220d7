package tui

import (
	"time"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// HoldTracker turns a stream of key presses into held-key state.
// Terminals report presses and auto-repeats but never releases, so an action
// counts as held until window has passed since its last press.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now. Pressing one direction releases the
// opposite one, since the terminal stops repeating a key once another is hit.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
	}
	h.lastSeen[a] = now
}

// Frame returns the actions held at now and forgets expired ones.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.lastSeen {
		if now.Sub(t) > h.window {
			delete(h.lastSeen, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.lastSeen)
}
