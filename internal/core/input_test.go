package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should hold nothing")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set should mark the action as held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should release all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputTrackerJustPressed(t *testing.T) {
	tr := NewInputTracker()
	held := NewInputFrame()
	held.Set(ActionRestart)
	none := NewInputFrame()

	steps := []struct {
		frame InputFrame
		just  bool
		held  bool
	}{
		{held, true, true},  // press
		{held, false, true}, // still held
		{held, false, true},
		{none, false, false}, // release
		{held, true, true},   // press again
	}

	for i, s := range steps {
		tr.Update(s.frame)
		if got := tr.JustPressed(ActionRestart); got != s.just {
			t.Errorf("frame %d: JustPressed = %v, expected %v", i, got, s.just)
		}
		if got := tr.Held(ActionRestart); got != s.held {
			t.Errorf("frame %d: Held = %v, expected %v", i, got, s.held)
		}
	}
}

func TestInputTrackerIgnoresLaterMutation(t *testing.T) {
	tr := NewInputTracker()
	f := NewInputFrame()
	f.Set(ActionPause)
	tr.Update(f)

	// Hosts reuse frames; the tracker must keep its own copy.
	f.Clear()
	if !tr.Held(ActionPause) {
		t.Error("tracker state changed when the caller cleared its frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}
