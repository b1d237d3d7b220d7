package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left while held
	ActionRight          // D, Right arrow - move right while held
	ActionRestart        // R - restart the run (edge-triggered)
	ActionPause          // P, Esc - pause/unpause
	ActionDebug          // F1, backquote - toggle bounding box overlay
	ActionUp             // W, Up arrow, k - menu navigation
	ActionDown           // S, Down arrow, j - menu navigation
	ActionConfirm        // Enter, Space - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held down during one frame.
// It is level-triggered: an action stays set for every frame its key is held.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputTracker derives one-shot triggers from level-triggered frames by
// remembering which actions were held on the previous frame.
type InputTracker struct {
	prev InputFrame
	curr InputFrame
}

// NewInputTracker creates a tracker with nothing held.
func NewInputTracker() *InputTracker {
	return &InputTracker{
		prev: NewInputFrame(),
		curr: NewInputFrame(),
	}
}

// Update advances the tracker to the given frame.
// Call exactly once per frame before querying.
func (t *InputTracker) Update(frame InputFrame) {
	t.prev = t.curr
	t.curr = frame.Clone()
}

// Held reports whether the action is held on the current frame.
func (t *InputTracker) Held(a Action) bool {
	return t.curr.Has(a)
}

// JustPressed reports whether the action is held now but was not held
// on the previous frame.
func (t *InputTracker) JustPressed(a Action) bool {
	return t.curr.Has(a) && !t.prev.Has(a)
}

// Reset forgets all history so every held action counts as a fresh press.
func (t *InputTracker) Reset() {
	t.prev = NewInputFrame()
	t.curr = NewInputFrame()
}
