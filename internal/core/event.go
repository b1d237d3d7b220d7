package core

// EventKind identifies something observable that happened during a frame.
type EventKind int

const (
	EventRestart     EventKind = iota // A restart command was processed
	EventBounce                       // The player landed on a tile
	EventTileSpawned                  // A tile was spawned at the spawn line
	EventDeath                        // The player fell below the death line
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRestart:
		return "restart"
	case EventBounce:
		return "bounce"
	case EventTileSpawned:
		return "tile_spawned"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Event is a single frame event. Pos is the world position it refers to
// (landing tile, spawned tile, or the player's last position).
type Event struct {
	Kind  EventKind
	Pos   Vec2
	Score float64
}

// HasEvent reports whether events contains an event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
