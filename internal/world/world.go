// Package world holds the entities of a running game in a small, strongly
// typed registry. Each entity kind has its own storage; every entity gets a
// stable EntityID that is never reused within a World.
package world

import "github.com/vovakirdan/tui-doodle/internal/core"

// EntityID identifies an entity for its whole lifetime. Zero is never issued.
type EntityID uint32

// Player is the bouncing character. At most one exists.
type Player struct {
	ID          EntityID
	Pos         core.Vec2
	VelY        float64 // Vertical velocity in units/second, positive is up
	Bounds      core.Box
	FacingRight bool // Mirrors the sprite horizontally
}

// Tile is a platform the player can bounce off.
type Tile struct {
	ID     EntityID
	Pos    core.Vec2
	Bounds core.Box
}

// Label is a text element anchored at a world position.
type Label struct {
	ID    EntityID
	Pos   core.Vec2
	Text  string
	Color core.Color
}

// World owns every live entity.
type World struct {
	nextID      EntityID
	player      *Player
	tiles       []Tile // Ordered by spawn (ascending ID)
	scoreLabel  *Label
	deathMarker *Label
}

// New creates an empty world.
func New() *World {
	return &World{
		tiles: make([]Tile, 0, 16),
	}
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// SpawnPlayer creates the player. An existing player is replaced, keeping the
// at-most-one invariant.
func (w *World) SpawnPlayer(pos core.Vec2, bounds core.Box) *Player {
	w.player = &Player{
		ID:     w.allocID(),
		Pos:    pos,
		Bounds: bounds,
	}
	return w.player
}

// Player returns the player if one exists.
func (w *World) Player() (*Player, bool) {
	return w.player, w.player != nil
}

// DespawnPlayer removes the player if present.
func (w *World) DespawnPlayer() {
	w.player = nil
}

// SpawnTile adds a tile and returns its ID.
func (w *World) SpawnTile(pos core.Vec2, bounds core.Box) EntityID {
	id := w.allocID()
	w.tiles = append(w.tiles, Tile{ID: id, Pos: pos, Bounds: bounds})
	return id
}

// Tiles returns the live tiles in spawn order. The slice aliases world
// storage: element mutation is allowed, structural changes are not.
func (w *World) Tiles() []Tile {
	return w.tiles
}

// TileCount returns the number of live tiles.
func (w *World) TileCount() int {
	return len(w.tiles)
}

// RetainTiles keeps only tiles for which keep returns true. keep may mutate
// the tile it is given; mutations of retained tiles are stored. Returns the
// number of tiles removed.
func (w *World) RetainTiles(keep func(t *Tile) bool) int {
	kept := w.tiles[:0]
	removed := 0
	for i := range w.tiles {
		t := w.tiles[i]
		if keep(&t) {
			kept = append(kept, t)
		} else {
			removed++
		}
	}
	// Drop references past the new length.
	for i := len(kept); i < len(w.tiles); i++ {
		w.tiles[i] = Tile{}
	}
	w.tiles = kept
	return removed
}

// DespawnTiles removes every tile.
func (w *World) DespawnTiles() {
	w.tiles = w.tiles[:0]
}

// SpawnScoreLabel creates the score label. It is expected to exist for the
// rest of the world's life.
func (w *World) SpawnScoreLabel(pos core.Vec2, text string, color core.Color) *Label {
	w.scoreLabel = &Label{ID: w.allocID(), Pos: pos, Text: text, Color: color}
	return w.scoreLabel
}

// ScoreLabel returns the score label if it has been created.
func (w *World) ScoreLabel() (*Label, bool) {
	return w.scoreLabel, w.scoreLabel != nil
}

// SpawnDeathMarker shows the death overlay, replacing any existing one.
func (w *World) SpawnDeathMarker(pos core.Vec2, text string, color core.Color) *Label {
	w.deathMarker = &Label{ID: w.allocID(), Pos: pos, Text: text, Color: color}
	return w.deathMarker
}

// DeathMarker returns the death overlay if present.
func (w *World) DeathMarker() (*Label, bool) {
	return w.deathMarker, w.deathMarker != nil
}

// DespawnDeathMarker removes the death overlay if present.
func (w *World) DespawnDeathMarker() {
	w.deathMarker = nil
}
