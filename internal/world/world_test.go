package world

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

var tileBox = core.Box{HalfX: 30, HalfY: 10}

func TestSpawnPlayerReplacesExisting(t *testing.T) {
	w := New()
	first := w.SpawnPlayer(core.Vec2{X: 1}, core.Box{HalfX: 20, HalfY: 30})
	second := w.SpawnPlayer(core.Vec2{X: 2}, core.Box{HalfX: 20, HalfY: 30})

	p, ok := w.Player()
	if !ok {
		t.Fatal("player should exist")
	}
	if p != second || p.ID == first.ID {
		t.Error("second spawn should replace the first player with a new ID")
	}

	w.DespawnPlayer()
	if _, ok := w.Player(); ok {
		t.Error("player should be gone after DespawnPlayer")
	}
}

func TestIDsAreStableAndUnique(t *testing.T) {
	w := New()
	seen := make(map[EntityID]bool)
	for i := 0; i < 10; i++ {
		id := w.SpawnTile(core.Vec2{Y: float64(i)}, tileBox)
		if id == 0 {
			t.Fatal("zero ID issued")
		}
		if seen[id] {
			t.Fatalf("ID %d issued twice", id)
		}
		seen[id] = true
	}

	w.DespawnTiles()
	id := w.SpawnTile(core.Vec2{}, tileBox)
	if seen[id] {
		t.Error("IDs must not be reused after despawn")
	}
}

func TestRetainTiles(t *testing.T) {
	w := New()
	for i := 0; i < 5; i++ {
		w.SpawnTile(core.Vec2{Y: float64(i * 100)}, tileBox)
	}

	removed := w.RetainTiles(func(tl *Tile) bool {
		tl.Pos.Y -= 150
		return tl.Pos.Y >= 0
	})

	if removed != 2 {
		t.Errorf("removed = %d, expected 2", removed)
	}
	tiles := w.Tiles()
	if len(tiles) != 3 {
		t.Fatalf("len(tiles) = %d, expected 3", len(tiles))
	}
	for i, want := range []float64{50, 150, 250} {
		if tiles[i].Pos.Y != want {
			t.Errorf("tile %d y = %v, expected %v", i, tiles[i].Pos.Y, want)
		}
	}
	for i := 1; i < len(tiles); i++ {
		if tiles[i].ID <= tiles[i-1].ID {
			t.Error("tiles should stay in spawn order")
		}
	}
}

func TestLabels(t *testing.T) {
	w := New()
	if _, ok := w.ScoreLabel(); ok {
		t.Error("new world should have no score label")
	}

	w.SpawnScoreLabel(core.Vec2{X: -90, Y: 240}, "Score: 0", core.ColorBlack)
	label, ok := w.ScoreLabel()
	if !ok || label.Text != "Score: 0" {
		t.Errorf("score label = %+v, %v", label, ok)
	}

	w.SpawnDeathMarker(core.Vec2{}, "dead", core.ColorRed)
	if _, ok := w.DeathMarker(); !ok {
		t.Error("death marker should exist")
	}
	w.DespawnDeathMarker()
	if _, ok := w.DeathMarker(); ok {
		t.Error("death marker should be gone")
	}
}
