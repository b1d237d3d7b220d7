package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/world"
)

// updateTiles scrolls the world down while the player rises, drops tiles
// that left the bottom of the screen and spawns a new tile at the spawn line
// once the tallest remaining tile is far enough below it.
func (g *Game) updateTiles(dt float64) {
	if !g.ascending() {
		return
	}
	p, _ := g.world.Player()
	wc := g.cfg.World

	shift := p.VelY * dt
	maxHeight := wc.MaxHeightFloor
	g.world.RetainTiles(func(t *world.Tile) bool {
		y := t.Pos.Y - shift
		if y < wc.DespawnY {
			return false
		}
		if y > maxHeight {
			maxHeight = y
		}
		t.Pos.Y = y
		return true
	})

	if wc.SpawnLineY-maxHeight >= g.nextTileGap {
		pos := core.Vec2{
			X: g.uniformClosed(-wc.TileBoundary, wc.TileBoundary),
			Y: wc.SpawnLineY,
		}
		g.world.SpawnTile(pos, g.tileBox())
		g.nextTileGap = g.uniformClosed(g.cfg.Spawn.GapMin, g.cfg.Spawn.GapMax)
		g.emit(core.EventTileSpawned, pos)
	}
}

// ascending reports whether the player exists, is not falling and is high
// enough for the camera to follow it.
func (g *Game) ascending() bool {
	p, ok := g.world.Player()
	if !ok {
		return false
	}
	return p.Pos.Y >= g.cfg.World.ScrollMinPlayerY && p.VelY >= 0
}
