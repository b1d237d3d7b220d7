package doodle

import "github.com/vovakirdan/tui-doodle/internal/core"

// restart returns every piece of mutable run state to its initial value.
// The next-tile gap is deliberately left alone; only boot draws it.
func (g *Game) restart() {
	w := g.world
	w.DespawnPlayer()
	w.DespawnTiles()

	start := core.Vec2{X: g.cfg.Spawn.PlayerX, Y: g.cfg.Spawn.PlayerY}
	w.SpawnPlayer(start, g.playerBox())

	// One tile directly under the player, then a column of random ones.
	y := g.cfg.Spawn.FirstTileY
	w.SpawnTile(core.Vec2{X: start.X, Y: y}, g.tileBox())
	bound := g.cfg.World.TileBoundary
	for i := 0; i < g.cfg.Spawn.InitialTiles; i++ {
		y += g.cfg.Spawn.InitialSpacing
		w.SpawnTile(core.Vec2{X: g.uniformClosed(-bound, bound), Y: y}, g.tileBox())
	}

	g.score = 0
	if label, ok := w.ScoreLabel(); ok {
		label.Text = "Score: 0"
	}
	w.DespawnDeathMarker()

	g.paused = false
	g.restartPending = false
	g.emit(core.EventRestart, start)
}

func (g *Game) playerBox() core.Box {
	return core.Box{HalfX: g.cfg.Player.HalfWidth, HalfY: g.cfg.Player.HalfHeight}
}

func (g *Game) tileBox() core.Box {
	return core.Box{HalfX: g.cfg.Tile.HalfWidth, HalfY: g.cfg.Tile.HalfHeight}
}
