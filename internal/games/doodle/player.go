package doodle

import (
	"math"

	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/world"
)

// updatePlayer moves the player, wraps it around the sides, kills it below
// the death line and bounces it off tiles it lands on.
func (g *Game) updatePlayer(dt float64) {
	p, ok := g.world.Player()
	if !ok {
		return
	}
	phys := g.cfg.Physics

	// Horizontal movement: binary speed, not accumulated.
	dir := 0.0
	if g.input.Held(core.ActionLeft) {
		dir--
		p.FacingRight = false
	}
	if g.input.Held(core.ActionRight) {
		dir++
		p.FacingRight = true
	}
	p.Pos.X += dir * phys.HorizontalSpeed * dt

	// Teleport to the opposite side.
	half := g.cfg.World.HalfWidth
	if p.Pos.X > half {
		p.Pos.X = -half
	} else if p.Pos.X < -half {
		p.Pos.X = half
	}

	p.VelY += phys.Gravity * dt
	p.Pos.Y += p.VelY * dt
	if p.Pos.Y >= phys.CeilingY {
		p.Pos.Y = phys.CeilingY
	}

	if p.Pos.Y < phys.DeathY {
		last := p.Pos
		g.world.DespawnPlayer()
		g.world.SpawnDeathMarker(core.Vec2{}, DeathText, core.ColorRed)
		g.emit(core.EventDeath, last)
		return
	}

	if p.VelY > 0 {
		return
	}
	if tile, ok := g.landingTile(p); ok {
		p.VelY = phys.LaunchVelocity
		g.emit(core.EventBounce, tile.Pos)
	}
}

// landingTile finds the tile the falling player is landing on this frame.
// A landing is the frame where the player's bottom edge has just crossed a
// tile's top edge: the vertical center distance lies in
// (halfHeightSum - band, halfHeightSum]. When several tiles qualify the one
// with the smallest horizontal offset wins, ties going to the older tile.
func (g *Game) landingTile(p *world.Player) (world.Tile, bool) {
	var (
		best  world.Tile
		bestX = math.Inf(1)
		found bool
	)
	for _, t := range g.world.Tiles() {
		sum := p.Bounds.HalfY + t.Bounds.HalfY
		yDiff := p.Pos.Y - t.Pos.Y
		xDiff := math.Abs(p.Pos.X - t.Pos.X)

		if yDiff <= sum-g.cfg.Physics.LandingBand || yDiff > sum {
			continue
		}
		if xDiff >= p.Bounds.HalfX/2+t.Bounds.HalfX {
			continue
		}
		if xDiff < bestX {
			best, bestX, found = t, xDiff, true
		}
	}
	return best, found
}
