package doodle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Rendering characters
const (
	TileChar       = '▀'
	PlayerBodyChar = '█'
	PlayerEyeRight = '▶'
	PlayerEyeLeft  = '◀'
	WallChar       = '│'
	DebugChar      = '·'
	DebugCenter    = '+'
)

// hudText lists the controls on the top row.
const hudText = " ←/→ move  R restart  P pause  ` debug  Q quit"

// Render draws the world into dst. Row 0 is the HUD; the playfield keeps the
// world's aspect ratio and is centered below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, hudText, core.ColorGray)
	if g.debug {
		stats := fmt.Sprintf(" tiles %d ", g.world.TileCount())
		dst.DrawText(max(dst.Width()-len(stats), 0), 0, stats)
	}

	wc := g.cfg.World
	vp := core.FitViewport(dst.Width(), dst.Height(), 1, wc.HalfWidth*2, wc.HalfHeight*2)
	g.drawWalls(dst, vp)

	for _, t := range g.world.Tiles() {
		r := clip(vp.BoxToRect(t.Bounds, t.Pos), vp.Area)
		dst.DrawRect(r, TileChar, core.ColorGreen)
		if g.debug {
			g.drawBounds(dst, vp, t.Bounds, t.Pos)
		}
	}

	if p, ok := g.world.Player(); ok {
		r := clip(vp.BoxToRect(p.Bounds, p.Pos), vp.Area)
		dst.DrawRect(r, PlayerBodyChar, core.ColorYellow)
		if r.W > 0 && r.H > 0 {
			// Eye on the side the player faces.
			eye, ex := PlayerEyeLeft, r.X
			if p.FacingRight {
				eye, ex = PlayerEyeRight, r.Right()-1
			}
			dst.SetColored(ex, r.Y, eye, core.ColorYellow)
		}
		if g.debug {
			g.drawBounds(dst, vp, p.Bounds, p.Pos)
		}
	}

	if label, ok := g.world.ScoreLabel(); ok {
		x, y := vp.ToCell(label.Pos)
		y = core.Clamp(y, vp.Area.Y, vp.Area.Bottom()-1)
		x = core.Clamp(x, vp.Area.X, core.Max(vp.Area.Right()-len(label.Text), vp.Area.X))
		// Black is unreadable on most terminals; the window host uses it as is.
		dst.DrawTextColored(x, y, label.Text, core.ColorBrightYellow)
	}

	if marker, ok := g.world.DeathMarker(); ok {
		drawMessage(dst, vp, strings.Split(marker.Text, "\n"), marker.Color)
	} else if g.paused {
		drawMessage(dst, vp, []string{"PAUSED", "Press P to resume"}, core.ColorCyan)
	}
}

// drawWalls marks the playfield edges when there is room beside it.
func (g *Game) drawWalls(dst *core.Screen, vp core.Viewport) {
	for y := vp.Area.Y; y < vp.Area.Bottom(); y++ {
		dst.SetColored(vp.Area.X-1, y, WallChar, core.ColorGray)
		dst.SetColored(vp.Area.Right(), y, WallChar, core.ColorGray)
	}
}

// drawBounds outlines a bounding box for the debug overlay.
func (g *Game) drawBounds(dst *core.Screen, vp core.Viewport, b core.Box, pos core.Vec2) {
	r := vp.BoxToRect(b, pos)
	if r.W >= 2 && r.H >= 2 {
		dst.DrawBox(clip(r, vp.Area), core.ColorMagenta)
	} else {
		dst.DrawRect(clip(r, vp.Area), DebugChar, core.ColorMagenta)
	}
	if x, y := vp.ToCell(pos); vp.Visible(x, y) {
		dst.SetColored(x, y, DebugCenter, core.ColorMagenta)
	}
}

// drawMessage draws lines in a box centered on the playfield.
func drawMessage(dst *core.Screen, vp core.Viewport, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := vp.Area.X + (vp.Area.W-boxW)/2
	boxY := vp.Area.Y + (vp.Area.H-boxH)/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, c)
	}
}

// clip returns the part of r inside area. The result may be empty.
func clip(r, area core.Rect) core.Rect {
	x0 := core.Max(r.X, area.X)
	y0 := core.Max(r.Y, area.Y)
	x1 := core.Min(r.Right(), area.Right())
	y1 := core.Min(r.Bottom(), area.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 0), core.Max(y1-y0, 0))
}
