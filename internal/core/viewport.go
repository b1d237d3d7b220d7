package core

import "math"

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps a rectangular region of world space onto a block of screen
// cells. World y grows upward; screen rows grow downward.
type Viewport struct {
	Area Rect // Cells covered by the playfield

	minX, maxY float64 // World coordinates of the top-left corner
	scaleX     float64 // Cells per world unit, horizontally
	scaleY     float64 // Cells per world unit, vertically
}

// FitViewport returns the largest playfield with the world's aspect ratio that
// fits in a screen of w x h cells below topRows reserved rows, centered
// horizontally. worldW and worldH are the world extents centered on the origin.
func FitViewport(w, h, topRows int, worldW, worldH float64) Viewport {
	availH := Max(h-topRows, 1)
	availW := Max(w, 1)

	// Cells are taller than wide, so a square world region needs
	// CellAspect times more columns than rows.
	cols := int(math.Round(float64(availH) * worldW / worldH * CellAspect))
	rows := availH
	if cols > availW {
		cols = availW
		rows = Max(int(math.Round(float64(cols)*worldH/worldW/CellAspect)), 1)
	}
	cols = Max(cols, 1)

	area := NewRect((availW-cols)/2, topRows, cols, rows)
	return Viewport{
		Area:   area,
		minX:   -worldW / 2,
		maxY:   worldH / 2,
		scaleX: float64(cols) / worldW,
		scaleY: float64(rows) / worldH,
	}
}

// ToCell converts a world point to a screen cell.
func (v Viewport) ToCell(p Vec2) (int, int) {
	cx := int(math.Floor((p.X - v.minX) * v.scaleX))
	cy := int(math.Floor((v.maxY - p.Y) * v.scaleY))
	return v.Area.X + cx, v.Area.Y + cy
}

// BoxToRect converts a world box centered at pos to the covered cells.
// The result is at least one cell in each dimension.
func (v Viewport) BoxToRect(b Box, pos Vec2) Rect {
	min, max := b.Bounds(pos)
	x0 := v.Area.X + int(math.Floor((min.X-v.minX)*v.scaleX))
	x1 := v.Area.X + int(math.Ceil((max.X-v.minX)*v.scaleX))
	y0 := v.Area.Y + int(math.Floor((v.maxY-max.Y)*v.scaleY))
	y1 := v.Area.Y + int(math.Ceil((v.maxY-min.Y)*v.scaleY))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Visible reports whether the cell lies inside the playfield.
func (v Viewport) Visible(x, y int) bool {
	return v.Area.Contains(x, y)
}
