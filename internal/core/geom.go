// Package core provides fundamental types and utilities for the game hosts.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Vec2 is a point or displacement in world units.
// World space is y-up with the origin at the center of the playfield.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned bounding box described by its half extents,
// centered on whatever position it is attached to.
type Box struct {
	HalfX, HalfY float64
}

// Width returns the full width of the box.
func (b Box) Width() float64 {
	return b.HalfX * 2
}

// Height returns the full height of the box.
func (b Box) Height() float64 {
	return b.HalfY * 2
}

// Bounds returns the min and max corners of the box centered at pos.
func (b Box) Bounds(pos Vec2) (min, max Vec2) {
	return Vec2{X: pos.X - b.HalfX, Y: pos.Y - b.HalfY},
		Vec2{X: pos.X + b.HalfX, Y: pos.Y + b.HalfY}
}

// Rect represents an integer cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
