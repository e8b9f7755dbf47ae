// Package core provides fundamental types and utilities shared by the game
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Rect is an integer axis-aligned rectangle in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world units.
// Edges are stored directly because collision tests compare edges, not sizes.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAround builds a box centered on (cx, cy) with the given full extents.
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Shrink moves every edge inward by margin.
func (b Box) Shrink(margin float64) Box {
	return Box{
		Left:   b.Left + margin,
		Top:    b.Top + margin,
		Right:  b.Right - margin,
		Bottom: b.Bottom - margin,
	}
}

// OverlapsX reports whether the horizontal spans of b and [left, right) overlap.
// Touching edges do not overlap.
func (b Box) OverlapsX(left, right float64) bool {
	return b.Right > left && b.Left < right
}

// Contains reports whether the point (x, y) lies inside b, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

// Viewport is the visible world area in world units.
// The origin is the top-left corner and y grows downward.
type Viewport struct {
	W, H float64
}

// Clamp restricts a value to be within [min, max].
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
