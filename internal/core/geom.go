// Package core provides the shared types for the breakout simulation: vectors,
// colours, the screen buffer, input frames and the deterministic RNG.
// It has no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CellGrid maps world units onto terminal cells. World y grows downwards,
// same as screen rows.
type CellGrid struct {
	CellW, CellH float64
}

// Cell returns the cell containing a world point.
func (g CellGrid) Cell(p Vec2) (int, int) {
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y / g.CellH))
}

// Span returns the cells covered by a world-space box. Edges are rounded to
// the nearest cell boundary so adjacent boxes tile without gaps, and a box
// never shrinks below one cell.
func (g CellGrid) Span(pos, size Vec2) Rect {
	x0 := int(math.Round(pos.X / g.CellW))
	y0 := int(math.Round(pos.Y / g.CellH))
	x1 := int(math.Round((pos.X + size.X) / g.CellW))
	y1 := int(math.Round((pos.Y + size.Y) / g.CellH))
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
