// Package physics implements the circle-vs-rectangle collision engine:
// overlap tests, penetration direction, and the resolution policies that
// keep the ball from tunnelling into bricks.
package physics

import "github.com/vovakirdan/tui-breakout/internal/core"

// Direction is the compass side a penetration vector points to.
type Direction int

// Enumeration order matters: ties resolve to the earliest value.
const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the direction lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

var compass = [...]core.Vec2{
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
}

// ClassifyDirection returns the compass direction closest to v.
// Zero, NaN, or otherwise degenerate vectors yield Up.
func ClassifyDirection(v core.Vec2) Direction {
	n := v.Normalize()
	best := Up
	bestDot := 0.0
	for i, c := range compass {
		if dot := n.Dot(c); dot > bestDot {
			bestDot = dot
			best = Direction(i)
		}
	}
	return best
}
