package physics

import "github.com/vovakirdan/tui-breakout/internal/entity"

// AABBOverlap reports whether two rectangles overlap on both axes.
// Touching edges count as overlap.
func AABBOverlap(a, b *entity.Entity) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMax.X >= bMin.X && bMax.X >= aMin.X &&
		aMax.Y >= bMin.Y && bMax.Y >= aMin.Y
}

// CircleAABBOverlap tests the ball's circle against a rectangle.
// It is the same test the resolver runs.
func CircleAABBOverlap(ball *entity.Ball, box *entity.Entity) Collision {
	return Check(ball, box)
}
