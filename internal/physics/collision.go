package physics

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/entity"
)

// Collision is the result of testing the ball against one obstacle.
// Penetration runs from the ball centre to the closest point on the
// obstacle. Direction only means something when Collided is set.
type Collision struct {
	Collided    bool
	Direction   Direction
	Penetration core.Vec2
}

// Depth is how far the circle reaches past the closest point.
func (c Collision) Depth(radius float64) float64 {
	if !c.Collided {
		return 0
	}
	return radius - c.Penetration.Length()
}

// Check runs the closest-point circle-vs-AABB test. Exact tangency is not
// a collision, so a resolved ball does not trigger again.
func Check(ball *entity.Ball, obstacle *entity.Entity) Collision {
	center := ball.Center()
	half := obstacle.HalfExtents()
	boxCenter := obstacle.Position.Add(half)

	diff := center.Sub(boxCenter)
	clamped := diff.Clamp(half.Scale(-1), half)
	closest := boxCenter.Add(clamped)
	penetration := closest.Sub(center)

	if penetration.Length() < ball.Radius {
		return Collision{
			Collided:    true,
			Direction:   ClassifyDirection(penetration),
			Penetration: penetration,
		}
	}
	return Collision{Direction: Up}
}

// Reflect flips the ball's velocity on the collision axis and pushes it out
// along that axis until circle and box just touch.
func Reflect(ball *entity.Ball, c Collision) {
	if !c.Collided {
		return
	}
	if c.Direction.Horizontal() {
		ball.Velocity.X = -ball.Velocity.X
		d := ball.Radius - math.Abs(c.Penetration.X)
		if c.Direction == Left {
			ball.Position.X += d
		} else {
			ball.Position.X -= d
		}
		return
	}

	ball.Velocity.Y = -ball.Velocity.Y
	d := ball.Radius - math.Abs(c.Penetration.Y)
	if c.Direction == Up {
		ball.Position.Y -= d
	} else {
		ball.Position.Y += d
	}
}

// BounceOffPaddle sends the ball back up with a horizontal component
// proportional to where it struck the paddle: -1 at the left edge,
// +1 at the right edge. Speed is preserved. A sticky ball is caught.
func BounceOffPaddle(ball *entity.Ball, paddle *entity.Entity, baseSpeed core.Vec2, strength float64) {
	halfWidth := paddle.Size.X / 2
	pct := 0.0
	if halfWidth > 0 {
		pct = (ball.Center().X - paddle.Center().X) / halfWidth
		pct = core.ClampF(pct, -1, 1)
	}

	speed := ball.Velocity.Length()
	ball.Velocity.X = baseSpeed.X * pct * strength
	ball.Velocity.Y = -math.Abs(ball.Velocity.Y)
	if ball.Velocity.Y == 0 {
		ball.Velocity.Y = -math.Abs(baseSpeed.Y)
	}
	ball.Velocity = ball.Velocity.Normalize().Scale(speed)

	ball.Stuck = ball.Sticky
}
