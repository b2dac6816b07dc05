package entity

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BallState is the motion state of a ball.
type BallState int

const (
	BallStuck BallState = iota // position driven by the paddle
	BallFree                   // integrating velocity and bouncing off walls
)

func (s BallState) String() string {
	if s == BallStuck {
		return "stuck"
	}
	return "free"
}

// Ball is an entity with a radius and the stuck/sticky/pass-through flags.
// The bounding box is (2r, 2r) and Position is its top-left corner.
type Ball struct {
	Entity

	Radius float64

	// Stuck suppresses velocity integration.
	Stuck bool
	// Sticky makes the next paddle contact re-stick the ball.
	Sticky bool
	// PassThrough skips reflection off destructible bricks.
	PassThrough bool
}

// NewBall creates a stuck ball.
func NewBall(position core.Vec2, radius float64, velocity core.Vec2) (*Ball, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	b := &Ball{
		Entity: Entity{
			Kind:     KindBall,
			Position: position,
			Size:     core.V(radius*2, radius*2),
			Velocity: velocity,
			Color:    core.Gray(1),
		},
		Radius: radius,
		Stuck:  true,
	}
	return b, nil
}

// State returns the current motion state.
func (b *Ball) State() BallState {
	if b.Stuck {
		return BallStuck
	}
	return BallFree
}

// Center returns the circle centre, Position offset by the radius on each axis.
func (b *Ball) Center() core.Vec2 {
	return b.Position.AddScalar(b.Radius)
}

// Move integrates the ball for dt seconds inside a viewport of the given
// width and returns the new position. A stuck ball does not move.
// The left, right and top walls reflect; the bottom is open.
func (b *Ball) Move(dt, windowWidth float64) core.Vec2 {
	if b.Stuck {
		return b.Position
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.Position.X <= 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = 0
	} else if b.Position.X+b.Size.X >= windowWidth {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = windowWidth - b.Size.X
	}

	if b.Position.Y <= 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = 0
	}

	return b.Position
}

// Launch releases a stuck ball.
func (b *Ball) Launch() {
	b.Stuck = false
}

// Stick attaches the ball to the paddle.
func (b *Ball) Stick() {
	b.Stuck = true
}

// Reset places the ball for a new round: stuck, with both power-up flags cleared.
func (b *Ball) Reset(position, velocity core.Vec2) {
	b.Position = position
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
}
