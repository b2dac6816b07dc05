// Package entity holds the movable-rectangle record shared by every
// simulated object and the ball extension layered on top of it.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Kind discriminates what an entity stands for in the game.
// Collision code works on the base record regardless of kind.
type Kind int

const (
	KindBrick Kind = iota
	KindPaddle
	KindBorder
	KindBall
	KindPickup
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	case KindBorder:
		return "border"
	case KindBall:
		return "ball"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

var (
	// ErrNegativeSize is returned when an entity is built with a negative width or height.
	ErrNegativeSize = errors.New("entity: negative size")
	// ErrInvalidRadius is returned when a ball radius is not strictly positive.
	ErrInvalidRadius = errors.New("entity: radius must be positive")
)

// Entity is an axis-aligned rectangle in world units. Position is the
// top-left corner.
type Entity struct {
	Kind     Kind
	Position core.Vec2
	Size     core.Vec2
	Velocity core.Vec2
	Rotation float64 // degrees
	Color    core.RGB

	// Solid obstacles cannot be destroyed and always reflect the ball.
	Solid     bool
	Destroyed bool

	Anim *Animation
}

// New creates an entity of the given kind. Sizes must be non-negative.
func New(kind Kind, position, size core.Vec2) (*Entity, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrNegativeSize, size.X, size.Y)
	}
	return &Entity{
		Kind:     kind,
		Position: position,
		Size:     size,
		Color:    core.Gray(1),
	}, nil
}

// Min returns the top-left corner.
func (e *Entity) Min() core.Vec2 {
	return e.Position
}

// Max returns the bottom-right corner.
func (e *Entity) Max() core.Vec2 {
	return e.Position.Add(e.Size)
}

// HalfExtents returns half the size.
func (e *Entity) HalfExtents() core.Vec2 {
	return e.Size.Scale(0.5)
}

// Center returns the geometric centre of the rectangle.
func (e *Entity) Center() core.Vec2 {
	return e.Position.Add(e.HalfExtents())
}

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool {
	return !e.Destroyed
}

// Destroy removes the entity from the simulation. There is no way back.
func (e *Entity) Destroy() {
	e.Destroyed = true
}

// Update advances the animation driver, if any.
func (e *Entity) Update(dt float64) {
	if e.Anim != nil {
		e.Anim.Advance(dt)
	}
}
