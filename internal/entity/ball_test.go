package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestBall(t *testing.T, pos core.Vec2, r float64, vel core.Vec2) *Ball {
	t.Helper()
	b, err := NewBall(pos, r, vel)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	return b
}

func TestNewBallValidation(t *testing.T) {
	for _, r := range []float64{0, -3, math.NaN()} {
		if _, err := NewBall(core.V(0, 0), r, core.V(0, 0)); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("radius %v: error = %v, want ErrInvalidRadius", r, err)
		}
	}

	b := newTestBall(t, core.V(10, 10), 12.5, core.V(100, -350))
	if b.Size != core.V(25, 25) {
		t.Errorf("Size = %v, want (25, 25)", b.Size)
	}
	if !b.Stuck || b.State() != BallStuck {
		t.Error("new ball should be stuck")
	}
	if b.Kind != KindBall {
		t.Errorf("Kind = %v", b.Kind)
	}
	if b.Center() != core.V(22.5, 22.5) {
		t.Errorf("Center = %v", b.Center())
	}
}

func TestBallMoveStuck(t *testing.T) {
	b := newTestBall(t, core.V(50, 50), 5, core.V(100, 100))
	got := b.Move(1, 800)
	if got != core.V(50, 50) || b.Position != core.V(50, 50) {
		t.Errorf("stuck ball moved to %v", got)
	}
}

func TestBallMove(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec2
		vel     core.Vec2
		dt      float64
		width   float64
		wantPos core.Vec2
		wantVel core.Vec2
	}{
		{
			name: "free flight", pos: core.V(100, 100), vel: core.V(10, -20), dt: 0.5, width: 800,
			wantPos: core.V(105, 90), wantVel: core.V(10, -20),
		},
		{
			name: "left wall breach", pos: core.V(2, 100), vel: core.V(-3, -4), dt: 1, width: 800,
			wantPos: core.V(0, 96), wantVel: core.V(3, -4),
		},
		{
			name: "right wall", pos: core.V(785, 100), vel: core.V(10, 0), dt: 1, width: 800,
			wantPos: core.V(780, 100), wantVel: core.V(-10, 0),
		},
		{
			name: "top wall and left wall together", pos: core.V(1, 1), vel: core.V(-5, -5), dt: 1, width: 800,
			wantPos: core.V(0, 0), wantVel: core.V(5, 5),
		},
		{
			name: "bottom is open", pos: core.V(100, 590), vel: core.V(0, 50), dt: 1, width: 800,
			wantPos: core.V(100, 640), wantVel: core.V(0, 50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(t, tt.pos, 10, tt.vel)
			b.Launch()

			got := b.Move(tt.dt, tt.width)
			if got != tt.wantPos || b.Position != tt.wantPos {
				t.Errorf("position = %v, want %v", got, tt.wantPos)
			}
			if b.Velocity != tt.wantVel {
				t.Errorf("velocity = %v, want %v", b.Velocity, tt.wantVel)
			}
		})
	}
}

func TestBallLeftWallThreeFour(t *testing.T) {
	// Velocity (3,-4) with a position already past the left wall.
	b := newTestBall(t, core.V(-10, 300), 10, core.V(3, -4))
	b.Launch()
	b.Move(0.1, 800)

	if b.Velocity != core.V(-3, -4) {
		t.Errorf("velocity = %v, want (-3, -4)", b.Velocity)
	}
	if b.Position.X != 0 {
		t.Errorf("x = %v, want 0", b.Position.X)
	}
}

func TestBallStateTransitions(t *testing.T) {
	b := newTestBall(t, core.V(0, 0), 5, core.V(0, -1))

	b.Launch()
	if b.State() != BallFree {
		t.Fatal("Launch should free the ball")
	}
	b.Stick()
	if b.State() != BallStuck {
		t.Fatal("Stick should stick the ball")
	}
}

func TestBallReset(t *testing.T) {
	b := newTestBall(t, core.V(1, 2), 5, core.V(3, 4))
	b.Launch()
	b.Sticky = true
	b.PassThrough = true

	b.Reset(core.V(375, 500), core.V(100, -350))

	if !b.Stuck || b.Sticky || b.PassThrough {
		t.Errorf("flags after reset: stuck=%v sticky=%v pass=%v", b.Stuck, b.Sticky, b.PassThrough)
	}
	if b.Position != core.V(375, 500) || b.Velocity != core.V(100, -350) {
		t.Errorf("reset state = %v %v", b.Position, b.Velocity)
	}
}
