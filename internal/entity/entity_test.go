package entity

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewRejectsNegativeSize(t *testing.T) {
	tests := []struct {
		name string
		size core.Vec2
		ok   bool
	}{
		{"positive", core.V(40, 20), true},
		{"zero", core.V(0, 0), true},
		{"negative width", core.V(-1, 20), false},
		{"negative height", core.V(40, -0.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(KindBrick, core.V(0, 0), tt.size)
			if tt.ok {
				if err != nil || e == nil {
					t.Fatalf("New() error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrNegativeSize) {
				t.Errorf("New() error = %v, want ErrNegativeSize", err)
			}
		})
	}
}

func TestEntityAccessors(t *testing.T) {
	e, err := New(KindBrick, core.V(90, 70), core.V(40, 20))
	if err != nil {
		t.Fatal(err)
	}

	if e.Min() != core.V(90, 70) {
		t.Errorf("Min = %v", e.Min())
	}
	if e.Max() != core.V(130, 90) {
		t.Errorf("Max = %v", e.Max())
	}
	if e.Center() != core.V(110, 80) {
		t.Errorf("Center = %v", e.Center())
	}
	if e.HalfExtents() != core.V(20, 10) {
		t.Errorf("HalfExtents = %v", e.HalfExtents())
	}
	if e.Position != core.V(90, 70) {
		t.Error("accessors must not mutate")
	}
}

func TestEntityDestroy(t *testing.T) {
	e, _ := New(KindBrick, core.V(0, 0), core.V(1, 1))
	if !e.Alive() {
		t.Fatal("new entity should be alive")
	}
	e.Destroy()
	if e.Alive() || !e.Destroyed {
		t.Error("Destroy should be terminal")
	}
}

func TestEntityUpdateWithoutAnimation(t *testing.T) {
	e, _ := New(KindPaddle, core.V(5, 5), core.V(10, 2))
	e.Velocity = core.V(100, 0)
	e.Update(0.5)

	if e.Position != core.V(5, 5) {
		t.Errorf("Update without animation moved entity to %v", e.Position)
	}
}

func TestAnimationWraps(t *testing.T) {
	e, _ := New(KindPickup, core.V(0, 0), core.V(1, 1))
	e.Anim = NewAnimation(4, 10)

	e.Update(0.25) // 2.5 frames
	if got := e.Anim.Frame(); got != 2 {
		t.Errorf("frame = %d, want 2", got)
	}

	e.Update(0.2) // 4.5 -> wraps to 0.5
	if got := e.Anim.Frame(); got != 0 {
		t.Errorf("frame after wrap = %d, want 0", got)
	}

	e.Anim.Rewind()
	if e.Anim.Frame() != 0 {
		t.Error("Rewind should reset to frame 0")
	}
}

func TestKindString(t *testing.T) {
	if KindBrick.String() != "brick" || KindPickup.String() != "pickup" || Kind(99).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}
