package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		name string
		in   core.Vec2
		want Direction
	}{
		{"up", core.V(0, 1), Up},
		{"right", core.V(1, 0), Right},
		{"down", core.V(0, -1), Down},
		{"left", core.V(-1, 0), Left},
		{"zero falls back to up", core.V(0, 0), Up},
		{"nan falls back to up", core.V(math.NaN(), 1), Up},
		{"scaled", core.V(0, -8), Down},
		{"mostly right", core.V(5, -1), Right},
		{"mostly left", core.V(-3, 2), Left},
		{"tie up/right keeps up", core.V(1, 1), Up},
		{"tie right/down keeps right", core.V(1, -1), Right},
		{"tie down/left keeps down", core.V(-1, -1), Down},
		{"tie up/left keeps up", core.V(-1, 1), Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDirection(tt.in); got != tt.want {
				t.Errorf("ClassifyDirection(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	want := map[Direction]string{Up: "up", Right: "right", Down: "down", Left: "left", Direction(7): "unknown"}
	for d, s := range want {
		if d.String() != s {
			t.Errorf("%d.String() = %q, want %q", int(d), d.String(), s)
		}
	}
}
