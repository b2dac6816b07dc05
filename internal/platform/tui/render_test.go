package tui

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestCellColor(t *testing.T) {
	rgb := core.RGB{R: 1, G: 0.5}
	tests := []struct {
		name string
		cell core.Cell
		want string
	}{
		{"default", core.Cell{Rune: 'x'}, ""},
		{"palette", core.Cell{Rune: 'x', Color: core.ColorRed}, "1"},
		{"gray", core.Cell{Rune: 'x', Color: core.ColorGray}, "245"},
		{"rgb wins", core.Cell{Rune: 'x', Color: core.ColorRed, RGB: &rgb}, "#ff8000"},
	}
	for _, tt := range tests {
		if got := cellColor(tt.cell); got != tt.want {
			t.Errorf("%s: cellColor = %q, expected %q", tt.name, got, tt.want)
		}
	}
}

func TestRenderScreenPlainRenderer(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "Score")
	s.SetRGB(0, 1, '█', core.RGB{R: 1})
	s.SetRGB(1, 1, '█', core.RGB{R: 1})
	s.SetColored(3, 1, '●', core.ColorWhite)

	// A renderer writing to a non-terminal has no colour profile.
	r := lipgloss.NewRenderer(io.Discard)
	if got := RenderScreen(r, s); got != s.String() {
		t.Errorf("RenderScreen =\n%q\nexpected\n%q", got, s.String())
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(100, 0)
	nominal := 1.0 / 60

	tests := []struct {
		name      string
		prev, now time.Time
		want      float64
	}{
		{"first tick", time.Time{}, t0, nominal},
		{"regular", t0, t0.Add(20 * time.Millisecond), 0.02},
		{"stall clamped", t0, t0.Add(2 * time.Second), maxFrameDelta},
		{"clock went back", t0, t0.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		got := frameDelta(tt.prev, tt.now, nominal)
		if d := got - tt.want; d > 1e-9 || d < -1e-9 {
			t.Errorf("%s: frameDelta = %v, expected %v", tt.name, got, tt.want)
		}
	}
}
