package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// paletteCodes maps core.Color to ANSI colour codes.
var paletteCodes = map[core.Color]string{
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorGray:    "245",
}

// cellColor returns the lipgloss colour for a cell, or "" for the default.
// True colour wins over the palette.
func cellColor(c core.Cell) string {
	if c.RGB != nil {
		return c.RGB.Hex()
	}
	return paletteCodes[c.Color]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// A nil renderer uses the lipgloss default; SSH sessions pass their own so
// colour detection follows the client terminal.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	styles := make(map[string]lipgloss.Style)
	styleFor := func(color string) lipgloss.Style {
		st, ok := styles[color]
		if !ok {
			st = r.NewStyle()
			if color != "" {
				st = st.Foreground(lipgloss.Color(color))
			}
			styles[color] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			color := cellColor(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cellColor(cell) != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if color == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(color).Render(run.String()))
			}
		}
	}
	return sb.String()
}
