package core

import (
	"fmt"
	"math"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for HUD and overlay text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// RGB is a simulation-side color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGBA is an RGB color with an alpha channel, used by particles.
type RGBA struct {
	R, G, B, A float64
}

// Gray returns an RGB with all channels set to v.
func Gray(v float64) RGB {
	return RGB{R: v, G: v, B: v}
}

// Scale multiplies each channel by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Hex returns the color as "#rrggbb", clamping channels to [0, 1].
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// Premultiplied folds alpha into the RGB channels.
func (c RGBA) Premultiplied() RGB {
	a := ClampF(c.A, 0, 1)
	return RGB{R: c.R * a, G: c.G * a, B: c.B * a}
}

func channel(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}
