package entity

import "math"

// Animation is a looping frame counter for entities drawn from a strip of
// glyphs or sprite cells.
type Animation struct {
	Frames int     // number of frames in the strip
	Speed  float64 // frames per second

	frame float64
}

// NewAnimation creates an animation starting at frame 0.
func NewAnimation(frames int, speed float64) *Animation {
	return &Animation{Frames: frames, Speed: speed}
}

// Advance moves the counter forward by dt seconds, wrapping at Frames.
func (a *Animation) Advance(dt float64) {
	if a.Frames <= 0 {
		return
	}
	a.frame += a.Speed * dt
	if a.frame >= float64(a.Frames) || a.frame < 0 {
		a.frame = math.Mod(a.frame, float64(a.Frames))
		if a.frame < 0 {
			a.frame += float64(a.Frames)
		}
	}
}

// Frame returns the current integer frame index.
func (a *Animation) Frame() int {
	return int(a.frame)
}

// Rewind jumps back to frame 0.
func (a *Animation) Rewind() {
	a.frame = 0
}
