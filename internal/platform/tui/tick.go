package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the elapsed time handed to a single Step, in seconds.
// A stalled terminal must not fling the ball through a wall of bricks.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so a tick still in flight
// when a game is left does not drive the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameDelta returns the seconds between two ticks, clamped to
// [0, maxFrameDelta]. The first tick (zero prev) uses the nominal interval.
func frameDelta(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev).Seconds()
	switch {
	case dt < 0:
		return 0
	case dt > maxFrameDelta:
		return maxFrameDelta
	}
	return dt
}
