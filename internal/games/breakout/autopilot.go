package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// autopilotDeadZone is how far, in world units, the paddle centre may sit
// from its target before the autopilot steers.
const autopilotDeadZone = 4.0

// Autopilot returns the input a simple player would give this tick: follow
// the ball with the paddle centre and launch whenever the ball is stuck.
// It only reads game state, so a run driven by it is as deterministic as
// the seed.
func Autopilot(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	switch g.state {
	case StateGameOver, StateWin, StatePaused:
		return in
	}

	if g.ball.Stuck {
		in.Set(core.ActionLaunch)
	}

	dx := g.ball.Center().X - g.paddle.Center().X
	switch {
	case dx < -autopilotDeadZone:
		in.Set(core.ActionLeft)
	case dx > autopilotDeadZone:
		in.Set(core.ActionRight)
	}
	return in
}
