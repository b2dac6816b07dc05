package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestAutopilotLaunchesStuckBall(t *testing.T) {
	g := newGame(t, ModeCampaign, quietConfig())

	in := Autopilot(g)
	if !in.Has(core.ActionLaunch) {
		t.Error("autopilot should launch a stuck ball")
	}
	if in.Steer() != 0 {
		t.Errorf("ball sits on the paddle centre, steer = %v", in.Steer())
	}
}

func TestAutopilotFollowsBall(t *testing.T) {
	tests := []struct {
		name  string
		ballX float64
		want  float64
	}{
		{"left", 100, -1},
		{"right", 700, 1},
		{"inside dead zone", 402, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, ModeCampaign, quietConfig())
			release(g, core.V(tt.ballX, 300), core.V(0, 100))

			in := Autopilot(g)
			if in.Has(core.ActionLaunch) {
				t.Error("a moving ball should not be launched")
			}
			if got := in.Steer(); got != tt.want {
				t.Errorf("steer = %v, expected %v (paddle centre %v)", got, tt.want, g.paddle.Center().X)
			}
		})
	}
}

func TestAutopilotIdleWhenOver(t *testing.T) {
	g := newGame(t, ModeCampaign, quietConfig())
	g.state = StateGameOver

	if in := Autopilot(g); len(in.Actions) != 0 {
		t.Errorf("autopilot acted after game over: %v", in.Actions)
	}
}

func TestAutopilotRunIsDeterministic(t *testing.T) {
	run := func() (uint64, int) {
		g := newGame(t, ModeCampaign, quietConfig())
		for range 2000 {
			g.Step(Autopilot(g), dt)
		}
		snap := g.Snapshot()
		return snap.Hash(), snap.Score
	}

	h1, score := run()
	h2, _ := run()
	if h1 != h2 {
		t.Errorf("hash %x != %x for the same seed", h1, h2)
	}
	if score == 0 {
		t.Error("autopilot should break at least one brick in 2000 ticks")
	}
}
