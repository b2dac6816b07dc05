package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/entity"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64  `yaml:"tick"`
	Clock           float64 `yaml:"clock"`
	PaddleX         float64 `yaml:"paddle_x"`
	PaddleWidth     float64 `yaml:"paddle_width"`
	Score           int     `yaml:"score"`
	Lives           int     `yaml:"lives"`
	LevelIndex      int     `yaml:"level_index"`
	BricksRemaining int     `yaml:"bricks_remaining"`
	State           string  `yaml:"state"`
	ResumeState     string  `yaml:"resume_state"`
	ServeTimer      float64 `yaml:"serve_timer"`

	// Game mode and endless tracking
	Mode         int `yaml:"mode"`          // 0=Campaign, 1=Endless
	EndlessCycle int `yaml:"endless_cycle"`
	Destroyed    int `yaml:"destroyed"`

	// Ball: X, Y, VX, VY
	Ball        [4]float64 `yaml:"ball"`
	BallStuck   bool       `yaml:"ball_stuck"`
	Sticky      bool       `yaml:"sticky"`
	PassThrough bool       `yaml:"pass_through"`

	// Pickup state (each pickup is 4 floats: Type, X, Y, VY)
	PickupData []float64 `yaml:"pickup_data"`

	// Effect state (each effect is 2 floats: Type, Until)
	EffectData []float64 `yaml:"effect_data"`

	// Brick states in field order, each 2 ints: Alive, HP
	BrickData []int `yaml:"brick_data"`

	// RNG state for power-ups and the trail
	RNGState      uint64 `yaml:"rng_state"`
	TrailRNGState uint64 `yaml:"trail_rng_state"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, len(g.field.Bricks)*2)
	for _, b := range g.field.Bricks {
		alive := 0
		if b.Alive() {
			alive = 1
		}
		brickData = append(brickData, alive, b.HP)
	}

	pickupData := make([]float64, 0, len(g.powerups.Pickups)*4)
	for _, p := range g.powerups.Pickups {
		pickupData = append(pickupData, float64(p.Type), p.Position.X, p.Position.Y, p.Velocity.Y)
	}

	effectData := make([]float64, 0, len(g.powerups.Effects)*2)
	for _, e := range g.powerups.Effects {
		effectData = append(effectData, float64(e.Type), e.Until)
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Clock:           g.clock,
		PaddleX:         g.paddle.Position.X,
		PaddleWidth:     g.paddle.Size.X,
		Score:           g.score,
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		BricksRemaining: g.field.Remaining(),
		State:           g.state,
		ResumeState:     g.resumeState,
		ServeTimer:      g.serveTimer,

		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,
		Destroyed:    g.destroyed,

		Ball:        [4]float64{g.ball.Position.X, g.ball.Position.Y, g.ball.Velocity.X, g.ball.Velocity.Y},
		BallStuck:   g.ball.Stuck,
		Sticky:      g.ball.Sticky,
		PassThrough: g.ball.PassThrough,

		PickupData: pickupData,
		EffectData: effectData,
		BrickData:  brickData,

		RNGState:      g.rng.State(),
		TrailRNGState: g.trailRNG.State(),
	}
}

// ApplySnapshot restores game state from a snapshot. The level is rebuilt
// from LevelIndex; live particles are not part of the snapshot and are
// cleared.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.clock = snap.Clock
	g.score = snap.Score
	g.lives = snap.Lives
	g.state = snap.State
	g.resumeState = snap.ResumeState
	g.serveTimer = snap.ServeTimer
	g.mode = Mode(snap.Mode)
	g.endlessCycle = snap.EndlessCycle

	if snap.LevelIndex != g.levelIndex || g.field == nil {
		g.levelIndex = snap.LevelIndex
		g.loadLevel(g.levelIndex)
	}
	g.destroyed = snap.Destroyed

	// Restore brick states
	if len(snap.BrickData) == len(g.field.Bricks)*2 {
		for i, b := range g.field.Bricks {
			b.Destroyed = snap.BrickData[i*2] == 0
			b.HP = snap.BrickData[i*2+1]
			b.restyle()
		}
	}

	g.paddle.Position.X = snap.PaddleX
	g.paddle.Size.X = snap.PaddleWidth

	g.ball.Position = core.V(snap.Ball[0], snap.Ball[1])
	g.ball.Velocity = core.V(snap.Ball[2], snap.Ball[3])
	g.ball.Stuck = snap.BallStuck

	// Restore pickup states
	g.powerups.Pickups = g.powerups.Pickups[:0]
	size := core.V(g.cfg.PowerUps.Size.X, g.cfg.PowerUps.Size.Y)
	for i := 0; i+3 < len(snap.PickupData); i += 4 {
		p := &Pickup{
			Entity: entity.Entity{
				Kind:     entity.KindPickup,
				Position: core.V(snap.PickupData[i+1], snap.PickupData[i+2]),
				Size:     size,
				Velocity: core.V(0, snap.PickupData[i+3]),
				Anim:     entity.NewAnimation(2, 4),
			},
			Type: PickupType(snap.PickupData[i]),
		}
		p.Color = p.Type.Color()
		g.powerups.Pickups = append(g.powerups.Pickups, p)
	}

	// Restore effect states
	g.powerups.Effects = g.powerups.Effects[:0]
	for i := 0; i+1 < len(snap.EffectData); i += 2 {
		g.powerups.Effects = append(g.powerups.Effects, &Effect{
			Type:  EffectType(snap.EffectData[i]),
			Until: snap.EffectData[i+1],
		})
	}
	g.syncEffects()

	g.rng.SetState(snap.RNGState)
	g.trailRNG.SetState(snap.TrailRNGState)
	g.trail.Reset()
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats contribute their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixF(snap.Clock)
	mixF(snap.PaddleX)
	mixF(snap.PaddleWidth)
	mixI(snap.Score)
	mixI(snap.Lives)
	mixI(snap.LevelIndex)
	mixI(snap.BricksRemaining)
	for _, r := range snap.State {
		mix(uint64(r))
	}
	for _, r := range snap.ResumeState {
		mix(uint64(r))
	}
	mixF(snap.ServeTimer)
	mixI(snap.Mode)
	mixI(snap.EndlessCycle)
	mixI(snap.Destroyed)

	for _, v := range snap.Ball {
		mixF(v)
	}
	mixB(snap.BallStuck)
	mixB(snap.Sticky)
	mixB(snap.PassThrough)

	for _, v := range snap.PickupData {
		mixF(v)
	}
	for _, v := range snap.EffectData {
		mixF(v)
	}
	for _, v := range snap.BrickData {
		mixI(v)
	}

	mix(snap.RNGState)
	mix(snap.TrailRNGState)
	return h
}
