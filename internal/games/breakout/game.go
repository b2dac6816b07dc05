package breakout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/content"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/entity"
	"github.com/vovakirdan/tui-breakout/internal/particle"
	"github.com/vovakirdan/tui-breakout/internal/physics"
)

// GameState constants
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
	StatePaused   = "paused"   // Game paused
)

// MaxStep caps the elapsed time fed into a single tick, in seconds.
const MaxStep = 0.1

const (
	minScreenW = 30
	minScreenH = 15

	// Mixed into the seed so the particle trail draws from its own stream.
	trailSeedMix = 0x5bd1e995
)

var (
	paddleColor       = core.RGB{R: 0.85, G: 0.85, B: 0.95}
	stickyPaddleColor = core.RGB{R: 1.0, G: 0.5, B: 1.0}
	ballColor         = core.Gray(1)
	passBallColor     = core.RGB{R: 1.0, G: 0.5, B: 0.5}
)

// Mode represents the game mode.
type Mode int

const (
	ModeCampaign Mode = iota // Play through levels, win at end
	ModeEndless              // Play forever, score until game over
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// ParseMode converts "campaign" or "endless" into a Mode. Empty means campaign.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "campaign":
		return ModeCampaign, nil
	case "endless":
		return ModeEndless, nil
	default:
		return ModeCampaign, fmt.Errorf("breakout: unknown mode %q", s)
	}
}

// Options configures a new game.
type Options struct {
	Mode      Mode
	Config    config.BreakoutConfig
	Resources *content.Resources
	// StartLevel is a level ID; empty starts at the first level.
	StartLevel string
}

// Game implements the Breakout game logic.
type Game struct {
	mode       Mode
	cfg        config.BreakoutConfig
	res        *content.Resources
	startLevel int
	resolver   physics.Resolver
	difficulty *config.DifficultyManager

	// Game objects
	paddle   *entity.Entity
	ball     *entity.Ball
	field    *Field
	powerups *PowerUpManager
	trail    *particle.Pool

	rng      *core.SimpleRNG
	trailRNG *core.SimpleRNG

	// Game state
	state        string
	resumeState  string // State to return to when unpausing
	score        int
	lives        int
	levelIndex   int
	tickCount    int
	clock        float64 // Simulation seconds since Reset
	serveTimer   float64 // Seconds before the ball may be launched
	destroyed    int     // Bricks destroyed on the current level
	endlessCycle int

	// Viewport
	runtime        core.RuntimeConfig
	worldW, worldH float64
	screenTooSmall bool
}

// New creates a game. The config is validated here so a bad value fails
// before the first tick.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	policy, err := physics.ParsePolicy(opts.Config.Collision.Policy)
	if err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}
	if opts.Resources == nil || opts.Resources.Count() == 0 {
		return nil, errors.New("breakout: no levels loaded")
	}

	start := 0
	if opts.StartLevel != "" {
		_, idx, err := opts.Resources.LevelByID(opts.StartLevel)
		if err != nil {
			return nil, fmt.Errorf("breakout: start level: %w", err)
		}
		start = idx
	}

	cfg := opts.Config
	paddle, err := entity.New(entity.KindPaddle, core.Vec2{}, core.V(cfg.Paddle.Width, cfg.Paddle.Height))
	if err != nil {
		return nil, fmt.Errorf("breakout: paddle: %w", err)
	}
	paddle.Color = paddleColor

	ball, err := entity.NewBall(core.Vec2{}, cfg.Ball.Radius, core.Vec2{})
	if err != nil {
		return nil, fmt.Errorf("breakout: ball: %w", err)
	}

	return &Game{
		mode:       opts.Mode,
		cfg:        cfg,
		res:        opts.Resources,
		startLevel: start,
		resolver:   physics.Resolver{Policy: policy},
		paddle:     paddle,
		ball:       ball,
		state:      StateServe,
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// SetStartLevel picks the level the next Reset begins on. An empty ID
// means the first level.
func (g *Game) SetStartLevel(id string) error {
	if id == "" {
		g.startLevel = 0
		return nil
	}
	_, idx, err := g.res.LevelByID(id)
	if err != nil {
		return fmt.Errorf("breakout: start level: %w", err)
	}
	g.startLevel = idx
	return nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.trailRNG = core.NewSimpleRNG(runtime.Seed ^ trailSeedMix)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.powerups = NewPowerUpManager(g.cfg.PowerUps, g.rng)
	g.trail = particle.NewPool(g.cfg.Particles.Amount, g.trailRNG)

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = g.startLevel
	g.tickCount = 0
	g.clock = 0
	g.serveTimer = 0
	g.endlessCycle = 0

	g.paddle.Size = core.V(g.cfg.Paddle.Width, g.cfg.Paddle.Height)
	g.paddle.Velocity = core.Vec2{}
	g.paddle.Color = paddleColor

	g.runtime = runtime
	g.loadLevel(g.levelIndex)
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	// Centre the paddle.
	g.paddle.Position.X = (g.worldW - g.paddle.Size.X) / 2
	g.serve()
}

// Resize changes the viewport without restarting. Bricks are laid out
// again and the paddle moves to the new bottom row.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = screenW < minScreenW || screenH < minScreenH

	g.worldW = float64(screenW) * g.cfg.World.CellWidth
	g.worldH = float64(screenH) * g.cfg.World.CellHeight

	if g.field != nil {
		g.layoutField()
	}
	// Paddle sits three rows above the bottom edge.
	g.paddle.Position.Y = g.worldH - 3*g.cfg.World.CellHeight
	g.clampPaddle()
	if g.ball.Stuck {
		g.placeBallOnPaddle()
	}
}

func (g *Game) layoutField() {
	w := g.cfg.World
	top := float64(w.HUDRows+w.BrickGap) * w.CellHeight
	g.field.Layout(g.worldW, top, float64(w.BrickRows)*w.CellHeight)
}

// loadLevel builds the brick field for a level index.
func (g *Game) loadLevel(index int) {
	lvl, err := g.res.Level(index)
	if err != nil {
		// New guarantees at least one level.
		lvl = content.LevelDef{ID: "empty", Name: "Empty"}
	}
	g.field = NewField(lvl)
	g.layoutField()
	g.destroyed = 0
}

// serve puts a fresh ball on the paddle.
func (g *Game) serve() {
	g.ball.Reset(core.Vec2{}, g.launchVelocity())
	g.placeBallOnPaddle()
	g.syncEffects()
	g.state = StateServe
}

func (g *Game) placeBallOnPaddle() {
	r := g.ball.Radius
	g.ball.Position = core.V(g.paddle.Center().X-r, g.paddle.Position.Y-2*r)
}

func (g *Game) initialVelocity() core.Vec2 {
	v := g.cfg.Ball.InitialVelocity
	return core.V(v.X, v.Y)
}

func (g *Game) launchVelocity() core.Vec2 {
	dir := g.initialVelocity().Normalize()
	if dir.IsZero() {
		dir = core.V(0, -1)
	}
	return dir.Scale(g.targetSpeed())
}

// targetSpeed combines difficulty, per-level speed-ups, endless cycles and
// speed effects into the ball speed in units per second.
func (g *Game) targetSpeed() float64 {
	gp := g.cfg.Gameplay
	s := g.difficulty.Speed(g.initialVelocity().Length(), g.score, g.tickCount)

	if gp.SpeedUpEvery > 0 && gp.SpeedUpFactor > 0 {
		s *= math.Pow(gp.SpeedUpFactor, float64(g.destroyed/gp.SpeedUpEvery))
	}
	if gp.EndlessSpeedUp > 0 {
		s *= math.Pow(gp.EndlessSpeedUp, float64(g.endlessCycle))
	}

	if f := g.cfg.PowerUps.SpeedFactor; f > 0 {
		switch {
		case g.powerups.HasEffect(EffectSpeedUp):
			s *= f
		case g.powerups.HasEffect(EffectSlowDown):
			s /= f
		}
	}

	if g.cfg.Ball.MaxSpeed > 0 {
		s = core.ClampF(s, g.cfg.Ball.MinSpeed, g.cfg.Ball.MaxSpeed)
	}
	return s
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = g.resumeState
		case StatePlaying, StateServe:
			g.resumeState = g.state
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	dt = core.ClampF(dt, 0, MaxStep)
	g.tickCount++
	g.clock += dt
	g.serveTimer = max(g.serveTimer-dt, 0)

	for _, e := range g.powerups.ExpireEffects(g.clock) {
		g.onEffectExpired(e)
	}

	g.movePaddle(in.Steer(), dt)

	if g.ball.Stuck {
		g.placeBallOnPaddle()
		if in.Has(core.ActionLaunch) && g.serveTimer <= 0 {
			g.ball.Launch()
			g.state = StatePlaying
		}
	}

	g.ball.Move(dt, g.worldW)

	if !g.ball.Stuck {
		for _, hit := range g.resolver.Resolve(g.ball, g.field.Obstacles) {
			g.hitBrick(hit)
		}
		g.checkPaddle()
	}

	if t := g.powerups.Update(dt, g.paddle, g.worldH); t >= 0 {
		g.activatePickup(t)
	}

	spawn := g.cfg.Particles.PerTick
	if g.ball.Stuck {
		spawn = 0
	}
	r := g.ball.Radius
	g.trail.Update(dt, &g.ball.Entity, spawn, core.V(r/2, r/2))

	if g.ball.Position.Y >= g.worldH {
		g.handleMiss()
	} else if g.field.Remaining() == 0 {
		g.handleLevelClear()
	}

	return core.StepResult{State: g.State()}
}

// movePaddle applies the steering command and keeps the paddle on screen.
func (g *Game) movePaddle(steer, dt float64) {
	g.paddle.Velocity.X = steer * g.cfg.Paddle.Speed
	g.paddle.Position.X += g.paddle.Velocity.X * dt
	g.clampPaddle()
}

func (g *Game) clampPaddle() {
	maxX := max(g.worldW-g.paddle.Size.X, 0)
	g.paddle.Position.X = core.ClampF(g.paddle.Position.X, 0, maxX)
}

// checkPaddle bounces the ball off the paddle, catching it when sticky.
func (g *Game) checkPaddle() {
	if c := physics.Check(g.ball, g.paddle); !c.Collided {
		return
	}
	physics.BounceOffPaddle(g.ball, g.paddle, g.initialVelocity(), g.cfg.Paddle.BounceStrength)
	if g.ball.Stuck {
		g.placeBallOnPaddle()
	}
}

// hitBrick applies one resolved collision to the brick it hit.
func (g *Game) hitBrick(hit physics.Hit) {
	b, ok := g.field.Lookup(hit.Obstacle)
	if !ok || b.Solid || b.Destroyed {
		return
	}

	b.HP--
	if b.HP > 0 {
		b.restyle()
		return
	}

	b.Destroy()
	g.score += b.Points
	g.destroyed++
	g.powerups.TrySpawnPickup(b.Center())

	g.applyBallSpeed()
	g.applyPaddleWidth()
}

// activatePickup activates a collected pickup.
func (g *Game) activatePickup(t PickupType) {
	d := g.cfg.PowerUps.Durations

	switch t {
	case PickupWiden:
		g.powerups.AddEffect(EffectWiden, g.clock, d.Widen)
		g.powerups.RemoveEffect(EffectShrink)
		g.applyPaddleWidth()

	case PickupShrink:
		g.powerups.AddEffect(EffectShrink, g.clock, d.Shrink)
		g.powerups.RemoveEffect(EffectWiden)
		g.applyPaddleWidth()

	case PickupSticky:
		g.powerups.AddEffect(EffectSticky, g.clock, d.Sticky)
		g.syncEffects()

	case PickupPassThrough:
		g.powerups.AddEffect(EffectPassThrough, g.clock, d.PassThrough)
		g.syncEffects()

	case PickupSpeedUp:
		g.powerups.AddEffect(EffectSpeedUp, g.clock, d.SpeedUp)
		g.powerups.RemoveEffect(EffectSlowDown)
		g.applyBallSpeed()

	case PickupSlowDown:
		g.powerups.AddEffect(EffectSlowDown, g.clock, d.SlowDown)
		g.powerups.RemoveEffect(EffectSpeedUp)
		g.applyBallSpeed()

	case PickupExtraLife:
		g.lives++
	}
}

// onEffectExpired handles effect expiration.
func (g *Game) onEffectExpired(t EffectType) {
	switch t {
	case EffectWiden, EffectShrink:
		g.applyPaddleWidth()
	case EffectSticky, EffectPassThrough:
		g.syncEffects()
	case EffectSpeedUp, EffectSlowDown:
		g.applyBallSpeed()
	}
}

// syncEffects copies the sticky and pass-through effects onto the ball
// flags and tints the ball and paddle to match.
func (g *Game) syncEffects() {
	g.ball.Sticky = g.powerups.HasEffect(EffectSticky)
	g.ball.PassThrough = g.powerups.HasEffect(EffectPassThrough)

	g.ball.Color = ballColor
	if g.ball.PassThrough {
		g.ball.Color = passBallColor
	}
	g.paddle.Color = paddleColor
	if g.ball.Sticky {
		g.paddle.Color = stickyPaddleColor
	}
}

// applyPaddleWidth recomputes paddle width around its current centre.
func (g *Game) applyPaddleWidth() {
	p := g.cfg.Paddle
	pu := g.cfg.PowerUps
	w := g.difficulty.PaddleWidth(p.Width, p.MinWidth, g.score, g.tickCount)

	if g.powerups.HasEffect(EffectWiden) {
		w += pu.WidenAmount
	} else if g.powerups.HasEffect(EffectShrink) {
		w -= pu.ShrinkAmount
	}
	if p.MaxWidth > 0 {
		w = core.ClampF(w, p.MinWidth, p.MaxWidth)
	}
	w = max(w, 1)

	cx := g.paddle.Center().X
	g.paddle.Size.X = w
	g.paddle.Position.X = cx - w/2
	g.clampPaddle()
	if g.ball.Stuck {
		g.placeBallOnPaddle()
	}
}

// applyBallSpeed rescales the ball velocity to the current target speed,
// keeping its direction.
func (g *Game) applyBallSpeed() {
	dir := g.ball.Velocity.Normalize()
	if dir.IsZero() {
		return
	}
	g.ball.Velocity = dir.Scale(g.targetSpeed())
}

// handleMiss handles the ball falling past the bottom edge.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return
	}

	g.powerups.Clear()
	g.applyPaddleWidth()
	g.serve()
	g.serveTimer = g.cfg.Gameplay.ServeDelay
}

// handleLevelClear handles when all breakable bricks are destroyed.
func (g *Game) handleLevelClear() {
	if g.levelIndex+1 >= g.res.Count() {
		if g.mode == ModeCampaign {
			g.state = StateWin
			return
		}
		// Endless mode: cycle through levels, a little faster each time
		g.levelIndex = -1
		g.endlessCycle++
	}
	g.levelIndex++

	g.loadLevel(g.levelIndex)

	// Clear pickups but keep effects
	g.powerups.Pickups = g.powerups.Pickups[:0]
	g.serve()
	g.serveTimer = g.cfg.Gameplay.ServeDelay
}

// levelNumber is the 1-based level shown to the player.
func (g *Game) levelNumber() int {
	if g.mode == ModeEndless {
		return g.endlessCycle*g.res.Count() + g.levelIndex + 1
	}
	return g.levelIndex + 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelNumber(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the internal state name (serve, playing, paused, gameover, win).
func (g *Game) Phase() string {
	return g.state
}

// Ball returns the ball. Callers must treat it as read-only.
func (g *Game) Ball() *entity.Ball {
	return g.ball
}

// Paddle returns the paddle entity.
func (g *Game) Paddle() *entity.Entity {
	return g.paddle
}

// Field returns the current brick field.
func (g *Game) Field() *Field {
	return g.field
}

// Particles returns the ball trail pool.
func (g *Game) Particles() *particle.Pool {
	return g.trail
}

// World returns the viewport size in world units.
func (g *Game) World() core.Vec2 {
	return core.V(g.worldW, g.worldH)
}
