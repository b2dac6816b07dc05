// Package config provides YAML-based game configuration loading and
// difficulty management for breakout.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// BreakoutConfig contains all configuration for a breakout session.
// Distances are in world units and times in seconds.
type BreakoutConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Particles  ParticleConfig   `yaml:"particles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig maps terminal cells to world units.
type WorldConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"`   // Rows reserved above the playfield
	BrickGap   int     `yaml:"brick_gap"`  // Empty rows between HUD and first brick row
	BrickRows  int     `yaml:"brick_rows"` // Terminal rows per brick row
}

// Vec is a YAML-friendly 2D vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius          float64 `yaml:"radius"`
	InitialVelocity Vec     `yaml:"initial_velocity"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`           // Units per second while steering
	BounceStrength float64 `yaml:"bounce_strength"` // Horizontal kick at the paddle edge
	MinWidth       float64 `yaml:"min_width"`
	MaxWidth       float64 `yaml:"max_width"`
}

// ParticleConfig defines the ball trail.
type ParticleConfig struct {
	Amount  int `yaml:"amount"`   // Pool capacity, 0 disables the trail
	PerTick int `yaml:"per_tick"` // Particles spawned every tick
}

// CollisionConfig selects the brick collision policy: "first" or "all".
type CollisionConfig struct {
	Policy string `yaml:"policy"`
}

// GameplayConfig defines scoring and pacing.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	ServeDelay     float64 `yaml:"serve_delay"`      // Seconds before the ball can be launched after a miss
	SpeedUpEvery   int     `yaml:"speed_up_every"`   // Bricks destroyed between speed-ups
	SpeedUpFactor  float64 `yaml:"speed_up_factor"`  // Multiplier applied each speed-up
	EndlessSpeedUp float64 `yaml:"endless_speed_up"` // Multiplier per completed endless cycle
}

// PowerUpConfig holds configuration for power-up spawning and effects.
type PowerUpConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SpawnChance int     `yaml:"spawn_chance"` // Percent chance per destroyed brick
	FallSpeed   float64 `yaml:"fall_speed"`
	Size        Vec     `yaml:"size"`

	Durations PowerUpDurations `yaml:"durations"`
	Weights   PowerUpWeights   `yaml:"weights"`

	WidenAmount  float64 `yaml:"widen_amount"`
	ShrinkAmount float64 `yaml:"shrink_amount"`
	SpeedFactor  float64 `yaml:"speed_factor"` // SpeedUp multiplies, SlowDown divides
}

// PowerUpDurations are effect lifetimes in seconds.
type PowerUpDurations struct {
	Widen       float64 `yaml:"widen"`
	Shrink      float64 `yaml:"shrink"`
	Sticky      float64 `yaml:"sticky"`
	PassThrough float64 `yaml:"pass_through"`
	SpeedUp     float64 `yaml:"speed_up"`
	SlowDown    float64 `yaml:"slow_down"`
}

// PowerUpWeights are relative spawn weights.
type PowerUpWeights struct {
	Widen       int `yaml:"widen"`
	Shrink      int `yaml:"shrink"`
	Sticky      int `yaml:"sticky"`
	PassThrough int `yaml:"pass_through"`
	SpeedUp     int `yaml:"speed_up"`
	SlowDown    int `yaml:"slow_down"`
	ExtraLife   int `yaml:"extra_life"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed at max difficulty
	PaddleShrink    float64 `yaml:"paddle_shrink"`    // Fraction of paddle width lost at max difficulty
}

// Validate reports every invalid setting, joined into one error.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.CellWidth > 0 && c.World.CellHeight > 0,
		"world: cell size must be positive, got %vx%v", c.World.CellWidth, c.World.CellHeight)
	check(c.World.HUDRows >= 0 && c.World.BrickGap >= 0, "world: row offsets must not be negative")
	check(c.World.BrickRows > 0, "world: brick_rows must be positive")
	check(c.Ball.Radius > 0, "ball: radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.MinSpeed >= 0 && c.Ball.MaxSpeed >= c.Ball.MinSpeed,
		"ball: speed bounds [%v, %v] are invalid", c.Ball.MinSpeed, c.Ball.MaxSpeed)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle: size must be positive")
	check(c.Paddle.MinWidth >= 0 && c.Paddle.MaxWidth >= c.Paddle.MinWidth,
		"paddle: width bounds [%v, %v] are invalid", c.Paddle.MinWidth, c.Paddle.MaxWidth)
	check(c.Paddle.Speed >= 0, "paddle: speed must not be negative")
	check(c.Particles.Amount >= 0 && c.Particles.PerTick >= 0, "particles: counts must not be negative")
	check(c.Gameplay.Lives > 0, "gameplay: lives must be positive")
	check(c.PowerUps.SpawnChance >= 0 && c.PowerUps.SpawnChance <= 100,
		"powerups: spawn_chance %d outside 0-100", c.PowerUps.SpawnChance)
	check(c.PowerUps.Size.X >= 0 && c.PowerUps.Size.Y >= 0, "powerups: size must not be negative")

	switch strings.ToLower(strings.TrimSpace(c.Collision.Policy)) {
	case "", "first", "all":
	default:
		errs = append(errs, fmt.Errorf("collision: unknown policy %q", c.Collision.Policy))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid breakout config: %w", err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
