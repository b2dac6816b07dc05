package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hard-coded breakout configuration.
// It mirrors defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			CellWidth:  10,
			CellHeight: 20,
			HUDRows:    2,
			BrickGap:   1,
			BrickRows:  1,
		},
		Ball: BallConfig{
			Radius:          6,
			InitialVelocity: Vec{X: 120, Y: -300},
			MinSpeed:        150,
			MaxSpeed:        900,
		},
		Paddle: PaddleConfig{
			Width:          80,
			Height:         20,
			Speed:          600,
			BounceStrength: 2,
			MinWidth:       40,
			MaxWidth:       160,
		},
		Particles: ParticleConfig{
			Amount:  120,
			PerTick: 2,
		},
		Collision: CollisionConfig{
			Policy: "first",
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			ServeDelay:     1.5,
			SpeedUpEvery:   10,
			SpeedUpFactor:  1.05,
			EndlessSpeedUp: 1.1,
		},
		PowerUps: PowerUpConfig{
			Enabled:     true,
			SpawnChance: 18,
			FallSpeed:   120,
			Size:        Vec{X: 10, Y: 20},
			Durations: PowerUpDurations{
				Widen:       12,
				Shrink:      12,
				Sticky:      10,
				PassThrough: 8,
				SpeedUp:     8,
				SlowDown:    8,
			},
			Weights: PowerUpWeights{
				Widen:       25,
				Shrink:      10,
				Sticky:      15,
				PassThrough: 12,
				SpeedUp:     10,
				SlowDown:    15,
				ExtraLife:   5,
			},
			WidenAmount:  40,
			ShrinkAmount: 30,
			SpeedFactor:  1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    0.25,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
