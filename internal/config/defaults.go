package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration. It mirrors
// defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			MinX:     -11,
			MaxX:     11,
			Floor:    -11,
			Ceiling:  10,
			Back:     -1.5,
			Front:    1.5,
			PaddleY:  -8,
			BrickTop: 8.5,
		},
		Ball: BallConfig{
			MaxSpeedFactor:   1.6,
			MinVerticalRatio: 0.3,
			SpeedRatchet:     1.02,
			PaddleAngle:      60,
			LaunchAngle:      45,
			PaddleNudge:      0.1,
			Jitter:           0.05,
			CrazyChance:      0.1,
			CrazyKick:        0.5,
			BobAmplitude:     0.05,
			BobFrequency:     4,
		},
		Paddle: PaddleConfig{
			Height:        0.4,
			Depth:         1.2,
			Speed:         24,
			KeyNudge:      1.5,
			ExpandFactor:  1.5,
			ShrinkFactor:  0.5,
			LaserCooldown: 0.3,
			LaserSpeed:    20,
		},
		Bricks: BricksConfig{
			Width:           1.7,
			Height:          0.6,
			Depth:           1.2,
			SpacingX:        1.8,
			SpacingY:        0.75,
			ExplosionRadius: 3,
			ShakeDuration:   0.2,
		},
		Effects: EffectsConfig{
			Expand:     10,
			Laser:      10,
			Slow:       8,
			SlowFactor: 0.6,
			Reverse:    5,
			Crazy:      5,
			Shrink:     5,
		},
		PowerUps: PowerUpsConfig{
			DropChance:      0.05,
			FallSpeed:       4,
			Lifetime:        10,
			Size:            0.6,
			MultiBallSpread: 30,
			ScoreBonus:      500,
			Weights: PowerUpWeights{
				MultiBall:    0.15,
				ExpandPaddle: 0.20,
				Laser:        0.15,
				SlowBall:     0.20,
				ExtraLife:    0.10,
				ScoreBonus:   0.20,
			},
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			StartLevel: 1,
			ServeDelay: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			BallRadius:  Curve{Base: 0.35, Rate: 0.01, Limit: 0.20},
			PaddleWidth: Curve{Base: 4.0, Rate: 0.1, Limit: 2.2},
			BallSpeed:   Curve{Base: 9.0, Rate: 0.35, Limit: 16.0},
			BrickHits:   Curve{Base: 1.0, Rate: 0.1, Limit: 2.5},
			ObstacleBands: []ObstacleBand{
				{FromLevel: 1, Chance: 0},
				{FromLevel: 4, Chance: 0.05},
				{FromLevel: 7, Chance: 0.08},
				{FromLevel: 11, Chance: 0.12},
				{FromLevel: 16, Chance: 0.15},
			},
			PowerUpChance: 0.12,
			Unlocks: UnlockConfig{
				Unbreakable: 4,
				Warp:        5,
				Reverse:     7,
				Crazy:       9,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
