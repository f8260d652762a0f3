// Package config provides YAML-based configuration loading, difficulty
// presets and the per-level difficulty curves for brick3d.
package config

// BreakoutConfig contains all tunables for the brick-breaker simulation.
// Distances are world units, durations are seconds.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BricksConfig     `yaml:"bricks"`
	Effects    EffectsConfig    `yaml:"effects"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig describes the play volume. There is no front wall on the
// floor side: a ball that drops below Floor is lost.
type FieldConfig struct {
	MinX     float64 `yaml:"min_x"`
	MaxX     float64 `yaml:"max_x"`
	Floor    float64 `yaml:"floor"`
	Ceiling  float64 `yaml:"ceiling"`
	Back     float64 `yaml:"back"`  // Lowest Z
	Front    float64 `yaml:"front"` // Highest Z
	PaddleY  float64 `yaml:"paddle_y"`
	BrickTop float64 `yaml:"brick_top"` // Y of the first brick row
}

// BallConfig defines ball kinematics shared by all levels.
type BallConfig struct {
	MaxSpeedFactor   float64 `yaml:"max_speed_factor"`   // MaxSpeed = BaseSpeed * factor
	MinVerticalRatio float64 `yaml:"min_vertical_ratio"` // |vy| >= ratio * speed
	SpeedRatchet     float64 `yaml:"speed_ratchet"`      // Multiplier applied on each paddle hit
	PaddleAngle      float64 `yaml:"paddle_angle"`       // Degrees at the paddle edge
	LaunchAngle      float64 `yaml:"launch_angle"`       // Max launch deviation from vertical, degrees
	PaddleNudge      float64 `yaml:"paddle_nudge"`       // Fraction of paddle velocity added on hit
	Jitter           float64 `yaml:"jitter"`             // Max random lateral kick after reflections
	CrazyChance      float64 `yaml:"crazy_chance"`       // Per-tick chance of a crazy kick
	CrazyKick        float64 `yaml:"crazy_kick"`         // Max velocity delta of a crazy kick, fraction of speed
	BobAmplitude     float64 `yaml:"bob_amplitude"`
	BobFrequency     float64 `yaml:"bob_frequency"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Height        float64 `yaml:"height"`
	Depth         float64 `yaml:"depth"`
	Speed         float64 `yaml:"speed"`     // Units per second
	KeyNudge      float64 `yaml:"key_nudge"` // Target shift per key press
	ExpandFactor  float64 `yaml:"expand_factor"`
	ShrinkFactor  float64 `yaml:"shrink_factor"`
	LaserCooldown float64 `yaml:"laser_cooldown"`
	LaserSpeed    float64 `yaml:"laser_speed"`
}

// BricksConfig defines brick geometry and explosion reach.
type BricksConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Depth           float64 `yaml:"depth"`
	SpacingX        float64 `yaml:"spacing_x"`
	SpacingY        float64 `yaml:"spacing_y"`
	ExplosionRadius float64 `yaml:"explosion_radius"`
	ShakeDuration   float64 `yaml:"shake_duration"`
}

// EffectsConfig holds timed effect durations.
type EffectsConfig struct {
	Expand     float64 `yaml:"expand"`
	Laser      float64 `yaml:"laser"`
	Slow       float64 `yaml:"slow"`
	SlowFactor float64 `yaml:"slow_factor"` // Slowed speed as fraction of base
	Reverse    float64 `yaml:"reverse"`
	Crazy      float64 `yaml:"crazy"`
	Shrink     float64 `yaml:"shrink"`
}

// PowerUpsConfig defines pickup spawning and payloads.
type PowerUpsConfig struct {
	DropChance      float64        `yaml:"drop_chance"` // For bricks that are not power-up carriers
	FallSpeed       float64        `yaml:"fall_speed"`
	Lifetime        float64        `yaml:"lifetime"`
	Size            float64        `yaml:"size"`
	MultiBallSpread float64        `yaml:"multiball_spread"` // Degrees
	ScoreBonus      int            `yaml:"score_bonus"`
	Weights         PowerUpWeights `yaml:"weights"`
}

// PowerUpWeights are the draw probabilities of each pickup kind.
type PowerUpWeights struct {
	MultiBall    float64 `yaml:"multi_ball"`
	ExpandPaddle float64 `yaml:"expand_paddle"`
	Laser        float64 `yaml:"laser"`
	SlowBall     float64 `yaml:"slow_ball"`
	ExtraLife    float64 `yaml:"extra_life"`
	ScoreBonus   float64 `yaml:"score_bonus"`
}

// GameplayConfig holds session rules.
type GameplayConfig struct {
	Lives      int     `yaml:"lives"`
	StartLevel int     `yaml:"start_level"`
	ServeDelay float64 `yaml:"serve_delay"` // Seconds before launch is accepted after a miss
}

// Curve is a linear per-level progression clamped at Limit.
type Curve struct {
	Base  float64 `yaml:"base"`
	Rate  float64 `yaml:"rate"`
	Limit float64 `yaml:"limit"`
}

// ObstacleBand sets the obstacle chance from a level onwards.
type ObstacleBand struct {
	FromLevel int     `yaml:"from_level"`
	Chance    float64 `yaml:"chance"`
}

// UnlockConfig gives the first level at which each obstacle kind may appear.
type UnlockConfig struct {
	Unbreakable int `yaml:"unbreakable"`
	Warp        int `yaml:"warp"`
	Reverse     int `yaml:"reverse"`
	Crazy       int `yaml:"crazy"`
}

// DifficultyConfig defines how the game scales with level number.
type DifficultyConfig struct {
	Enabled       bool           `yaml:"enabled"` // false freezes modifiers at level 1
	BallRadius    Curve          `yaml:"ball_radius"`
	PaddleWidth   Curve          `yaml:"paddle_width"`
	BallSpeed     Curve          `yaml:"ball_speed"`
	BrickHits     Curve          `yaml:"brick_hits"`
	ObstacleBands []ObstacleBand `yaml:"obstacle_bands"`
	PowerUpChance float64        `yaml:"powerup_chance"`
	Unlocks       UnlockConfig   `yaml:"unlocks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
