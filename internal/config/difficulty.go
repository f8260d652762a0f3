package config

import (
	"fmt"
	"math"
)

// changeEpsilon is the smallest delta reported by DifficultyEngine.Changes.
const changeEpsilon = 1e-6

// DifficultyModifiers are the per-level numeric knobs. Values are derived,
// never mutated.
type DifficultyModifiers struct {
	BallRadius          float64
	PaddleWidth         float64
	BallSpeed           float64
	BrickHitsMultiplier float64
}

// DifficultyChange describes one modifier that moved between two levels.
type DifficultyChange struct {
	Field   string
	From    float64
	To      float64
	Message string
}

// DifficultyEngine turns a level number into gameplay modifiers.
type DifficultyEngine struct {
	cfg DifficultyConfig
}

// NewDifficultyEngine creates an engine for the given curves.
func NewDifficultyEngine(cfg DifficultyConfig) *DifficultyEngine {
	return &DifficultyEngine{cfg: cfg}
}

// effectiveLevel clamps to level 1 and honours the frozen mode.
func (d *DifficultyEngine) effectiveLevel(level int) int {
	if level < 1 || !d.cfg.Enabled {
		return 1
	}
	return level
}

// Modifiers returns the modifiers for a level. Levels below 1 act as 1.
func (d *DifficultyEngine) Modifiers(level int) DifficultyModifiers {
	steps := float64(d.effectiveLevel(level) - 1)
	return DifficultyModifiers{
		BallRadius:          shrink(d.cfg.BallRadius, steps),
		PaddleWidth:         shrink(d.cfg.PaddleWidth, steps),
		BallSpeed:           grow(d.cfg.BallSpeed, steps),
		BrickHitsMultiplier: grow(d.cfg.BrickHits, steps),
	}
}

func shrink(c Curve, steps float64) float64 {
	return math.Max(c.Limit, c.Base-steps*c.Rate)
}

func grow(c Curve, steps float64) float64 {
	return math.Min(c.Limit, c.Base+steps*c.Rate)
}

// Changes lists the modifiers that differ between level-1 and level. A
// modifier that had already saturated at its limit is not reported.
func (d *DifficultyEngine) Changes(level int) []DifficultyChange {
	if level <= 1 {
		return nil
	}
	prev := d.Modifiers(level - 1)
	cur := d.Modifiers(level)

	var changes []DifficultyChange
	add := func(field string, from, to, limit float64, format string) {
		if math.Abs(to-from) <= changeEpsilon {
			return
		}
		if math.Abs(from-limit) <= changeEpsilon {
			return
		}
		changes = append(changes, DifficultyChange{
			Field:   field,
			From:    from,
			To:      to,
			Message: fmt.Sprintf(format, to),
		})
	}

	add("ball_radius", prev.BallRadius, cur.BallRadius, d.cfg.BallRadius.Limit, "Ball shrinks to %.2f")
	add("paddle_width", prev.PaddleWidth, cur.PaddleWidth, d.cfg.PaddleWidth.Limit, "Paddle narrows to %.2f")
	add("ball_speed", prev.BallSpeed, cur.BallSpeed, d.cfg.BallSpeed.Limit, "Ball speeds up to %.2f")
	add("brick_hits", prev.BrickHitsMultiplier, cur.BrickHitsMultiplier, d.cfg.BrickHits.Limit, "Bricks toughen to x%.2f")
	return changes
}

// ObstacleChance returns the probability that a generated brick becomes an
// obstacle at this level. Bands are matched by the highest FromLevel that
// does not exceed level.
func (d *DifficultyEngine) ObstacleChance(level int) float64 {
	chance := 0.0
	best := 0
	for _, band := range d.cfg.ObstacleBands {
		if band.FromLevel <= level && band.FromLevel >= best {
			best = band.FromLevel
			chance = band.Chance
		}
	}
	return chance
}

// PowerUpChance returns the flat band added on top of the obstacle chance
// inside which a brick becomes a power-up carrier.
func (d *DifficultyEngine) PowerUpChance() float64 {
	return d.cfg.PowerUpChance
}

// Unlocks returns the unlock thresholds for obstacle kinds.
func (d *DifficultyEngine) Unlocks() UnlockConfig {
	return d.cfg.Unlocks
}
