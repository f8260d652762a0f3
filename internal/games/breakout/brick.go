package breakout

import (
	"math"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

// BrickKind selects a brick's durability, score and destruction effect.
type BrickKind int

const (
	BrickWeak BrickKind = iota
	BrickNormal
	BrickStrong
	BrickArmored
	BrickExplosive
	BrickPowerUp // Always drops a power-up
	BrickUnbreakable
	BrickWarp    // Teleports free balls
	BrickReverse // Mirrors paddle controls
	BrickCrazy   // Makes free balls erratic
	BrickShrink  // Narrows the paddle
)

// unbreakableHits keeps unbreakable bricks alive for any practical game.
const unbreakableHits = 999

// String returns the name of the brick kind.
func (k BrickKind) String() string {
	switch k {
	case BrickWeak:
		return "weak"
	case BrickNormal:
		return "normal"
	case BrickStrong:
		return "strong"
	case BrickArmored:
		return "armored"
	case BrickExplosive:
		return "explosive"
	case BrickPowerUp:
		return "powerup"
	case BrickUnbreakable:
		return "unbreakable"
	case BrickWarp:
		return "warp"
	case BrickReverse:
		return "reverse"
	case BrickCrazy:
		return "crazy"
	case BrickShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// IsObstacle reports whether the kind is one of the level-gated obstacles.
func (k BrickKind) IsObstacle() bool {
	switch k {
	case BrickUnbreakable, BrickWarp, BrickReverse, BrickCrazy:
		return true
	default:
		return false
	}
}

// BaseHits returns the hit count before the difficulty multiplier.
func (k BrickKind) BaseHits() int {
	switch k {
	case BrickStrong:
		return 2
	case BrickArmored:
		return 3
	case BrickUnbreakable:
		return unbreakableHits
	default:
		return 1
	}
}

// Points returns the score awarded when the brick is destroyed.
func (k BrickKind) Points() int {
	switch k {
	case BrickWeak:
		return 5
	case BrickNormal:
		return 10
	case BrickStrong:
		return 20
	case BrickArmored:
		return 30
	case BrickExplosive, BrickPowerUp:
		return 15
	case BrickWarp, BrickReverse, BrickCrazy, BrickShrink:
		return 25
	default:
		return 0
	}
}

// scalesWithDifficulty reports whether the hit multiplier applies.
func (k BrickKind) scalesWithDifficulty() bool {
	return k == BrickNormal || k == BrickStrong || k == BrickArmored
}

// HitsFor returns the hit count of kind under a difficulty multiplier.
func HitsFor(kind BrickKind, mult float64) int {
	base := kind.BaseHits()
	if !kind.scalesWithDifficulty() {
		return base
	}
	return max(1, int(math.Round(float64(base)*mult)))
}

// Brick is a box in the brick wall.
type Brick struct {
	Kind       BrickKind
	Pos        core.Vec3
	Size       core.Vec3
	Hits       int
	MaxHits    int
	HasPowerUp bool
	Destroyed  bool

	shake float64
	cfg   *config.BreakoutConfig
}

// NewBrick creates a brick from a placement. Power-up bricks always carry a
// drop; other kinds roll the configured drop chance.
func NewBrick(pl BrickPlacement, cfg *config.BreakoutConfig, hitsMultiplier float64, rng *RNG) *Brick {
	hits := HitsFor(pl.Kind, hitsMultiplier)
	b := &Brick{
		Kind:    pl.Kind,
		Pos:     core.V3(pl.X, pl.Y, pl.Z),
		Size:    core.V3(cfg.Bricks.Width, cfg.Bricks.Height, cfg.Bricks.Depth),
		Hits:    hits,
		MaxHits: hits,
		cfg:     cfg,
	}
	switch {
	case pl.Kind == BrickPowerUp:
		b.HasPowerUp = true
	case pl.Kind != BrickUnbreakable:
		b.HasPowerUp = rng.Chance(cfg.PowerUps.DropChance)
	}
	return b
}

// EntityType implements Entity.
func (b *Brick) EntityType() string { return "brick" }

// Position implements Entity.
func (b *Brick) Position() core.Vec3 { return b.Pos }

// Box returns the brick's bounding box.
func (b *Brick) Box() core.Box {
	return core.NewBox(b.Pos, b.Size.X, b.Size.Y, b.Size.Z)
}

// Breakable reports whether the brick counts toward clearing a level.
func (b *Brick) Breakable() bool {
	return b.Kind != BrickUnbreakable
}

// Shaking reports whether the hit feedback is still running.
func (b *Brick) Shaking() bool {
	return b.shake > 0
}

// Points returns the score for destroying this brick.
func (b *Brick) Points() int {
	return b.Kind.Points()
}

// Update ticks the hit feedback.
func (b *Brick) Update(dt float64) {
	if b.shake > 0 {
		b.shake = math.Max(0, b.shake-dt)
	}
}

// Hit takes one hit point off the brick. It returns true only on the hit
// that destroys it; the caller awards the points.
func (b *Brick) Hit(ctx GameContext) bool {
	if b.Destroyed {
		return false
	}
	b.Hits--
	if b.Hits > 0 {
		b.shake = b.cfg.Bricks.ShakeDuration
		ctx.PlaySound(SoundBrickHit)
		return false
	}
	b.destroy(ctx)
	return true
}

// destroy marks the brick and runs its single kind-specific effect.
func (b *Brick) destroy(ctx GameContext) {
	if b.Destroyed {
		return
	}
	b.Destroyed = true
	b.Hits = 0

	ctx.Burst(b.Pos, b.Kind)
	ctx.PlaySound(SoundBrickBreak)
	if b.HasPowerUp {
		ctx.DropPowerUp(b.Pos)
	}

	eff := b.cfg.Effects
	switch b.Kind {
	case BrickWarp:
		b.warpBalls(ctx)
	case BrickReverse:
		ctx.ReverseControls(eff.Reverse)
	case BrickCrazy:
		for _, ball := range ctx.Balls() {
			if ball.Free() {
				ball.MakeCrazy(eff.Crazy, ctx.Rand())
			}
		}
		ctx.AddActiveEffect(EffectCrazy, eff.Crazy)
	case BrickShrink:
		ctx.Paddle().Shrink(eff.Shrink)
		ctx.AddActiveEffect(EffectShrink, eff.Shrink)
	case BrickExplosive:
		b.explode(ctx)
	}
}

// warpBalls moves every free ball to a random point between the paddle and
// the brick wall.
func (b *Brick) warpBalls(ctx GameContext) {
	f := b.cfg.Field
	rng := ctx.Rand()
	for _, ball := range ctx.Balls() {
		if !ball.Free() {
			continue
		}
		margin := ball.Radius + 1
		x := rng.Range(f.MinX+margin, f.MaxX-margin)
		y := rng.Range(f.PaddleY+3, (f.PaddleY+f.BrickTop)/2)
		ball.Teleport(core.V3(x, y, ball.Pos.Z))
	}
	ctx.PlaySound(SoundWarp)
}

// explode hits every other live brick whose centre lies within the
// explosion radius. Chain kills are scored here.
func (b *Brick) explode(ctx GameContext) {
	radius := b.cfg.Bricks.ExplosionRadius
	ctx.PlaySound(SoundExplosion)
	for _, other := range ctx.Bricks() {
		if other == b || other.Destroyed {
			continue
		}
		if other.Pos.Dist(b.Pos) > radius {
			continue
		}
		if other.Hit(ctx) {
			ctx.AddScore(other.Points())
		}
	}
}
