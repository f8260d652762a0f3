package breakout

import (
	"math"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

// PowerUpKind represents the payload of a falling pickup.
type PowerUpKind int

const (
	PowerUpMultiBall    PowerUpKind = iota // Two extra balls
	PowerUpExpandPaddle                    // Wider paddle
	PowerUpLaser                           // Auto-firing lasers
	PowerUpSlowBall                        // Slower balls
	PowerUpExtraLife                       // One more life
	PowerUpScoreBonus                      // Flat score bonus
)

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpMultiBall:
		return 'M'
	case PowerUpExpandPaddle:
		return 'E'
	case PowerUpLaser:
		return 'L'
	case PowerUpSlowBall:
		return 'S'
	case PowerUpExtraLife:
		return '♥'
	case PowerUpScoreBonus:
		return '$'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMultiBall:
		return "Multi"
	case PowerUpExpandPaddle:
		return "Expand"
	case PowerUpLaser:
		return "Laser"
	case PowerUpSlowBall:
		return "Slow"
	case PowerUpExtraLife:
		return "Life"
	case PowerUpScoreBonus:
		return "Bonus"
	default:
		return "?"
	}
}

// PowerUp is a pickup falling toward the paddle.
type PowerUp struct {
	Kind      PowerUpKind
	Pos       core.Vec3
	Size      float64
	FallSpeed float64
	Age       float64
	Collected bool
	Expired   bool
}

// NewPowerUp creates a pickup at pos.
func NewPowerUp(kind PowerUpKind, pos core.Vec3, cfg config.PowerUpsConfig) *PowerUp {
	return &PowerUp{
		Kind:      kind,
		Pos:       pos,
		Size:      cfg.Size,
		FallSpeed: cfg.FallSpeed,
	}
}

// EntityType implements Entity.
func (p *PowerUp) EntityType() string { return "powerup" }

// Position implements Entity.
func (p *PowerUp) Position() core.Vec3 { return p.Pos }

// Box returns the pickup's bounding cube.
func (p *PowerUp) Box() core.Box {
	return core.NewBox(p.Pos, p.Size, p.Size, p.Size)
}

// Alive reports whether the pickup is still in play.
func (p *PowerUp) Alive() bool {
	return !p.Collected && !p.Expired
}

// Update moves the pickup down and expires it when it leaves the field or
// outlives lifetime.
func (p *PowerUp) Update(dt, floor, lifetime float64) {
	if !p.Alive() {
		return
	}
	p.Pos.Y -= p.FallSpeed * dt
	p.Age += dt
	if p.Pos.Y+p.Size/2 < floor || (lifetime > 0 && p.Age >= lifetime) {
		p.Expired = true
	}
}

// Collect applies the pickup's effect. It returns false if the pickup was
// already collected or has expired.
func (p *PowerUp) Collect(ctx GameContext) bool {
	if !p.Alive() {
		return false
	}
	p.Collected = true

	cfg := ctx.Config()
	eff := cfg.Effects
	switch p.Kind {
	case PowerUpMultiBall:
		spawnMultiBall(ctx, cfg.PowerUps.MultiBallSpread)
	case PowerUpExpandPaddle:
		if ctx.Paddle().ExpandPaddle(eff.Expand) {
			ctx.AddActiveEffect(EffectExpand, eff.Expand)
		}
	case PowerUpLaser:
		if ctx.Paddle().ActivateLaser(eff.Laser) {
			ctx.AddActiveEffect(EffectLaser, eff.Laser)
		}
	case PowerUpSlowBall:
		for _, ball := range ctx.Balls() {
			if !ball.Lost {
				ball.SlowDown(eff.Slow, eff.SlowFactor)
			}
		}
		ctx.AddActiveEffect(EffectSlow, eff.Slow)
	case PowerUpExtraLife:
		ctx.AddLife()
	case PowerUpScoreBonus:
		ctx.AddScore(cfg.PowerUps.ScoreBonus)
	}
	ctx.PlaySound(SoundPowerUp)
	return true
}

// spawnMultiBall queues two balls at ±spread degrees from the first free
// ball. Nothing happens when no ball is in flight.
func spawnMultiBall(ctx GameContext, spread float64) {
	var src *Ball
	for _, b := range ctx.Balls() {
		if b.Free() {
			src = b
			break
		}
	}
	if src == nil {
		return
	}
	rad := spread * math.Pi / 180
	ctx.SpawnBall(src.spawnSibling(rad))
	ctx.SpawnBall(src.spawnSibling(-rad))
}

type weightedKind struct {
	kind   PowerUpKind
	weight float64
}

// PowerUpManager draws power-up kinds from the configured weights.
type PowerUpManager struct {
	table []weightedKind
	total float64
}

// NewPowerUpManager creates a manager for the given weights. Negative
// weights count as zero.
func NewPowerUpManager(w config.PowerUpWeights) *PowerUpManager {
	m := &PowerUpManager{
		table: []weightedKind{
			{PowerUpMultiBall, w.MultiBall},
			{PowerUpExpandPaddle, w.ExpandPaddle},
			{PowerUpLaser, w.Laser},
			{PowerUpSlowBall, w.SlowBall},
			{PowerUpExtraLife, w.ExtraLife},
			{PowerUpScoreBonus, w.ScoreBonus},
		},
	}
	for i := range m.table {
		m.table[i].weight = math.Max(0, m.table[i].weight)
		m.total += m.table[i].weight
	}
	return m
}

// RandomKind rolls once against the cumulative weights. A roll that matches
// nothing, including an all-zero table, yields ExpandPaddle.
func (m *PowerUpManager) RandomKind(rng *RNG) PowerUpKind {
	roll := rng.Float64() * m.total
	cumulative := 0.0
	for _, wk := range m.table {
		cumulative += wk.weight
		if roll < cumulative {
			return wk.kind
		}
	}
	return PowerUpExpandPaddle
}
