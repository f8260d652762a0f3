package breakout

import (
	"math"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

// Paddle is the player-controlled box at the bottom of the field. It slides
// along X toward TargetX at a capped speed.
type Paddle struct {
	Pos       core.Vec3 // Centre
	TargetX   float64
	BaseWidth float64
	Width     float64
	Height    float64
	Depth     float64
	Speed     float64
	VelX      float64 // Measured over the last Update

	laserCooldown float64
	effects       EffectSet

	cfg   config.PaddleConfig
	field config.FieldConfig
}

// NewPaddle creates a paddle of the given base width centred in the field.
func NewPaddle(cfg *config.BreakoutConfig, width float64) *Paddle {
	p := &Paddle{
		Pos:       core.V3((cfg.Field.MinX+cfg.Field.MaxX)/2, cfg.Field.PaddleY, 0),
		BaseWidth: width,
		Width:     width,
		Height:    cfg.Paddle.Height,
		Depth:     cfg.Paddle.Depth,
		Speed:     cfg.Paddle.Speed,
		cfg:       cfg.Paddle,
		field:     cfg.Field,
	}
	p.TargetX = p.Pos.X
	return p
}

// EntityType implements Entity.
func (p *Paddle) EntityType() string { return "paddle" }

// Position implements Entity.
func (p *Paddle) Position() core.Vec3 { return p.Pos }

// Top returns the Y of the paddle's upper face.
func (p *Paddle) Top() float64 {
	return p.Pos.Y + p.Height/2
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.Pos, p.Width, p.Height, p.Depth)
}

// Effects returns the paddle's running effects.
func (p *Paddle) Effects() *EffectSet { return &p.effects }

// IsExpanded reports whether the expand effect is running.
func (p *Paddle) IsExpanded() bool { return p.effects.Active(EffectExpand) }

// HasLaser reports whether the laser effect is running.
func (p *Paddle) HasLaser() bool { return p.effects.Active(EffectLaser) }

// IsShrunk reports whether the shrink effect is running.
func (p *Paddle) IsShrunk() bool { return p.effects.Active(EffectShrink) }

// LaserCooldown returns the seconds until the next shot is allowed.
func (p *Paddle) LaserCooldown() float64 { return p.laserCooldown }

func (p *Paddle) minX() float64 { return p.field.MinX + p.Width/2 }
func (p *Paddle) maxX() float64 { return p.field.MaxX - p.Width/2 }

func (p *Paddle) clampX(x float64) float64 {
	lo, hi := p.minX(), p.maxX()
	if lo > hi {
		return (p.field.MinX + p.field.MaxX) / 2
	}
	return core.ClampF(x, lo, hi)
}

// SetTargetX sets where the paddle should move to, clamped to the field.
func (p *Paddle) SetTargetX(x float64) {
	p.TargetX = p.clampX(x)
}

// Update moves the paddle toward its target and ticks its timers.
func (p *Paddle) Update(dt float64) {
	prev := p.Pos.X
	step := p.Speed * dt
	delta := core.ClampF(p.TargetX-p.Pos.X, -step, step)
	p.Pos.X = p.clampX(p.Pos.X + delta)
	if dt > 0 {
		p.VelX = (p.Pos.X - prev) / dt
	}

	p.laserCooldown = math.Max(0, p.laserCooldown-dt)
	p.effects.Tick(dt)
}

// SetBaseWidth changes the unmodified width, e.g. on level change.
func (p *Paddle) SetBaseWidth(w float64) {
	p.BaseWidth = w
	p.recomputeWidth()
}

// recomputeWidth derives Width from BaseWidth and the running effects and
// pulls the paddle back inside the field.
func (p *Paddle) recomputeWidth() {
	w := p.BaseWidth
	if p.IsExpanded() {
		w *= p.cfg.ExpandFactor
	}
	if p.IsShrunk() {
		w *= p.cfg.ShrinkFactor
	}
	p.Width = w
	p.Pos.X = p.clampX(p.Pos.X)
	p.TargetX = p.clampX(p.TargetX)
}

// ExpandPaddle widens the paddle for duration seconds. It returns false and
// changes nothing if the paddle is already expanded.
func (p *Paddle) ExpandPaddle(duration float64) bool {
	if !p.effects.Activate(EffectExpand, duration, EffectIgnore, p.recomputeWidth) {
		return false
	}
	p.recomputeWidth()
	return true
}

// ActivateLaser enables laser fire for duration seconds. It returns false if
// lasers are already active.
func (p *Paddle) ActivateLaser(duration float64) bool {
	return p.effects.Activate(EffectLaser, duration, EffectIgnore, nil)
}

// Shrink narrows the paddle for duration seconds. A running shrink has its
// timer restarted.
func (p *Paddle) Shrink(duration float64) {
	p.effects.Activate(EffectShrink, duration, EffectReset, p.recomputeWidth)
	p.recomputeWidth()
}

// ClearEffects drops every running effect and restores the base width.
func (p *Paddle) ClearEffects() {
	p.effects.Clear()
	p.laserCooldown = 0
	p.recomputeWidth()
}

// FireLaser queues a laser shot from the paddle top. It returns false when
// lasers are inactive or still cooling down.
func (p *Paddle) FireLaser(ctx GameContext) bool {
	if !p.HasLaser() || p.laserCooldown > 0 {
		return false
	}
	ctx.SpawnLaser(NewLaser(core.V3(p.Pos.X, p.Top(), p.Pos.Z), p.cfg.LaserSpeed))
	ctx.PlaySound(SoundLaser)
	p.laserCooldown = p.cfg.LaserCooldown
	return true
}
