package breakout

import (
	"math"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

// Wall identifies one of the reflecting planes of the play volume.
type Wall int

const (
	WallLeft Wall = iota
	WallRight
	WallCeiling
	WallBack
	WallFront
)

// inward returns the unit normal pointing from the wall into the field.
func (w Wall) inward() core.Vec3 {
	switch w {
	case WallLeft:
		return core.AxisPosX
	case WallRight:
		return core.AxisNegX
	case WallCeiling:
		return core.AxisNegY
	case WallBack:
		return core.AxisPosZ
	default:
		return core.AxisNegZ
	}
}

// Ball is a sphere bouncing through the field. While Attached it rides on
// the paddle and has zero velocity.
type Ball struct {
	Pos       core.Vec3
	Vel       core.Vec3
	Radius    float64
	Speed     float64 // Current target magnitude of Vel
	BaseSpeed float64
	MaxSpeed  float64
	Attached  bool
	Lost      bool

	paddle     *Paddle
	effects    EffectSet
	savedSpeed float64 // Speed before the slow effect started
	bobTime    float64

	cfg   config.BallConfig
	field config.FieldConfig
}

// NewBall creates a ball sized and paced for the given modifiers.
func NewBall(cfg *config.BreakoutConfig, mods config.DifficultyModifiers) *Ball {
	b := &Ball{
		cfg:   cfg.Ball,
		field: cfg.Field,
	}
	b.ApplyModifiers(mods)
	return b
}

// ApplyModifiers resets size and pace to a level's values and drops any
// running effects.
func (b *Ball) ApplyModifiers(mods config.DifficultyModifiers) {
	b.Radius = mods.BallRadius
	b.BaseSpeed = mods.BallSpeed
	b.MaxSpeed = mods.BallSpeed * b.cfg.MaxSpeedFactor
	b.Speed = b.BaseSpeed
	b.effects.Clear()
	if !b.Attached {
		b.NormalizeVelocity()
	}
}

// EntityType implements Entity.
func (b *Ball) EntityType() string { return "ball" }

// Position implements Entity.
func (b *Ball) Position() core.Vec3 { return b.Pos }

// Box returns the bounding box of the sphere.
func (b *Ball) Box() core.Box {
	return core.SphereBox(b.Pos, b.Radius)
}

// Free reports whether the ball is in flight.
func (b *Ball) Free() bool {
	return !b.Attached && !b.Lost
}

// IsSlowed reports whether the slow effect is running.
func (b *Ball) IsSlowed() bool { return b.effects.Active(EffectSlow) }

// IsCrazy reports whether the crazy effect is running.
func (b *Ball) IsCrazy() bool { return b.effects.Active(EffectCrazy) }

// Effects returns the ball's running effects.
func (b *Ball) Effects() *EffectSet { return &b.effects }

// AttachToPaddle parks the ball on top of p.
func (b *Ball) AttachToPaddle(p *Paddle) {
	b.paddle = p
	b.Attached = true
	b.Vel = core.Vec3{}
	b.bobTime = 0
	b.followPaddle()
}

// Launch releases an attached ball at a random angle around straight up.
// It returns false if the ball was not attached.
func (b *Ball) Launch(rng *RNG) bool {
	if !b.Attached {
		return false
	}
	limit := b.cfg.LaunchAngle * math.Pi / 180
	angle := rng.Range(-limit, limit)
	b.Vel = core.V3(math.Sin(angle)*b.Speed, math.Cos(angle)*b.Speed, 0)
	b.Attached = false
	b.paddle = nil
	b.NormalizeVelocity()
	return true
}

func (b *Ball) followPaddle() {
	if b.paddle == nil {
		return
	}
	bob := b.cfg.BobAmplitude * math.Abs(math.Sin(b.bobTime*b.cfg.BobFrequency))
	b.Pos = core.V3(b.paddle.Pos.X, b.paddle.Top()+b.Radius+bob, b.paddle.Pos.Z)
}

// Update advances the ball by dt seconds.
func (b *Ball) Update(dt float64, ctx GameContext) {
	if b.Lost {
		return
	}
	b.effects.Tick(dt)
	if b.Attached {
		b.bobTime += dt
		b.followPaddle()
		return
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.IsCrazy() {
		rng := ctx.Rand()
		if rng.Chance(b.cfg.CrazyChance) {
			kick := b.cfg.CrazyKick * b.Speed
			b.Vel.X += rng.Range(-kick, kick)
			b.Vel.Y += rng.Range(-kick, kick)
			b.NormalizeVelocity()
		}
	}

	b.resolveWalls(ctx)

	if b.Pos.Y+b.Radius < b.field.Floor {
		b.Lost = true
	}
}

func (b *Ball) resolveWalls(ctx GameContext) {
	hit := func(w Wall) {
		b.OnWallHit(w, ctx.Rand())
		ctx.PlaySound(SoundWall)
	}
	f := b.field
	r := b.Radius
	if b.Pos.X-r < f.MinX {
		b.Pos.X = f.MinX + r
		hit(WallLeft)
	} else if b.Pos.X+r > f.MaxX {
		b.Pos.X = f.MaxX - r
		hit(WallRight)
	}
	if b.Pos.Y+r > f.Ceiling {
		b.Pos.Y = f.Ceiling - r
		hit(WallCeiling)
	}
	if b.Pos.Z-r < f.Back {
		b.Pos.Z = f.Back + r
		hit(WallBack)
	} else if b.Pos.Z+r > f.Front {
		b.Pos.Z = f.Front - r
		hit(WallFront)
	}
}

// OnWallHit reflects the velocity component of the wall's axis so that it
// points back into the field, then jitters and normalizes.
func (b *Ball) OnWallHit(w Wall, rng *RNG) {
	n := w.inward()
	if b.Vel.Dot(n) < 0 {
		b.Vel = b.Vel.Reflect(n)
	}
	b.jitter(rng)
	b.NormalizeVelocity()
}

// OnBrickHit reflects the velocity about the face normal n.
func (b *Ball) OnBrickHit(n core.Vec3, rng *RNG) {
	if b.Vel.Dot(n) < 0 {
		b.Vel = b.Vel.Reflect(n)
	}
	b.jitter(rng)
	b.NormalizeVelocity()
}

// OnPaddleHit redirects the ball by where it struck the paddle: the centre
// sends it straight up, the edges at PaddleAngle degrees.
func (b *Ball) OnPaddleHit(p *Paddle) {
	half := p.Width / 2
	hitPos := 0.0
	if half > 0 {
		hitPos = core.ClampF((b.Pos.X-p.Pos.X)/half, -1, 1)
	}
	angle := hitPos * b.cfg.PaddleAngle * math.Pi / 180

	b.Speed = math.Min(b.Speed*b.cfg.SpeedRatchet, b.MaxSpeed)
	b.Vel = core.V3(math.Sin(angle)*b.Speed, math.Cos(angle)*b.Speed, 0)
	b.Vel.X += p.VelX * b.cfg.PaddleNudge
	b.NormalizeVelocity()
	b.Pos.Y = p.Top() + b.Radius
}

func (b *Ball) jitter(rng *RNG) {
	if b.cfg.Jitter <= 0 || rng == nil {
		return
	}
	j := b.cfg.Jitter * b.Speed
	b.Vel.X += rng.Range(-j, j)
}

// NormalizeVelocity rescales Vel to Speed and enforces a minimum vertical
// component of MinVerticalRatio*Speed, keeping the sign of vy (zero counts
// as up). Calling it twice gives the same result as calling it once.
func (b *Ball) NormalizeVelocity() {
	speed := b.Speed
	l := b.Vel.Len()
	if l == 0 {
		b.Vel = core.V3(0, speed, 0)
		return
	}
	v := b.Vel.Scale(speed / l)

	minVY := b.cfg.MinVerticalRatio * speed
	if math.Abs(v.Y) < minVY-1e-9 {
		v.Y = core.Sign(v.Y) * minVY
		h := math.Sqrt(math.Max(0, speed*speed-v.Y*v.Y))
		hl := math.Hypot(v.X, v.Z)
		if hl == 0 {
			v.X, v.Z = h, 0
		} else {
			v.X *= h / hl
			v.Z *= h / hl
		}
	}
	b.Vel = v
}

// SlowDown drops the ball to SlowFactor of its base speed for duration
// seconds. Re-activation restarts the timer and keeps the speed saved by the
// first activation.
func (b *Ball) SlowDown(duration, factor float64) {
	if !b.IsSlowed() {
		b.savedSpeed = b.Speed
	}
	b.effects.Activate(EffectSlow, duration, EffectReset, b.restoreSpeed)
	b.Speed = b.BaseSpeed * factor
	if b.Free() {
		b.NormalizeVelocity()
	}
}

func (b *Ball) restoreSpeed() {
	b.Speed = core.ClampF(b.savedSpeed, b.BaseSpeed, b.MaxSpeed)
	if b.Free() {
		b.NormalizeVelocity()
	}
}

// MakeCrazy starts or restarts the crazy effect and kicks the ball in a
// random direction.
func (b *Ball) MakeCrazy(duration float64, rng *RNG) {
	b.effects.Activate(EffectCrazy, duration, EffectReset, nil)
	if !b.Free() {
		return
	}
	b.Vel.X += rng.Range(-b.Speed, b.Speed)
	b.Vel.Y += rng.Range(-b.Speed/2, b.Speed/2)
	b.NormalizeVelocity()
}

// Teleport moves a free ball to pos, keeping its velocity.
func (b *Ball) Teleport(pos core.Vec3) {
	b.Pos = pos
}

// spawnSibling returns a copy of a free ball whose velocity is rotated by
// angle radians around Z. Running slow and crazy effects carry over with
// their remaining time.
func (b *Ball) spawnSibling(angle float64) *Ball {
	nb := &Ball{
		Pos:       b.Pos,
		Vel:       b.Vel.RotateZ(angle),
		Radius:    b.Radius,
		Speed:     b.Speed,
		BaseSpeed: b.BaseSpeed,
		MaxSpeed:  b.MaxSpeed,
		cfg:       b.cfg,
		field:     b.field,
	}
	if b.IsSlowed() {
		nb.savedSpeed = b.savedSpeed
		nb.effects.Activate(EffectSlow, b.effects.Remaining(EffectSlow), EffectReset, nb.restoreSpeed)
	}
	if b.IsCrazy() {
		nb.effects.Activate(EffectCrazy, b.effects.Remaining(EffectCrazy), EffectReset, nil)
	}
	nb.NormalizeVelocity()
	return nb
}
