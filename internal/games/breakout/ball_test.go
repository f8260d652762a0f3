package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

const eps = 1e-9

func newTestBall(t *testing.T, mutate func(*config.BreakoutConfig)) (*Ball, *config.BreakoutConfig) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	mods := config.NewDifficultyEngine(cfg.Difficulty).Modifiers(1)
	return NewBall(&cfg, mods), &cfg
}

func TestNormalizeVelocity(t *testing.T) {
	tests := []struct {
		name string
		vel  core.Vec3
	}{
		{"steep", core.V3(1, 5, 0)},
		{"shallow", core.V3(10, 0.5, 0)},
		{"shallow down", core.V3(-10, -0.1, 0)},
		{"horizontal", core.V3(3, 0, 0)},
		{"zero", core.V3(0, 0, 0)},
		{"with depth", core.V3(4, 0.2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, cfg := newTestBall(t, nil)
			b.Vel = tt.vel
			b.NormalizeVelocity()

			if got := b.Vel.Len(); math.Abs(got-b.Speed) > 1e-9 {
				t.Errorf("|v| = %v, expected %v", got, b.Speed)
			}
			minVY := cfg.Ball.MinVerticalRatio * b.Speed
			if math.Abs(b.Vel.Y) < minVY-1e-9 {
				t.Errorf("|vy| = %v, expected >= %v", math.Abs(b.Vel.Y), minVY)
			}
			if tt.vel.Y < 0 && b.Vel.Y >= 0 {
				t.Errorf("vy sign flipped: got %v from %v", b.Vel.Y, tt.vel.Y)
			}

			once := b.Vel
			b.NormalizeVelocity()
			if !b.Vel.ApproxEqual(once, eps) {
				t.Errorf("not idempotent: %v then %v", once, b.Vel)
			}
		})
	}
}

func TestNormalizeZeroVerticalGoesUp(t *testing.T) {
	b, _ := newTestBall(t, nil)
	b.Vel = core.V3(-5, 0, 0)
	b.NormalizeVelocity()
	if b.Vel.Y <= 0 {
		t.Errorf("vy = %v, expected positive for zero input", b.Vel.Y)
	}
	if b.Vel.X >= 0 {
		t.Errorf("vx = %v, expected horizontal direction kept", b.Vel.X)
	}
}

func TestWallReflectionPreservesSpeed(t *testing.T) {
	tests := []struct {
		wall     Wall
		vel      core.Vec3
		expected core.Vec3
	}{
		{WallLeft, core.V3(-6, 6, 0), core.V3(6, 6, 0)},
		{WallRight, core.V3(6, 6, 0), core.V3(-6, 6, 0)},
		{WallCeiling, core.V3(3, 8, 0), core.V3(3, -8, 0)},
		{WallBack, core.V3(3, 8, -1), core.V3(3, 8, 1)},
	}

	for _, tt := range tests {
		b, _ := newTestBall(t, func(c *config.BreakoutConfig) { c.Ball.Jitter = 0 })
		b.Speed = tt.vel.Len()
		b.Vel = tt.vel
		b.OnWallHit(tt.wall, NewRNG(1))

		if !b.Vel.ApproxEqual(tt.expected, 1e-9) {
			t.Errorf("wall %d: got %v, expected %v", tt.wall, b.Vel, tt.expected)
		}
		if math.Abs(b.Vel.Len()-tt.vel.Len()) > 1e-9 {
			t.Errorf("wall %d: speed changed from %v to %v", tt.wall, tt.vel.Len(), b.Vel.Len())
		}
	}
}

func TestWallHitOnlyReflectsOutgoing(t *testing.T) {
	b, _ := newTestBall(t, func(c *config.BreakoutConfig) { c.Ball.Jitter = 0 })
	b.Speed = math.Hypot(5, 5)
	b.Vel = core.V3(5, 5, 0)
	b.OnWallHit(WallLeft, nil)
	if b.Vel.X <= 0 {
		t.Errorf("vx = %v, ball already moving inward should keep direction", b.Vel.X)
	}
}

func TestBrickReflection(t *testing.T) {
	b, _ := newTestBall(t, func(c *config.BreakoutConfig) { c.Ball.Jitter = 0 })
	b.Speed = 10
	b.Vel = core.V3(6, 8, 0)
	b.OnBrickHit(core.AxisNegY, NewRNG(1))

	expected := core.V3(6, -8, 0)
	if !b.Vel.ApproxEqual(expected, 1e-9) {
		t.Errorf("got %v, expected %v", b.Vel, expected)
	}
}

func TestJitterKeepsSpeed(t *testing.T) {
	b, _ := newTestBall(t, nil)
	rng := NewRNG(7)
	b.Vel = core.V3(3, 8, 0)
	b.NormalizeVelocity()
	for range 100 {
		b.OnWallHit(WallCeiling, rng)
		if math.Abs(b.Vel.Len()-b.Speed) > 1e-9 {
			t.Fatalf("|v| = %v after jitter, expected %v", b.Vel.Len(), b.Speed)
		}
	}
}

func TestLaunchAngleWithinLimit(t *testing.T) {
	limit := 45 * math.Pi / 180
	for seed := int64(1); seed <= 1000; seed++ {
		b, cfg := newTestBall(t, nil)
		p := NewPaddle(cfg, 4)
		b.AttachToPaddle(p)

		if !b.Launch(NewRNG(seed)) {
			t.Fatalf("seed %d: launch failed", seed)
		}
		if b.Vel.Y <= 0 {
			t.Fatalf("seed %d: vy = %v, expected upward", seed, b.Vel.Y)
		}
		angle := math.Atan2(math.Abs(b.Vel.X), b.Vel.Y)
		if angle > limit+1e-9 {
			t.Fatalf("seed %d: angle %.2f deg exceeds 45", seed, angle*180/math.Pi)
		}
		if b.Attached {
			t.Fatalf("seed %d: still attached after launch", seed)
		}
	}
}

func TestLaunchRequiresAttachment(t *testing.T) {
	b, _ := newTestBall(t, nil)
	b.Vel = core.V3(1, 5, 0)
	if b.Launch(NewRNG(1)) {
		t.Error("launching a free ball should be a no-op")
	}
	if b.Vel != core.V3(1, 5, 0) {
		t.Errorf("velocity changed to %v", b.Vel)
	}
}

func TestAttachedBallFollowsPaddle(t *testing.T) {
	w := newTestWorld(t)
	b := w.Balls()[0]
	p := w.Paddle()

	p.SetTargetX(5)
	for range 60 {
		p.Update(1.0 / 60)
		b.Update(1.0/60, w)
	}
	if math.Abs(b.Pos.X-p.Pos.X) > eps {
		t.Errorf("ball x = %v, expected paddle x %v", b.Pos.X, p.Pos.X)
	}
	if b.Pos.Y < p.Top()+b.Radius-eps {
		t.Errorf("ball y = %v, expected at or above %v", b.Pos.Y, p.Top()+b.Radius)
	}
	if b.Vel != (core.Vec3{}) {
		t.Errorf("attached ball velocity = %v, expected zero", b.Vel)
	}
}

func TestPaddleCentreHitGoesStraightUp(t *testing.T) {
	b, cfg := newTestBall(t, nil)
	p := NewPaddle(cfg, 4)
	b.Pos = core.V3(p.Pos.X, p.Top(), 0)
	b.Vel = core.V3(0, -b.Speed, 0)
	base := b.Speed

	b.OnPaddleHit(p)

	if math.Abs(b.Vel.X) > eps || b.Vel.Y <= 0 {
		t.Errorf("velocity = %v, expected straight up", b.Vel)
	}
	expectedSpeed := math.Min(base*cfg.Ball.SpeedRatchet, b.MaxSpeed)
	if math.Abs(b.Speed-expectedSpeed) > eps {
		t.Errorf("speed = %v, expected %v", b.Speed, expectedSpeed)
	}
	if math.Abs(b.Pos.Y-(p.Top()+b.Radius)) > eps {
		t.Errorf("y = %v, expected %v", b.Pos.Y, p.Top()+b.Radius)
	}
}

func TestPaddleEdgeHitAngle(t *testing.T) {
	b, cfg := newTestBall(t, nil)
	p := NewPaddle(cfg, 4)
	b.Pos = core.V3(p.Pos.X+p.Width, p.Top(), 0) // Past the edge clamps to +1
	b.Vel = core.V3(0, -b.Speed, 0)

	b.OnPaddleHit(p)

	angle := math.Atan2(b.Vel.X, b.Vel.Y) * 180 / math.Pi
	if math.Abs(angle-cfg.Ball.PaddleAngle) > 1e-6 {
		t.Errorf("angle = %v, expected %v", angle, cfg.Ball.PaddleAngle)
	}
}

func TestSpeedRatchetCapped(t *testing.T) {
	b, cfg := newTestBall(t, nil)
	p := NewPaddle(cfg, 4)
	for range 200 {
		b.Vel = core.V3(0, -1, 0)
		b.OnPaddleHit(p)
	}
	if math.Abs(b.Speed-b.MaxSpeed) > eps {
		t.Errorf("speed = %v, expected cap %v", b.Speed, b.MaxSpeed)
	}
	if math.Abs(b.MaxSpeed-b.BaseSpeed*1.6) > eps {
		t.Errorf("max speed = %v, expected 1.6x base", b.MaxSpeed)
	}
}

func TestSlowDownResetKeepsSavedSpeed(t *testing.T) {
	b, cfg := newTestBall(t, nil)
	b.Vel = core.V3(0, 1, 0)
	b.Speed = 10
	b.NormalizeVelocity()

	b.SlowDown(8, cfg.Effects.SlowFactor)
	slowed := b.BaseSpeed * cfg.Effects.SlowFactor
	if math.Abs(b.Speed-slowed) > eps {
		t.Fatalf("speed = %v, expected %v", b.Speed, slowed)
	}

	b.Effects().Tick(4)
	b.SlowDown(8, cfg.Effects.SlowFactor)
	if got := b.Effects().Remaining(EffectSlow); got != 8 {
		t.Errorf("remaining = %v, expected timer reset to 8", got)
	}

	b.Effects().Tick(7.9)
	if !b.IsSlowed() {
		t.Fatal("ball should still be slowed")
	}
	b.Effects().Tick(0.2)
	if b.IsSlowed() {
		t.Fatal("slow should have expired")
	}
	if math.Abs(b.Speed-10) > eps {
		t.Errorf("speed = %v, expected the pre-slow 10", b.Speed)
	}
	if math.Abs(b.Vel.Len()-10) > eps {
		t.Errorf("|v| = %v, expected 10", b.Vel.Len())
	}
}

func TestBallLostBelowFloor(t *testing.T) {
	w := newTestWorld(t)
	b := freeBall(w, core.V3(0, w.Config().Field.Floor-1, 0), core.V3(0, -9, 0))
	b.Update(1.0/60, w)
	if !b.Lost {
		t.Error("ball below the floor should be lost")
	}
}

func TestBallBouncesOffCeiling(t *testing.T) {
	w := newTestWorld(t)
	ceiling := w.Config().Field.Ceiling
	b := freeBall(w, core.V3(0, ceiling-0.1, 0), core.V3(0, 9, 0))
	b.Speed = 9
	b.Update(1.0/60, w)
	if b.Vel.Y >= 0 {
		t.Errorf("vy = %v, expected downward after ceiling", b.Vel.Y)
	}
	if b.Pos.Y+b.Radius > ceiling+eps {
		t.Errorf("ball at %v pokes through ceiling %v", b.Pos.Y, ceiling)
	}
}

func TestMakeCrazyKeepsSpeed(t *testing.T) {
	w := newTestWorld(t)
	b := freeBall(w, core.V3(0, 0, 0), core.V3(0, 9, 0))
	b.MakeCrazy(5, w.Rand())
	if !b.IsCrazy() {
		t.Fatal("ball should be crazy")
	}
	for range 120 {
		b.Update(1.0/60, w)
		if math.Abs(b.Vel.Len()-b.Speed) > 1e-6 {
			t.Fatalf("|v| = %v, expected %v", b.Vel.Len(), b.Speed)
		}
	}
}

func TestSlowExpiresWhileAttached(t *testing.T) {
	w := newTestWorld(t)
	b := w.Balls()[0]
	if !b.Attached {
		t.Fatal("served ball should be attached")
	}

	NewPowerUp(PowerUpSlowBall, b.Pos, w.Config().PowerUps).Collect(w)
	if !b.IsSlowed() {
		t.Fatal("ball should be slowed")
	}

	ticks := int((w.Config().Effects.Slow + 1) * 60)
	for range ticks {
		w.Step(core.InputFrame{})
	}
	if !b.Attached {
		t.Fatal("ball should still be on the paddle")
	}
	if b.IsSlowed() {
		t.Errorf("slow remaining = %v after %d ticks, expected expired", b.Effects().Remaining(EffectSlow), ticks)
	}
	if math.Abs(b.Speed-b.BaseSpeed) > eps {
		t.Errorf("speed = %v, expected base %v", b.Speed, b.BaseSpeed)
	}
}
