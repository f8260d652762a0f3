package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brick3d/internal/config"
)

func newTestPaddle(t *testing.T) (*Paddle, *config.BreakoutConfig) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	return NewPaddle(&cfg, 4), &cfg
}

func TestPaddleTargetClamped(t *testing.T) {
	p, cfg := newTestPaddle(t)

	tests := []struct {
		target   float64
		expected float64
	}{
		{0, 0},
		{100, cfg.Field.MaxX - 2},
		{-100, cfg.Field.MinX + 2},
		{5.5, 5.5},
	}
	for _, tt := range tests {
		p.SetTargetX(tt.target)
		if p.TargetX != tt.expected {
			t.Errorf("SetTargetX(%v): got %v, expected %v", tt.target, p.TargetX, tt.expected)
		}
	}
}

func TestPaddleMovesAtCappedSpeed(t *testing.T) {
	p, cfg := newTestPaddle(t)
	p.SetTargetX(8)
	dt := 0.1
	p.Update(dt)

	step := cfg.Paddle.Speed * dt
	if math.Abs(p.Pos.X-step) > 1e-9 {
		t.Errorf("x = %v, expected %v", p.Pos.X, step)
	}
	if math.Abs(p.VelX-cfg.Paddle.Speed) > 1e-9 {
		t.Errorf("VelX = %v, expected %v", p.VelX, cfg.Paddle.Speed)
	}

	for range 10 {
		p.Update(dt)
	}
	if math.Abs(p.Pos.X-8) > 1e-9 {
		t.Errorf("x = %v, expected to settle at 8", p.Pos.X)
	}
	if math.Abs(p.VelX) > 1e-6 {
		t.Errorf("VelX = %v, expected 0 at rest", p.VelX)
	}
}

func TestPaddleExpandIgnoresReactivation(t *testing.T) {
	p, _ := newTestPaddle(t)

	if !p.ExpandPaddle(10) {
		t.Fatal("first expand should activate")
	}
	if p.Width != 6 {
		t.Errorf("width = %v, expected 6", p.Width)
	}

	p.Update(3)
	if p.ExpandPaddle(10) {
		t.Error("second expand should be ignored")
	}
	if got := p.Effects().Remaining(EffectExpand); math.Abs(got-7) > 1e-9 {
		t.Errorf("remaining = %v, expected 7", got)
	}

	p.Update(7)
	if p.IsExpanded() || p.Width != 4 {
		t.Errorf("expanded=%v width=%v, expected reverted to 4", p.IsExpanded(), p.Width)
	}
}

func TestPaddleWidthComposition(t *testing.T) {
	p, _ := newTestPaddle(t)

	p.ExpandPaddle(10)
	p.Shrink(5)
	if p.Width != 3 {
		t.Errorf("expanded+shrunk width = %v, expected 3", p.Width)
	}

	p.Update(3)
	p.Shrink(5) // Reset policy restarts the timer
	p.Update(4)
	if !p.IsShrunk() {
		t.Error("shrink should still run after reset")
	}

	p.Update(1.5)
	if p.IsShrunk() {
		t.Error("shrink should have expired")
	}
	if p.Width != 6 {
		t.Errorf("width = %v, expected 6 with expand only", p.Width)
	}
}

func TestPaddleReclampedAfterWidthChange(t *testing.T) {
	p, cfg := newTestPaddle(t)
	p.SetTargetX(100)
	for range 30 {
		p.Update(0.1)
	}
	p.ExpandPaddle(10)

	maxX := cfg.Field.MaxX - p.Width/2
	if p.Pos.X > maxX+1e-9 {
		t.Errorf("x = %v, expected <= %v after expanding", p.Pos.X, maxX)
	}
	if p.TargetX > maxX+1e-9 {
		t.Errorf("target = %v, expected <= %v after expanding", p.TargetX, maxX)
	}
}

func TestPaddleSetBaseWidthKeepsEffects(t *testing.T) {
	p, _ := newTestPaddle(t)
	p.ExpandPaddle(10)
	p.SetBaseWidth(3)
	if p.Width != 4.5 {
		t.Errorf("width = %v, expected 4.5", p.Width)
	}
	p.ClearEffects()
	if p.Width != 3 {
		t.Errorf("width = %v, expected 3 after clearing effects", p.Width)
	}
}

func TestPaddleLaserCooldown(t *testing.T) {
	w := newTestWorld(t)
	p := w.Paddle()

	if p.FireLaser(w) {
		t.Fatal("firing without laser effect should fail")
	}
	if !p.ActivateLaser(10) {
		t.Fatal("laser should activate")
	}
	if p.ActivateLaser(10) {
		t.Error("second activation should be ignored")
	}

	if !p.FireLaser(w) {
		t.Fatal("first shot should fire")
	}
	if p.FireLaser(w) {
		t.Error("shot during cooldown should fail")
	}
	if len(w.pendingLasers) != 1 {
		t.Errorf("queued lasers = %d, expected 1", len(w.pendingLasers))
	}
	if len(w.Lasers()) != 0 {
		t.Errorf("live lasers = %d, expected spawn to wait for the sweep", len(w.Lasers()))
	}

	p.Update(0.31)
	if !p.FireLaser(w) {
		t.Error("shot after cooldown should fire")
	}
}
