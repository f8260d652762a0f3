package config

import (
	"math"
	"testing"
)

func TestModifiersMonotone(t *testing.T) {
	cfg := DefaultBreakoutConfig().Difficulty
	engine := NewDifficultyEngine(cfg)

	prev := engine.Modifiers(1)
	for level := 2; level <= 200; level++ {
		cur := engine.Modifiers(level)

		if cur.BallSpeed < prev.BallSpeed {
			t.Fatalf("level %d: ball speed decreased %f -> %f", level, prev.BallSpeed, cur.BallSpeed)
		}
		if cur.BallSpeed > cfg.BallSpeed.Limit {
			t.Fatalf("level %d: ball speed %f exceeds max %f", level, cur.BallSpeed, cfg.BallSpeed.Limit)
		}
		if cur.PaddleWidth > prev.PaddleWidth {
			t.Fatalf("level %d: paddle width increased %f -> %f", level, prev.PaddleWidth, cur.PaddleWidth)
		}
		if cur.PaddleWidth < cfg.PaddleWidth.Limit {
			t.Fatalf("level %d: paddle width %f below min %f", level, cur.PaddleWidth, cfg.PaddleWidth.Limit)
		}
		if cur.BallRadius < cfg.BallRadius.Limit {
			t.Fatalf("level %d: ball radius %f below min %f", level, cur.BallRadius, cfg.BallRadius.Limit)
		}
		if cur.BrickHitsMultiplier > cfg.BrickHits.Limit {
			t.Fatalf("level %d: multiplier %f above max %f", level, cur.BrickHitsMultiplier, cfg.BrickHits.Limit)
		}
		prev = cur
	}
}

func TestModifiersFormulas(t *testing.T) {
	engine := NewDifficultyEngine(DefaultBreakoutConfig().Difficulty)

	m := engine.Modifiers(5)
	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"ball radius", m.BallRadius, 0.35 - 4*0.01},
		{"paddle width", m.PaddleWidth, 4.0 - 4*0.1},
		{"ball speed", m.BallSpeed, 9.0 + 4*0.35},
		{"brick hits", m.BrickHitsMultiplier, 1.0 + 4*0.1},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.expected) > 1e-9 {
			t.Errorf("%s at level 5 = %f, expected %f", c.name, c.got, c.expected)
		}
	}

	// Below 1 clamps to level 1
	if engine.Modifiers(0) != engine.Modifiers(1) {
		t.Error("Modifiers(0) should equal Modifiers(1)")
	}
	if engine.Modifiers(-7) != engine.Modifiers(1) {
		t.Error("Modifiers(-7) should equal Modifiers(1)")
	}
}

func TestModifiersFrozen(t *testing.T) {
	cfg := DefaultBreakoutConfig().Difficulty
	cfg.Enabled = false
	engine := NewDifficultyEngine(cfg)

	if engine.Modifiers(12) != engine.Modifiers(1) {
		t.Error("disabled difficulty should freeze modifiers at level 1")
	}
	if len(engine.Changes(12)) != 0 {
		t.Error("disabled difficulty should report no changes")
	}
}

func TestChanges(t *testing.T) {
	engine := NewDifficultyEngine(DefaultBreakoutConfig().Difficulty)

	if changes := engine.Changes(1); len(changes) != 0 {
		t.Errorf("Changes(1) = %v, expected none", changes)
	}

	changes := engine.Changes(2)
	if len(changes) != 4 {
		t.Fatalf("Changes(2) returned %d entries, expected 4", len(changes))
	}
	for _, c := range changes {
		if c.Message == "" {
			t.Errorf("change %s has empty message", c.Field)
		}
	}

	// Ball radius saturates at level 16 (0.35 - 15*0.01 = 0.20); level 17
	// must not report it any more.
	for _, c := range engine.Changes(17) {
		if c.Field == "ball_radius" {
			t.Errorf("saturated ball radius reported at level 17: %+v", c)
		}
	}

	// Far beyond every limit nothing changes.
	if changes := engine.Changes(500); len(changes) != 0 {
		t.Errorf("Changes(500) = %v, expected none", changes)
	}
}

func TestObstacleChance(t *testing.T) {
	engine := NewDifficultyEngine(DefaultBreakoutConfig().Difficulty)

	tests := []struct {
		level    int
		expected float64
	}{
		{1, 0}, {3, 0},
		{4, 0.05}, {6, 0.05},
		{7, 0.08}, {10, 0.08},
		{11, 0.12}, {15, 0.12},
		{16, 0.15}, {99, 0.15},
	}
	for _, tc := range tests {
		if got := engine.ObstacleChance(tc.level); got != tc.expected {
			t.Errorf("ObstacleChance(%d) = %f, expected %f", tc.level, got, tc.expected)
		}
	}
}
