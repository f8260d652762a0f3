package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := ParseBreakout(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseBreakout(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded YAML and DefaultBreakoutConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nball:\n  jitter: 0.2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Ball.Jitter != 0.2 {
		t.Errorf("Jitter = %f, expected 0.2", cfg.Ball.Jitter)
	}
	// Untouched sections keep defaults
	if cfg.Paddle.Speed != DefaultBreakoutConfig().Paddle.Speed {
		t.Errorf("Paddle.Speed = %f, expected default", cfg.Paddle.Speed)
	}
}

func TestLoadBreakoutErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay: [oops"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadBreakout(path)
	if err == nil {
		t.Error("expected parse error for malformed YAML")
	}
	if cfg.Gameplay.Lives != DefaultBreakoutConfig().Gameplay.Lives {
		t.Error("failed load should still return usable defaults")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Gameplay.Lives = -3
	cfg.Ball.MinVerticalRatio = 4
	cfg.Difficulty.PaddleWidth.Limit = 99
	cfg.Difficulty.BallSpeed.Limit = 1
	cfg.Difficulty.BallSpeed.Rate = -0.5
	cfg.Field.MinX, cfg.Field.MaxX = 5, -5

	cfg.Normalize()

	if cfg.Gameplay.Lives != 1 {
		t.Errorf("Lives = %d, expected 1", cfg.Gameplay.Lives)
	}
	if cfg.Ball.MinVerticalRatio != 0.95 {
		t.Errorf("MinVerticalRatio = %f, expected 0.95", cfg.Ball.MinVerticalRatio)
	}
	if cfg.Difficulty.PaddleWidth.Limit != cfg.Difficulty.PaddleWidth.Base {
		t.Errorf("paddle width floor %f should clamp to base", cfg.Difficulty.PaddleWidth.Limit)
	}
	if cfg.Difficulty.BallSpeed.Limit != cfg.Difficulty.BallSpeed.Base {
		t.Errorf("ball speed ceiling %f should clamp to base", cfg.Difficulty.BallSpeed.Limit)
	}
	if cfg.Difficulty.BallSpeed.Rate != 0.5 {
		t.Errorf("ball speed rate = %f, expected 0.5", cfg.Difficulty.BallSpeed.Rate)
	}
	if cfg.Field.MinX >= cfg.Field.MaxX {
		t.Error("inverted field bounds should be reset")
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should return empty")
	}
}
