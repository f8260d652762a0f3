package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads the simulation configuration.
// Search order: customPath -> ~/.brick3d/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files are fine.
// The result is always normalized.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBreakout(data)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := ParseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil
	}
	return cfg, nil
}

// ParseBreakout decodes YAML on top of DefaultBreakoutConfig and normalizes
// the result.
func ParseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brick3d", "configs", filename)
}

// Normalize clamps nonsensical values instead of rejecting them.
func (c *BreakoutConfig) Normalize() {
	if c.Field.MaxX <= c.Field.MinX {
		c.Field.MinX, c.Field.MaxX = -11, 11
	}
	if c.Field.Ceiling <= c.Field.PaddleY {
		c.Field.Ceiling = c.Field.PaddleY + 18
	}
	if c.Field.Floor >= c.Field.PaddleY {
		c.Field.Floor = c.Field.PaddleY - 3
	}
	if c.Field.Front <= c.Field.Back {
		c.Field.Back, c.Field.Front = -1.5, 1.5
	}

	c.Ball.MinVerticalRatio = clampF(c.Ball.MinVerticalRatio, 0, 0.95)
	if c.Ball.MaxSpeedFactor < 1 {
		c.Ball.MaxSpeedFactor = 1
	}
	if c.Ball.SpeedRatchet < 1 {
		c.Ball.SpeedRatchet = 1
	}
	c.Ball.PaddleAngle = clampF(c.Ball.PaddleAngle, 0, 85)
	c.Ball.LaunchAngle = clampF(c.Ball.LaunchAngle, 0, 85)
	c.Ball.CrazyChance = clampF(c.Ball.CrazyChance, 0, 1)

	if c.Paddle.Speed <= 0 {
		c.Paddle.Speed = 24
	}
	if c.Paddle.ExpandFactor < 1 {
		c.Paddle.ExpandFactor = 1
	}
	c.Paddle.ShrinkFactor = clampF(c.Paddle.ShrinkFactor, 0.1, 1)

	c.Effects.SlowFactor = clampF(c.Effects.SlowFactor, 0.1, 1)
	c.PowerUps.DropChance = clampF(c.PowerUps.DropChance, 0, 1)

	if c.Gameplay.Lives < 1 {
		c.Gameplay.Lives = 1
	}
	if c.Gameplay.StartLevel < 1 {
		c.Gameplay.StartLevel = 1
	}

	d := &c.Difficulty
	d.BallRadius.Rate = abs(d.BallRadius.Rate)
	d.PaddleWidth.Rate = abs(d.PaddleWidth.Rate)
	d.BallSpeed.Rate = abs(d.BallSpeed.Rate)
	d.BrickHits.Rate = abs(d.BrickHits.Rate)
	// Shrinking curves have a floor below base, growing curves a ceiling above.
	d.BallRadius.Limit = clampF(d.BallRadius.Limit, 0.01, d.BallRadius.Base)
	d.PaddleWidth.Limit = clampF(d.PaddleWidth.Limit, 0.5, d.PaddleWidth.Base)
	if d.BallSpeed.Limit < d.BallSpeed.Base {
		d.BallSpeed.Limit = d.BallSpeed.Base
	}
	if d.BrickHits.Limit < d.BrickHits.Base {
		d.BrickHits.Limit = d.BrickHits.Base
	}
	for i := range d.ObstacleBands {
		d.ObstacleBands[i].Chance = clampF(d.ObstacleBands[i].Chance, 0, 1)
	}
	d.PowerUpChance = clampF(d.PowerUpChance, 0, 1)
}

// ApplyBreakoutPreset modifies the config for a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.BallSpeed.Base = 7.5
		cfg.Difficulty.PaddleWidth.Base = 5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.BallSpeed.Base = 11
		cfg.Difficulty.PaddleWidth.Base = 3.2
		cfg.Difficulty.BrickHits.Base = 1.3
	}
	cfg.Normalize()
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
