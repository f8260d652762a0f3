package breakout

import (
	"testing"

	"github.com/vovakirdan/brick3d/internal/config"
)

func newTestGenerator(t *testing.T) (*LevelGenerator, *config.BreakoutConfig) {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	return NewLevelGenerator(config.NewDifficultyEngine(cfg.Difficulty), &cfg), &cfg
}

func TestLayoutCatalog(t *testing.T) {
	if LevelCount() != 20 {
		t.Fatalf("LevelCount = %d, expected 20", LevelCount())
	}

	seen := make(map[string]bool)
	for i := 1; i <= LevelCount(); i++ {
		l := LayoutFor(i)
		if len(l.Cells) == 0 {
			t.Errorf("level %d (%s) has no bricks", i, l.Name)
		}
		if seen[l.ID] {
			t.Errorf("duplicate layout id %q", l.ID)
		}
		seen[l.ID] = true
		for _, c := range l.Cells {
			if c.Col < 0 || c.Col >= gridCols || c.Row < 0 || c.Row >= gridRows {
				t.Errorf("%s: cell %d,%d outside grid", l.ID, c.Col, c.Row)
			}
		}
	}

	bosses := 0
	for i := 1; i <= LevelCount(); i++ {
		if LayoutFor(i).Boss {
			bosses++
		}
	}
	if bosses != 2 {
		t.Errorf("boss layouts = %d, expected 2", bosses)
	}
}

func TestLayoutClamping(t *testing.T) {
	tests := []struct {
		level    int
		expected string
	}{
		{-3, "Rows"},
		{0, "Rows"},
		{1, "Rows"},
		{2, "Pyramid"},
		{20, "Citadel"},
		{21, "Citadel"},
		{500, "Citadel"},
	}
	for _, tt := range tests {
		if got := LayoutName(tt.level); got != tt.expected {
			t.Errorf("LayoutName(%d) = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLayout(t *testing.T) {
	l := ParseLayout("t", "Test", []string{
		"wn.sa",
		"eh.O.",
	})
	expected := []Cell{
		{0, 0, BrickWeak, false},
		{1, 0, BrickNormal, false},
		{3, 0, BrickStrong, false},
		{4, 0, BrickArmored, false},
		{0, 1, BrickExplosive, false},
		{1, 1, BrickShrink, false},
		{3, 1, BrickNormal, true},
	}
	if len(l.Cells) != len(expected) {
		t.Fatalf("cells = %d, expected %d", len(l.Cells), len(expected))
	}
	for i, c := range expected {
		if l.Cells[i] != c {
			t.Errorf("cell %d = %+v, expected %+v", i, l.Cells[i], c)
		}
	}
	if !l.Boss {
		t.Error("layout with forced obstacles should be a boss layout")
	}
}

func TestLevelOneHasNoObstacles(t *testing.T) {
	g, _ := newTestGenerator(t)
	for seed := int64(1); seed <= 200; seed++ {
		for _, pl := range g.CreateLevel(1, NewRNG(seed)) {
			if pl.Kind.IsObstacle() {
				t.Fatalf("seed %d: level 1 produced %s", seed, pl.Kind)
			}
		}
	}
}

func TestUnlockedObstacles(t *testing.T) {
	g, _ := newTestGenerator(t)
	tests := []struct {
		level    int
		expected []BrickKind
	}{
		{1, nil},
		{3, nil},
		{4, []BrickKind{BrickUnbreakable}},
		{5, []BrickKind{BrickUnbreakable, BrickWarp}},
		{7, []BrickKind{BrickUnbreakable, BrickWarp, BrickReverse}},
		{9, []BrickKind{BrickUnbreakable, BrickWarp, BrickReverse, BrickCrazy}},
	}
	for _, tt := range tests {
		got := g.UnlockedObstacles(tt.level)
		if len(got) != len(tt.expected) {
			t.Errorf("level %d: got %v, expected %v", tt.level, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("level %d: got %v, expected %v", tt.level, got, tt.expected)
				break
			}
		}
	}
}

func TestForcedObstacle(t *testing.T) {
	g, _ := newTestGenerator(t)
	rng := NewRNG(9)

	for range 100 {
		if k := g.AddSpecialBricks(BrickNormal, 9, true, rng); !k.IsObstacle() {
			t.Fatalf("forced cell at level 9 produced %s", k)
		}
	}

	// Nothing unlocked: the forced flag falls back to the normal roll.
	for range 100 {
		if k := g.AddSpecialBricks(BrickArmored, 1, true, rng); k != BrickArmored && k != BrickPowerUp {
			t.Fatalf("forced cell at level 1 produced %s", k)
		}
	}
}

func TestSpecialBrickRates(t *testing.T) {
	g, _ := newTestGenerator(t)
	rng := NewRNG(77)

	const draws = 50000
	obstacles, powerups := 0, 0
	for range draws {
		k := g.AddSpecialBricks(BrickNormal, 16, false, rng)
		switch {
		case k.IsObstacle():
			obstacles++
		case k == BrickPowerUp:
			powerups++
		}
	}
	if got := float64(obstacles) / draws; got < 0.14 || got > 0.16 {
		t.Errorf("obstacle rate = %.4f, expected about 0.15", got)
	}
	if got := float64(powerups) / draws; got < 0.11 || got > 0.13 {
		t.Errorf("power-up rate = %.4f, expected about 0.12", got)
	}
}

func TestPlacementsInsideField(t *testing.T) {
	g, cfg := newTestGenerator(t)
	f := cfg.Field
	for level := 1; level <= LevelCount(); level++ {
		for _, pl := range g.CreateLevel(level, NewRNG(int64(level))) {
			if pl.X-cfg.Bricks.Width/2 < f.MinX || pl.X+cfg.Bricks.Width/2 > f.MaxX {
				t.Errorf("level %d: brick x %v outside field", level, pl.X)
			}
			if pl.Y+cfg.Bricks.Height/2 > f.Ceiling || pl.Y < f.PaddleY+5 {
				t.Errorf("level %d: brick y %v outside brick area", level, pl.Y)
			}
			if pl.Z != 0 {
				t.Errorf("level %d: brick z = %v, expected 0", level, pl.Z)
			}
		}
	}
}

func TestCreateLevelDeterministic(t *testing.T) {
	g, _ := newTestGenerator(t)
	a := g.CreateLevel(12, NewRNG(5))
	b := g.CreateLevel(12, NewRNG(5))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestLayoutGridRoundTrip(t *testing.T) {
	for level := 1; level <= LevelCount(); level++ {
		l := LayoutFor(level)
		back := ParseLayout(l.ID, l.Name, l.Grid())
		if len(back.Cells) != len(l.Cells) {
			t.Errorf("%s: %d cells after round trip, expected %d", l.ID, len(back.Cells), len(l.Cells))
			continue
		}
		for i := range l.Cells {
			if back.Cells[i] != l.Cells[i] {
				t.Errorf("%s: cell %d = %+v, expected %+v", l.ID, i, back.Cells[i], l.Cells[i])
				break
			}
		}
		if back.Boss != l.Boss {
			t.Errorf("%s: boss = %v, expected %v", l.ID, back.Boss, l.Boss)
		}
	}
}
