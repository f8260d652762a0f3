// Package breakout implements a 3D brick-breaker simulation: a ball, a
// paddle and a wall of special bricks in a box-shaped field, driven one
// fixed tick at a time.
package breakout

import (
	"github.com/vovakirdan/brick3d/internal/config"
)

// Layout grid size. Every layout fits in gridCols x gridRows.
const (
	gridCols = 12
	gridRows = 8
)

// Cell is one occupied grid position of a layout.
type Cell struct {
	Col, Row      int
	Kind          BrickKind
	ForceObstacle bool // Always replaced by an unlocked obstacle
}

// Layout is a hand-authored brick pattern.
type Layout struct {
	ID    string
	Name  string
	Boss  bool
	Cells []Cell
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'.' = empty
//	'w' = weak, 'n' = normal, 's' = strong, 'a' = armored
//	'e' = explosive, 'h' = shrink
//	'O' = forced obstacle (normal if no obstacle is unlocked yet)
//
// Rows past gridRows and columns past gridCols are ignored.
func ParseLayout(id, name string, lines []string) Layout {
	l := Layout{ID: id, Name: name}
	for row, line := range lines {
		if row >= gridRows {
			break
		}
		for col := 0; col < len(line) && col < gridCols; col++ {
			c := Cell{Col: col, Row: row}
			switch line[col] {
			case 'w':
				c.Kind = BrickWeak
			case 'n':
				c.Kind = BrickNormal
			case 's':
				c.Kind = BrickStrong
			case 'a':
				c.Kind = BrickArmored
			case 'e':
				c.Kind = BrickExplosive
			case 'h':
				c.Kind = BrickShrink
			case 'O':
				c.Kind = BrickNormal
				c.ForceObstacle = true
				l.Boss = true
			default:
				continue
			}
			l.Cells = append(l.Cells, c)
		}
	}
	return l
}

// Grid renders the layout back to its ASCII map, one string per row.
func (l Layout) Grid() []string {
	rows := make([][]byte, gridRows)
	for i := range rows {
		rows[i] = []byte("............")
	}
	for _, c := range l.Cells {
		ch := byte('n')
		switch {
		case c.ForceObstacle:
			ch = 'O'
		case c.Kind == BrickWeak:
			ch = 'w'
		case c.Kind == BrickStrong:
			ch = 's'
		case c.Kind == BrickArmored:
			ch = 'a'
		case c.Kind == BrickExplosive:
			ch = 'e'
		case c.Kind == BrickShrink:
			ch = 'h'
		}
		rows[c.Row][c.Col] = ch
	}
	out := make([]string, gridRows)
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}

var builtinLayouts = []Layout{
	ParseLayout("rows", "Rows", []string{
		"nnnnnnnnnnnn",
		"nnnnnnnnnnnn",
		"wwwwwwwwwwww",
		"wwwwwwwwwwww",
	}),
	ParseLayout("pyramid", "Pyramid", []string{
		".....nn.....",
		"....nnnn....",
		"...nnnnnn...",
		"..ssnnnnss..",
		".wwwwwwwwww.",
		"wwwwwwwwwwww",
	}),
	ParseLayout("checker", "Checker", []string{
		"n.n.n.n.n.n.",
		".n.n.n.n.n.n",
		"s.s.s.s.s.s.",
		".n.n.n.n.n.n",
		"w.w.w.w.w.w.",
	}),
	ParseLayout("diamond", "Diamond", []string{
		".....ss.....",
		"....snns....",
		"...snnnns...",
		"..snneenns..",
		"...snnnns...",
		"....snns....",
		".....ss.....",
	}),
	ParseLayout("spiral", "Spiral", []string{
		"ssssssssssss",
		"n..........s",
		"n.nnnnnnnn.s",
		"n.n......n.s",
		"n.n.eeee.n.s",
		"n.n......n..",
		"n.nnnnnnnnnn",
		"n...........",
	}),
	ParseLayout("maze", "Maze", []string{
		"a.aaaa.aaaa.",
		"a....s....a.",
		"aaaa.s.ss.a.",
		"...a...n..a.",
		".n.anene.an.",
		".n.......n..",
		".nnnnn.nnn.n",
	}),
	ParseLayout("bullseye", "Bullseye", []string{
		"..ssssssss..",
		".s........s.",
		"s..nnnnnn..s",
		"s..n.ee.n..s",
		"s..nnnnnn..s",
		".s........s.",
		"..ssssssss..",
	}),
	ParseLayout("columns", "Columns", []string{
		"s.s.s..s.s.s",
		"n.n.n..n.n.n",
		"n.n.n..n.n.n",
		"h.n.n..n.n.h",
		"n.n.n..n.n.n",
		"w.w.w..w.w.w",
	}),
	ParseLayout("inverted_pyramid", "Inverted Pyramid", []string{
		"ssssssssssss",
		".nnnnnnnnnn.",
		"..nnneennn..",
		"...nnnnnn...",
		"....wwww....",
		".....ww.....",
	}),
	ParseLayout("zigzag", "Zigzag", []string{
		"ss......ss..",
		"..nn..nn..nn",
		"....ee......",
		"ss......ss..",
		"..nn..nn..nn",
		"....hh......",
	}),
	ParseLayout("hourglass", "Hourglass", []string{
		"aaaaaaaaaaaa",
		".snnnnnnnns.",
		"..snnnnnns..",
		"....shhs....",
		"..snnnnnns..",
		".snnnnnnnns.",
		"aaaaaaaaaaaa",
	}),
	ParseLayout("cross", "Cross", []string{
		".....aa.....",
		".....ss.....",
		".....nn.....",
		"aasnneennsaa",
		".....nn.....",
		".....ss.....",
		".....aa.....",
	}),
	ParseLayout("frame", "Frame", []string{
		"aaaaaaaaaaaa",
		"a..........a",
		"a.nnnnnnnn.a",
		"a.nseeeesn.a",
		"a.nnnnnnnn.a",
		"a..........a",
		"aaaaaaaaaaaa",
	}),
	ParseLayout("stripes", "Stripes", []string{
		"ssssssssssss",
		"............",
		"nnnnneennnnn",
		"............",
		"nnnhnnnnhnnn",
		"............",
		"aaaaaaaaaaaa",
	}),
	ParseLayout("arrow", "Arrow", []string{
		".....aa.....",
		"....aeea....",
		"...ssnnss...",
		"..ss.nn.ss..",
		".ss..nn..ss.",
		".....nn.....",
		".....nn.....",
		".....ww.....",
	}),
	ParseLayout("heart", "Heart", []string{
		"..ss....ss..",
		".snns..snns.",
		"snnnnssnnnns",
		"snnnneennnns",
		".snnnnnnnns.",
		"..snnnnnns..",
		"...snnnns...",
		"....snns....",
	}),
	ParseLayout("wave", "Wave", []string{
		"nn....nn....",
		"..nn....nn..",
		"....nn....nn",
		"ss....ss....",
		"..ee....ee..",
		"....ss....ss",
	}),
	ParseLayout("fortress", "Fortress", []string{
		"OOOOOOOOOOOO",
		"O.aaaaaaaa.O",
		"O.asseessa.O",
		"O.asnnnnsa.O",
		"O.aaaaaaaa.O",
		"O..........O",
		"OOOO....OOOO",
	}),
	ParseLayout("twin_towers", "Twin Towers", []string{
		".aa......aa.",
		".as......sa.",
		".an..ee..na.",
		".an......na.",
		".an..hh..na.",
		".as......sa.",
		".aa......aa.",
		"nnnnnnnnnnnn",
	}),
	ParseLayout("citadel", "Citadel", []string{
		"OaOaOaOaOaOa",
		"aeaeaeaeaeae",
		"ssssssssssss",
		"OnnnnOOnnnnO",
		"ssssssssssss",
		"aaaaaaaaaaaa",
		"O.O.O..O.O.O",
	}),
}

// LevelCount returns the number of distinct layouts.
func LevelCount() int {
	return len(builtinLayouts)
}

// LayoutFor returns the layout used by a level. Levels below 1 use the
// first layout, levels past the catalog reuse the last one.
func LayoutFor(level int) Layout {
	idx := min(max(level, 1), len(builtinLayouts)) - 1
	return builtinLayouts[idx]
}

// LayoutName returns the display name of a level's layout.
func LayoutName(level int) string {
	return LayoutFor(level).Name
}

// BrickPlacement is a brick position and kind produced by the generator.
type BrickPlacement struct {
	X, Y, Z float64
	Kind    BrickKind
}

// LevelGenerator turns a level number into brick placements.
type LevelGenerator struct {
	difficulty *config.DifficultyEngine
	bricks     config.BricksConfig
	field      config.FieldConfig
}

// NewLevelGenerator creates a generator using cfg's brick geometry.
func NewLevelGenerator(difficulty *config.DifficultyEngine, cfg *config.BreakoutConfig) *LevelGenerator {
	return &LevelGenerator{
		difficulty: difficulty,
		bricks:     cfg.Bricks,
		field:      cfg.Field,
	}
}

// CreateLevel returns the placements for a level in row-major order.
func (g *LevelGenerator) CreateLevel(level int, rng *RNG) []BrickPlacement {
	layout := LayoutFor(level)
	out := make([]BrickPlacement, 0, len(layout.Cells))
	for _, c := range layout.Cells {
		out = append(out, BrickPlacement{
			X:    (float64(c.Col) - float64(gridCols-1)/2) * g.bricks.SpacingX,
			Y:    g.field.BrickTop - float64(c.Row)*g.bricks.SpacingY,
			Z:    0,
			Kind: g.AddSpecialBricks(c.Kind, level, c.ForceObstacle, rng),
		})
	}
	return out
}

// UnlockedObstacles lists the obstacle kinds available at a level.
func (g *LevelGenerator) UnlockedObstacles(level int) []BrickKind {
	u := g.difficulty.Unlocks()
	var kinds []BrickKind
	if level >= u.Unbreakable {
		kinds = append(kinds, BrickUnbreakable)
	}
	if level >= u.Warp {
		kinds = append(kinds, BrickWarp)
	}
	if level >= u.Reverse {
		kinds = append(kinds, BrickReverse)
	}
	if level >= u.Crazy {
		kinds = append(kinds, BrickCrazy)
	}
	return kinds
}

// AddSpecialBricks decides the final kind of one generated brick. A forced
// cell takes a uniformly chosen unlocked obstacle. Otherwise one roll picks
// an obstacle below the level's obstacle chance, a power-up brick inside
// the following power-up band, and the base kind above that.
func (g *LevelGenerator) AddSpecialBricks(base BrickKind, level int, forceObstacle bool, rng *RNG) BrickKind {
	obstacles := g.UnlockedObstacles(level)
	if forceObstacle && len(obstacles) > 0 {
		return obstacles[rng.Intn(len(obstacles))]
	}

	chance := g.difficulty.ObstacleChance(level)
	r := rng.Float64()
	if r < chance && len(obstacles) > 0 {
		return obstacles[rng.Intn(len(obstacles))]
	}
	if r < chance+g.difficulty.PowerUpChance() {
		return BrickPowerUp
	}
	return base
}
