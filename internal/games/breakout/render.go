package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/brick3d/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	CrazyChar    = '◉'
	LaserChar    = '|'
	BorderVert   = '│'
	BorderHoriz  = '─'
	minScreenW   = 30
	minScreenH   = 15
	hudRows      = 2
	footerRows   = 1
	fieldPadding = 1 // Border column on each side
)

// Glyph returns the display character for a brick of this kind with the
// given hits left.
func (k BrickKind) Glyph(hits int) rune {
	switch k {
	case BrickWeak:
		return '░'
	case BrickNormal:
		if hits > 1 {
			return '▓'
		}
		return '▒'
	case BrickStrong:
		if hits > 1 {
			return '▓'
		}
		return '▒'
	case BrickArmored:
		if hits > 1 {
			return '█'
		}
		return '▓'
	case BrickExplosive:
		return '*'
	case BrickPowerUp:
		return '?'
	case BrickUnbreakable:
		return '#'
	case BrickWarp:
		return '@'
	case BrickReverse:
		return '~'
	case BrickCrazy:
		return '%'
	case BrickShrink:
		return '-'
	default:
		return '?'
	}
}

// Color returns the display color of the brick kind.
func (k BrickKind) Color() core.Color {
	switch k {
	case BrickWeak:
		return core.ColorGray
	case BrickNormal:
		return core.ColorBlue
	case BrickStrong:
		return core.ColorCyan
	case BrickArmored:
		return core.ColorWhite
	case BrickExplosive:
		return core.ColorRed
	case BrickPowerUp:
		return core.ColorGreen
	case BrickUnbreakable:
		return core.ColorGray
	case BrickWarp:
		return core.ColorMagenta
	case BrickReverse:
		return core.ColorYellow
	case BrickCrazy:
		return core.ColorBrightMagenta
	case BrickShrink:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// viewport maps the X/Y plane of the field onto screen cells. Depth is
// dropped: the view looks straight down the Z axis.
type viewport struct {
	minX, maxX     float64
	floor, ceiling float64
	left, top      int
	cols, rows     int
}

func newViewport(w *World, width, height int) viewport {
	f := w.cfg.Field
	return viewport{
		minX:    f.MinX,
		maxX:    f.MaxX,
		floor:   f.PaddleY - 1,
		ceiling: f.Ceiling,
		left:    fieldPadding,
		top:     hudRows,
		cols:    width - 2*fieldPadding,
		rows:    height - hudRows - footerRows,
	}
}

func (v viewport) col(x float64) int {
	c := int(math.Floor((x - v.minX) / (v.maxX - v.minX) * float64(v.cols)))
	return v.left + core.Clamp(c, 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	r := int(math.Floor((v.ceiling - y) / (v.ceiling - v.floor) * float64(v.rows)))
	return v.top + core.Clamp(r, 0, v.rows-1)
}

// span returns the first and last column covered by [x-w/2, x+w/2].
func (v viewport) span(x, w float64) (int, int) {
	from := v.col(x - w/2)
	to := v.col(x + w/2 - 1e-9)
	if to < from {
		to = from
	}
	return from, to
}

// Render draws a top-down projection of the world.
func (w *World) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if w.paddle == nil {
		return
	}

	v := newViewport(w, dst.Width(), dst.Height())

	w.renderHUD(dst)
	w.renderBorders(dst, v)
	w.renderBricks(dst, v)
	w.renderPickups(dst, v)
	w.renderLasers(dst, v)
	w.renderPaddle(dst, v)
	w.renderBalls(dst, v)
	w.renderOverlay(dst)
}

func (w *World) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", w.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", w.lives))

	var levelText string
	if w.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", w.level)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", w.level, LevelCount())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if effects := w.effectsString(); effects != "" {
		dst.DrawText(1, 1, effects)
		return
	}
	for x := range dst.Width() {
		dst.Set(x, 1, BorderHoriz)
	}
}

// effectsString builds a compact "Name(secs)" list of running effects.
func (w *World) effectsString() string {
	var parts []string
	for _, e := range w.ActiveEffects() {
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Kind, int(math.Ceil(e.Remaining))))
	}
	return strings.Join(parts, " ")
}

func (w *World) renderBorders(dst *core.Screen, v viewport) {
	for y := v.top; y < v.top+v.rows; y++ {
		dst.Set(0, y, BorderVert)
		dst.Set(dst.Width()-1, y, BorderVert)
	}
}

func (w *World) renderBricks(dst *core.Screen, v viewport) {
	for _, b := range w.bricks {
		if b.Destroyed {
			continue
		}
		color := b.Kind.Color()
		if b.Shaking() {
			color = core.ColorBrightWhite
		}
		glyph := b.Kind.Glyph(b.Hits)
		row := v.row(b.Pos.Y)
		from, to := v.span(b.Pos.X, b.Size.X)
		for x := from; x <= to; x++ {
			dst.SetColor(x, row, glyph, color)
		}
	}
}

func (w *World) renderPickups(dst *core.Screen, v viewport) {
	for _, p := range w.pickups {
		if p.Alive() {
			dst.SetColor(v.col(p.Pos.X), v.row(p.Pos.Y), p.Kind.Glyph(), core.ColorBrightGreen)
		}
	}
}

func (w *World) renderLasers(dst *core.Screen, v viewport) {
	for _, l := range w.lasers {
		if !l.Dead {
			dst.SetColor(v.col(l.Pos.X), v.row(l.Pos.Y), LaserChar, core.ColorBrightRed)
		}
	}
}

func (w *World) renderPaddle(dst *core.Screen, v viewport) {
	color := core.ColorBrightCyan
	if w.paddle.HasLaser() {
		color = core.ColorBrightRed
	}
	row := v.row(w.paddle.Pos.Y)
	from, to := v.span(w.paddle.Pos.X, w.paddle.Width)
	for x := from; x <= to; x++ {
		dst.SetColor(x, row, PaddleChar, color)
	}
}

func (w *World) renderBalls(dst *core.Screen, v viewport) {
	for _, b := range w.balls {
		if b.Lost {
			continue
		}
		glyph, color := BallChar, core.ColorBrightWhite
		if b.IsCrazy() {
			glyph, color = CrazyChar, core.ColorBrightMagenta
		} else if b.IsSlowed() {
			color = core.ColorBrightBlue
		}
		dst.SetColor(v.col(b.Pos.X), v.row(b.Pos.Y), glyph, color)
	}
}

func (w *World) renderOverlay(dst *core.Screen) {
	footer := dst.Height() - 1
	switch w.state {
	case StateServe:
		if w.serveDelay > 0 {
			dst.DrawTextCentered(footer, "Get ready...")
		} else {
			dst.DrawTextCentered(footer, "Press SPACE to launch")
		}
		for i, c := range w.changes {
			dst.DrawTextCenteredColor(dst.Height()/2+i, c.Message, core.ColorBrightYellow)
		}

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", w.score))

	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", w.score))

	default:
		if w.ControlsReversed() {
			dst.DrawTextCentered(footer, "Controls reversed!")
		}
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ')
	dst.DrawBox(rect)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
