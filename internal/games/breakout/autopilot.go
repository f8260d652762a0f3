package breakout

import (
	"math"

	"github.com/vovakirdan/brick3d/internal/core"
)

// Autopilot produces input frames that keep the paddle under the most
// urgent ball. It drives headless simulations.
type Autopilot struct {
	// Offset shifts the aim point from the paddle centre, in paddle
	// half-widths, to steer rebounds.
	Offset float64
}

// Next returns the input for the next tick of w.
func (a *Autopilot) Next(w *World) core.InputFrame {
	in := core.NewInputFrame()
	switch w.Phase() {
	case StateServe:
		if w.ServeDelay() <= 0 {
			in.Set(core.ActionLaunch)
		}
		return in
	case StatePlaying:
	default:
		return in
	}

	p := w.Paddle()
	target, ok := a.target(w)
	if !ok {
		return in
	}
	target -= a.Offset * p.Width / 2

	deadzone := w.Config().Paddle.KeyNudge / 2
	dir := 0
	switch {
	case target < p.TargetX-deadzone:
		dir = -1
	case target > p.TargetX+deadzone:
		dir = 1
	}
	if w.ControlsReversed() {
		dir = -dir
	}
	switch dir {
	case -1:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	}
	return in
}

// Play steps w until the run is over or maxTicks ticks have passed. It
// returns the number of ticks stepped.
func (a *Autopilot) Play(w *World, maxTicks int) int {
	n := 0
	for n < maxTicks && !w.finished() {
		w.Step(a.Next(w))
		n++
	}
	return n
}

// target picks the X to move to: where the lowest descending ball will
// cross the paddle line, else the lowest pickup, else the lowest ball.
func (a *Autopilot) target(w *World) (float64, bool) {
	f := w.Config().Field
	top := w.Paddle().Top()

	var best *Ball
	for _, b := range w.Balls() {
		if !b.Free() || b.Vel.Y >= 0 {
			continue
		}
		if best == nil || b.Pos.Y < best.Pos.Y {
			best = b
		}
	}
	if best != nil {
		t := (best.Pos.Y - best.Radius - top) / -best.Vel.Y
		x := best.Pos.X + best.Vel.X*math.Max(0, t)
		return foldInto(x, f.MinX+best.Radius, f.MaxX-best.Radius), true
	}

	var pick *PowerUp
	for _, p := range w.Pickups() {
		if p.Alive() && (pick == nil || p.Pos.Y < pick.Pos.Y) {
			pick = p
		}
	}
	if pick != nil {
		return pick.Pos.X, true
	}

	for _, b := range w.Balls() {
		if b.Free() && (best == nil || b.Pos.Y < best.Pos.Y) {
			best = b
		}
	}
	if best != nil {
		return best.Pos.X, true
	}
	return 0, false
}

// foldInto reflects x back into [lo, hi] as a ball bouncing between two
// walls would.
func foldInto(x, lo, hi float64) float64 {
	width := hi - lo
	if width <= 0 {
		return lo
	}
	period := 2 * width
	m := math.Mod(x-lo, period)
	if m < 0 {
		m += period
	}
	if m > width {
		m = period - m
	}
	return lo + m
}
