package breakout

import (
	"testing"

	"github.com/vovakirdan/brick3d/internal/config"
	"github.com/vovakirdan/brick3d/internal/core"
)

// recorder counts everything the world sends to its sinks.
type recorder struct {
	added   map[Entity]int
	removed map[Entity]int
	sounds  map[Sound]int
	bursts  int
}

func newRecorder() *recorder {
	return &recorder{
		added:   make(map[Entity]int),
		removed: make(map[Entity]int),
		sounds:  make(map[Sound]int),
	}
}

func (r *recorder) Add(e Entity) { r.added[e]++ }
func (r *recorder) Remove(e Entity) { r.removed[e]++ }
func (r *recorder) Play(s Sound) { r.sounds[s]++ }
func (r *recorder) Burst(core.Vec3, BrickKind) { r.bursts++ }
func (r *recorder) sinks() Sinks { return Sinks{Scene: r, Audio: r, Particles: r} }

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// newTestWorld returns a reset campaign world on default config.
func newTestWorld(t *testing.T, opts ...Option) *World {
	t.Helper()
	w := NewWorld(ModeCampaign, config.DefaultBreakoutConfig(), opts...)
	w.Reset(testRuntime(42))
	return w
}

// testBrick creates a brick without a power-up drop.
func testBrick(w *World, kind BrickKind, x, y float64) *Brick {
	b := NewBrick(BrickPlacement{X: x, Y: y, Kind: kind}, w.Config(), 1, w.Rand())
	b.HasPowerUp = false
	return b
}

// freeBall launches the world's served ball and places it at pos with vel.
func freeBall(w *World, pos, vel core.Vec3) *Ball {
	b := w.Balls()[0]
	b.Launch(w.Rand())
	w.state = StatePlaying
	b.Pos = pos
	b.Vel = vel
	return b
}
