package breakout

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotVersion is bumped whenever the Snapshot layout changes.
const SnapshotVersion = 1

// BallState is the serialized form of a ball.
type BallState struct {
	Pos       [3]float64 `msgpack:"p"`
	Vel       [3]float64 `msgpack:"v"`
	Radius    float64    `msgpack:"r"`
	Speed     float64    `msgpack:"s"`
	Attached  bool       `msgpack:"a"`
	SlowLeft  float64    `msgpack:"sl"`
	CrazyLeft float64    `msgpack:"cl"`
}

// BrickState is the serialized form of a live brick.
type BrickState struct {
	Kind       int        `msgpack:"k"`
	Pos        [3]float64 `msgpack:"p"`
	Hits       int        `msgpack:"h"`
	HasPowerUp bool       `msgpack:"u"`
}

// PowerUpState is the serialized form of a falling pickup.
type PowerUpState struct {
	Kind int        `msgpack:"k"`
	Pos  [3]float64 `msgpack:"p"`
	Age  float64    `msgpack:"a"`
}

// Snapshot is a point-in-time copy of the world used for determinism checks,
// save files and inspection.
type Snapshot struct {
	Version    int     `msgpack:"ver"`
	Mode       string  `msgpack:"mode"`
	Tick       uint64  `msgpack:"tick"`
	State      string  `msgpack:"state"`
	Score      int     `msgpack:"score"`
	Lives      int     `msgpack:"lives"`
	Level      int     `msgpack:"level"`
	Layout     string  `msgpack:"layout"`
	ServeDelay float64 `msgpack:"serve"`
	Destroyed  int     `msgpack:"destroyed"`
	Reversed   float64 `msgpack:"reversed"`

	PaddleX      float64 `msgpack:"px"`
	PaddleTarget float64 `msgpack:"pt"`
	PaddleWidth  float64 `msgpack:"pw"`
	ExpandLeft   float64 `msgpack:"pe"`
	LaserLeft    float64 `msgpack:"pl"`
	ShrinkLeft   float64 `msgpack:"ps"`

	Balls   []BallState    `msgpack:"balls"`
	Bricks  []BrickState   `msgpack:"bricks"`
	Pickups []PowerUpState `msgpack:"pickups"`
	Lasers  [][3]float64   `msgpack:"lasers"`

	RNGState uint64 `msgpack:"rng"`
}

func vec3(x, y, z float64) [3]float64 { return [3]float64{x, y, z} }

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Version:    SnapshotVersion,
		Mode:       w.mode.String(),
		Tick:       w.tick,
		State:      w.state,
		Score:      w.score,
		Lives:      w.lives,
		Level:      w.level,
		Layout:     LayoutName(w.level),
		ServeDelay: w.serveDelay,
		Destroyed:  w.destroyed,
		Reversed:   w.reverse.Remaining(EffectReverse),
	}
	if w.rng != nil {
		s.RNGState = w.rng.State()
	}

	if p := w.paddle; p != nil {
		s.PaddleX = p.Pos.X
		s.PaddleTarget = p.TargetX
		s.PaddleWidth = p.Width
		s.ExpandLeft = p.effects.Remaining(EffectExpand)
		s.LaserLeft = p.effects.Remaining(EffectLaser)
		s.ShrinkLeft = p.effects.Remaining(EffectShrink)
	}

	for _, b := range w.balls {
		s.Balls = append(s.Balls, BallState{
			Pos:       vec3(b.Pos.X, b.Pos.Y, b.Pos.Z),
			Vel:       vec3(b.Vel.X, b.Vel.Y, b.Vel.Z),
			Radius:    b.Radius,
			Speed:     b.Speed,
			Attached:  b.Attached,
			SlowLeft:  b.effects.Remaining(EffectSlow),
			CrazyLeft: b.effects.Remaining(EffectCrazy),
		})
	}
	for _, b := range w.bricks {
		if b.Destroyed {
			continue
		}
		s.Bricks = append(s.Bricks, BrickState{
			Kind:       int(b.Kind),
			Pos:        vec3(b.Pos.X, b.Pos.Y, b.Pos.Z),
			Hits:       b.Hits,
			HasPowerUp: b.HasPowerUp,
		})
	}
	for _, p := range w.pickups {
		s.Pickups = append(s.Pickups, PowerUpState{
			Kind: int(p.Kind),
			Pos:  vec3(p.Pos.X, p.Pos.Y, p.Pos.Z),
			Age:  p.Age,
		})
	}
	for _, l := range w.lasers {
		s.Lasers = append(s.Lasers, vec3(l.Pos.X, l.Pos.Y, l.Pos.Z))
	}
	return s
}

// Encode serializes the snapshot with msgpack.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a msgpack snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot: unsupported version %d", s.Version)
	}
	return s, nil
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixI(s.Score)
	mixI(s.Lives)
	mixI(s.Level)
	mixI(s.Destroyed)
	mixF(s.ServeDelay)
	mixF(s.Reversed)
	for _, c := range s.State {
		mix(uint64(c)) //#nosec G115 -- hash computation
	}

	mixF(s.PaddleX)
	mixF(s.PaddleTarget)
	mixF(s.PaddleWidth)
	mixF(s.ExpandLeft)
	mixF(s.LaserLeft)
	mixF(s.ShrinkLeft)

	for _, b := range s.Balls {
		for _, f := range b.Pos {
			mixF(f)
		}
		for _, f := range b.Vel {
			mixF(f)
		}
		mixF(b.Radius)
		mixF(b.Speed)
		mixB(b.Attached)
		mixF(b.SlowLeft)
		mixF(b.CrazyLeft)
	}
	for _, b := range s.Bricks {
		mixI(b.Kind)
		mixI(b.Hits)
		mixB(b.HasPowerUp)
		for _, f := range b.Pos {
			mixF(f)
		}
	}
	for _, p := range s.Pickups {
		mixI(p.Kind)
		mixF(p.Age)
		for _, f := range p.Pos {
			mixF(f)
		}
	}
	for _, l := range s.Lasers {
		for _, f := range l {
			mixF(f)
		}
	}

	mix(s.RNGState)
	return h
}
