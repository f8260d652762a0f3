package breakout

// EffectKind identifies a timed effect.
type EffectKind int

const (
	EffectExpand  EffectKind = iota // Paddle widened
	EffectLaser                     // Paddle fires lasers
	EffectSlow                      // Balls slowed
	EffectReverse                   // Controls mirrored
	EffectCrazy                     // Balls kicked at random
	EffectShrink                    // Paddle narrowed
)

// String returns the HUD name of the effect.
func (e EffectKind) String() string {
	switch e {
	case EffectExpand:
		return "Expand"
	case EffectLaser:
		return "Laser"
	case EffectSlow:
		return "Slow"
	case EffectReverse:
		return "Reverse"
	case EffectCrazy:
		return "Crazy"
	case EffectShrink:
		return "Shrink"
	default:
		return "?"
	}
}

// EffectPolicy decides what re-activating a running effect does.
type EffectPolicy int

const (
	// EffectIgnore keeps the running timer untouched.
	EffectIgnore EffectPolicy = iota
	// EffectReset restarts the running timer with the new duration.
	EffectReset
)

// TimedEffect is a running effect owned by one entity. OnExpire fires once,
// when Remaining reaches zero.
type TimedEffect struct {
	Kind      EffectKind
	Remaining float64
	OnExpire  func()
}

// EffectSet holds the timed effects of a single owner. At most one effect of
// each kind runs at a time.
type EffectSet struct {
	effects []*TimedEffect
}

// Activate starts an effect. It returns true when a new effect was started.
// For an already running effect the policy applies and false is returned;
// the original OnExpire is kept either way.
func (s *EffectSet) Activate(kind EffectKind, duration float64, policy EffectPolicy, onExpire func()) bool {
	if e := s.find(kind); e != nil {
		if policy == EffectReset {
			e.Remaining = duration
		}
		return false
	}
	s.effects = append(s.effects, &TimedEffect{
		Kind:      kind,
		Remaining: duration,
		OnExpire:  onExpire,
	})
	return true
}

// Active reports whether an effect of kind is running.
func (s *EffectSet) Active(kind EffectKind) bool {
	return s.find(kind) != nil
}

// Remaining returns the seconds left on kind, or 0 if it is not running.
func (s *EffectSet) Remaining(kind EffectKind) float64 {
	if e := s.find(kind); e != nil {
		return e.Remaining
	}
	return 0
}

// Tick advances all timers. Expired effects are removed before their
// callbacks run, so a callback observes the effect as inactive.
func (s *EffectSet) Tick(dt float64) {
	var expired []*TimedEffect
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Remaining -= dt
		if e.Remaining <= 0 {
			expired = append(expired, e)
			continue
		}
		kept = append(kept, e)
	}
	s.effects = kept

	for _, e := range expired {
		if e.OnExpire != nil {
			e.OnExpire()
		}
	}
}

// Clear drops all effects without running their callbacks.
func (s *EffectSet) Clear() {
	s.effects = s.effects[:0]
}

// Len returns the number of running effects.
func (s *EffectSet) Len() int {
	return len(s.effects)
}

// Each calls fn for every running effect in activation order.
func (s *EffectSet) Each(fn func(e TimedEffect)) {
	for _, e := range s.effects {
		fn(*e)
	}
}

func (s *EffectSet) find(kind EffectKind) *TimedEffect {
	for _, e := range s.effects {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}
