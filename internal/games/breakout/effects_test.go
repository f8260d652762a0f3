package breakout

import "testing"

func TestEffectSetIgnorePolicy(t *testing.T) {
	var s EffectSet
	expired := 0

	if !s.Activate(EffectExpand, 10, EffectIgnore, func() { expired++ }) {
		t.Fatal("first activation should start the effect")
	}
	s.Tick(4)
	if s.Activate(EffectExpand, 10, EffectIgnore, func() { expired += 100 }) {
		t.Error("re-activation should not start a new effect")
	}
	if got := s.Remaining(EffectExpand); got != 6 {
		t.Errorf("Remaining = %v, expected 6 (timer untouched)", got)
	}

	s.Tick(6)
	if s.Active(EffectExpand) {
		t.Error("effect should have expired")
	}
	if expired != 1 {
		t.Errorf("OnExpire ran with total %d, expected the original callback once", expired)
	}
}

func TestEffectSetResetPolicy(t *testing.T) {
	var s EffectSet
	calls := 0
	s.Activate(EffectSlow, 8, EffectReset, func() { calls++ })
	s.Tick(5)
	s.Activate(EffectSlow, 8, EffectReset, func() { calls += 100 })

	if got := s.Remaining(EffectSlow); got != 8 {
		t.Errorf("Remaining = %v, expected 8 after reset", got)
	}

	s.Tick(7.5)
	if !s.Active(EffectSlow) {
		t.Error("effect should still be running")
	}
	s.Tick(1)
	if calls != 1 {
		t.Errorf("calls = %d, expected original OnExpire exactly once", calls)
	}
}

func TestEffectSetExpiredInvisibleToCallback(t *testing.T) {
	var s EffectSet
	seen := true
	s.Activate(EffectLaser, 1, EffectIgnore, func() { seen = s.Active(EffectLaser) })
	s.Tick(2)
	if seen {
		t.Error("callback should observe the effect as inactive")
	}
	s.Tick(2)
	if s.Len() != 0 {
		t.Errorf("Len = %d, expected 0", s.Len())
	}
}

func TestEffectSetIndependentKinds(t *testing.T) {
	var s EffectSet
	s.Activate(EffectExpand, 3, EffectIgnore, nil)
	s.Activate(EffectShrink, 1, EffectReset, nil)
	s.Tick(1.5)

	if !s.Active(EffectExpand) || s.Active(EffectShrink) {
		t.Errorf("expand=%v shrink=%v, expected true/false", s.Active(EffectExpand), s.Active(EffectShrink))
	}

	s.Clear()
	if s.Active(EffectExpand) {
		t.Error("Clear should drop all effects")
	}
}
