package breakout

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// Every random decision in the simulation draws from one RNG owned by the
// World, so a seed fully determines a run.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed. Seed 0 is mapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). The low LCG bits are weak, so the
// result is taken from the high half.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is positive
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
