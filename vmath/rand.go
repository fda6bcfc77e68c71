package vmath

// FastRand is a xorshift64 generator
// Deterministic for a given seed; not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; zero seed is remapped since xorshift has a zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), rejecting the biased tail of the 64-bit range
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := r.Next()
		if v < limit {
			return int(v % bound)
		}
	}
}
