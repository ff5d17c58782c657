package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntRange returns a random int in [lo, hi]. It returns lo when hi < lo.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Weighted picks an index from weights with probability proportional to its
// weight. Zero weights are never picked. It returns -1 when every weight is
// zero.
func (r *RNG) Weighted(weights ...uint) int {
	var total uint
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return -1
	}
	choice := uint(r.r.Uint64N(uint64(total)))
	for i, w := range weights {
		if choice < w {
			return i
		}
		choice -= w
	}
	return len(weights) - 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
