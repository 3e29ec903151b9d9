package core

import "math/rand/v2"

// Rand is the uniform source every renderer draws from. Production code uses
// an RNG seeded from the clock; tests pass a seeded RNG or a scripted stub.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Uniform returns a value drawn uniformly from [0, max).
func Uniform(r Rand, max float64) float64 {
	return r.Float64() * max
}

// MaybeNegative negates v with probability one half.
func MaybeNegative(r Rand, v float64) float64 {
	if r.Float64() >= 0.5 {
		return v
	}
	return -v
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](r Rand, items []T) T {
	idx := int(r.Float64() * float64(len(items)))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	return items[idx]
}
