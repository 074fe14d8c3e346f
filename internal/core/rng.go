package core

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). n <= 0 yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range returns a random float in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Vec returns a vector with each component in [-extent, extent).
func (r *RNG) Vec(extent float64) r3.Vec {
	return r3.Vec{
		X: r.Range(-extent, extent),
		Y: r.Range(-extent, extent),
		Z: r.Range(-extent, extent),
	}
}

// Pick returns a random element of items. It panics on an empty slice.
func Pick[T any](r *RNG, items []T) T {
	return items[r.IntN(len(items))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
