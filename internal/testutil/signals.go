package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-expr/internal/isa"
)

// Noise returns length values uniformly drawn from [lo, hi) with a fixed
// seed for reproducibility.
func Noise[T isa.Float](seed int64, lo, hi float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// Ramp returns start, start+step, ... with length elements.
func Ramp[T isa.Float](start, step T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = start + T(i)*step
	}
	return out
}

// Constant returns length copies of v.
func Constant[T isa.Float](v T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = v
	}
	return out
}

// Map applies fn to every element of in and returns the results. Tests use
// it to build scalar reference results.
func Map[T isa.Float](in []T, fn func(i int, v T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(i, v)
	}
	return out
}
