package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-expr/internal/isa"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). NaN matches NaN.
func RequireSliceNearlyEqual[T isa.Float](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		if math.IsNaN(g) && math.IsNaN(w) {
			continue
		}
		diff := math.Abs(g - w)
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelNearlyEqual fails t if any element of got differs from want by
// more than rel relative to |want|. Zero wants are compared absolutely.
func RequireRelNearlyEqual[T isa.Float](t *testing.T, got, want []T, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		if g == w {
			continue
		}
		diff := math.Abs(g - w)
		if w != 0 {
			diff /= math.Abs(w)
		}
		if !(diff <= rel) {
			t.Fatalf("index %d: got %v, want %v (relative diff %v > %v)", i, got[i], want[i], diff, rel)
		}
	}
}

// RequireEqual fails t unless got and want are bit-for-bit equal element by
// element.
func RequireEqual[T isa.Float](t *testing.T, got, want []T) {
	t.Helper()
	RequireSliceNearlyEqual(t, got, want, 0)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T isa.Float](t *testing.T, data []T) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T isa.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxRelDiff returns the maximum of |a-b|/|b| over all elements, skipping
// elements where b is zero.
func MaxRelDiff[T isa.Float](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if b[i] == 0 {
			continue
		}
		d := math.Abs(float64(a[i])-float64(b[i])) / math.Abs(float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
