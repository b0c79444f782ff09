// Package testutil provides shared helpers for numeric tests.
package testutil

import (
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps in magnitude.
func RequireSliceNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf in either component.
func RequireFinite(t *testing.T, data []complex128) {
	t.Helper()

	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// UniformAxis generates a time axis of the given length starting at zero
// with constant spacing dt.
func UniformAxis(length int, dt float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i) * dt
	}

	return out
}
