// Package fourier provides forward/inverse discrete Fourier transforms of
// complex sequences of any length, plus the matching bin-frequency grid.
package fourier

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
)

// ErrLengthMismatch is returned when dst and src lengths differ.
var ErrLengthMismatch = errors.New("fourier: dst and src must have same length")

// Forward computes the unnormalized forward DFT of src into dst.
//
// Power-of-two lengths use a radix-2 FFT plan; other lengths fall back to a
// Bluestein transform. dst and src must have the same length.
func Forward(dst, src []complex128) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	if len(src) == 0 {
		return nil
	}

	if isPowerOfTwo(len(src)) {
		plan, err := algofft.NewPlan64(len(src))
		if err != nil {
			return fmt.Errorf("fourier: failed to create FFT plan: %w", err)
		}

		return plan.Forward(dst, src)
	}

	copy(dst, godsp.FFT(src))

	return nil
}

// Inverse computes the inverse DFT of src into dst, normalized by 1/N so
// that Inverse(Forward(x)) == x.
func Inverse(dst, src []complex128) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	if len(src) == 0 {
		return nil
	}

	if isPowerOfTwo(len(src)) {
		plan, err := algofft.NewPlan64(len(src))
		if err != nil {
			return fmt.Errorf("fourier: failed to create FFT plan: %w", err)
		}

		return plan.Inverse(dst, src)
	}

	copy(dst, godsp.IFFT(src))

	return nil
}

// BinFrequencies returns the DFT bin frequencies in Hz for an n-point
// transform over samples spaced dt seconds apart.
//
// The layout follows the conventional wrap-around ordering: bin 0 is DC,
// positive frequencies ascend through bin (n-1)/2, then negative frequencies
// ascend from -floor(n/2)/(n*dt) up to the bin just below DC.
func BinFrequencies(n int, dt float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := 1 / (float64(n) * dt)
	half := (n - 1) / 2

	for i := 0; i <= half; i++ {
		out[i] = float64(i) * step
	}

	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * step
	}

	return out
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
