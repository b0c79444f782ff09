package shape

import (
	"errors"
	"fmt"

	"github.com/hollenlab/predistort/internal/cvec"
	"github.com/hollenlab/predistort/internal/fourier"
)

// DefaultScalingLimit is the minimum channel gain magnitude the shaper will
// invert. Bins with smaller gain are cut from the signal.
const DefaultScalingLimit = 0.1

// Errors returned by shaping functions.
var (
	ErrLengthMismatch      = errors.New("shape: pulse and time axis must have same length")
	ErrTooShort            = errors.New("shape: pulse must contain at least 2 samples")
	ErrInvalidTimeStep     = errors.New("shape: time axis spacing must be positive")
	ErrBadTransferFunction = errors.New("shape: transfer function returned wrong number of bins")
)

// TransferFunction evaluates a channel's complex frequency response,
// one output value per input frequency in Hz.
//
// Implementations must be total: any real frequency yields a value.
// *channel.Model satisfies this interface.
type TransferFunction interface {
	Evaluate(frequencies []float64) []complex128
}

// TransferFunc adapts a plain function as a [TransferFunction].
type TransferFunc func(frequencies []float64) []complex128

// Evaluate calls f.
func (f TransferFunc) Evaluate(frequencies []float64) []complex128 {
	return f(frequencies)
}

// Options configures pulse shaping.
type Options struct {
	// ScalingLimit is the minimum value of |H(f)| below which a frequency
	// component is cut from the signal rather than amplified by 1/|H|.
	// Non-positive values fall back to DefaultScalingLimit.
	ScalingLimit float64
}

// DefaultOptions returns the default shaping options.
func DefaultOptions() Options {
	return Options{ScalingLimit: DefaultScalingLimit}
}

// Frequencies returns the DFT bin frequencies in Hz used by [Shape] for an
// n-sample pulse with time spacing dt: bin 0 is DC, positive frequencies
// ascend, then negative frequencies ascend toward DC.
func Frequencies(n int, dt float64) []float64 {
	return fourier.BinFrequencies(n, dt)
}

// Shape computes the input pulse that the channel distorts into the desired
// pulse.
//
// pulse and timeAxis must have equal length of at least 2, and timeAxis must
// be uniformly spaced; the spacing is taken from its first two samples. The
// returned pulse is complex over the same time axis; its real part is the
// transmittable signal.
//
// Instability is absorbed rather than surfaced: bins whose channel gain
// magnitude does not exceed the scaling limit become exact zeros, so the
// output never contains NaN or Inf for well-formed input.
func Shape(pulse []complex128, timeAxis []float64, tf TransferFunction, opts Options) ([]complex128, error) {
	gains, err := binGains(len(pulse), timeAxis, tf)
	if err != nil {
		return nil, err
	}

	limit := opts.ScalingLimit
	if limit <= 0 {
		limit = DefaultScalingLimit
	}

	n := len(pulse)

	spectrum := make([]complex128, n)
	if err := fourier.Forward(spectrum, pulse); err != nil {
		return nil, err
	}

	mags := cvec.Magnitude(gains)
	for k := range spectrum {
		if mags[k] > limit {
			spectrum[k] /= gains[k]
		} else {
			spectrum[k] = 0
		}
	}

	shaped := make([]complex128, n)
	if err := fourier.Inverse(shaped, spectrum); err != nil {
		return nil, err
	}

	return shaped, nil
}

// ShapeReal is a convenience wrapper over [Shape] for real-valued pulses.
func ShapeReal(pulse []float64, timeAxis []float64, tf TransferFunction, opts Options) ([]complex128, error) {
	c := make([]complex128, len(pulse))
	for i, v := range pulse {
		c[i] = complex(v, 0)
	}

	return Shape(c, timeAxis, tf, opts)
}

// Apply filters a pulse forward through the channel: the spectral multiply
// counterpart of [Shape]'s divide. Applying the channel to a shaped pulse
// reproduces the desired pulse on every bin the shaper kept.
func Apply(pulse []complex128, timeAxis []float64, tf TransferFunction) ([]complex128, error) {
	gains, err := binGains(len(pulse), timeAxis, tf)
	if err != nil {
		return nil, err
	}

	n := len(pulse)

	spectrum := make([]complex128, n)
	if err := fourier.Forward(spectrum, pulse); err != nil {
		return nil, err
	}

	for k := range spectrum {
		spectrum[k] *= gains[k]
	}

	out := make([]complex128, n)
	if err := fourier.Inverse(out, spectrum); err != nil {
		return nil, err
	}

	return out, nil
}

// binGains validates the pulse/time-axis pair and evaluates the transfer
// function on the matching DFT bin grid.
func binGains(n int, timeAxis []float64, tf TransferFunction) ([]complex128, error) {
	if n != len(timeAxis) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, len(timeAxis))
	}

	if n < 2 {
		return nil, ErrTooShort
	}

	dt := timeAxis[1] - timeAxis[0]
	if dt <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidTimeStep, dt)
	}

	gains := tf.Evaluate(Frequencies(n, dt))
	if len(gains) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadTransferFunction, len(gains), n)
	}

	return gains, nil
}
