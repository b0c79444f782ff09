// Package channel models a measured channel frequency response as a
// continuous, conjugate-symmetric, band-limited transfer function.
package channel

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/interp"

	"github.com/hollenlab/predistort/internal/cvec"
	"github.com/hollenlab/predistort/internal/fourier"
)

// Errors returned when building a Model.
var (
	ErrLengthMismatch    = errors.New("channel: responses and frequencies must have same length")
	ErrTooFewSamples     = errors.New("channel: at least 2 samples required")
	ErrFrequencyOrder    = errors.New("channel: frequencies must be strictly increasing")
	ErrNegativeFrequency = errors.New("channel: frequencies must be non-negative")
)

// Model is a continuous complex transfer function fitted to a discrete
// frequency-response measurement, typically the S21 sweep of a two-port
// network.
//
// Inside the measured band the response is a cubic spline through the
// samples. Negative frequencies mirror positive ones via complex
// conjugation, so the model is a valid spectrum for real-valued time
// signals. Outside the measured band, including any gap around DC when the
// sweep does not start at zero, the response is exactly zero: a channel is
// assumed fully attenuating where it was not measured, never extrapolated.
//
// A Model is immutable after construction and safe for concurrent use.
type Model struct {
	re    interp.NaturalCubic
	im    interp.NaturalCubic
	lower float64
	upper float64
}

// New builds a Model from a frequency sweep.
//
// responses[i] is the complex channel response at frequencies[i]. The
// frequencies must be non-negative, strictly increasing and at least 2 long.
func New(responses []complex128, frequencies []float64) (*Model, error) {
	if len(responses) != len(frequencies) {
		return nil, ErrLengthMismatch
	}

	if len(responses) < 2 {
		return nil, ErrTooFewSamples
	}

	if frequencies[0] < 0 {
		return nil, ErrNegativeFrequency
	}

	for i := 1; i < len(frequencies); i++ {
		if frequencies[i] <= frequencies[i-1] {
			return nil, fmt.Errorf("%w: at index %d", ErrFrequencyOrder, i)
		}
	}

	re := make([]float64, len(responses))
	im := make([]float64, len(responses))

	for i, s := range responses {
		re[i] = real(s)
		im[i] = imag(s)
	}

	m := &Model{
		lower: frequencies[0],
		upper: frequencies[len(frequencies)-1],
	}

	if err := m.re.Fit(frequencies, re); err != nil {
		return nil, fmt.Errorf("channel: spline fit failed: %w", err)
	}

	if err := m.im.Fit(frequencies, im); err != nil {
		return nil, fmt.Errorf("channel: spline fit failed: %w", err)
	}

	return m, nil
}

// Band returns the lower and upper limits of the measured sweep. Queries
// whose magnitude falls outside [lower, upper] evaluate to zero.
func (m *Model) Band() (lower, upper float64) {
	return m.lower, m.upper
}

// EvaluateAt returns the modeled response at a single frequency in Hz.
//
// This is a total function: any real input yields a value, with
// conjugate symmetry for f < 0 and exact zero outside the measured band.
func (m *Model) EvaluateAt(f float64) complex128 {
	a := f
	if a < 0 {
		a = -a
	}

	if a > m.upper || a < m.lower {
		return 0
	}

	v := complex(m.re.Predict(a), m.im.Predict(a))
	if f < 0 {
		return cmplx.Conj(v)
	}

	return v
}

// Evaluate returns the modeled response at each frequency, elementwise.
func (m *Model) Evaluate(frequencies []float64) []complex128 {
	if len(frequencies) == 0 {
		return nil
	}

	out := make([]complex128, len(frequencies))
	for i, f := range frequencies {
		out[i] = m.EvaluateAt(f)
	}

	return out
}

// MagnitudeResponse returns |H(f)| at each frequency.
func (m *Model) MagnitudeResponse(frequencies []float64) []float64 {
	return cvec.Magnitude(m.Evaluate(frequencies))
}

// PhaseResponse returns arg(H(f)) at each frequency in radians.
func (m *Model) PhaseResponse(frequencies []float64) []float64 {
	if len(frequencies) == 0 {
		return nil
	}

	out := make([]float64, len(frequencies))
	for i, f := range frequencies {
		out[i] = cmplx.Phase(m.EvaluateAt(f))
	}

	return out
}

// ImpulseResponse returns the band-limited impulse response of the channel,
// sampled on an n-point grid with spacing dt seconds.
//
// The response is computed by evaluating the model on the matching DFT bin
// frequencies and inverse transforming. Because the model is conjugate
// symmetric the result is real up to rounding; the real part is returned.
func (m *Model) ImpulseResponse(n int, dt float64) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("channel: impulse response length must be >= 2: %d", n)
	}

	if dt <= 0 {
		return nil, fmt.Errorf("channel: impulse response time step must be > 0: %g", dt)
	}

	gains := m.Evaluate(fourier.BinFrequencies(n, dt))

	h := make([]complex128, n)
	if err := fourier.Inverse(h, gains); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i, v := range h {
		out[i] = real(v)
	}

	return out, nil
}
