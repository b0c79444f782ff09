// Package shape pre-distorts a desired pulse so that, after passing through
// a channel with a known frequency response, the channel output reproduces
// the desired pulse.
//
// # How it works
//
// The shaper performs a band-limited spectral deconvolution: it transforms
// the desired pulse to the frequency domain, divides each bin by the channel
// gain at that bin frequency, and transforms back:
//
//	shaped = IDFT( DFT(pulse)[k] / H(f_k) )
//
// Dividing by a near-zero gain would demand near-infinite drive amplitude,
// so bins where |H| does not exceed the scaling limit are dropped (set to
// exact zero) instead of inverted. The result always has the same length
// and time axis as the input; the transmittable signal is its real part.
//
// # Usage
//
// Build a channel model from a measured sweep, then shape a pulse:
//
//	m, _ := channel.New(s21, sweptFs)
//	shaped, err := shape.ShapeReal(pulse, timeAxis, m, shape.DefaultOptions())
//
// Any type with an Evaluate method over frequencies can stand in for the
// channel model, including a plain function via [TransferFunc].
package shape
