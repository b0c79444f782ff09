// Package cvec provides elementwise magnitude and power of complex slices
// over SIMD-dispatched vector kernels.
package cvec

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratch holds pooled memory for complex-to-real unpacking.
type scratch struct {
	data []float64
}

var pool = sync.Pool{
	New: func() any { return &scratch{} },
}

func split(in []complex128) (re, im []float64, buf *scratch) {
	buf = pool.Get().(*scratch)

	need := 2 * len(in)
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	re = buf.data[:len(in)]
	im = buf.data[len(in):need]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im, buf
}

// Magnitude returns |z| for each element of in.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Magnitude(out, re, im)
	pool.Put(buf)

	return out
}

// Power returns |z|^2 for each element of in.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := split(in)
	vecmath.Power(out, re, im)
	pool.Put(buf)

	return out
}
