package fourier

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestForwardInverseRoundtrip(t *testing.T) {
	// Cover both the radix-2 path and the Bluestein fallback.
	for _, n := range []int{2, 4, 6, 8, 10, 16, 100} {
		src := make([]complex128, n)
		for i := range src {
			src[i] = complex(math.Sin(float64(i)), math.Cos(2*float64(i)))
		}

		freq := make([]complex128, n)
		if err := Forward(freq, src); err != nil {
			t.Fatalf("n=%d: Forward: %v", n, err)
		}

		back := make([]complex128, n)
		if err := Inverse(back, freq); err != nil {
			t.Fatalf("n=%d: Inverse: %v", n, err)
		}

		for i := range src {
			if cmplx.Abs(back[i]-src[i]) > 1e-9 {
				t.Errorf("n=%d: roundtrip[%d] = %v, want %v", n, i, back[i], src[i])
			}
		}
	}
}

func TestForwardDelta(t *testing.T) {
	// The DFT of a unit impulse is flat with unit gain.
	src := []complex128{1, 0, 0, 0}
	freq := make([]complex128, len(src))

	if err := Forward(freq, src); err != nil {
		t.Fatal(err)
	}

	for i, v := range freq {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Errorf("bin %d = %v, want 1", i, v)
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	src := make([]complex128, 4)
	dst := make([]complex128, 3)

	if err := Forward(dst, src); err != ErrLengthMismatch {
		t.Errorf("Forward error = %v, want %v", err, ErrLengthMismatch)
	}

	if err := Inverse(dst, src); err != ErrLengthMismatch {
		t.Errorf("Inverse error = %v, want %v", err, ErrLengthMismatch)
	}
}

func TestBinFrequencies(t *testing.T) {
	tests := []struct {
		name string
		n    int
		dt   float64
		want []float64
	}{
		{"even", 4, 0.25, []float64{0, 1, -2, -1}},
		{"odd", 5, 0.2, []float64{0, 1, 2, -2, -1}},
		{"nanosecond grid", 4, 1.0 / 4e9, []float64{0, 1e9, -2e9, -1e9}},
		{"single", 1, 1, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BinFrequencies(tt.n, tt.dt)
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}

			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > math.Abs(tt.want[i])*1e-12 {
					t.Errorf("bin %d = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}
