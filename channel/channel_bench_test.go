package channel

import "testing"

func BenchmarkEvaluate(b *testing.B) {
	responses := make([]complex128, 201)
	frequencies := make([]float64, 201)

	for i := range responses {
		frequencies[i] = float64(i) * 1e7
		responses[i] = complex(1/(1+float64(i)*0.01), -float64(i)*0.001)
	}

	m, err := New(responses, frequencies)
	if err != nil {
		b.Fatal(err)
	}

	freqs := make([]float64, 4096)
	for i := range freqs {
		freqs[i] = float64(i-2048) * 1e6
	}

	b.ResetTimer()

	for b.Loop() {
		m.Evaluate(freqs)
	}
}
