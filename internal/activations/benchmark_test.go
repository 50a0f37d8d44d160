// Package activations provides benchmarks for activation functions.
package activations

import (
	"math/rand"
	"testing"
)

// fillRandom fills a slice with random values.
func fillRandom(slice []float64) {
	r := rand.New(rand.NewSource(1))
	for i := range slice {
		slice[i] = r.Float64()*8 - 4
	}
}

// benchmarkFull runs Activate followed by Derivative over 1000 inputs.
func benchmarkFull(b *testing.B, act Activation) {
	inputs := make([]float64, 1000)
	fillRandom(inputs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range inputs {
			act.Derivative(act.Activate(x))
		}
	}
}

// BenchmarkLinearFull benchmarks the identity activation.
func BenchmarkLinearFull(b *testing.B) {
	benchmarkFull(b, Linear{})
}

// BenchmarkSigmoidFull benchmarks the logistic activation.
func BenchmarkSigmoidFull(b *testing.B) {
	benchmarkFull(b, Sigmoid{})
}

func BenchmarkTanhFull(b *testing.B) {
	benchmarkFull(b, Tanh{})
}

func BenchmarkReLUFull(b *testing.B) {
	benchmarkFull(b, ReLU{})
}

func BenchmarkLeakyReLUFull(b *testing.B) {
	benchmarkFull(b, NewLeakyReLU(0.01))
}
