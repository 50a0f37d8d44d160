// Package loss provides benchmarks for loss functions.
package loss

import (
	"math/rand"
	"testing"
)

// fillRandom fills a slice with random values.
func fillRandom(slice []float64) {
	for i := range slice {
		slice[i] = rand.Float64()
	}
}

// BenchmarkMSEForward benchmarks MSE forward pass.
func BenchmarkMSEForward(b *testing.B) {
	yPred := make([]float64, 1000)
	yTrue := make([]float64, 1000)
	fillRandom(yPred)
	fillRandom(yTrue)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MSE{}.Forward(yPred, yTrue)
	}
}

// BenchmarkMSEResidual benchmarks the MSE residual.
func BenchmarkMSEResidual(b *testing.B) {
	yPred := make([]float64, 1000)
	yTrue := make([]float64, 1000)
	dst := make([]float64, 1000)
	fillRandom(yPred)
	fillRandom(yTrue)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MSE{}.Residual(yPred, yTrue, dst)
	}
}
