// Package loss provides unit tests for loss functions.
package loss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMSEForward tests MSE forward pass.
func TestMSEForward(t *testing.T) {
	mse := MSE{}

	tests := []struct {
		name     string
		yPred    []float64
		yTrue    []float64
		expected float64
	}{
		{"Perfect prediction", []float64{1.0, 2.0, 3.0}, []float64{1.0, 2.0, 3.0}, 0.0},
		{"Single error", []float64{1.0, 2.0}, []float64{1.5, 2.0}, 0.125},            // (0.5^2 + 0) / 2
		{"Multiple errors", []float64{1.0, 2.0, 3.0}, []float64{0.0, 1.0, 2.0}, 1.0}, // (1+1+1)/3
		{"Large errors", []float64{10.0}, []float64{0.0}, 100.0},
		{"Empty", []float64{}, []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mse.Forward(tt.yPred, tt.yTrue), 1e-12)
		})
	}
}

// TestMSEForwardLengthMismatch tests error handling.
func TestMSEForwardLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		MSE{}.Forward([]float64{1.0, 2.0}, []float64{1.0})
	})
}

// TestMSEResidual tests that the residual is target minus prediction.
func TestMSEResidual(t *testing.T) {
	yPred := []float64{1.0, 2.5, -1.0}
	yTrue := []float64{2.0, 2.0, 1.0}
	dst := make([]float64, 3)

	MSE{}.Residual(yPred, yTrue, dst)
	assert.Equal(t, []float64{1.0, -0.5, 2.0}, dst)

	assert.Panics(t, func() {
		MSE{}.Residual(yPred, yTrue, make([]float64, 2))
	})
}

// TestHuberForward tests Huber forward pass on both branches.
func TestHuberForward(t *testing.T) {
	h := NewHuber(1.0)

	tests := []struct {
		name     string
		yPred    []float64
		yTrue    []float64
		expected float64
	}{
		{"Zero", []float64{1}, []float64{1}, 0},
		{"Quadratic", []float64{0.5}, []float64{0}, 0.125},
		{"Linear", []float64{3}, []float64{0}, 2.5},
		{"Mixed", []float64{0.5, 3}, []float64{0, 0}, (0.125 + 2.5) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, h.Forward(tt.yPred, tt.yTrue), 1e-12)
		})
	}
}

// TestHuberResidual tests that large residuals are clipped to delta.
func TestHuberResidual(t *testing.T) {
	h := NewHuber(1.0)
	dst := make([]float64, 3)

	h.Residual([]float64{0, 0, 0}, []float64{0.5, 5, -5}, dst)
	assert.Equal(t, []float64{0.5, 1, -1}, dst)

	assert.Panics(t, func() {
		h.Residual([]float64{0}, []float64{0, 1}, dst)
	})
}

// TestResidualPointsToTarget checks that every loss pushes the prediction
// towards the target.
func TestResidualPointsToTarget(t *testing.T) {
	losses := []Loss{MSE{}, NewHuber(0.5)}
	yPred := []float64{0.2, 0.8, 0.5}
	yTrue := []float64{1.0, 0.0, 0.5}

	for _, l := range losses {
		dst := make([]float64, 3)
		l.Residual(yPred, yTrue, dst)
		assert.Greater(t, dst[0], 0.0)
		assert.Less(t, dst[1], 0.0)
		assert.Equal(t, 0.0, dst[2])
		assert.Equal(t, 0.0, l.Forward(yTrue, yTrue))
	}
}
