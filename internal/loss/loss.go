// Package loss provides the loss functions a perceptron network reports and
// back-propagates.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Loss is a loss function together with the error signal it sends back
// through the output layer.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64

	// Residual writes the output-layer error for each prediction into dst:
	// a value pointing from the prediction towards the target, proportional to
	// the negative gradient of the loss.
	Residual(yPred, yTrue, dst []float64)
}

// MSE (Mean Squared Error) loss.
// Its residual is the raw target - prediction, the negative gradient of
// 0.5 * sum((y_true - y_pred)^2).
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	if len(yPred) != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}
	if len(yPred) == 0 {
		return 0
	}

	sq := make([]float64, len(yPred))
	floats.SubTo(sq, yPred, yTrue)
	floats.Mul(sq, sq)
	return stat.Mean(sq, nil)
}

// Residual computes y_true - y_pred
func (m MSE) Residual(yPred, yTrue, dst []float64) {
	if len(yPred) != len(yTrue) || len(yPred) != len(dst) {
		panic("MSE: slices must have same length")
	}
	floats.SubTo(dst, yTrue, yPred)
}

// Huber loss for robust regression.
type Huber struct {
	Delta float64 // Threshold for quadratic/linear transition
}

// NewHuber creates a Huber loss with the given delta.
func NewHuber(delta float64) *Huber {
	return &Huber{Delta: delta}
}

// Forward computes Huber loss.
func (h Huber) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("Huber: prediction and target must have same length")
	}
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := math.Abs(yPred[i] - yTrue[i])
		if diff <= h.Delta {
			sum += 0.5 * diff * diff
		} else {
			sum += h.Delta * (diff - 0.5*h.Delta)
		}
	}
	return sum / float64(n)
}

// Residual computes y_true - y_pred clipped to [-delta, delta]
func (h Huber) Residual(yPred, yTrue, dst []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(dst) {
		panic("Huber: slices must have same length")
	}

	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		if math.Abs(diff) <= h.Delta {
			dst[i] = diff
		} else {
			dst[i] = h.Delta * math.Copysign(1, diff)
		}
	}
}
