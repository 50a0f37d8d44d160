// Package layer provides unit tests for neurons and layers.
package layer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
)

// TestLayerNew tests that every neuron gets the declared input size and the
// shared activation.
func TestLayerNew(t *testing.T) {
	act := activations.Tanh{}
	l, err := New(3, 4, act, newRand())
	require.NoError(t, err)

	assert.Equal(t, 3, l.InSize())
	assert.Equal(t, 4, l.OutSize())
	require.Len(t, l.Neurons(), 4)
	for _, n := range l.Neurons() {
		assert.Equal(t, 3, n.InSize())
		assert.Equal(t, act, n.Activation())
	}
	assert.Equal(t, act, l.Activation())
}

// TestLayerNewInvalid tests construction failures.
func TestLayerNewInvalid(t *testing.T) {
	_, err := New(3, 0, activations.Linear{}, newRand())
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = New(0, 2, activations.Linear{}, newRand())
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = New(2, 2, nil, newRand())
	assert.ErrorIs(t, err, ErrConfiguration)
}

// TestLayerCompute tests forward pass with identity weights.
func TestLayerCompute(t *testing.T) {
	l, err := New(2, 2, activations.Tanh{}, newRand())
	require.NoError(t, err)
	require.NoError(t, l.SetParams([]float64{
		1, 0, // neuron 0
		0, 1, // neuron 1
		0, 0, // biases
	}))

	output, err := l.Compute([]float64{1.0, 2.0})
	require.NoError(t, err)
	require.Len(t, output, 2)
	assert.InDelta(t, math.Tanh(1.0), output[0], 1e-12)
	assert.InDelta(t, math.Tanh(2.0), output[1], 1e-12)

	for j, n := range l.Neurons() {
		assert.Equal(t, output[j], n.Output())
	}
}

// TestLayerComputeShapeMismatch checks the input length is validated up front.
func TestLayerComputeShapeMismatch(t *testing.T) {
	l, err := New(2, 3, activations.Sigmoid{}, newRand())
	require.NoError(t, err)

	before, err := l.Compute([]float64{0.5, -0.5})
	require.NoError(t, err)

	out, err := l.Compute([]float64{0.5})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	for j, n := range l.Neurons() {
		assert.Equal(t, before[j], n.Output())
	}
}

// TestLayerPropagatedError checks the weighted sum of downstream deltas.
func TestLayerPropagatedError(t *testing.T) {
	l, err := New(2, 2, activations.Linear{}, newRand())
	require.NoError(t, err)
	require.NoError(t, l.SetParams([]float64{
		0.5, -1, // neuron 0
		2, 3, // neuron 1
		0, 0,
	}))

	_, err = l.Compute([]float64{0, 0})
	require.NoError(t, err)
	l.Neuron(0).SetError(0.4)
	l.Neuron(1).SetError(-0.1)

	assert.InDelta(t, 0.5*0.4+2*-0.1, l.PropagatedError(0), 1e-15)
	assert.InDelta(t, -1*0.4+3*-0.1, l.PropagatedError(1), 1e-15)
}

// TestLayerUpdate checks every neuron steps along its own delta.
func TestLayerUpdate(t *testing.T) {
	l, err := New(2, 2, activations.Linear{}, newRand())
	require.NoError(t, err)
	require.NoError(t, l.SetParams([]float64{1, 1, 1, 1, 0, 0}))

	x := []float64{2, -1}
	_, err = l.Compute(x)
	require.NoError(t, err)
	l.Neuron(0).SetError(1)
	l.Neuron(1).SetError(-2)

	require.NoError(t, l.Update(0.1, x))
	assert.InDeltaSlice(t, []float64{1.2, 0.9}, l.Neuron(0).Weights(), 1e-15)
	assert.InDeltaSlice(t, []float64{0.6, 1.2}, l.Neuron(1).Weights(), 1e-15)
	assert.InDelta(t, 0.1, l.Neuron(0).Bias(), 1e-15)
	assert.InDelta(t, -0.2, l.Neuron(1).Bias(), 1e-15)

	assert.ErrorIs(t, l.Update(0.1, []float64{1}), ErrShapeMismatch)
}

// TestLayerParams tests parameter round trip and layout.
func TestLayerParams(t *testing.T) {
	l, err := New(3, 2, activations.Linear{}, newRand())
	require.NoError(t, err)

	params := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, l.SetParams(params))
	assert.Equal(t, params, l.Params())
	assert.Equal(t, len(params), l.NumParams())
	assert.Equal(t, []float64{4, 5, 6}, l.Neuron(1).Weights())
	assert.Equal(t, 8.0, l.Neuron(1).Bias())

	assert.ErrorIs(t, l.SetParams(params[:5]), ErrShapeMismatch)
}
