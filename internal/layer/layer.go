// Package layer provides the neuron and fully connected layer of a perceptron network.
package layer

import (
	"fmt"
	"math/rand"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
)

// Layer is a fully connected layer: every neuron sees the same input vector.
type Layer struct {
	neurons []*Neuron
	inSize  int
	act     activations.Activation
}

// New creates a layer of neuronCount neurons, each accepting inputCount inputs
// and sharing act. Weights and biases are drawn from rng.
func New(inputCount, neuronCount int, act activations.Activation, rng *rand.Rand) (*Layer, error) {
	if neuronCount <= 0 {
		return nil, fmt.Errorf("layer neuron count must be positive, got %d: %w", neuronCount, ErrConfiguration)
	}

	l := &Layer{
		neurons: make([]*Neuron, neuronCount),
		inSize:  inputCount,
		act:     act,
	}
	for j := range l.neurons {
		n, err := NewNeuron(inputCount, act, rng)
		if err != nil {
			return nil, fmt.Errorf("neuron %d: %w", j, err)
		}
		l.neurons[j] = n
	}
	return l, nil
}

// Compute feeds inputs to every neuron and returns their outputs in order.
// The length is checked before any neuron runs, so a mismatch leaves the
// cached outputs untouched.
func (l *Layer) Compute(inputs []float64) ([]float64, error) {
	if len(inputs) != l.inSize {
		return nil, fmt.Errorf("layer expects %d inputs, got %d: %w", l.inSize, len(inputs), ErrShapeMismatch)
	}

	outputs := make([]float64, len(l.neurons))
	for j, n := range l.neurons {
		outputs[j] = n.compute(inputs)
	}
	return outputs, nil
}

// PropagatedError returns the error this layer sends back to neuron j of the
// preceding layer: the sum over this layer's neurons of weight[j] * delta.
func (l *Layer) PropagatedError(j int) float64 {
	var e float64
	for _, n := range l.neurons {
		e += n.weights[j] * n.delta
	}
	return e
}

// Update applies the gradient step of every neuron using prev, the
// activations that fed this layer on the last forward pass.
func (l *Layer) Update(learningRate float64, prev []float64) error {
	if len(prev) != l.inSize {
		return fmt.Errorf("layer update expects %d activations, got %d: %w", l.inSize, len(prev), ErrShapeMismatch)
	}
	for _, n := range l.neurons {
		n.applyGradientStep(learningRate, prev)
	}
	return nil
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// Neuron returns neuron j.
func (l *Layer) Neuron(j int) *Neuron {
	return l.neurons[j]
}

// InSize returns the input size of the layer.
func (l *Layer) InSize() int {
	return l.inSize
}

// OutSize returns the number of neurons in the layer.
func (l *Layer) OutSize() int {
	return len(l.neurons)
}

// Activation returns the activation shared by the layer's neurons.
func (l *Layer) Activation() activations.Activation {
	return l.act
}

// Params returns all layer parameters flattened: the weights of each neuron in
// order (row-major, [out * in]) followed by the biases.
func (l *Layer) Params() []float64 {
	params := make([]float64, 0, len(l.neurons)*(l.inSize+1))
	for _, n := range l.neurons {
		params = append(params, n.weights...)
	}
	for _, n := range l.neurons {
		params = append(params, n.bias)
	}
	return params
}

// NumParams returns len(Params()) without allocating.
func (l *Layer) NumParams() int {
	return len(l.neurons) * (l.inSize + 1)
}

// SetParams updates weights and biases from a slice laid out like Params.
func (l *Layer) SetParams(params []float64) error {
	if len(params) != l.NumParams() {
		return fmt.Errorf("layer has %d parameters, got %d: %w", l.NumParams(), len(params), ErrShapeMismatch)
	}
	biases := params[len(l.neurons)*l.inSize:]
	for j, n := range l.neurons {
		copy(n.weights, params[j*l.inSize:(j+1)*l.inSize])
		n.bias = biases[j]
	}
	return nil
}
