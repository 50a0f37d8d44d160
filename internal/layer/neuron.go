package layer

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
)

// Neuron is a perceptron unit: one weight per input, a bias and a shared
// activation. It caches the output of the last Compute and the delta of the
// last backward pass so that training can run without extra buffers.
type Neuron struct {
	weights []float64
	bias    float64
	act     activations.Activation

	output float64
	delta  float64
}

// NewNeuron creates a neuron with inputCount weights and a bias drawn
// uniformly from [-0.5, 0.5) using rng.
func NewNeuron(inputCount int, act activations.Activation, rng *rand.Rand) (*Neuron, error) {
	if inputCount <= 0 {
		return nil, fmt.Errorf("neuron input count must be positive, got %d: %w", inputCount, ErrConfiguration)
	}
	if act == nil {
		return nil, fmt.Errorf("neuron activation is nil: %w", ErrConfiguration)
	}
	if rng == nil {
		return nil, fmt.Errorf("neuron random source is nil: %w", ErrConfiguration)
	}

	n := &Neuron{
		weights: make([]float64, inputCount),
		act:     act,
	}
	n.bias = rng.Float64() - 0.5
	for i := range n.weights {
		n.weights[i] = rng.Float64() - 0.5
	}
	return n, nil
}

// Compute returns act(bias + w·x) and remembers it as the neuron's output.
func (n *Neuron) Compute(inputs []float64) (float64, error) {
	if len(inputs) != len(n.weights) {
		return 0, fmt.Errorf("neuron expects %d inputs, got %d: %w", len(n.weights), len(inputs), ErrShapeMismatch)
	}
	return n.compute(inputs), nil
}

// compute is Compute without the shape check; callers guarantee the length.
func (n *Neuron) compute(inputs []float64) float64 {
	n.output = n.act.Activate(n.bias + floats.Dot(n.weights, inputs))
	return n.output
}

// SetError turns the neuron's error signal into its delta,
// err * f'(output), stores it and returns it.
func (n *Neuron) SetError(err float64) float64 {
	n.delta = err * n.act.Derivative(n.output)
	return n.delta
}

// ApplyGradientStep moves the weights by learningRate*delta*prev and the bias by
// learningRate*delta. prev holds the activations that fed this neuron.
func (n *Neuron) ApplyGradientStep(learningRate float64, prev []float64) error {
	if len(prev) != len(n.weights) {
		return fmt.Errorf("gradient step expects %d activations, got %d: %w", len(n.weights), len(prev), ErrShapeMismatch)
	}
	n.applyGradientStep(learningRate, prev)
	return nil
}

func (n *Neuron) applyGradientStep(learningRate float64, prev []float64) {
	step := learningRate * n.delta
	floats.AddScaled(n.weights, step, prev)
	n.bias += step
}

// SetParams overwrites the weights and bias. The weight count cannot change.
func (n *Neuron) SetParams(weights []float64, bias float64) error {
	if len(weights) != len(n.weights) {
		return fmt.Errorf("neuron has %d weights, got %d: %w", len(n.weights), len(weights), ErrShapeMismatch)
	}
	copy(n.weights, weights)
	n.bias = bias
	return nil
}

// Weights returns a copy of the weights.
func (n *Neuron) Weights() []float64 {
	w := make([]float64, len(n.weights))
	copy(w, n.weights)
	return w
}

// Weight returns the weight applied to input i.
func (n *Neuron) Weight(i int) float64 {
	return n.weights[i]
}

// Bias returns the bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// Output returns the value produced by the last Compute.
func (n *Neuron) Output() float64 {
	return n.output
}

// Delta returns the delta stored by the last SetError.
func (n *Neuron) Delta() float64 {
	return n.delta
}

// Activation returns the shared activation.
func (n *Neuron) Activation() activations.Activation {
	return n.act
}

// InSize returns the number of inputs the neuron accepts.
func (n *Neuron) InSize() int {
	return len(n.weights)
}
