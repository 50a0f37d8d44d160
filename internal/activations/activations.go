// Package activations provides activation functions for perceptron layers.
//
// Every derivative is expressed in terms of the activation's own output, so a
// neuron only needs to remember what it emitted on the last forward pass.
package activations

import (
	"fmt"
	"math"
	"strings"
)

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes y = f(x)
	Activate(x float64) float64

	// Derivative computes f'(x) given y = f(x)
	Derivative(y float64) float64
}

// Linear is the identity activation.
type Linear struct{}

// Activate returns x unchanged
func (l Linear) Activate(x float64) float64 {
	return x
}

// Derivative is always 1
func (l Linear) Derivative(y float64) float64 {
	return 1
}

// Sigmoid is the logistic activation, mapping any real input into (0, 1).
type Sigmoid struct{}

// Activate computes 1 / (1 + e^-x)
func (s Sigmoid) Activate(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative computes y * (1 - y)
func (s Sigmoid) Derivative(y float64) float64 {
	return y * (1 - y)
}

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x)
func (t Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - y^2
func (t Tanh) Derivative(y float64) float64 {
	return 1 - y*y
}

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (r ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if y > 0, else 0
func (r ReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// LeakyReLU activation function to prevent dying neurons.
// Alpha must be positive so the sign of the output still identifies the branch.
type LeakyReLU struct {
	Alpha float64 // Slope for x <= 0
}

// NewLeakyReLU creates a LeakyReLU with the given alpha value.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	return &LeakyReLU{Alpha: alpha}
}

// Activate computes x if x > 0, else alpha*x
func (l *LeakyReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.Alpha * x
}

// Derivative returns 1 if y > 0, else alpha
func (l *LeakyReLU) Derivative(y float64) float64 {
	if y > 0 {
		return 1
	}
	return l.Alpha
}

// ByName returns the activation registered under name (case-insensitive).
// "identity" is accepted as an alias of "linear" and "logistic" of "sigmoid".
func ByName(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "identity":
		return Linear{}, nil
	case "sigmoid", "logistic":
		return Sigmoid{}, nil
	case "tanh":
		return Tanh{}, nil
	case "relu":
		return ReLU{}, nil
	case "leakyrelu":
		return NewLeakyReLU(0.01), nil
	default:
		return nil, fmt.Errorf("unknown activation %q", name)
	}
}

// Name returns the registry name of a, or its Go type for unregistered activations.
func Name(a Activation) string {
	switch a.(type) {
	case Linear, *Linear:
		return "Linear"
	case Sigmoid, *Sigmoid:
		return "Sigmoid"
	case Tanh, *Tanh:
		return "Tanh"
	case ReLU, *ReLU:
		return "ReLU"
	case *LeakyReLU:
		return "LeakyReLU"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", a)
	}
}
