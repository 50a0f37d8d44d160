// Package perceptron is the public entry point of GoPerceptron: a small
// fully connected feed-forward network trained by online back-propagation.
package perceptron

import (
	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
)

// Re-export common types and functions for easier access
type (
	Network    = net.Network
	Config     = net.Config
	Layer      = layer.Layer
	Neuron     = layer.Neuron
	Activation = activations.Activation
	Loss       = loss.Loss
	Dataset    = net.Dataset
	Callback   = net.Callback
)

// DefaultLearningRate is used when Config.LearningRate is zero.
const DefaultLearningRate = net.DefaultLearningRate

// Errors
var (
	ErrShapeMismatch = net.ErrShapeMismatch
	ErrConfiguration = net.ErrConfiguration
)

// New builds a network from cfg.
func New(cfg Config) (*Network, error) {
	return net.New(cfg)
}

// NewMLP builds a network with the given topology, using hidden for every
// layer but the last and output for the last.
func NewMLP(inputCount int, hiddenSizes []int, outputCount int, hidden, output Activation, learningRate float64, seed int64) (*Network, error) {
	return net.New(net.Config{
		InputCount:       inputCount,
		HiddenSizes:      hiddenSizes,
		OutputCount:      outputCount,
		HiddenActivation: hidden,
		OutputActivation: output,
		LearningRate:     learningRate,
		Seed:             seed,
	})
}

// Activations
var (
	Linear  = activations.Linear{}
	Sigmoid = activations.Sigmoid{}
	Tanh    = activations.Tanh{}
	ReLU    = activations.ReLU{}
)

func LeakyReLU(alpha float64) Activation {
	return activations.NewLeakyReLU(alpha)
}

// ActivationByName looks up an activation such as "sigmoid" or "linear".
func ActivationByName(name string) (Activation, error) {
	return activations.ByName(name)
}

// Losses
var MSE = loss.MSE{}

func Huber(delta float64) Loss {
	return loss.NewHuber(delta)
}

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func EarlyStopping(patience int, threshold float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, threshold)
}

func CSVLogger(filename string, append bool) *net.CSVLogger {
	return net.NewCSVLogger(filename, append)
}

// Datasets
func LoadCSV(filename string, labelCols []int, hasHeader bool) (*Dataset, error) {
	return net.LoadCSV(filename, labelCols, hasHeader)
}
