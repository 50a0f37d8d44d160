// Package net provides the feed-forward perceptron network and its online
// back-propagation trainer.
package net

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/layer"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/loss"
)

// DefaultLearningRate is used when Config.LearningRate is zero.
const DefaultLearningRate = 0.1

var (
	// ErrShapeMismatch is returned for input or target vectors of the wrong length.
	ErrShapeMismatch = layer.ErrShapeMismatch

	// ErrConfiguration is returned for an invalid topology or hyperparameter.
	ErrConfiguration = layer.ErrConfiguration
)

// Config describes the topology and hyperparameters of a Network.
type Config struct {
	InputCount  int
	HiddenSizes []int
	OutputCount int

	HiddenActivation activations.Activation
	// OutputActivation defaults to HiddenActivation.
	OutputActivation activations.Activation

	// LearningRate defaults to DefaultLearningRate when zero.
	LearningRate float64

	// Rand initializes weights and biases. When nil, a source seeded with
	// Seed is used, so equal configs build equal networks.
	Rand *rand.Rand
	Seed int64

	// Loss defaults to loss.MSE.
	Loss loss.Loss
}

// Network is an ordered chain of fully connected layers trained by online
// gradient descent. It is not safe for concurrent use.
type Network struct {
	layers       []*layer.Layer
	loss         loss.Loss
	learningRate float64

	// Reused between BackPropagate calls
	residualBuf []float64
	actsBuf     [][]float64
}

// New builds a network with one layer per consecutive pair of
// [InputCount, HiddenSizes..., OutputCount]. The last layer uses the output
// activation, every other layer the hidden one.
func New(cfg Config) (*Network, error) {
	if cfg.InputCount <= 0 {
		return nil, fmt.Errorf("input count must be positive, got %d: %w", cfg.InputCount, ErrConfiguration)
	}
	if cfg.OutputCount <= 0 {
		return nil, fmt.Errorf("output count must be positive, got %d: %w", cfg.OutputCount, ErrConfiguration)
	}
	if cfg.HiddenActivation == nil {
		return nil, fmt.Errorf("hidden activation is nil: %w", ErrConfiguration)
	}

	lr := cfg.LearningRate
	if lr == 0 {
		lr = DefaultLearningRate
	}
	if !(lr > 0) || math.IsInf(lr, 1) {
		return nil, fmt.Errorf("learning rate must be finite and positive, got %v: %w", cfg.LearningRate, ErrConfiguration)
	}

	outAct := cfg.OutputActivation
	if outAct == nil {
		outAct = cfg.HiddenActivation
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	lossFn := cfg.Loss
	if lossFn == nil {
		lossFn = loss.MSE{}
	}

	sizes := make([]int, 0, len(cfg.HiddenSizes)+2)
	sizes = append(sizes, cfg.InputCount)
	sizes = append(sizes, cfg.HiddenSizes...)
	sizes = append(sizes, cfg.OutputCount)

	layers := make([]*layer.Layer, len(sizes)-1)
	for i := range layers {
		act := cfg.HiddenActivation
		if i == len(layers)-1 {
			act = outAct
		}
		l, err := layer.New(sizes[i], sizes[i+1], act, rng)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = l
	}

	return &Network{
		layers:       layers,
		loss:         lossFn,
		learningRate: lr,
		residualBuf:  make([]float64, cfg.OutputCount),
		actsBuf:      make([][]float64, len(layers)+1),
	}, nil
}

// FeedForward runs inputs through every layer and returns the output layer's
// activations. A wrong input length is reported before any neuron runs.
func (n *Network) FeedForward(inputs []float64) ([]float64, error) {
	if len(inputs) != n.InSize() {
		return nil, fmt.Errorf("network expects %d inputs, got %d: %w", n.InSize(), len(inputs), ErrShapeMismatch)
	}

	curr := inputs
	for i, l := range n.layers {
		out, err := l.Compute(curr)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		curr = out
	}
	return curr, nil
}

// Predict is FeedForward for inference call sites.
func (n *Network) Predict(inputs []float64) ([]float64, error) {
	return n.FeedForward(inputs)
}

// BackPropagate performs one online gradient-descent update on a single
// example and returns the loss of the prediction made before the update.
//
// Layers are visited from the output back to the input. The output layer's
// error is the loss residual (targets - outputs for MSE); an earlier layer's
// error for neuron j is the sum over the next layer of weight[j] * delta, read
// after that layer has been updated. Each neuron then sets
// delta = error * f'(output) and steps weights by lr*delta*input and the bias
// by lr*delta.
func (n *Network) BackPropagate(inputs, targets []float64) (float64, error) {
	if len(inputs) != n.InSize() {
		return 0, fmt.Errorf("network expects %d inputs, got %d: %w", n.InSize(), len(inputs), ErrShapeMismatch)
	}
	if len(targets) != n.OutSize() {
		return 0, fmt.Errorf("network produces %d outputs, got %d targets: %w", n.OutSize(), len(targets), ErrShapeMismatch)
	}

	// acts[0] is the input, acts[i+1] the output of layer i
	acts := n.actsBuf
	acts[0] = inputs
	for i, l := range n.layers {
		out, err := l.Compute(acts[i])
		if err != nil {
			return 0, fmt.Errorf("layer %d: %w", i, err)
		}
		acts[i+1] = out
	}

	output := acts[len(n.layers)]
	lossVal := n.loss.Forward(output, targets)
	n.loss.Residual(output, targets, n.residualBuf)

	last := len(n.layers) - 1
	for i := last; i >= 0; i-- {
		l := n.layers[i]
		for j, neuron := range l.Neurons() {
			var e float64
			if i == last {
				e = n.residualBuf[j]
			} else {
				e = n.layers[i+1].PropagatedError(j)
			}
			neuron.SetError(e)
		}
		if err := l.Update(n.learningRate, acts[i]); err != nil {
			return 0, fmt.Errorf("layer %d: %w", i, err)
		}
	}

	return lossVal, nil
}

// Train runs epochs passes over the dataset, calling BackPropagate once per
// example in the given order.
func (n *Network) Train(x, y [][]float64, epochs int) error {
	return n.Fit(x, y, epochs)
}

// Fit is Train with callbacks. Each callback sees the mean loss of every epoch;
// a callback implementing Stopper can end training early.
// Every example is validated before the first update, so a malformed dataset
// leaves the network untouched.
func (n *Network) Fit(x, y [][]float64, epochs int, callbacks ...Callback) error {
	if err := n.validateDataset(x, y); err != nil {
		return err
	}
	if epochs < 0 {
		return fmt.Errorf("epochs must not be negative, got %d: %w", epochs, ErrConfiguration)
	}

	for _, cb := range callbacks {
		cb.OnTrainBegin(n)
	}

	losses := make([]float64, len(x))
	for epoch := 0; epoch < epochs; epoch++ {
		for _, cb := range callbacks {
			cb.OnEpochBegin(epoch, n)
		}

		for i := range x {
			l, err := n.BackPropagate(x[i], y[i])
			if err != nil {
				return fmt.Errorf("epoch %d, example %d: %w", epoch, i, err)
			}
			losses[i] = l
		}

		var epochLoss float64
		if len(losses) > 0 {
			epochLoss = stat.Mean(losses, nil)
		}
		for _, cb := range callbacks {
			cb.OnEpochEnd(epoch, epochLoss, n)
		}

		if stopRequested(callbacks) {
			break
		}
	}

	for _, cb := range callbacks {
		cb.OnTrainEnd(n)
	}
	return nil
}

// Evaluate returns the mean loss over a dataset without updating the network.
func (n *Network) Evaluate(x, y [][]float64) (float64, error) {
	if err := n.validateDataset(x, y); err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, nil
	}

	losses := make([]float64, len(x))
	for i := range x {
		pred, err := n.FeedForward(x[i])
		if err != nil {
			return 0, fmt.Errorf("example %d: %w", i, err)
		}
		losses[i] = n.loss.Forward(pred, y[i])
	}
	return stat.Mean(losses, nil), nil
}

func (n *Network) validateDataset(x, y [][]float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("dataset has %d inputs but %d targets: %w", len(x), len(y), ErrShapeMismatch)
	}
	for i := range x {
		if len(x[i]) != n.InSize() {
			return fmt.Errorf("example %d has %d inputs, want %d: %w", i, len(x[i]), n.InSize(), ErrShapeMismatch)
		}
		if len(y[i]) != n.OutSize() {
			return fmt.Errorf("example %d has %d targets, want %d: %w", i, len(y[i]), n.OutSize(), ErrShapeMismatch)
		}
	}
	return nil
}

// Layers returns the network's layers.
func (n *Network) Layers() []*layer.Layer {
	return n.layers
}

// Layer returns layer i.
func (n *Network) Layer(i int) *layer.Layer {
	return n.layers[i]
}

// InSize returns the number of inputs the network accepts.
func (n *Network) InSize() int {
	return n.layers[0].InSize()
}

// OutSize returns the number of outputs the network produces.
func (n *Network) OutSize() int {
	return n.layers[len(n.layers)-1].OutSize()
}

// LearningRate returns the step size used by every update.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Loss returns the loss used for training.
func (n *Network) Loss() loss.Loss {
	return n.loss
}

// Params returns all network parameters flattened (copy), layer by layer.
func (n *Network) Params() []float64 {
	var params []float64
	for _, l := range n.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// SetParams loads parameters laid out like Params.
func (n *Network) SetParams(params []float64) error {
	total := 0
	for _, l := range n.layers {
		total += l.NumParams()
	}
	if len(params) != total {
		return fmt.Errorf("network has %d parameters, got %d: %w", total, len(params), ErrShapeMismatch)
	}

	offset := 0
	for _, l := range n.layers {
		if err := l.SetParams(params[offset : offset+l.NumParams()]); err != nil {
			return err
		}
		offset += l.NumParams()
	}
	return nil
}

// Summary writes a table of the network's layers to w.
func (n *Network) Summary(w io.Writer) {
	fmt.Fprintln(w, "Model: Perceptron")
	fmt.Fprintln(w, "_________________________________________________________________")
	fmt.Fprintf(w, "%-25s %-20s %-10s\n", "Layer (activation)", "Output Shape", "Param #")
	fmt.Fprintln(w, "=================================================================")

	totalParams := 0
	for i, l := range n.layers {
		params := l.NumParams()
		totalParams += params
		name := fmt.Sprintf("dense_%d (%s)", i, activations.Name(l.Activation()))
		fmt.Fprintf(w, "%-25s %-20s %-10d\n", name, fmt.Sprintf("(%d)", l.OutSize()), params)
	}
	fmt.Fprintln(w, "=================================================================")
	fmt.Fprintf(w, "Total params: %d\n", totalParams)
	fmt.Fprintf(w, "Learning rate: %g\n", n.learningRate)
	fmt.Fprintln(w, "_________________________________________________________________")
}
