package net

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochBegin(epoch int, n *Network)
	OnEpochEnd(epoch int, loss float64, n *Network)
}

// Stopper is implemented by callbacks that can end training early.
type Stopper interface {
	Stopped() bool
}

func stopRequested(callbacks []Callback) bool {
	for _, cb := range callbacks {
		if s, ok := cb.(Stopper); ok && s.Stopped() {
			return true
		}
	}
	return false
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network)                        {}
func (c BaseCallback) OnTrainEnd(n *Network)                          {}
func (c BaseCallback) OnEpochBegin(epoch int, n *Network)             {}
func (c BaseCallback) OnEpochEnd(epoch int, loss float64, n *Network) {}

// EarlyStopping stops training when the epoch loss has stopped improving.
type EarlyStopping struct {
	BaseCallback
	Patience  int
	Threshold float64

	// Out receives the stop notice; nil means os.Stdout.
	Out io.Writer

	bestLoss     float64
	numBadEpochs int
	stopped      bool
	stoppedEpoch int
}

// NewEarlyStopping creates an EarlyStopping that gives up after patience
// epochs without an improvement larger than threshold.
func NewEarlyStopping(patience int, threshold float64) *EarlyStopping {
	return &EarlyStopping{
		Patience:  patience,
		Threshold: threshold,
		bestLoss:  math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnTrainBegin(n *Network) {
	c.bestLoss = math.MaxFloat64
	c.numBadEpochs = 0
	c.stopped = false
	c.stoppedEpoch = 0
}

func (c *EarlyStopping) OnEpochEnd(epoch int, loss float64, n *Network) {
	if loss < c.bestLoss-c.Threshold {
		c.bestLoss = loss
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		c.stopped = true
		c.stoppedEpoch = epoch
		fmt.Fprintf(writerOrStdout(c.Out), "Early stopping at epoch %d: loss %.6f did not improve for %d epochs\n", epoch, loss, c.Patience)
	}
}

// Stopped reports whether training should end.
func (c *EarlyStopping) Stopped() bool {
	return c.stopped
}

// StoppedEpoch returns the epoch at which training was stopped.
func (c *EarlyStopping) StoppedEpoch() int {
	return c.stoppedEpoch
}

// Logger logs training progress every Interval epochs.
type Logger struct {
	BaseCallback
	Interval int
	Out      io.Writer // nil means os.Stdout
}

func (c Logger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Fprintf(writerOrStdout(c.Out), "Epoch %d: loss = %.6f\n", epoch, loss)
	}
}

// History records the loss of every epoch.
type History struct {
	BaseCallback
	Losses []float64
}

func (h *History) OnTrainBegin(n *Network) {
	h.Losses = h.Losses[:0]
}

func (h *History) OnEpochEnd(epoch int, loss float64, n *Network) {
	h.Losses = append(h.Losses, loss)
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
