package layer

import "errors"

var (
	// ErrShapeMismatch reports an input or target vector whose length does not
	// match the declared size of the neuron, layer or network receiving it.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrConfiguration reports an invalid topology or hyperparameter at construction.
	ErrConfiguration = errors.New("invalid configuration")
)
