package dynamo

import "errors"

// Domain errors for exponent evaluation.
var (
	// ErrEmptySequence indicates an evaluator built without control symbols.
	ErrEmptySequence = errors.New("dynamo: control sequence is empty")

	// ErrIterations indicates a round count below one.
	ErrIterations = errors.New("dynamo: iteration count must be at least 1")
)
