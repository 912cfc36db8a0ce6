package tensor

import "fmt"

// ShapeMismatchError reports an attempt to combine tensors whose shapes are
// incompatible, most importantly stacking variable-length sequences into one
// batched tensor. Callers must treat it as fatal for the run: the contract is
// one example per step, never pad or truncate.
type ShapeMismatchError struct {
	Want Shape
	Got  Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("tensor: shape mismatch: want %v, got %v", e.Want, e.Got)
}

// EmptySequenceError reports a sequence with zero positions where at least
// one is required. A zero-length word has no defined output distribution, so
// the error is raised instead of returning a degenerate default.
type EmptySequenceError struct {
	Op string
}

func (e *EmptySequenceError) Error() string {
	if e.Op == "" {
		return "tensor: empty sequence"
	}
	return fmt.Sprintf("tensor: %s: empty sequence", e.Op)
}
