// Package ops defines the differentiable operations recorded on the
// gradient tape.
//
// Each operation stores its forward inputs and output, and implements the
// backward pass: given the gradient of the loss with respect to its output,
// it returns the gradients with respect to each input.
package ops

import "github.com/onoma-ml/onoma/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input tensor; a nil entry means no gradient
	// flows to that input (e.g. the target of a loss).
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
