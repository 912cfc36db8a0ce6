package ops

import "github.com/onoma-ml/onoma/internal/tensor"

// TransposeOp represents a 2D transpose operation.
//
// Forward:
//
//	output = transpose(input)
//
// Backward:
//
//	∂L/∂input = transpose(∂L/∂output)
//
// Transpose must be recorded on the tape: the backend materializes a new
// tensor, and without the record gradients would never reach the original.
type TransposeOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor
	axes   []int
}

// NewTransposeOp creates a new TransposeOp.
func NewTransposeOp(input, output *tensor.RawTensor, axes []int) *TransposeOp {
	return &TransposeOp{
		input:  input,
		output: output,
		axes:   axes,
	}
}

// Backward computes the input gradient for transpose.
// For a 2D swap the permutation is its own inverse.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inputGrad := backend.Transpose(outputGrad, op.axes...)
	return []*tensor.RawTensor{inputGrad}
}

// Inputs returns the input tensors.
func (op *TransposeOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *TransposeOp) Output() *tensor.RawTensor {
	return op.output
}
