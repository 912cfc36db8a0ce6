package ops

import (
	"fmt"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// SoftmaxOp represents the softmax operation along the last dimension of a
// 2D tensor.
//
// Backward:
//
//	The Jacobian of softmax is ∂softmax_i/∂x_j = softmax_i * (δ_ij - softmax_j),
//	which with the chain rule collapses to:
//
//	∂L/∂x_j = softmax_j * (∂L/∂softmax_j - Σ_i (∂L/∂softmax_i * softmax_i))
type SoftmaxOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor // cached softmax output for the backward pass
}

// NewSoftmaxOp creates a new softmax operation.
func NewSoftmaxOp(input, output *tensor.RawTensor) *SoftmaxOp {
	return &SoftmaxOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *SoftmaxOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SoftmaxOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to the input, row by row.
func (op *SoftmaxOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	shape := op.input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("softmax backward: only 2D tensors supported, got %dD", len(shape)))
	}

	rows, cols := shape[0], shape[1]
	inputGrad := tensor.MustNewRaw(shape)

	softmax := op.output.Data()
	grad := outputGrad.Data()
	out := inputGrad.Data()

	for r := 0; r < rows; r++ {
		offset := r * cols

		// dot = Σ_i grad[i] * softmax[i]
		dot := float32(0)
		for j := 0; j < cols; j++ {
			dot += grad[offset+j] * softmax[offset+j]
		}

		for j := 0; j < cols; j++ {
			out[offset+j] = softmax[offset+j] * (grad[offset+j] - dot)
		}
	}

	return []*tensor.RawTensor{inputGrad}
}
