package ops

import "github.com/onoma-ml/onoma/internal/tensor"

// MatMulOp represents a 2D matrix multiplication: output = a @ b.
//
// Backward:
//
//	∂L/∂a = outputGrad @ bᵀ
//	∂L/∂b = aᵀ @ outputGrad
//
// Both recurrent layers are matmuls against a shared weight, so these two
// products are where the per-timestep parameter gradients come from before
// the tape sums them.
type MatMulOp struct {
	inputs []*tensor.RawTensor // [a, b]
	output *tensor.RawTensor
}

// NewMatMulOp creates a new matmul operation.
func NewMatMulOp(a, b, output *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{
		inputs: []*tensor.RawTensor{a, b},
		output: output,
	}
}

// Backward computes the two input gradients via the backend's own
// transpose and matmul, so their cost profile matches the forward pass.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	a, b := op.inputs[0], op.inputs[1]

	gradA := backend.MatMul(outputGrad, backend.Transpose(b, 1, 0))
	gradB := backend.MatMul(backend.Transpose(a, 1, 0), outputGrad)

	return []*tensor.RawTensor{gradA, gradB}
}

// Inputs returns the input tensors [a, b].
func (op *MatMulOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the product tensor.
func (op *MatMulOp) Output() *tensor.RawTensor {
	return op.output
}
