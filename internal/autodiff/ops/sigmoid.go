package ops

import "github.com/onoma-ml/onoma/internal/tensor"

// SigmoidOp represents the sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct {
	input  *tensor.RawTensor
	output *tensor.RawTensor // cached σ(x) for the backward pass
}

// NewSigmoidOp creates a new sigmoid operation.
func NewSigmoidOp(input, output *tensor.RawTensor) *SigmoidOp {
	return &SigmoidOp{
		input:  input,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *SigmoidOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *SigmoidOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient for sigmoid.
//
// dσ/dx = σ(x) * (1 - σ(x)), and σ(x) is already cached as the output:
//
//	grad_input = outputGrad * output * (1 - output)
func (op *SigmoidOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	inputGrad := tensor.MustNewRaw(op.output.Shape())

	sig, grad, out := op.output.Data(), outputGrad.Data(), inputGrad.Data()
	for i := range out {
		out[i] = grad[i] * sig[i] * (1 - sig[i])
	}

	return []*tensor.RawTensor{inputGrad}
}
