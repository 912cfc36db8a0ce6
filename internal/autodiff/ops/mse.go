package ops

import "github.com/onoma-ml/onoma/internal/tensor"

// MSEOp represents the mean-squared-error loss operation.
//
// Forward:
//
//	Loss = mean((pred - target)²)
//
// Backward:
//
//	∂L/∂pred = outputGrad * 2 * (pred - target) / n
//
// No gradient flows to the target: it is a fixed one-hot label, not a
// learned quantity.
type MSEOp struct {
	pred   *tensor.RawTensor
	target *tensor.RawTensor
	output *tensor.RawTensor // shape-[1] scalar loss
}

// NewMSEOp creates a new mean-squared-error operation.
func NewMSEOp(pred, target, output *tensor.RawTensor) *MSEOp {
	return &MSEOp{
		pred:   pred,
		target: target,
		output: output,
	}
}

// Inputs returns the input tensors [pred, target].
func (op *MSEOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.pred, op.target}
}

// Output returns the scalar loss tensor.
func (op *MSEOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward computes the gradient with respect to the prediction.
func (op *MSEOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	predGrad := tensor.MustNewRaw(op.pred.Shape())

	p, t, out := op.pred.Data(), op.target.Data(), predGrad.Data()
	scale := outputGrad.Data()[0] * 2 / float32(len(p))
	for i := range out {
		out[i] = scale * (p[i] - t[i])
	}

	return []*tensor.RawTensor{predGrad, nil}
}
