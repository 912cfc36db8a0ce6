package ops

import (
	"fmt"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// CatOp represents a concatenation of 2D tensors along a dimension.
//
// Forward: output = Cat([input1, input2, ...], dim)
//
// Backward:
//
//	Split outputGrad along dim at the input boundaries; each input receives
//	the gradient slice corresponding to its contribution. For the recurrent
//	cell this is what routes the gradient of the combined [letter, hidden]
//	vector back to the letter input and the previous hidden state.
type CatOp struct {
	inputs []*tensor.RawTensor
	dim    int
	sizes  []int // size of each input along the concat dimension
	output *tensor.RawTensor
}

// NewCatOp creates a new cat operation.
func NewCatOp(inputs []*tensor.RawTensor, dim int, sizes []int, output *tensor.RawTensor) *CatOp {
	return &CatOp{
		inputs: inputs,
		dim:    dim,
		sizes:  sizes,
		output: output,
	}
}

// Inputs returns the input tensors.
func (op *CatOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns the output tensor.
func (op *CatOp) Output() *tensor.RawTensor {
	return op.output
}

// Backward splits the output gradient back into per-input slices.
func (op *CatOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	gradShape := outputGrad.Shape()
	if len(gradShape) != 2 {
		panic(fmt.Sprintf("cat backward: only 2D tensors supported, got %dD", len(gradShape)))
	}

	grads := make([]*tensor.RawTensor, len(op.inputs))
	gradData := outputGrad.Data()
	rows, cols := gradShape[0], gradShape[1]

	offset := 0
	for i, size := range op.sizes {
		sliceShape := gradShape.Clone()
		sliceShape[op.dim] = size
		grad := tensor.MustNewRaw(sliceShape)
		out := grad.Data()

		if op.dim == 0 {
			copy(out, gradData[offset*cols:(offset+size)*cols])
		} else {
			for r := 0; r < rows; r++ {
				copy(out[r*size:(r+1)*size], gradData[r*cols+offset:r*cols+offset+size])
			}
		}

		grads[i] = grad
		offset += size
	}

	return grads
}
