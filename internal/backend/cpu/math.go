package cpu

import (
	"fmt"
	"math"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N).
// Naive O(n³) implementation; the matrices in a recurrent step are small
// enough that cache blocking would not pay for its complexity.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result := tensor.MustNewRaw(tensor.Shape{m, n})
	aData, bData, c := a.Data(), b.Data(), result.Data()

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += aData[i*k+kIdx] * bData[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return result
}

// Transpose permutes the dimensions of a 2D tensor.
// With no axes, reverses the dimensions.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: only 2D tensors supported, got %dD", len(shape)))
	}
	if len(axes) == 0 {
		axes = []int{1, 0}
	}
	if len(axes) != 2 || axes[0]+axes[1] != 1 || axes[0]*axes[1] != 0 {
		panic(fmt.Sprintf("transpose: invalid axes %v for 2D tensor", axes))
	}
	if axes[0] == 0 {
		// Identity permutation.
		return t.Clone()
	}

	rows, cols := shape[0], shape[1]
	result := tensor.MustNewRaw(tensor.Shape{cols, rows})
	in, out := t.Data(), result.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = in[i*cols+j]
		}
	}
	return result
}

// Cat concatenates 2D tensors along dim 0 (rows) or dim 1 (columns).
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}
	if dim != 0 && dim != 1 {
		panic(fmt.Sprintf("cat: dim must be 0 or 1, got %d", dim))
	}

	first := tensors[0].Shape()
	if len(first) != 2 {
		panic(fmt.Sprintf("cat: only 2D tensors supported, got %dD", len(first)))
	}

	fixed := 1 - dim
	total := 0
	for _, t := range tensors {
		shape := t.Shape()
		if len(shape) != 2 || shape[fixed] != first[fixed] {
			panic(fmt.Sprintf("cat: incompatible shapes %v and %v along dim %d", first, shape, dim))
		}
		total += shape[dim]
	}

	outShape := first.Clone()
	outShape[dim] = total
	result := tensor.MustNewRaw(outShape)
	out := result.Data()

	if dim == 0 {
		offset := 0
		for _, t := range tensors {
			copy(out[offset:], t.Data())
			offset += t.NumElements()
		}
		return result
	}

	rows := first[0]
	outCols := total
	colOffset := 0
	for _, t := range tensors {
		cols := t.Shape()[1]
		in := t.Data()
		for r := 0; r < rows; r++ {
			copy(out[r*outCols+colOffset:r*outCols+colOffset+cols], in[r*cols:(r+1)*cols])
		}
		colOffset += cols
	}
	return result
}

// Sigmoid applies the logistic function element-wise:
// σ(x) = 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result := tensor.MustNewRaw(x.Shape())
	in, out := x.Data(), result.Data()
	for i, v := range in {
		out[i] = float32(1.0 / (1.0 + math.Exp(float64(-v))))
	}
	return result
}

// Softmax normalizes each row of a 2D tensor into a probability
// distribution:
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// The max-shifting ensures numerical stability.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("softmax: only 2D tensors supported, got %dD", len(shape)))
	}

	rows, cols := shape[0], shape[1]
	result := tensor.MustNewRaw(shape)
	in, out := x.Data(), result.Data()

	for r := 0; r < rows; r++ {
		offset := r * cols
		maxVal := in[offset]
		for j := 1; j < cols; j++ {
			if in[offset+j] > maxVal {
				maxVal = in[offset+j]
			}
		}

		sumExp := float32(0)
		for j := 0; j < cols; j++ {
			out[offset+j] = float32(math.Exp(float64(in[offset+j] - maxVal)))
			sumExp += out[offset+j]
		}
		for j := 0; j < cols; j++ {
			out[offset+j] /= sumExp
		}
	}
	return result
}

// MSELoss computes mean((pred - target)^2) as a shape-[1] scalar.
func (cpu *CPUBackend) MSELoss(pred, target *tensor.RawTensor) *tensor.RawTensor {
	if !pred.Shape().Equal(target.Shape()) {
		panic(fmt.Sprintf("mse: shape mismatch %v vs %v", pred.Shape(), target.Shape()))
	}

	p, t := pred.Data(), target.Data()
	var sum float32
	for i := range p {
		diff := p[i] - t[i]
		sum += diff * diff
	}

	result := tensor.MustNewRaw(tensor.Shape{1})
	result.Data()[0] = sum / float32(len(p))
	return result
}
