package tensor

// Add performs element-wise addition. Shapes must match.
func (t *Tensor[B]) Add(other *Tensor[B]) *Tensor[B] {
	result := t.backend.Add(t.raw, other.raw)
	return New(result, t.backend)
}

// Sub performs element-wise subtraction. Shapes must match.
func (t *Tensor[B]) Sub(other *Tensor[B]) *Tensor[B] {
	result := t.backend.Sub(t.raw, other.raw)
	return New(result, t.backend)
}

// Mul performs element-wise multiplication. Shapes must match.
func (t *Tensor[B]) Mul(other *Tensor[B]) *Tensor[B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New(result, t.backend)
}

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (t *Tensor[B]) MatMul(other *Tensor[B]) *Tensor[B] {
	result := t.backend.MatMul(t.raw, other.raw)
	return New(result, t.backend)
}

// Transpose permutes the tensor's dimensions.
// With no axes, reverses all dimensions (standard 2D transpose).
func (t *Tensor[B]) Transpose(axes ...int) *Tensor[B] {
	result := t.backend.Transpose(t.raw, axes...)
	return New(result, t.backend)
}

// T is a shortcut for 2D transpose (swaps rows and columns).
// Panics if the tensor is not 2D.
func (t *Tensor[B]) T() *Tensor[B] {
	if len(t.Shape()) != 2 {
		panic("T() only works for 2D tensors")
	}
	return t.Transpose(1, 0)
}

// Sigmoid applies the logistic function element-wise.
func (t *Tensor[B]) Sigmoid() *Tensor[B] {
	result := t.backend.Sigmoid(t.raw)
	return New(result, t.backend)
}

// Softmax normalizes each row into a probability distribution.
func (t *Tensor[B]) Softmax() *Tensor[B] {
	result := t.backend.Softmax(t.raw)
	return New(result, t.backend)
}

// MSELoss computes the mean squared error between t and target as a
// scalar tensor of shape [1]. Shapes must match.
func (t *Tensor[B]) MSELoss(target *Tensor[B]) *Tensor[B] {
	result := t.backend.MSELoss(t.raw, target.raw)
	return New(result, t.backend)
}

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation
// dimension.
//
// Example:
//
//	a := tensor.Randn(Shape{1, 3}, backend)
//	b := tensor.Randn(Shape{1, 5}, backend)
//	c := tensor.Cat([]*Tensor[B]{a, b}, 1) // Shape: [1, 8]
func Cat[B Backend](tensors []*Tensor[B], dim int) *Tensor[B] {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	raws := make([]*RawTensor, len(tensors))
	backend := tensors[0].backend
	for i, t := range tensors {
		raws[i] = t.raw
	}

	result := backend.Cat(raws, dim)
	return New(result, backend)
}
