// Package tensor is the public facade over the internal tensor
// implementation. It re-exports the tensor type, shape machinery, creation
// helpers and typed errors so user code imports a single stable path.
package tensor

import (
	"github.com/onoma-ml/onoma/internal/tensor"
)

// Core types.
type (
	Shape                    = tensor.Shape
	RawTensor                = tensor.RawTensor
	Backend                  = tensor.Backend
	Tensor[B tensor.Backend] = tensor.Tensor[B]
)

// Typed errors.
type (
	ShapeMismatchError = tensor.ShapeMismatchError
	EmptySequenceError = tensor.EmptySequenceError
)

// Creation functions.
var (
	NewRaw     = tensor.NewRaw
	MustNewRaw = tensor.MustNewRaw
)

// New wraps a RawTensor with a backend.
func New[B tensor.Backend](raw *tensor.RawTensor, backend B) *tensor.Tensor[B] {
	return tensor.New(raw, backend)
}

// FromSlice creates a tensor from a flat float32 slice and a shape.
func FromSlice[B tensor.Backend](data []float32, shape tensor.Shape, backend B) (*tensor.Tensor[B], error) {
	return tensor.FromSlice(data, shape, backend)
}

// Zeros creates a tensor filled with zeros.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[B] {
	return tensor.Zeros(shape, backend)
}

// Ones creates a tensor filled with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[B] {
	return tensor.Ones(shape, backend)
}

// Full creates a tensor filled with the given value.
func Full[B tensor.Backend](shape tensor.Shape, value float32, backend B) *tensor.Tensor[B] {
	return tensor.Full(shape, value, backend)
}

// Randn creates a tensor of standard-normal samples.
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[B] {
	return tensor.Randn(shape, backend)
}

// OneHot creates a [1, size] row with a single 1.0 at index.
func OneHot[B tensor.Backend](size, index int, backend B) (*tensor.Tensor[B], error) {
	return tensor.OneHot(size, index, backend)
}

// Cat concatenates tensors along a dimension.
func Cat[B tensor.Backend](tensors []*tensor.Tensor[B], dim int) *tensor.Tensor[B] {
	return tensor.Cat(tensors, dim)
}

// Stack stacks equal-shaped tensors along a new leading dimension.
func Stack[B tensor.Backend](tensors []*tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	return tensor.Stack(tensors)
}
