// Package tensor provides the core tensor types and operations for the
// Onoma framework. Tensors are dense float32 buffers with row-major layout;
// computation is delegated to a Backend implementation.
package tensor

import "fmt"

// RawTensor is the low-level tensor representation: a flat float32 buffer
// with a shape and row-major strides. Every operation allocates its result;
// there is no buffer sharing, so a RawTensor held by the autodiff tape keeps
// the values it had during the forward pass.
type RawTensor struct {
	data   []float32
	shape  Shape
	stride []int
}

// NewRaw creates a new zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float32, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// MustNewRaw is NewRaw for shapes that are known to be valid.
// It panics on invalid shapes and is intended for backend internals.
func MustNewRaw(shape Shape) *RawTensor {
	r, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the underlying float32 slice.
// WARNING: modifications write through to the tensor.
func (r *RawTensor) Data() []float32 {
	return r.data
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	clone := &RawTensor{
		data:   make([]float32, len(r.data)),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
	copy(clone.data, r.data)
	return clone
}
