package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros[B Backend](shape Shape, b B) *Tensor[B] {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	// Data is already zero-initialized by make()
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[B Backend](shape Shape, b B) *Tensor[B] {
	return Full(shape, 1, b)
}

// Full creates a tensor filled with a specific value.
func Full[B Backend](shape Shape, value float32, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1).
// Note: uses math/rand (not crypto/rand) - appropriate for ML purposes.
func Randn[B Backend](shape Shape, b B) *Tensor[B] {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = float32(rand.NormFloat64()) //nolint:gosec // weight init, not security-critical
	}
	return t
}

// OneHot creates a [1, size] row vector with a single 1 at index and 0
// elsewhere. The entries of the result sum to exactly 1.
func OneHot[B Backend](size, index int, b B) (*Tensor[B], error) {
	if size <= 0 {
		return nil, fmt.Errorf("one-hot size must be > 0, got %d", size)
	}
	if index < 0 || index >= size {
		return nil, fmt.Errorf("one-hot index %d out of range [0, %d)", index, size)
	}

	t := Zeros(Shape{1, size}, b)
	t.Data()[index] = 1
	return t, nil
}
