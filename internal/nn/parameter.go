// Package nn provides neural network building blocks: parameters,
// weight initialization, and the character-level recurrent cell.
package nn

import (
	"github.com/onoma-ml/onoma/internal/tensor"
)

// Parameter is a named, trainable tensor. Optimizers look parameters up in
// the gradient map by the identity of the underlying RawTensor, so the
// tensor must not be replaced between the forward pass and the update.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[B]
}

// NewParameter creates a parameter wrapping the given tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter's name, e.g. "i2h.weight".
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the underlying tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[B] {
	return p.tensor
}

// Module is anything that exposes trainable parameters.
type Module[B tensor.Backend] interface {
	// Parameters returns all trainable parameters in a stable order.
	Parameters() []*Parameter[B]
}
