// Package autodiff is the public facade over the reverse-mode automatic
// differentiation engine.
package autodiff

import (
	"github.com/onoma-ml/onoma/internal/autodiff"
	"github.com/onoma-ml/onoma/internal/tensor"
)

// Core types.
type (
	GradientTape                      = autodiff.GradientTape
	BackwardCapable                   = autodiff.BackwardCapable
	AutodiffBackend[B tensor.Backend] = autodiff.AutodiffBackend[B]
)

// NewGradientTape creates an empty tape with recording disabled.
var NewGradientTape = autodiff.NewGradientTape

// New wraps a backend with gradient tracking.
func New[B tensor.Backend](backend B) *autodiff.AutodiffBackend[B] {
	return autodiff.New(backend)
}

// Backward runs backpropagation from a scalar loss, seeding with 1.0.
func Backward[B autodiff.BackwardCapable](loss *tensor.Tensor[B]) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	return autodiff.Backward(loss)
}
