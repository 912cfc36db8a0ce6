// Package optim implements gradient-descent optimizers that consume the
// gradient map produced by autodiff's tape.
package optim

import (
	"github.com/onoma-ml/onoma/internal/nn"
	"github.com/onoma-ml/onoma/internal/tensor"
)

// Optimizer updates model parameters from a gradient map keyed by the
// identity of each parameter's RawTensor.
type Optimizer interface {
	// Step applies one update using the given gradients. Parameters with no
	// gradient in the map are left untouched.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error

	// GetLR returns the current learning rate.
	GetLR() float32

	// SetLR sets the learning rate, for manual schedules.
	SetLR(lr float32)
}

// gradientFor looks up the gradient recorded for a parameter's tensor.
func gradientFor[B tensor.Backend](p *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	return grads[p.Tensor().Raw()]
}
