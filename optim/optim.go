// Package optim is the public facade over the optimizers.
package optim

import (
	"github.com/onoma-ml/onoma/internal/nn"
	"github.com/onoma-ml/onoma/internal/optim"
	"github.com/onoma-ml/onoma/internal/tensor"
)

// Core types.
type (
	Optimizer             = optim.Optimizer
	SGDConfig             = optim.SGDConfig
	SGD[B tensor.Backend] = optim.SGD[B]
)

// NewSGD creates a stochastic gradient descent optimizer.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config optim.SGDConfig) (*optim.SGD[B], error) {
	return optim.NewSGD(params, config)
}
