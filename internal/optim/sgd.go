package optim

import (
	"fmt"

	"github.com/onoma-ml/onoma/internal/nn"
	"github.com/onoma-ml/onoma/internal/tensor"
)

// SGDConfig configures stochastic gradient descent.
type SGDConfig struct {
	LR       float32 // learning rate
	Momentum float32 // momentum factor, 0 disables momentum
}

// SGD implements stochastic gradient descent with optional momentum:
//
//	v = momentum*v + grad
//	p = p - lr*v
type SGD[B tensor.Backend] struct {
	params   []*nn.Parameter[B]
	lr       float32
	momentum float32

	// velocity buffers, lazily allocated per parameter on first step
	velocities map[*tensor.RawTensor][]float32
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig) (*SGD[B], error) {
	if config.LR <= 0 {
		return nil, fmt.Errorf("optim: learning rate must be > 0, got %v", config.LR)
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, fmt.Errorf("optim: momentum must be in [0, 1), got %v", config.Momentum)
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*tensor.RawTensor][]float32),
	}, nil
}

// Step applies one SGD update in place. Parameter tensors keep their
// identity so later gradient maps still resolve to them.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) error {
	for _, p := range s.params {
		grad := gradientFor(p, grads)
		if grad == nil {
			continue
		}

		raw := p.Tensor().Raw()
		if !raw.Shape().Equal(grad.Shape()) {
			return fmt.Errorf("optim: gradient shape %v does not match parameter %q shape %v",
				grad.Shape(), p.Name(), raw.Shape())
		}

		data := raw.Data()
		gradData := grad.Data()

		if s.momentum == 0 {
			for i := range data {
				data[i] -= s.lr * gradData[i]
			}
			continue
		}

		vel, ok := s.velocities[raw]
		if !ok {
			vel = make([]float32, len(data))
			s.velocities[raw] = vel
		}
		for i := range data {
			vel[i] = s.momentum*vel[i] + gradData[i]
			data[i] -= s.lr * vel[i]
		}
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 { return s.lr }

// SetLR sets the learning rate.
func (s *SGD[B]) SetLR(lr float32) { s.lr = lr }
