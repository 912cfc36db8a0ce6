package autodiff

import (
	"fmt"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// BackwardCapable is a backend that supports backpropagation. Training code
// is generic over this interface so it works with any wrapped backend.
type BackwardCapable interface {
	tensor.Backend

	// GetTape returns the gradient tape used for recording.
	GetTape() *GradientTape
}

// GetTape implements BackwardCapable.
func (b *AutodiffBackend[B]) GetTape() *GradientTape {
	return b.tape
}

// Backward runs backpropagation from a scalar loss tensor, seeding the
// gradient with 1.0. Returns the gradient map produced by the tape.
func Backward[B BackwardCapable](loss *tensor.Tensor[B]) (map[*tensor.RawTensor]*tensor.RawTensor, error) {
	if loss.NumElements() != 1 {
		return nil, fmt.Errorf("autodiff: backward requires a scalar loss, got shape %v", loss.Shape())
	}

	seed, err := tensor.NewRaw(loss.Shape().Clone())
	if err != nil {
		return nil, fmt.Errorf("autodiff: allocating seed gradient: %w", err)
	}
	for i := range seed.Data() {
		seed.Data()[i] = 1
	}

	backend := loss.Backend()
	return backend.GetTape().Backward(seed, backend), nil
}
