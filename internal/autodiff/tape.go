package autodiff

import (
	"github.com/onoma-ml/onoma/internal/autodiff/ops"
	"github.com/onoma-ml/onoma/internal/tensor"
)

// GradientTape records operations for reverse-mode automatic differentiation.
//
// During the forward pass, each operation executed through an
// AutodiffBackend is appended to the tape (when recording is on). Backward
// then walks the recorded operations in reverse order and applies the chain
// rule, accumulating gradients for every tensor that participated.
//
// GradientTape is not safe for concurrent use. Each training goroutine
// should own its backend and tape.
type GradientTape struct {
	operations []ops.Operation
	recording  bool
}

// NewGradientTape creates an empty tape with recording disabled.
func NewGradientTape() *GradientTape {
	return &GradientTape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables recording of operations.
func (t *GradientTape) StartRecording() {
	t.recording = true
}

// StopRecording disables recording of operations.
func (t *GradientTape) StopRecording() {
	t.recording = false
}

// IsRecording reports whether the tape is currently recording.
func (t *GradientTape) IsRecording() bool {
	return t.recording
}

// Record appends an operation to the tape if recording is enabled.
func (t *GradientTape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Operations returns the recorded operations in execution order.
func (t *GradientTape) Operations() []ops.Operation {
	return t.operations
}

// Clear removes all recorded operations. Call between training steps so the
// tape does not grow across iterations.
func (t *GradientTape) Clear() {
	t.operations = t.operations[:0]
}

// Backward performs backpropagation through the recorded operations.
//
// outputGrad seeds the gradient of the final operation's output (for a
// scalar loss, a [1] tensor holding 1.0). The returned map holds the
// accumulated gradient for every tensor reached by the reverse walk, keyed
// by the tensor's identity. Tensors used more than once (shared parameters
// across timesteps) have their gradients summed.
//
// Recording is suspended for the duration of the walk so that backend calls
// made inside Backward implementations are not themselves recorded.
func (t *GradientTape) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) map[*tensor.RawTensor]*tensor.RawTensor {
	grads := make(map[*tensor.RawTensor]*tensor.RawTensor)
	if len(t.operations) == 0 {
		return grads
	}

	wasRecording := t.recording
	t.recording = false
	defer func() { t.recording = wasRecording }()

	last := t.operations[len(t.operations)-1]
	grads[last.Output()] = outputGrad

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]

		outGrad, ok := grads[op.Output()]
		if !ok {
			// Output never contributed to the loss.
			continue
		}

		inputGrads := op.Backward(outGrad, backend)
		inputs := op.Inputs()

		for j, input := range inputs {
			grad := inputGrads[j]
			if grad == nil {
				// Operation declared no gradient flow to this input.
				continue
			}
			if existing, ok := grads[input]; ok {
				grads[input] = backend.Add(existing, grad)
			} else {
				grads[input] = grad
			}
		}
	}

	return grads
}
