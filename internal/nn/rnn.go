package nn

import (
	"fmt"
	"math/rand"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// DefaultHiddenSize is the hidden state width used when no explicit size is
// given.
const DefaultHiddenSize = 128

// CharRNN is a character-level recurrent classifier.
//
// Each step concatenates the current input with the previous hidden state
// and feeds the combined row through two sigmoid layers:
//
//	combined = cat(input, hidden)            // [1, inputSize+hiddenSize]
//	hidden'  = sigmoid(combined @ Wih + bih) // [1, hiddenSize]
//	output   = softmax(sigmoid(hidden' @ Who + bho))
//
// Both layers use sigmoid activations; the output layer's sigmoid feeds the
// softmax rather than raw logits.
type CharRNN[B tensor.Backend] struct {
	inputSize  int
	hiddenSize int
	outputSize int

	i2hWeight *Parameter[B] // [inputSize+hiddenSize, hiddenSize]
	i2hBias   *Parameter[B] // [1, hiddenSize]
	h2oWeight *Parameter[B] // [hiddenSize, outputSize]
	h2oBias   *Parameter[B] // [1, outputSize]

	backend B
}

// NewCharRNN creates a recurrent classifier with Xavier-initialized weights
// and zero biases. Weights are drawn from rng so a fixed seed gives a
// reproducible model.
func NewCharRNN[B tensor.Backend](inputSize, hiddenSize, outputSize int, rng *rand.Rand, backend B) (*CharRNN[B], error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("nn: sizes must be > 0, got input=%d hidden=%d output=%d",
			inputSize, hiddenSize, outputSize)
	}

	i2hW := XavierUniform(inputSize+hiddenSize, hiddenSize, rng, backend)
	i2hB := tensor.Zeros(tensor.Shape{1, hiddenSize}, backend)
	h2oW := XavierUniform(hiddenSize, outputSize, rng, backend)
	h2oB := tensor.Zeros(tensor.Shape{1, outputSize}, backend)

	return &CharRNN[B]{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
		i2hWeight:  NewParameter("i2h.weight", i2hW),
		i2hBias:    NewParameter("i2h.bias", i2hB),
		h2oWeight:  NewParameter("h2o.weight", h2oW),
		h2oBias:    NewParameter("h2o.bias", h2oB),
		backend:    backend,
	}, nil
}

// InputSize returns the one-hot input width.
func (r *CharRNN[B]) InputSize() int { return r.inputSize }

// HiddenSize returns the hidden state width.
func (r *CharRNN[B]) HiddenSize() int { return r.hiddenSize }

// OutputSize returns the number of output classes.
func (r *CharRNN[B]) OutputSize() int { return r.outputSize }

// InitHidden returns a fresh zero hidden state of shape [1, hiddenSize].
// Each sequence starts from this state; hidden state never leaks between
// sequences.
func (r *CharRNN[B]) InitHidden() *tensor.Tensor[B] {
	return tensor.Zeros(tensor.Shape{1, r.hiddenSize}, r.backend)
}

// Step processes a single input of shape [1, inputSize] together with the
// previous hidden state and returns (output, newHidden). The output row is
// a probability distribution over classes.
func (r *CharRNN[B]) Step(input, hidden *tensor.Tensor[B]) (*tensor.Tensor[B], *tensor.Tensor[B]) {
	combined := tensor.Cat([]*tensor.Tensor[B]{input, hidden}, 1)

	newHidden := combined.MatMul(r.i2hWeight.Tensor()).Add(r.i2hBias.Tensor()).Sigmoid()
	output := newHidden.MatMul(r.h2oWeight.Tensor()).Add(r.h2oBias.Tensor()).Sigmoid().Softmax()

	return output, newHidden
}

// Forward runs the full sequence through the cell, starting from a zero
// hidden state, and returns the output after the final step. Returns
// *tensor.EmptySequenceError when the sequence has no steps, since there
// would be no output to classify.
func (r *CharRNN[B]) Forward(seq []*tensor.Tensor[B]) (*tensor.Tensor[B], error) {
	if len(seq) == 0 {
		return nil, &tensor.EmptySequenceError{Op: "forward"}
	}

	hidden := r.InitHidden()

	var output *tensor.Tensor[B]
	for _, input := range seq {
		output, hidden = r.Step(input, hidden)
	}
	return output, nil
}

// Parameters returns the four trainable parameters in a stable order.
func (r *CharRNN[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{r.i2hWeight, r.i2hBias, r.h2oWeight, r.h2oBias}
}
