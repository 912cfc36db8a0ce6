// Package nn is the public facade over the neural network building blocks.
package nn

import (
	"math/rand"

	"github.com/onoma-ml/onoma/internal/nn"
	"github.com/onoma-ml/onoma/internal/tensor"
)

// DefaultHiddenSize is the hidden state width used when no explicit size is
// given.
const DefaultHiddenSize = nn.DefaultHiddenSize

// Core types.
type (
	Parameter[B tensor.Backend] = nn.Parameter[B]
	Module[B tensor.Backend]    = nn.Module[B]
	CharRNN[B tensor.Backend]   = nn.CharRNN[B]
)

// NewParameter creates a named trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[B]) *nn.Parameter[B] {
	return nn.NewParameter(name, t)
}

// NewCharRNN creates a character-level recurrent classifier.
func NewCharRNN[B tensor.Backend](inputSize, hiddenSize, outputSize int, rng *rand.Rand, backend B) (*nn.CharRNN[B], error) {
	return nn.NewCharRNN(inputSize, hiddenSize, outputSize, rng, backend)
}

// XavierUniform initializes a [fanIn, fanOut] weight tensor.
func XavierUniform[B tensor.Backend](fanIn, fanOut int, rng *rand.Rand, backend B) *tensor.Tensor[B] {
	return nn.XavierUniform(fanIn, fanOut, rng, backend)
}
