package nn

import (
	"math"
	"math/rand"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// XavierUniform initializes a [fanIn, fanOut] weight tensor with values
// drawn uniformly from [-limit, limit] where limit = sqrt(6 / (fanIn+fanOut)).
// Keeps activation variance roughly constant across layers.
func XavierUniform[B tensor.Backend](fanIn, fanOut int, rng *rand.Rand, backend B) *tensor.Tensor[B] {
	t := tensor.Zeros(tensor.Shape{fanIn, fanOut}, backend)

	limit := float32(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float32()*2 - 1) * limit
	}
	return t
}
