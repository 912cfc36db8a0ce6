package autodiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onoma-ml/onoma/internal/backend/cpu"
	"github.com/onoma-ml/onoma/internal/tensor"
)

func newBackend() *AutodiffBackend[*cpu.CPUBackend] {
	return New(cpu.New())
}

func fromSlice(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape)
	require.NoError(t, err)
	copy(r.Data(), data)
	return r
}

func ones(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape)
	require.NoError(t, err)
	for i := range r.Data() {
		r.Data()[i] = 1
	}
	return r
}

func TestTapeRecordsOnlyWhileRecording(t *testing.T) {
	b := newBackend()
	x := fromSlice(t, []float32{1, 2}, tensor.Shape{1, 2})
	y := fromSlice(t, []float32{3, 4}, tensor.Shape{1, 2})

	b.Add(x, y)
	assert.Empty(t, b.Tape().Operations())

	b.Tape().StartRecording()
	b.Add(x, y)
	b.Mul(x, y)
	assert.Len(t, b.Tape().Operations(), 2)

	b.Tape().StopRecording()
	b.Add(x, y)
	assert.Len(t, b.Tape().Operations(), 2)

	b.Tape().Clear()
	assert.Empty(t, b.Tape().Operations())
}

func TestBackwardAdd(t *testing.T) {
	b := newBackend()
	x := fromSlice(t, []float32{1, 2}, tensor.Shape{1, 2})
	y := fromSlice(t, []float32{3, 4}, tensor.Shape{1, 2})

	b.Tape().StartRecording()
	z := b.Add(x, y)
	b.Tape().StopRecording()

	seed := ones(t, z.Shape())
	grads := b.Tape().Backward(seed, b)

	require.Contains(t, grads, x)
	require.Contains(t, grads, y)
	assert.Equal(t, []float32{1, 1}, grads[x].Data())
	assert.Equal(t, []float32{1, 1}, grads[y].Data())
}

func TestBackwardMul(t *testing.T) {
	b := newBackend()
	x := fromSlice(t, []float32{2, 3}, tensor.Shape{1, 2})
	y := fromSlice(t, []float32{5, 7}, tensor.Shape{1, 2})

	b.Tape().StartRecording()
	z := b.Mul(x, y)
	b.Tape().StopRecording()

	grads := b.Tape().Backward(ones(t, z.Shape()), b)

	// d(x*y)/dx = y, d(x*y)/dy = x
	assert.Equal(t, []float32{5, 7}, grads[x].Data())
	assert.Equal(t, []float32{2, 3}, grads[y].Data())
}

func TestBackwardSharedInputAccumulates(t *testing.T) {
	b := newBackend()
	w := fromSlice(t, []float32{1, 1}, tensor.Shape{1, 2})

	b.Tape().StartRecording()
	z := b.Add(w, w)
	b.Tape().StopRecording()

	grads := b.Tape().Backward(ones(t, z.Shape()), b)

	// w contributes through both operands: grad = 1 + 1.
	assert.Equal(t, []float32{2, 2}, grads[w].Data())
}

func TestBackwardMatMul(t *testing.T) {
	b := newBackend()
	a := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	w := fromSlice(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	b.Tape().StartRecording()
	z := b.MatMul(a, w)
	b.Tape().StopRecording()

	grads := b.Tape().Backward(ones(t, z.Shape()), b)

	// gradA = outGrad @ w^T, gradW = a^T @ outGrad
	assert.Equal(t, []float32{11, 15, 11, 15}, grads[a].Data())
	assert.Equal(t, []float32{4, 4, 6, 6}, grads[w].Data())
}

func TestBackwardMSETargetGetsNoGradient(t *testing.T) {
	b := newBackend()
	pred := fromSlice(t, []float32{0.2, 0.8}, tensor.Shape{1, 2})
	target := fromSlice(t, []float32{0, 1}, tensor.Shape{1, 2})

	b.Tape().StartRecording()
	loss := b.MSELoss(pred, target)
	b.Tape().StopRecording()

	grads := b.Tape().Backward(ones(t, loss.Shape()), b)

	assert.Contains(t, grads, pred)
	assert.NotContains(t, grads, target)
}

func TestBackwardCatSplitsGradient(t *testing.T) {
	b := newBackend()
	x := fromSlice(t, []float32{1, 2}, tensor.Shape{1, 2})
	h := fromSlice(t, []float32{3, 4, 5}, tensor.Shape{1, 3})

	b.Tape().StartRecording()
	b.Cat([]*tensor.RawTensor{x, h}, 1)
	b.Tape().StopRecording()

	seed := fromSlice(t, []float32{10, 20, 30, 40, 50}, tensor.Shape{1, 5})
	grads := b.Tape().Backward(seed, b)

	assert.Equal(t, []float32{10, 20}, grads[x].Data())
	assert.Equal(t, []float32{30, 40, 50}, grads[h].Data())
}

// TestGradientCheck verifies analytic gradients against central finite
// differences for a composite expression resembling one recurrent step:
// loss = MSE(softmax(sigmoid(cat(x, h) @ w)), target).
func TestGradientCheck(t *testing.T) {
	b := newBackend()

	x := fromSlice(t, []float32{0.5, -0.3}, tensor.Shape{1, 2})
	h := fromSlice(t, []float32{0.1, 0.2}, tensor.Shape{1, 2})
	w := fromSlice(t, []float32{
		0.4, -0.2, 0.3,
		0.1, 0.5, -0.4,
		-0.3, 0.2, 0.1,
		0.2, -0.1, 0.6,
	}, tensor.Shape{4, 3})
	target := fromSlice(t, []float32{0, 1, 0}, tensor.Shape{1, 3})

	forward := func() float32 {
		combined := b.Cat([]*tensor.RawTensor{x, h}, 1)
		out := b.Softmax(b.Sigmoid(b.MatMul(combined, w)))
		return b.MSELoss(out, target).Data()[0]
	}

	b.Tape().StartRecording()
	combined := b.Cat([]*tensor.RawTensor{x, h}, 1)
	out := b.Softmax(b.Sigmoid(b.MatMul(combined, w)))
	loss := b.MSELoss(out, target)
	b.Tape().StopRecording()

	grads := b.Tape().Backward(ones(t, loss.Shape()), b)

	const eps = 1e-3
	check := func(name string, param *tensor.RawTensor) {
		grad := grads[param]
		require.NotNil(t, grad, name)
		data := param.Data()
		for i := range data {
			orig := data[i]
			data[i] = orig + eps
			plus := forward()
			data[i] = orig - eps
			minus := forward()
			data[i] = orig

			numeric := (plus - minus) / (2 * eps)
			assert.InDelta(t, numeric, grad.Data()[i], 1e-3,
				"%s[%d]: analytic %v vs numeric %v", name, i, grad.Data()[i], numeric)
		}
	}

	check("w", w)
	check("x", x)
	check("h", h)
}

func TestBackwardHelper(t *testing.T) {
	b := newBackend()
	pred := tensor.New(fromSlice(t, []float32{0.3, 0.7}, tensor.Shape{1, 2}), b)
	target := tensor.New(fromSlice(t, []float32{0, 1}, tensor.Shape{1, 2}), b)

	b.GetTape().StartRecording()
	loss := pred.MSELoss(target)
	b.GetTape().StopRecording()

	grads, err := Backward(loss)
	require.NoError(t, err)
	assert.Contains(t, grads, pred.Raw())
}

func TestBackwardHelperRejectsNonScalar(t *testing.T) {
	b := newBackend()
	v := tensor.New(fromSlice(t, []float32{1, 2}, tensor.Shape{1, 2}), b)

	_, err := Backward(v)
	assert.Error(t, err)
}

func TestBackwardEmptyTape(t *testing.T) {
	b := newBackend()
	grads := b.Tape().Backward(ones(t, tensor.Shape{1}), b)
	assert.Empty(t, grads)
}
