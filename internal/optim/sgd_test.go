package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onoma-ml/onoma/internal/backend/cpu"
	"github.com/onoma-ml/onoma/internal/nn"
	"github.com/onoma-ml/onoma/internal/tensor"
)

func param(t *testing.T, name string, data []float32) *nn.Parameter[*cpu.CPUBackend] {
	t.Helper()
	tr, err := tensor.FromSlice(data, tensor.Shape{1, len(data)}, cpu.New())
	require.NoError(t, err)
	return nn.NewParameter(name, tr)
}

func gradFor(t *testing.T, p *nn.Parameter[*cpu.CPUBackend], data []float32) map[*tensor.RawTensor]*tensor.RawTensor {
	t.Helper()
	g, err := tensor.NewRaw(p.Tensor().Shape().Clone())
	require.NoError(t, err)
	copy(g.Data(), data)
	return map[*tensor.RawTensor]*tensor.RawTensor{p.Tensor().Raw(): g}
}

func TestNewSGDValidatesConfig(t *testing.T) {
	p := param(t, "w", []float32{1})

	_, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0})
	assert.Error(t, err)
	_, err = NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: -0.1})
	assert.Error(t, err)
	_, err = NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0.1, Momentum: 1})
	assert.Error(t, err)
}

func TestSGDStep(t *testing.T) {
	p := param(t, "w", []float32{1, 2, 3})
	sgd, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0.1})
	require.NoError(t, err)

	grads := gradFor(t, p, []float32{1, -1, 0.5})
	require.NoError(t, sgd.Step(grads))

	assert.InDelta(t, 0.9, p.Tensor().Data()[0], 1e-6)
	assert.InDelta(t, 2.1, p.Tensor().Data()[1], 1e-6)
	assert.InDelta(t, 2.95, p.Tensor().Data()[2], 1e-6)
}

func TestSGDSkipsParameterWithoutGradient(t *testing.T) {
	p := param(t, "w", []float32{1, 2})
	sgd, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0.5})
	require.NoError(t, err)

	require.NoError(t, sgd.Step(map[*tensor.RawTensor]*tensor.RawTensor{}))
	assert.Equal(t, []float32{1, 2}, p.Tensor().Data())
}

func TestSGDMomentumAccumulates(t *testing.T) {
	p := param(t, "w", []float32{0})
	sgd, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 1, Momentum: 0.5})
	require.NoError(t, err)

	// v1 = 1, p = -1; v2 = 0.5 + 1 = 1.5, p = -2.5
	require.NoError(t, sgd.Step(gradFor(t, p, []float32{1})))
	assert.InDelta(t, -1.0, p.Tensor().Data()[0], 1e-6)

	require.NoError(t, sgd.Step(gradFor(t, p, []float32{1})))
	assert.InDelta(t, -2.5, p.Tensor().Data()[0], 1e-6)
}

func TestSGDRejectsGradientShapeMismatch(t *testing.T) {
	p := param(t, "w", []float32{1, 2})
	sgd, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0.1})
	require.NoError(t, err)

	bad, err := tensor.NewRaw(tensor.Shape{1, 3})
	require.NoError(t, err)
	grads := map[*tensor.RawTensor]*tensor.RawTensor{p.Tensor().Raw(): bad}

	assert.Error(t, sgd.Step(grads))
}

func TestSGDParameterIdentityStable(t *testing.T) {
	p := param(t, "w", []float32{1})
	sgd, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0.1})
	require.NoError(t, err)

	before := p.Tensor().Raw()
	require.NoError(t, sgd.Step(gradFor(t, p, []float32{1})))
	assert.Same(t, before, p.Tensor().Raw())
}

func TestSetLR(t *testing.T) {
	p := param(t, "w", []float32{1})
	sgd, err := NewSGD([]*nn.Parameter[*cpu.CPUBackend]{p}, SGDConfig{LR: 0.1})
	require.NoError(t, err)

	assert.Equal(t, float32(0.1), sgd.GetLR())
	sgd.SetLR(0.01)
	assert.Equal(t, float32(0.01), sgd.GetLR())
}
