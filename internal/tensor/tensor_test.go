package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopBackend satisfies Backend for tests that never reach a compute op.
type nopBackend struct{}

func (nopBackend) Add(a, b *RawTensor) *RawTensor                 { panic("not implemented") }
func (nopBackend) Sub(a, b *RawTensor) *RawTensor                 { panic("not implemented") }
func (nopBackend) Mul(a, b *RawTensor) *RawTensor                 { panic("not implemented") }
func (nopBackend) MatMul(a, b *RawTensor) *RawTensor              { panic("not implemented") }
func (nopBackend) Transpose(t *RawTensor, axes ...int) *RawTensor { panic("not implemented") }
func (nopBackend) Cat(tensors []*RawTensor, dim int) *RawTensor   { panic("not implemented") }
func (nopBackend) Sigmoid(x *RawTensor) *RawTensor                { panic("not implemented") }
func (nopBackend) Softmax(x *RawTensor) *RawTensor                { panic("not implemented") }
func (nopBackend) MSELoss(pred, target *RawTensor) *RawTensor     { panic("not implemented") }
func (nopBackend) Name() string                                   { return "nop" }

func TestFromSlice(t *testing.T) {
	tr, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, nopBackend{})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, tr.Shape())
	assert.Equal(t, float32(6), tr.At(1, 2))
	assert.Equal(t, float32(2), tr.At(0, 1))
}

func TestFromSliceWrongLength(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{2, 3}, nopBackend{})
	assert.Error(t, err)
}

func TestSetAndAt(t *testing.T) {
	tr := Zeros(Shape{2, 2}, nopBackend{})
	tr.Set(7, 1, 0)
	assert.Equal(t, float32(7), tr.At(1, 0))
	assert.Equal(t, float32(0), tr.At(0, 1))
}

func TestOneHot(t *testing.T) {
	tr, err := OneHot(5, 2, nopBackend{})
	require.NoError(t, err)

	assert.Equal(t, Shape{1, 5}, tr.Shape())
	assert.Equal(t, []float32{0, 0, 1, 0, 0}, tr.Data())

	var sum float32
	for _, v := range tr.Data() {
		sum += v
	}
	assert.Equal(t, float32(1), sum)
}

func TestOneHotOutOfRange(t *testing.T) {
	_, err := OneHot(5, 5, nopBackend{})
	assert.Error(t, err)
	_, err = OneHot(5, -1, nopBackend{})
	assert.Error(t, err)
	_, err = OneHot(0, 0, nopBackend{})
	assert.Error(t, err)
}

func TestStack(t *testing.T) {
	a, err := FromSlice([]float32{1, 2}, Shape{1, 2}, nopBackend{})
	require.NoError(t, err)
	b, err := FromSlice([]float32{3, 4}, Shape{1, 2}, nopBackend{})
	require.NoError(t, err)

	s, err := Stack([]*Tensor[nopBackend]{a, b})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 1, 2}, s.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4}, s.Data())
}

func TestStackShapeMismatch(t *testing.T) {
	a, err := FromSlice([]float32{1, 2}, Shape{1, 2}, nopBackend{})
	require.NoError(t, err)
	b, err := FromSlice([]float32{3, 4, 5}, Shape{1, 3}, nopBackend{})
	require.NoError(t, err)

	_, err = Stack([]*Tensor[nopBackend]{a, b})
	require.Error(t, err)

	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, Shape{1, 2}, mismatch.Want)
	assert.Equal(t, Shape{1, 3}, mismatch.Got)
}

func TestStackEmpty(t *testing.T) {
	_, err := Stack([]*Tensor[nopBackend]{})
	require.Error(t, err)

	var empty *EmptySequenceError
	assert.True(t, errors.As(err, &empty))
}

func TestCloneIsDeep(t *testing.T) {
	tr, err := FromSlice([]float32{1, 2}, Shape{1, 2}, nopBackend{})
	require.NoError(t, err)

	c := tr.Clone()
	c.Data()[0] = 99
	assert.Equal(t, float32(1), tr.At(0, 0))
}
