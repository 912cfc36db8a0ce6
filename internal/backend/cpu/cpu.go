// Package cpu implements the pure-Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/onoma-ml/onoma/internal/tensor"
)

// CPUBackend implements tensor operations with straightforward Go loops.
// Every operation allocates a fresh result tensor.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return elementwise("add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return elementwise("sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return elementwise("mul", a, b, func(x, y float32) float32 { return x * y })
}

func elementwise(op string, a, b *tensor.RawTensor, f func(x, y float32) float32) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}

	result := tensor.MustNewRaw(a.Shape())
	aData, bData, out := a.Data(), b.Data(), result.Data()
	for i := range out {
		out[i] = f(aData[i], bData[i])
	}
	return result
}
