package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: pure Go loops (internal/backend/cpu)
//   - Autodiff: decorator that records operations on a gradient tape
//     (internal/autodiff)
//
// Backends panic on shape violations: a mismatched shape inside an op is a
// programmer error, not a recoverable condition. Recoverable shape errors
// (stacking unequal sequences) surface as ShapeMismatchError from Stack.
type Backend interface {
	// Element-wise binary operations. Operands must have equal shapes.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Transpose permutes the dimensions of a 2D tensor.
	// With no axes, reverses the dimensions.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Cat concatenates 2D tensors along a dimension (0 or 1).
	Cat(tensors []*RawTensor, dim int) *RawTensor

	// Sigmoid applies the logistic function element-wise.
	Sigmoid(x *RawTensor) *RawTensor

	// Softmax normalizes each row of a 2D tensor into a probability
	// distribution along the last dimension.
	Softmax(x *RawTensor) *RawTensor

	// MSELoss computes mean((pred - target)^2) as a shape-[1] scalar.
	MSELoss(pred, target *RawTensor) *RawTensor

	// Name returns the backend name.
	Name() string
}
