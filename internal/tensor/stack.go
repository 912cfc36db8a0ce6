package tensor

// Stack combines tensors of identical shape into one tensor with a new
// leading batch dimension: n tensors of shape [a, b] become [n, a, b].
//
// Stacking is the only way to batch examples into a single tensor operation,
// and it refuses unequal shapes with ShapeMismatchError. Variable-length
// sequences must therefore be processed one example at a time; padding or
// truncating to force a batch is deliberately unsupported.
func Stack[B Backend](tensors []*Tensor[B]) (*Tensor[B], error) {
	if len(tensors) == 0 {
		return nil, &EmptySequenceError{Op: "stack"}
	}

	first := tensors[0].Shape()
	for _, t := range tensors[1:] {
		if !t.Shape().Equal(first) {
			return nil, &ShapeMismatchError{Want: first.Clone(), Got: t.Shape().Clone()}
		}
	}

	outShape := append(Shape{len(tensors)}, first.Clone()...)
	raw, err := NewRaw(outShape)
	if err != nil {
		return nil, err
	}

	stride := first.NumElements()
	out := raw.Data()
	for i, t := range tensors {
		copy(out[i*stride:(i+1)*stride], t.Data())
	}

	return New(raw, tensors[0].backend), nil
}
