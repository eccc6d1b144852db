package tensor

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	a := tensor.Randn(Shape{2, 3}, backend)
//	b := tensor.Randn(Shape{2, 5}, backend)
//	c := tensor.Cat([]*Tensor[B]{a, b}, -1) // Shape: [2, 8]
func Cat[B Backend](tensors []*Tensor[B], dim int) *Tensor[B] {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	if len(tensors) == 1 {
		// Single tensor - return clone
		return tensors[0].Clone()
	}

	// Extract raw tensors and backend
	rawTensors := make([]*RawTensor, len(tensors))
	backend := tensors[0].backend
	for i, t := range tensors {
		rawTensors[i] = t.raw
	}

	result := backend.Cat(rawTensors, dim)
	return New(result, backend)
}

// Split splits the tensor into parts of the given sizes along the specified
// dimension. The sizes must sum to the dimension's extent.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	x := tensor.Randn(Shape{2, 6}, backend)
//	parts := x.Split([]int{3, 3}, -1) // 2 tensors of shape [2, 3]
func (t *Tensor[B]) Split(sizes []int, dim int) []*Tensor[B] {
	rawParts := t.backend.Split(t.raw, sizes, dim)
	parts := make([]*Tensor[B], len(rawParts))
	for i, raw := range rawParts {
		parts[i] = New(raw, t.backend)
	}
	return parts
}
