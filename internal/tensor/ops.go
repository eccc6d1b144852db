package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones(Shape{3, 1}, backend)
//	b := tensor.Ones(Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[B]) Add(other *Tensor[B]) *Tensor[B] {
	result := t.backend.Add(t.raw, other.raw)
	return New(result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[B]) Mul(other *Tensor[B]) *Tensor[B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New(result, t.backend)
}

// MatMul performs matrix multiplication.
//
// For 2D tensors: (M, K) @ (K, N) → (M, N)
//
// Example:
//
//	a := tensor.Randn(Shape{3, 4}, backend)
//	b := tensor.Randn(Shape{4, 5}, backend)
//	c := a.MatMul(b) // Shape: [3, 5]
func (t *Tensor[B]) MatMul(other *Tensor[B]) *Tensor[B] {
	result := t.backend.MatMul(t.raw, other.raw)
	return New(result, t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[B]) MulScalar(scalar float32) *Tensor[B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New(result, t.backend)
}

// Sin computes the element-wise sine.
func (t *Tensor[B]) Sin() *Tensor[B] {
	result := t.backend.Sin(t.raw)
	return New(result, t.backend)
}

// Cos computes the element-wise cosine.
func (t *Tensor[B]) Cos() *Tensor[B] {
	result := t.backend.Cos(t.raw)
	return New(result, t.backend)
}

// Exp computes the element-wise exponential.
func (t *Tensor[B]) Exp() *Tensor[B] {
	result := t.backend.Exp(t.raw)
	return New(result, t.backend)
}

// Transpose returns the 2D transpose (swaps rows and columns).
// Panics if the tensor is not 2D.
func (t *Tensor[B]) Transpose() *Tensor[B] {
	shape := t.Shape()
	if len(shape) != 2 {
		panic("Transpose only works for 2D tensors")
	}

	rows, cols := shape[0], shape[1]
	raw, err := NewRaw(Shape{cols, rows})
	if err != nil {
		panic(err)
	}

	src := t.Data()
	dst := raw.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}

	return New(raw, t.backend)
}

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
func (t *Tensor[B]) Reshape(newShape ...int) *Tensor[B] {
	shape := Shape(newShape)
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	if shape.NumElements() != t.NumElements() {
		panic("Reshape: incompatible shapes (different number of elements)")
	}

	raw, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	copy(raw.Data(), t.Data())
	return New(raw, t.backend)
}
