package cpu

import (
	"fmt"

	"github.com/radiance-ml/radiance/internal/tensor"
)

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation dimension.
// Supports negative dim indexing (-1 = last dimension).
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)

	// Normalize negative dimension
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	// Validate shapes and calculate total size along concat dimension
	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	// Copy data. View each tensor as [outer, own_dim * inner] blocks:
	// outer iterates over all dimensions before dim, inner over those after.
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}

	dst := result.Data()
	outRowLen := totalDim * inner
	for o := 0; o < outer; o++ {
		offset := o * outRowLen
		for _, t := range tensors {
			rowLen := t.Shape()[dim] * inner
			src := t.Data()[o*rowLen : (o+1)*rowLen]
			copy(dst[offset:offset+rowLen], src)
			offset += rowLen
		}
	}

	return result
}

// Split splits the tensor into parts of the given sizes along the specified
// dimension. The sizes must be positive and sum to the dimension's extent.
// Supports negative dim indexing (-1 = last dimension).
func (cpu *CPUBackend) Split(x *tensor.RawTensor, sizes []int, dim int) []*tensor.RawTensor {
	if len(sizes) == 0 {
		panic("split: at least one size required")
	}

	shape := x.Shape()
	ndim := len(shape)

	// Normalize negative dimension
	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("split: dimension %d out of range for %dD tensor", dim, ndim))
	}

	total := 0
	for i, sz := range sizes {
		if sz <= 0 {
			panic(fmt.Sprintf("split: size %d at index %d must be positive", sz, i))
		}
		total += sz
	}
	if total != shape[dim] {
		panic(fmt.Sprintf("split: sizes %v sum to %d, expected dimension %d size %d", sizes, total, dim, shape[dim]))
	}

	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < ndim; d++ {
		inner *= shape[d]
	}

	results := make([]*tensor.RawTensor, len(sizes))
	for i, sz := range sizes {
		partShape := shape.Clone()
		partShape[dim] = sz
		part, err := tensor.NewRaw(partShape)
		if err != nil {
			panic(fmt.Sprintf("split: %v", err))
		}
		results[i] = part
	}

	src := x.Data()
	srcRowLen := shape[dim] * inner
	for o := 0; o < outer; o++ {
		offset := o * srcRowLen
		for i, sz := range sizes {
			rowLen := sz * inner
			dst := results[i].Data()[o*rowLen : (o+1)*rowLen]
			copy(dst, src[offset:offset+rowLen])
			offset += rowLen
		}
	}

	return results
}
