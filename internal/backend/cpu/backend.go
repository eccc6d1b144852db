// Package cpu implements the pure-Go CPU backend.
package cpu

import (
	"fmt"

	"github.com/radiance-ml/radiance/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, func(x, y float32) float32 { return x + y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, func(x, y float32) float32 { return x * y })
}

// binaryOp applies an element-wise binary operation with broadcasting.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor, op func(x, y float32) float32) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	aData, bData, dst := a.Data(), b.Data(), result.Data()

	if !needsBroadcast {
		// Fast path: same shape, vectorized loop
		for i := range dst {
			dst[i] = op(aData[i], bData[i])
		}
		return result
	}

	// Slow path: walk output coordinates and map each operand index,
	// treating size-1 (or missing) dimensions as stride 0.
	aIdx := broadcastIndexer(a.Shape(), outShape)
	bIdx := broadcastIndexer(b.Shape(), outShape)
	coords := make([]int, len(outShape))
	for i := range dst {
		dst[i] = op(aData[aIdx(coords)], bData[bIdx(coords)])
		advance(coords, outShape)
	}

	return result
}

// broadcastIndexer returns a function mapping an output coordinate to the
// flat index inside a tensor of shape `in` broadcast up to `out`.
func broadcastIndexer(in, out tensor.Shape) func(coords []int) int {
	strides := in.ComputeStrides()
	offset := len(out) - len(in)
	return func(coords []int) int {
		idx := 0
		for i, dim := range in {
			if dim == 1 {
				continue
			}
			idx += coords[i+offset] * strides[i]
		}
		return idx
	}
}

// advance increments a row-major coordinate vector within the given shape.
func advance(coords []int, shape tensor.Shape) {
	for i := len(coords) - 1; i >= 0; i-- {
		coords[i]++
		if coords[i] < shape[i] {
			return
		}
		coords[i] = 0
	}
}

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
// Uses a naive O(n³) implementation; batches in this codebase are small
// enough that cache-blocked or BLAS-backed kernels are not warranted yet.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	// Validate dimensions
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n})
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	matmulFloat32(result.Data(), a.Data(), b.Data(), m, k, n)
	return result
}

// matmulFloat32 performs naive matrix multiplication.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulFloat32(c, a, b []float32, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
