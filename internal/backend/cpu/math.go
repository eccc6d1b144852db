package cpu

import (
	"fmt"
	"math"

	"github.com/radiance-ml/radiance/internal/tensor"
)

// unaryOp applies an element-wise function to every element of x.
func unaryOp(name string, x *tensor.RawTensor, f func(v float32) float32) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	src := x.Data()
	dst := result.Data()
	for i, v := range src {
		dst[i] = f(v)
	}

	return result
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("exp", x, func(v float32) float32 {
		return float32(math.Exp(float64(v)))
	})
}

// Sin computes element-wise sine: sin(x).
func (cpu *CPUBackend) Sin(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("sin", x, func(v float32) float32 {
		return float32(math.Sin(float64(v)))
	})
}

// Cos computes element-wise cosine: cos(x).
func (cpu *CPUBackend) Cos(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("cos", x, func(v float32) float32 {
		return float32(math.Cos(float64(v)))
	})
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float32) *tensor.RawTensor {
	return unaryOp("mulScalar", x, func(v float32) float32 {
		return v * scalar
	})
}
