package cpu

import (
	"math"

	"github.com/radiance-ml/radiance/internal/tensor"
)

// ReLU computes element-wise max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("relu", x, func(v float32) float32 {
		if v < 0 {
			return 0
		}
		return v
	})
}

// Sigmoid computes element-wise 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("sigmoid", x, func(v float32) float32 {
		return float32(1.0 / (1.0 + math.Exp(float64(-v))))
	})
}

// Softplus computes element-wise log(1 + exp(x)).
//
// Uses the numerically stable form max(0, x) + log1p(exp(-|x|)) so that
// large positive inputs do not overflow exp.
func (cpu *CPUBackend) Softplus(x *tensor.RawTensor) *tensor.RawTensor {
	return unaryOp("softplus", x, func(v float32) float32 {
		fv := float64(v)
		return float32(math.Max(0, fv) + math.Log1p(math.Exp(-math.Abs(fv))))
	})
}
