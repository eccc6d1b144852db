package cpu

import (
	"math"
	"testing"

	"github.com/radiance-ml/radiance/internal/tensor"
)

func TestExp(t *testing.T) {
	backend := New()
	x := rawFrom(t, []float32{-2, -1, 0, 1, 2}, tensor.Shape{5})

	result := backend.Exp(x)
	for i, v := range x.Data() {
		expected := float32(math.Exp(float64(v)))
		if math.Abs(float64(result.Data()[i]-expected)) > epsilon {
			t.Errorf("Exp(%v) = %v, expected %v", v, result.Data()[i], expected)
		}
	}
}

func TestSinCos(t *testing.T) {
	backend := New()
	x := rawFrom(t, []float32{0, float32(math.Pi / 2), float32(math.Pi), -1}, tensor.Shape{4})

	sinResult := backend.Sin(x)
	cosResult := backend.Cos(x)
	for i, v := range x.Data() {
		expSin := float32(math.Sin(float64(v)))
		expCos := float32(math.Cos(float64(v)))
		if math.Abs(float64(sinResult.Data()[i]-expSin)) > epsilon {
			t.Errorf("Sin(%v) = %v, expected %v", v, sinResult.Data()[i], expSin)
		}
		if math.Abs(float64(cosResult.Data()[i]-expCos)) > epsilon {
			t.Errorf("Cos(%v) = %v, expected %v", v, cosResult.Data()[i], expCos)
		}
	}
}

func TestSinCosIdentity(t *testing.T) {
	backend := New()
	x := rawFrom(t, []float32{0.3, 1.7, -2.4, 5.1}, tensor.Shape{4})

	s := backend.Sin(x)
	c := backend.Cos(x)
	// sin² + cos² = 1
	for i := range x.Data() {
		sum := s.Data()[i]*s.Data()[i] + c.Data()[i]*c.Data()[i]
		if math.Abs(float64(sum-1)) > epsilon {
			t.Errorf("sin²+cos² at %d = %v, expected 1", i, sum)
		}
	}
}

func TestMulScalar(t *testing.T) {
	backend := New()
	x := rawFrom(t, []float32{1, -2, 0.5, 0}, tensor.Shape{2, 2})

	result := backend.MulScalar(x, 30)
	assertClose(t, result.Data(), []float32{30, -60, 15, 0}, "MulScalar")
}

func TestUnaryOpPreservesShape(t *testing.T) {
	backend := New()
	x := rawFrom(t, make([]float32, 24), tensor.Shape{2, 3, 4})

	result := backend.Exp(x)
	if !result.Shape().Equal(tensor.Shape{2, 3, 4}) {
		t.Errorf("Exp shape = %v, expected [2 3 4]", result.Shape())
	}
}
