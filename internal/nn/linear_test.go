package nn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiance-ml/radiance/internal/backend/cpu"
	"github.com/radiance-ml/radiance/internal/tensor"
)

type Backend = *cpu.CPUBackend

func TestLinearForward(t *testing.T) {
	backend := cpu.New()
	linear := NewLinear(2, 3, backend)

	// Overwrite the random init with known values.
	// W = [[1, 0], [0, 1], [1, 1]], b = [0, 0, 1]
	copy(linear.Weight().Tensor().Data(), []float32{1, 0, 0, 1, 1, 1})
	copy(linear.Bias().Tensor().Data(), []float32{0, 0, 1})

	input, err := tensor.FromSlice([]float32{2, 3}, tensor.Shape{1, 2}, backend)
	require.NoError(t, err)

	output := linear.Forward(input)
	require.True(t, output.Shape().Equal(tensor.Shape{1, 3}))

	// y = x @ W.T + b = [2, 3, 2+3+1]
	assert.InDelta(t, 2.0, output.At(0, 0), 1e-6)
	assert.InDelta(t, 3.0, output.At(0, 1), 1e-6)
	assert.InDelta(t, 6.0, output.At(0, 2), 1e-6)
}

func TestLinearBatch(t *testing.T) {
	backend := cpu.New()
	linear := NewLinear(4, 8, backend)

	input := tensor.Randn(tensor.Shape{16, 4}, backend)
	output := linear.Forward(input)

	assert.True(t, output.Shape().Equal(tensor.Shape{16, 8}),
		"expected output shape [16 8], got %v", output.Shape())
}

func TestLinearWrongWidthPanics(t *testing.T) {
	backend := cpu.New()
	linear := NewLinear(4, 8, backend)
	input := tensor.Randn(tensor.Shape{16, 5}, backend)

	defer func() {
		r := recover()
		require.NotNil(t, r, "Forward with wrong input width should panic")
		msg, ok := r.(string)
		require.True(t, ok)
		assert.True(t, strings.Contains(msg, "shape mismatch"), "panic message %q should mention shape mismatch", msg)
	}()
	linear.Forward(input)
}

func TestLinear1DPanics(t *testing.T) {
	backend := cpu.New()
	linear := NewLinear(4, 8, backend)
	input := tensor.Randn(tensor.Shape{4}, backend)

	assert.Panics(t, func() { linear.Forward(input) })
}

func TestLinearParameters(t *testing.T) {
	backend := cpu.New()
	linear := NewLinear(3, 5, backend)

	params := linear.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "weight", params[0].Name())
	assert.Equal(t, "bias", params[1].Name())
	assert.True(t, params[0].Tensor().Shape().Equal(tensor.Shape{5, 3}))
	assert.True(t, params[1].Tensor().Shape().Equal(tensor.Shape{5}))
}

func TestLinearXavierInit(t *testing.T) {
	backend := cpu.New()
	linear := NewLinear(100, 100, backend)

	// Xavier uniform bounds: ±sqrt(6 / (fan_in + fan_out))
	limit := float32(0.17321) // sqrt(6/200)
	for i, v := range linear.Weight().Tensor().Data() {
		if v < -limit-1e-4 || v > limit+1e-4 {
			t.Fatalf("weight[%d] = %v outside Xavier bound ±%v", i, v, limit)
		}
	}
	for i, v := range linear.Bias().Tensor().Data() {
		if v != 0 {
			t.Fatalf("bias[%d] = %v, expected zero init", i, v)
		}
	}
}

func TestLinearStateDictRoundTrip(t *testing.T) {
	backend := cpu.New()
	src := NewLinear(3, 4, backend)
	dst := NewLinear(3, 4, backend)

	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	input := tensor.Randn(tensor.Shape{2, 3}, backend)
	srcOut := src.Forward(input)
	dstOut := dst.Forward(input)

	assert.Equal(t, srcOut.Data(), dstOut.Data())
}

func TestLinearLoadStateDictShapeMismatch(t *testing.T) {
	backend := cpu.New()
	src := NewLinear(3, 4, backend)
	dst := NewLinear(4, 4, backend)

	err := dst.LoadStateDict(src.StateDict())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestLinearLoadStateDictMissingKey(t *testing.T) {
	backend := cpu.New()
	dst := NewLinear(3, 4, backend)

	err := dst.LoadStateDict(map[string]*tensor.RawTensor{})
	require.Error(t, err)
}
