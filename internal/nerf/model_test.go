package nerf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiance-ml/radiance/config"
	"github.com/radiance-ml/radiance/internal/backend/cpu"
	"github.com/radiance-ml/radiance/internal/tensor"
)

func newModel(t *testing.T, preset, dataset string) *RadianceField[Backend] {
	t.Helper()
	cfg, err := config.Load(preset, dataset)
	require.NoError(t, err)
	model, err := New(cfg, cpu.New())
	require.NoError(t, err)
	return model
}

func TestNewDefaultPreset(t *testing.T) {
	model := newModel(t, "nerf", "")

	xyzWidth, dirWidth := model.EncodedWidths()
	assert.Equal(t, 60, xyzWidth, "3 channels * 2 * 10 frequencies")
	assert.Equal(t, 0, dirWidth, "direction input disabled")
}

func TestLayoutSkipWidths(t *testing.T) {
	model := newModel(t, "nerf", "")
	layout := model.Layout()

	require.Len(t, layout, 8)
	assert.Equal(t, LayerSpec{InFeatures: 60, OutFeatures: 256}, layout[0])
	for i := 1; i < 8; i++ {
		if i == 4 {
			assert.Equal(t, LayerSpec{InFeatures: 316, OutFeatures: 256, Skip: true}, layout[i], "layer %d", i)
		} else {
			assert.Equal(t, LayerSpec{InFeatures: 256, OutFeatures: 256}, layout[i], "layer %d", i)
		}
	}
}

func TestSirenPresetLayout(t *testing.T) {
	model := newModel(t, "s-nerf_basic", "")

	xyzWidth, dirWidth := model.EncodedWidths()
	assert.Equal(t, 3, xyzWidth, "raw width without positional encoding")
	assert.Equal(t, 0, dirWidth)

	layout := model.Layout()
	require.Len(t, layout, 8)
	assert.Equal(t, LayerSpec{InFeatures: 3, OutFeatures: 100}, layout[0])
	for i := 1; i < 8; i++ {
		assert.False(t, layout[i].Skip, "siren presets have no skip connections")
	}
}

func TestForwardOutputShape(t *testing.T) {
	model := newModel(t, "nerf", "")
	backend := cpu.New()

	x := tensor.Randn(tensor.Shape{16, 3}, backend)
	out := model.Forward(x, nil, false)

	require.True(t, out.Shape().Equal(tensor.Shape{16, 4}),
		"expected shape [16 4], got %v", out.Shape())

	// Columns [r, g, b] from the sigmoid, column 3 from the softplus
	data := out.Data()
	for i := 0; i < 16; i++ {
		for j := 0; j < 3; j++ {
			v := data[i*4+j]
			assert.Greater(t, v, float32(0), "rgb row %d col %d", i, j)
			assert.Less(t, v, float32(1), "rgb row %d col %d", i, j)
		}
		assert.GreaterOrEqual(t, data[i*4+3], float32(0), "sigma row %d", i)
	}
}

func TestSigmaOnly(t *testing.T) {
	model := newModel(t, "nerf", "")
	backend := cpu.New()

	x := tensor.Randn(tensor.Shape{16, 3}, backend)
	sigma := model.Forward(x, nil, true)

	require.True(t, sigma.Shape().Equal(tensor.Shape{16, 1}))
	for i, v := range sigma.Data() {
		assert.GreaterOrEqual(t, v, float32(0), "sigma row %d", i)
	}

	// Sigma shorthand and the sigma column of the full pass agree exactly
	full := model.Forward(x, nil, false)
	short := model.Sigma(x)
	for i := 0; i < 16; i++ {
		assert.Equal(t, full.At(i, 3), sigma.At(i, 0), "row %d", i)
		assert.Equal(t, sigma.At(i, 0), short.At(i, 0), "row %d", i)
	}
}

func TestForwardDeterministic(t *testing.T) {
	model := newModel(t, "nerf", "")
	backend := cpu.New()

	x := tensor.Randn(tensor.Shape{8, 3}, backend)
	out1 := model.Forward(x, nil, false)
	out2 := model.Forward(x, nil, false)

	assert.Equal(t, out1.Data(), out2.Data(), "repeated forward passes must match bit for bit")
}

func TestForwardWithDirections(t *testing.T) {
	model := newModel(t, "nerf", "blender")
	backend := cpu.New()

	xyzWidth, dirWidth := model.EncodedWidths()
	assert.Equal(t, 60, xyzWidth)
	assert.Equal(t, 24, dirWidth, "3 channels * 2 * 4 frequencies")

	xyz := tensor.Randn(tensor.Shape{8, 3}, backend)
	dir := tensor.Randn(tensor.Shape{8, 3}, backend)

	// Separate direction argument and pre-concatenated input take the same
	// path through the network.
	separate := model.Forward(xyz, dir, false)
	combined := model.Forward(tensor.Cat([]*tensor.Tensor[Backend]{xyz, dir}, -1), nil, false)

	require.True(t, separate.Shape().Equal(tensor.Shape{8, 4}))
	assert.Equal(t, combined.Data(), separate.Data())
}

func TestDensityIndependentOfDirection(t *testing.T) {
	model := newModel(t, "nerf", "blender")
	backend := cpu.New()

	xyz := tensor.Randn(tensor.Shape{8, 3}, backend)
	dirA := tensor.Randn(tensor.Shape{8, 3}, backend)
	dirB := tensor.Randn(tensor.Shape{8, 3}, backend)

	outA := model.Forward(xyz, dirA, false)
	outB := model.Forward(xyz, dirB, false)

	rgbChanged := false
	for i := 0; i < 8; i++ {
		assert.Equal(t, outA.At(i, 3), outB.At(i, 3), "sigma must not depend on direction, row %d", i)
		for j := 0; j < 3; j++ {
			if outA.At(i, j) != outB.At(i, j) {
				rgbChanged = true
			}
		}
	}
	assert.True(t, rgbChanged, "rgb should respond to the viewing direction")
}

func TestNewInvalidSkip(t *testing.T) {
	for _, skip := range []int{0, 8, -1} {
		cfg := config.Default()
		cfg.Skips = []int{skip}
		_, err := New(cfg, cpu.New())
		require.Error(t, err, "skip index %d", skip)
		assert.Contains(t, err.Error(), "skip index")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Layers = 0
	_, err := New(cfg, cpu.New())
	require.Error(t, err)

	cfg = config.Default()
	cfg.Feat = 255
	_, err = New(cfg, cpu.New())
	require.Error(t, err, "odd feature width cannot be halved by the color head")
}

func TestForwardWrongWidthPanics(t *testing.T) {
	model := newModel(t, "nerf", "")
	backend := cpu.New()
	x := tensor.Randn(tensor.Shape{4, 5}, backend)

	defer func() {
		r := recover()
		require.NotNil(t, r, "Forward with wrong input width should panic")
		msg, ok := r.(string)
		require.True(t, ok)
		assert.True(t, strings.Contains(msg, "shape mismatch"), "panic message %q should mention shape mismatch", msg)
	}()
	model.Forward(x, nil, false)
}

func TestForwardWrongDirWidthPanics(t *testing.T) {
	model := newModel(t, "nerf", "blender")
	backend := cpu.New()

	xyz := tensor.Randn(tensor.Shape{4, 3}, backend)
	dir := tensor.Randn(tensor.Shape{4, 2}, backend)

	assert.Panics(t, func() { model.Forward(xyz, dir, false) })
}

func TestNumParameters(t *testing.T) {
	model := newModel(t, "nerf", "")

	// Sum of weight and bias element counts over the trunk and heads.
	expected := 0
	for _, spec := range model.Layout() {
		expected += spec.InFeatures*spec.OutFeatures + spec.OutFeatures
	}
	// Heads: sigma 256->1, feature 256->256, rgb 256->128->3
	expected += 256*1 + 1
	expected += 256*256 + 256
	expected += 256*128 + 128
	expected += 128*3 + 3

	assert.Equal(t, expected, model.NumParameters())
}

func TestStateDictRoundTrip(t *testing.T) {
	cfg, err := config.Load("nerf", "blender")
	require.NoError(t, err)

	backend := cpu.New()
	src, err := New(cfg, backend)
	require.NoError(t, err)
	dst, err := New(cfg, backend)
	require.NoError(t, err)

	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	xyz := tensor.Randn(tensor.Shape{8, 3}, backend)
	dir := tensor.Randn(tensor.Shape{8, 3}, backend)

	srcOut := src.Forward(xyz, dir, false)
	dstOut := dst.Forward(xyz, dir, false)
	assert.Equal(t, srcOut.Data(), dstOut.Data())
}

func TestStateDictKeys(t *testing.T) {
	model := newModel(t, "nerf", "")
	sd := model.StateDict()

	assert.Contains(t, sd, "trunk.0.weight")
	assert.Contains(t, sd, "trunk.7.bias")
	assert.Contains(t, sd, "sigma.0.weight")
	assert.Contains(t, sd, "feat.0.bias")
	assert.Contains(t, sd, "rgb.2.weight")
}
