// Package nerf implements the radiance-field model: a differentiable
// function from a 3D position (and optionally a viewing direction) to a
// volume density and an emitted RGB color.
//
// The model composes two branch encoders, a configurable trunk of fully
// connected layers with skip connections, and three heads (density,
// intermediate features, color). The architecture is fixed at construction
// from a config preset; the forward pass is pure and deterministic.
package nerf

import (
	"fmt"

	"github.com/radiance-ml/radiance/config"
	"github.com/radiance-ml/radiance/internal/nn"
	"github.com/radiance-ml/radiance/internal/tensor"
)

// LayerSpec describes one trunk layer of a constructed model: its linear
// transform widths and whether the encoded xyz features are concatenated
// to its input (skip connection). The trunk layout is precomputed at
// construction so the forward pass never re-tests skip membership and the
// architecture can be inspected without running it.
type LayerSpec struct {
	InFeatures  int
	OutFeatures int
	Skip        bool
}

// trunkLayer pairs a linear transform with its precomputed skip flag.
type trunkLayer[B tensor.Backend] struct {
	linear *nn.Linear[B]
	skip   bool // concatenate encoded xyz before this layer
}

// RadianceField is the composed network.
//
// Construction wires, in order: branch encoders for xyz and dir (Fourier
// features, or Siren passthrough when mapping is disabled), a trunk of
// Layers linear+activation pairs with skip connections re-injecting the
// encoded xyz features, a density head (feat → 1, Softplus), a feature
// head (feat → feat, activation), and a color head
// (feat + encoded_dir → feat/2 → 3, Sigmoid).
//
// The model owns its learnable parameters exclusively; an external
// training loop reaches them through Parameters. Concurrent forward passes
// are safe as long as the caller guarantees no concurrent parameter
// mutation.
type RadianceField[B tensor.Backend] struct {
	cfg config.Config

	xyzDim     int
	dirDim     int
	encodedXYZ int // xyz width after the branch encoder
	encodedDir int // dir width after the branch encoder

	xyzEncoder BranchEncoder[B]
	dirEncoder BranchEncoder[B]

	activation nn.Module[B]
	trunk      []trunkLayer[B]
	sigmaHead  *nn.Sequential[B] // volume density from shared features
	featHead   *nn.Sequential[B] // spatial feature vector reused by the color head
	rgbHead    *nn.Sequential[B] // color from spatial features (+ encoded dir)

	backend B
}

// New constructs a RadianceField from a config bundle.
//
// The bundle is validated eagerly; an invalid layer/feature/skip
// combination returns an error before any parameter is allocated.
func New[B tensor.Backend](cfg config.Config, backend B) (*RadianceField[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &RadianceField[B]{
		cfg:     cfg,
		xyzDim:  cfg.InputSizes[0],
		dirDim:  cfg.InputSizes[1],
		backend: backend,
	}

	// Trunk nonlinearity: Siren where requested, ReLU otherwise.
	if cfg.Siren {
		m.activation = nn.NewSiren[B]()
	} else {
		m.activation = nn.NewReLU[B]()
	}

	// Branch encoders. With mapping enabled each branch gets its own
	// Fourier encoder; the direction encoder is built even when the
	// direction input is disabled (it is simply never used at forward
	// time). Without mapping the raw inputs go through the sinusoidal
	// activation instead.
	if cfg.Mapping {
		m.xyzEncoder = NewFourierEncoder(cfg.MappingSizes[0], m.xyzDim, true, backend)
		m.dirEncoder = NewFourierEncoder(cfg.MappingSizes[1], m.dirDim, true, backend)
	} else {
		m.xyzEncoder = NewSirenEncoder[B]()
		m.dirEncoder = NewSirenEncoder[B]()
	}
	m.encodedXYZ = m.xyzEncoder.OutWidth(m.xyzDim)
	m.encodedDir = m.dirEncoder.OutWidth(m.dirDim)

	// Shared trunk. Layer 0 maps the encoded xyz features to feat; a skip
	// layer widens its input by the encoded xyz width.
	skips := make(map[int]bool, len(cfg.Skips))
	for _, s := range cfg.Skips {
		skips[s] = true
	}

	m.trunk = make([]trunkLayer[B], cfg.Layers)
	m.trunk[0] = trunkLayer[B]{linear: nn.NewLinear(m.encodedXYZ, cfg.Feat, backend)}
	for i := 1; i < cfg.Layers; i++ {
		in := cfg.Feat
		if skips[i] {
			in += m.encodedXYZ
		}
		m.trunk[i] = trunkLayer[B]{
			linear: nn.NewLinear(in, cfg.Feat, backend),
			skip:   skips[i],
		}
	}

	// Density head: Softplus keeps sigma non-negative, as a volume
	// absorption coefficient must be.
	m.sigmaHead = nn.NewSequential[B](
		nn.NewLinear(cfg.Feat, 1, backend),
		nn.NewSoftplus[B](),
	)

	// Feature head: spatial feature vector consumed by the color head.
	m.featHead = nn.NewSequential[B](
		nn.NewLinear(cfg.Feat, cfg.Feat, backend),
		m.activation,
	)

	// Color head: the encoded viewing direction joins the spatial
	// features, and Sigmoid squashes the prediction into (0, 1).
	m.rgbHead = nn.NewSequential[B](
		nn.NewLinear(cfg.Feat+m.encodedDir, cfg.Feat/2, backend),
		m.activation,
		nn.NewLinear(cfg.Feat/2, 3, backend),
		nn.NewSigmoid[B](),
	)

	return m, nil
}

// Forward predicts rgb and sigma for a batch of ray samples.
//
// When the model has a direction input and sigmaOnly is false, x is either
// a (batch, xyz+dir) tensor that is split at the xyz boundary, or a
// (batch, xyz) tensor with the directions supplied separately via inputDir.
// Otherwise x must be (batch, xyz).
//
// Returns (batch, 1) volume density when sigmaOnly (the color branch is
// skipped entirely), else (batch, 4) with column order [r, g, b, sigma] —
// the layout the rendering integrator consumes.
//
// Panics with a shape-mismatch message when the trailing dimension of x or
// inputDir disagrees with the configured input sizes. The forward pass
// never mutates parameters, so a failed call leaves the model untouched.
func (m *RadianceField[B]) Forward(x, inputDir *tensor.Tensor[B], sigmaOnly bool) *tensor.Tensor[B] {
	if len(x.Shape()) != 2 {
		panic(fmt.Sprintf("RadianceField.Forward: shape mismatch: expected 2D input [batch, features], got shape %v", x.Shape()))
	}

	xyz := x
	var dir *tensor.Tensor[B]

	if !sigmaOnly && m.dirDim > 0 {
		switch {
		case inputDir != nil:
			if x.Shape()[1] != m.xyzDim {
				panic(fmt.Sprintf("RadianceField.Forward: shape mismatch: expected %d xyz channels with separate directions, got %d", m.xyzDim, x.Shape()[1]))
			}
			if len(inputDir.Shape()) != 2 || inputDir.Shape()[1] != m.dirDim {
				panic(fmt.Sprintf("RadianceField.Forward: shape mismatch: expected direction input with %d channels, got shape %v", m.dirDim, inputDir.Shape()))
			}
			dir = inputDir
		default:
			if x.Shape()[1] != m.xyzDim+m.dirDim {
				panic(fmt.Sprintf("RadianceField.Forward: shape mismatch: expected %d input channels (xyz %d + dir %d), got %d",
					m.xyzDim+m.dirDim, m.xyzDim, m.dirDim, x.Shape()[1]))
			}
			parts := x.Split([]int{m.xyzDim, m.dirDim}, -1)
			xyz, dir = parts[0], parts[1]
		}
	} else if x.Shape()[1] != m.xyzDim {
		panic(fmt.Sprintf("RadianceField.Forward: shape mismatch: expected %d xyz channels, got %d", m.xyzDim, x.Shape()[1]))
	}

	// Shared features: encoded xyz through the trunk, re-injecting the
	// encoding before each skip layer.
	encoded := m.xyzEncoder.Encode(xyz)
	h := encoded
	for _, layer := range m.trunk {
		if layer.skip {
			h = tensor.Cat([]*tensor.Tensor[B]{encoded, h}, -1)
		}
		h = m.activation.Forward(layer.linear.Forward(h))
	}

	sigma := m.sigmaHead.Forward(h) // (batch, 1)
	if sigmaOnly {
		return sigma
	}

	features := m.featHead.Forward(h)
	colorIn := features
	if m.dirDim > 0 {
		colorIn = tensor.Cat([]*tensor.Tensor[B]{features, m.dirEncoder.Encode(dir)}, -1)
	}
	rgb := m.rgbHead.Forward(colorIn) // (batch, 3)

	return tensor.Cat([]*tensor.Tensor[B]{rgb, sigma}, -1)
}

// Sigma is shorthand for a density-only query: Forward(x, nil, true).
// Used by hierarchical importance sampling, which needs no color.
func (m *RadianceField[B]) Sigma(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	return m.Forward(x, nil, true)
}

// Config returns the bundle the model was constructed from.
func (m *RadianceField[B]) Config() config.Config {
	return m.cfg
}

// Layout returns the precomputed trunk layer descriptors.
func (m *RadianceField[B]) Layout() []LayerSpec {
	specs := make([]LayerSpec, len(m.trunk))
	for i, layer := range m.trunk {
		specs[i] = LayerSpec{
			InFeatures:  layer.linear.InFeatures(),
			OutFeatures: layer.linear.OutFeatures(),
			Skip:        layer.skip,
		}
	}
	return specs
}

// EncodedWidths returns the per-branch input widths after encoding.
func (m *RadianceField[B]) EncodedWidths() (xyz, dir int) {
	return m.encodedXYZ, m.encodedDir
}

// Parameters returns every learnable parameter of the model, for optimizer
// registration by the external training loop.
func (m *RadianceField[B]) Parameters() []*nn.Parameter[B] {
	var params []*nn.Parameter[B]
	for _, layer := range m.trunk {
		params = append(params, layer.linear.Parameters()...)
	}
	params = append(params, m.sigmaHead.Parameters()...)
	params = append(params, m.featHead.Parameters()...)
	params = append(params, m.rgbHead.Parameters()...)
	return params
}

// NumParameters returns the total learnable scalar count.
func (m *RadianceField[B]) NumParameters() int {
	n := 0
	for _, p := range m.Parameters() {
		n += p.Tensor().NumElements()
	}
	return n
}

// StateDict returns every parameter keyed by component path
// (e.g. "trunk.0.weight", "sigma.0.bias", "rgb.2.weight").
func (m *RadianceField[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	for i, layer := range m.trunk {
		for name, raw := range layer.linear.StateDict() {
			stateDict[fmt.Sprintf("trunk.%d.%s", i, name)] = raw
		}
	}
	for name, raw := range m.sigmaHead.StateDict() {
		stateDict["sigma."+name] = raw
	}
	for name, raw := range m.featHead.StateDict() {
		stateDict["feat."+name] = raw
	}
	for name, raw := range m.rgbHead.StateDict() {
		stateDict["rgb."+name] = raw
	}
	return stateDict
}

// LoadStateDict loads parameters from a state dictionary produced by
// StateDict on an identically configured model.
func (m *RadianceField[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	byPrefix := func(prefix string) map[string]*tensor.RawTensor {
		sub := make(map[string]*tensor.RawTensor)
		for key, raw := range stateDict {
			if len(key) > len(prefix) && key[:len(prefix)] == prefix {
				sub[key[len(prefix):]] = raw
			}
		}
		return sub
	}

	for i, layer := range m.trunk {
		prefix := fmt.Sprintf("trunk.%d.", i)
		if err := layer.linear.LoadStateDict(byPrefix(prefix)); err != nil {
			return fmt.Errorf("failed to load trunk layer %d: %w", i, err)
		}
	}
	if err := m.sigmaHead.LoadStateDict(byPrefix("sigma.")); err != nil {
		return fmt.Errorf("failed to load sigma head: %w", err)
	}
	if err := m.featHead.LoadStateDict(byPrefix("feat.")); err != nil {
		return fmt.Errorf("failed to load feature head: %w", err)
	}
	if err := m.rgbHead.LoadStateDict(byPrefix("rgb.")); err != nil {
		return fmt.Errorf("failed to load rgb head: %w", err)
	}
	return nil
}
