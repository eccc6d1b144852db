package nn

import (
	"github.com/radiance-ml/radiance/internal/tensor"
)

// statelessStateDict is shared by all activation modules: they carry no
// learnable state, so their state dicts are empty and loading is a no-op.
func statelessStateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{}
}

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU[Backend]()
//	output := relu.Forward(input)  // All negative values become 0
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	result := input.Backend().ReLU(input.Raw())
	return tensor.New(result, input.Backend())
}

// Parameters returns an empty slice (ReLU has no trainable parameters).
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (ReLU has no learnable state).
func (r *ReLU[B]) StateDict() map[string]*tensor.RawTensor {
	return statelessStateDict()
}

// LoadStateDict is a no-op for stateless modules.
func (r *ReLU[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1), which makes it the output
// activation for predicted RGB color.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies Sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	result := input.Backend().Sigmoid(input.Raw())
	return tensor.New(result, input.Backend())
}

// Parameters returns an empty slice (Sigmoid has no trainable parameters).
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (Sigmoid has no learnable state).
func (s *Sigmoid[B]) StateDict() map[string]*tensor.RawTensor {
	return statelessStateDict()
}

// LoadStateDict is a no-op for stateless modules.
func (s *Sigmoid[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}

// Softplus is a smooth, always-positive activation module.
//
// Applies the element-wise function: f(x) = log(1 + exp(x))
//
// Softplus guarantees non-negative output, which makes it the output
// activation for predicted volume density.
type Softplus[B tensor.Backend] struct{}

// NewSoftplus creates a new Softplus activation module.
func NewSoftplus[B tensor.Backend]() *Softplus[B] {
	return &Softplus[B]{}
}

// Forward applies Softplus activation: f(x) = log(1 + exp(x)).
func (s *Softplus[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	result := input.Backend().Softplus(input.Raw())
	return tensor.New(result, input.Backend())
}

// Parameters returns an empty slice (Softplus has no trainable parameters).
func (s *Softplus[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (Softplus has no learnable state).
func (s *Softplus[B]) StateDict() map[string]*tensor.RawTensor {
	return statelessStateDict()
}

// LoadStateDict is a no-op for stateless modules.
func (s *Softplus[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}

// sirenFrequency is the fixed angular frequency of the Siren nonlinearity
// (w0 in the SIREN paper).
const sirenFrequency = 30.0

// Siren is a sinusoidal activation module: f(x) = sin(30·x).
//
// Sine nonlinearities let a plain MLP represent high-frequency signals
// without an explicit positional encoding; networks built with Siren skip
// the Fourier-feature embedding and feed raw coordinates directly.
type Siren[B tensor.Backend] struct{}

// NewSiren creates a new Siren activation module.
func NewSiren[B tensor.Backend]() *Siren[B] {
	return &Siren[B]{}
}

// Forward applies the sinusoidal activation: f(x) = sin(30·x).
func (s *Siren[B]) Forward(input *tensor.Tensor[B]) *tensor.Tensor[B] {
	return input.MulScalar(sirenFrequency).Sin()
}

// Parameters returns an empty slice (Siren has no trainable parameters).
func (s *Siren[B]) Parameters() []*Parameter[B] {
	return nil
}

// StateDict returns an empty map (Siren has no learnable state).
func (s *Siren[B]) StateDict() map[string]*tensor.RawTensor {
	return statelessStateDict()
}

// LoadStateDict is a no-op for stateless modules.
func (s *Siren[B]) LoadStateDict(map[string]*tensor.RawTensor) error {
	return nil
}
