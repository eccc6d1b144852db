package nerf

import (
	"fmt"
	"math"

	"github.com/radiance-ml/radiance/internal/nn"
	"github.com/radiance-ml/radiance/internal/tensor"
)

// BranchEncoder embeds one input branch (spatial position or viewing
// direction) before it enters the fully connected trunk.
//
// The variant is closed: a branch is encoded either by Fourier features
// (FourierEncoder) or by the raw input passed through the sinusoidal
// activation (SirenEncoder). OutWidth is usable at construction time to
// size the downstream linear layers.
type BranchEncoder[B tensor.Backend] interface {
	// Encode embeds a (batch, in) tensor into the branch's feature space.
	Encode(x *tensor.Tensor[B]) *tensor.Tensor[B]

	// OutWidth returns the encoded channel count for an input of the
	// given width.
	OutWidth(inWidth int) int
}

// FourierEncoder is a fixed positional encoding that expands each scalar
// input channel into sinusoidal features at numFreqs frequencies.
//
// For every frequency band f (ascending) it emits sin(f·x) then cos(f·x),
// concatenated along the last axis. Unlike the original NeRF formulation,
// the raw input is NOT part of the output: downstream layer widths and
// pretrained weights depend on this exact layout, so the deviation is kept.
//
// The frequency bands are fixed at construction and never learned.
type FourierEncoder[B tensor.Backend] struct {
	numFreqs   int
	inChannels int
	freqBands  []float32
	backend    B
}

// NewFourierEncoder creates a positional encoding for one input branch.
//
// With logScale the bands are 2^k for k = 0..numFreqs-1; otherwise they are
// linearly spaced in [1, 2^(numFreqs-1)]. numFreqs must be >= 1 (a single
// degenerate band [1] is valid). inChannels may be 0 for a branch that is
// constructed but never encoded (a disabled direction input).
func NewFourierEncoder[B tensor.Backend](numFreqs, inChannels int, logScale bool, backend B) *FourierEncoder[B] {
	if numFreqs < 1 {
		panic(fmt.Sprintf("FourierEncoder: numFreqs must be >= 1, got %d", numFreqs))
	}
	if inChannels < 0 {
		panic(fmt.Sprintf("FourierEncoder: inChannels must be >= 0, got %d", inChannels))
	}

	bands := make([]float32, numFreqs)
	if logScale {
		for k := range bands {
			bands[k] = float32(math.Pow(2, float64(k)))
		}
	} else {
		top := math.Pow(2, float64(numFreqs-1))
		if numFreqs == 1 {
			bands[0] = 1
		} else {
			step := (top - 1) / float64(numFreqs-1)
			for k := range bands {
				bands[k] = float32(1 + float64(k)*step)
			}
		}
	}

	return &FourierEncoder[B]{
		numFreqs:   numFreqs,
		inChannels: inChannels,
		freqBands:  bands,
		backend:    backend,
	}
}

// Encode embeds x to (sin(f₀·x), cos(f₀·x), sin(f₁·x), cos(f₁·x), ...).
//
// Input shape: (batch, inChannels). Output shape:
// (batch, inChannels · 2 · numFreqs). The outer loop runs over frequencies
// in ascending order, the inner over (sin, cos); the trunk's first linear
// layer is positionally bound to this exact channel ordering.
func (e *FourierEncoder[B]) Encode(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	parts := make([]*tensor.Tensor[B], 0, 2*e.numFreqs)
	for _, freq := range e.freqBands {
		scaled := x.MulScalar(freq)
		parts = append(parts, scaled.Sin(), scaled.Cos())
	}
	return tensor.Cat(parts, -1)
}

// OutWidth returns inWidth · 2 · numFreqs.
func (e *FourierEncoder[B]) OutWidth(inWidth int) int {
	return inWidth * 2 * e.numFreqs
}

// NumFreqs returns the number of frequency bands.
func (e *FourierEncoder[B]) NumFreqs() int {
	return e.numFreqs
}

// InChannels returns the configured input channel count.
func (e *FourierEncoder[B]) InChannels() int {
	return e.inChannels
}

// OutChannels returns the encoded channel count for the configured input.
func (e *FourierEncoder[B]) OutChannels() int {
	return e.OutWidth(e.inChannels)
}

// FrequencyBands returns a copy of the frequency bands in ascending order.
func (e *FourierEncoder[B]) FrequencyBands() []float32 {
	return append([]float32(nil), e.freqBands...)
}

// SirenEncoder passes the raw input through the sinusoidal activation
// instead of a positional encoding. This is the Siren initialization
// strategy: the sine nonlinearity supplies the frequency content that
// Fourier features would otherwise provide, so the branch keeps its raw
// width.
type SirenEncoder[B tensor.Backend] struct {
	act *nn.Siren[B]
}

// NewSirenEncoder creates an identity-width branch encoder.
func NewSirenEncoder[B tensor.Backend]() *SirenEncoder[B] {
	return &SirenEncoder[B]{act: nn.NewSiren[B]()}
}

// Encode applies sin(30·x) element-wise; the shape is unchanged.
func (e *SirenEncoder[B]) Encode(x *tensor.Tensor[B]) *tensor.Tensor[B] {
	return e.act.Forward(x)
}

// OutWidth returns inWidth unchanged.
func (e *SirenEncoder[B]) OutWidth(inWidth int) int {
	return inWidth
}
