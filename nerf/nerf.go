// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nerf

import (
	"github.com/radiance-ml/radiance/config"
	"github.com/radiance-ml/radiance/internal/nerf"
	"github.com/radiance-ml/radiance/internal/tensor"
)

// RadianceField is the composed NeRF network: two branch encoders, a
// configurable fully connected trunk with skip connections, and density,
// feature, and color heads.
type RadianceField[B tensor.Backend] = nerf.RadianceField[B]

// LayerSpec describes one trunk layer of a constructed model.
type LayerSpec = nerf.LayerSpec

// New constructs a RadianceField from a config bundle on the given backend.
//
// Example:
//
//	cfg, _ := config.Load("nerf", "")
//	backend := cpu.New()
//	model, err := nerf.New(cfg, backend)
func New[B tensor.Backend](cfg config.Config, backend B) (*RadianceField[B], error) {
	return nerf.New(cfg, backend)
}

// BranchEncoder embeds one input branch before it enters the trunk.
type BranchEncoder[B tensor.Backend] = nerf.BranchEncoder[B]

// FourierEncoder expands each input channel into sinusoidal features at
// exponentially (or linearly) spaced frequencies.
type FourierEncoder[B tensor.Backend] = nerf.FourierEncoder[B]

// NewFourierEncoder creates a positional encoding for one input branch.
//
// Example:
//
//	enc := nerf.NewFourierEncoder(10, 3, true, backend)
//	encoded := enc.Encode(xyz)  // (B, 3) -> (B, 60)
func NewFourierEncoder[B tensor.Backend](numFreqs, inChannels int, logScale bool, backend B) *FourierEncoder[B] {
	return nerf.NewFourierEncoder(numFreqs, inChannels, logScale, backend)
}

// SirenEncoder passes the raw input through the sinusoidal activation
// instead of a positional encoding.
type SirenEncoder[B tensor.Backend] = nerf.SirenEncoder[B]

// NewSirenEncoder creates an identity-width branch encoder.
func NewSirenEncoder[B tensor.Backend]() *SirenEncoder[B] {
	return nerf.NewSirenEncoder[B]()
}
