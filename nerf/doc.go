// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nerf provides the radiance-field model used for novel-view
// synthesis of a scene from posed images.
//
// # Overview
//
// A RadianceField maps a batch of 3D sample positions (and optionally
// viewing directions) to an emitted RGB color and a non-negative volume
// density. The architecture is selected by a config preset:
//   - "nerf": Fourier positional encoding, ReLU trunk, skip connections
//   - "s-nerf_basic" / "s-nerf_full": raw inputs with Siren activations
//
// # Basic Usage
//
//	import (
//	    "github.com/radiance-ml/radiance/backend/cpu"
//	    "github.com/radiance-ml/radiance/config"
//	    "github.com/radiance-ml/radiance/nerf"
//	    "github.com/radiance-ml/radiance/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    cfg, _ := config.Load("nerf", "")
//
//	    model, err := nerf.New(cfg, backend)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    xyz := tensor.Randn(tensor.Shape{1024, 3}, backend)
//	    out := model.Forward(xyz, nil, false) // (1024, 4): [r, g, b, sigma]
//	    sigma := model.Sigma(xyz)             // (1024, 1), density only
//	    _, _ = out, sigma
//	}
//
// # Output Contract
//
// Forward returns (batch, 4) tensors whose column order [r, g, b, sigma]
// is consumed positionally by the rendering integrator; rgb lies in (0, 1)
// and sigma is non-negative. Density depends only on position, never on
// the viewing direction.
package nerf
