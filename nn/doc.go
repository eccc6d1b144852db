// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU, Sigmoid, Softplus, Siren
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier, Zeros, Ones, Randn
//
// # Basic Usage
//
//	import (
//	    "github.com/radiance-ml/radiance/backend/cpu"
//	    "github.com/radiance-ml/radiance/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Build a small MLP head
//	    head := nn.NewSequential[*cpu.CPUBackend](
//	        nn.NewLinear(256, 128, backend),
//	        nn.NewReLU[*cpu.CPUBackend](),
//	        nn.NewLinear(128, 3, backend),
//	        nn.NewSigmoid[*cpu.CPUBackend](),
//	    )
//	    _ = head
//	}
//
// # Parameters
//
// Layers expose their learnable state through Parameters, which an
// external training engine uses for optimizer registration; gradients are
// attached to each Parameter from outside, never by the forward pass.
package nn
