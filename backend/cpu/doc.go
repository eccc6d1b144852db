// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32 kernels for every op the radiance-field model needs
//   - NumPy-compatible broadcasting
//   - Numerically stable softplus
//
// # Basic Usage
//
//	import (
//	    "github.com/radiance-ml/radiance/backend/cpu"
//	    "github.com/radiance-ml/radiance/tensor"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    x := tensor.Randn(tensor.Shape{64, 3}, backend)
//	    y := x.MulScalar(2).Cos()
//	    _ = y
//	}
package cpu
