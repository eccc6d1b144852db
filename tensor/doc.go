// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides float32 tensor operations for the Radiance
// framework.
//
// # Overview
//
// Tensors are the fundamental data structure in Radiance. This package
// provides:
//   - Backend-generic tensors (Tensor[B])
//   - NumPy-style broadcasting
//   - Concatenation and splitting along any axis
//   - The Backend interface implemented by compute backends
//
// # Basic Usage
//
//	import (
//	    "github.com/radiance-ml/radiance/backend/cpu"
//	    "github.com/radiance-ml/radiance/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones(tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    s := z.MulScalar(2).Sin()
//	    _ = s
//	}
//
// # Shapes and Broadcasting
//
// Shapes are ordinary int slices. Element-wise binary operations follow
// NumPy broadcasting rules: trailing dimensions are compared right to
// left, and size-1 dimensions are stretched.
//
//	a := tensor.Ones(tensor.Shape{4, 1}, backend)
//	b := tensor.Ones(tensor.Shape{1, 5}, backend)
//	c := a.Add(b) // Shape: [4, 5]
package tensor
