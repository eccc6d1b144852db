// Copyright 2025 The Radiance Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/radiance-ml/radiance/internal/backend/cpu"
)

// CPUBackend implements tensor operations in pure Go on the CPU.
type CPUBackend = cpu.CPUBackend

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
func New() *CPUBackend {
	return cpu.New()
}
