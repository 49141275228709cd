// Copyright 2025 Fold ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types backing the Fold shard utilities.
//
// # Overview
//
// Tensors are in-memory n-dimensional numeric arrays over
// reference-counted backing buffers. This package provides:
//   - Runtime data types (Float16, Float32, Float64)
//   - Copy-on-write clones and owned deep copies
//   - Storage lifecycle decoupled from shape metadata
//   - Flat chunking and zero-padding primitives
//
// # Basic Usage
//
//	import "github.com/fold-ml/fold/tensor"
//
//	func main() {
//	    x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
//	    parts := x.Flatten().Chunk(2) // two views of 3 elements each
//	    half := x.To(tensor.Float16)  // precision cast
//	}
//
// # Storage
//
// A tensor's backing buffer ("storage") can be freed and reallocated
// independently of its logical shape, which sharded training uses to
// drop full parameters between forward passes while keeping their
// metadata. Resize operations require the tensor to hold the sole
// buffer handle at offset zero.
package tensor
