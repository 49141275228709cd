// Copyright 2025 Fold ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shard provides the public API for Fold's sharded-training
// tensor utilities.
//
// # Overview
//
// These are the stateless helpers a sharded data-parallel engine calls
// around its communication layer:
//   - Shard extraction: split a flattened tensor into uniform
//     per-rank pieces, zero-padding as needed (GetShard, ChunkAndPad)
//   - Storage lifecycle: free and reallocate a tensor's backing
//     buffer around forward passes (FreeStorage, AllocStorage)
//   - Precision casting: fp32 ⇄ fp16 conversion preserving
//     gradient-tracking flags (CastTensorToFP16, CastTensorToFP32)
//   - Structural traversal: apply a transform to every tensor nested
//     in lists, tuples, and mappings (ApplyToTensors, CastFloatArguments)
//   - State-dict key renaming (ReplaceStateDictPrefix)
//
// # Basic Usage
//
//	import (
//	    "github.com/fold-ml/fold/shard"
//	    "github.com/fold-ml/fold/tensor"
//	)
//
//	func main() {
//	    w := tensor.Zeros(tensor.Shape{10}, tensor.Float32)
//	    local, pad, err := shard.GetShard(w, 1, 4) // rank 1 of 4
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = local // 3 real elements, 0 padded; uniform size 3 across ranks
//	    _ = pad
//	}
//
// Distributed communication, gradient synchronization, and checkpoint
// persistence are external collaborators; this package only prepares
// tensors for them.
package shard
