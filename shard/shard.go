// Copyright 2025 Fold ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shard

import (
	"github.com/fold-ml/fold/internal/shard"
	"github.com/fold-ml/fold/internal/tensor"
)

// StateDict is an ordered mapping from parameter names to tensors.
type StateDict = shard.StateDict

// Tuple is a fixed-shape heterogeneous sequence, traversed distinctly
// from []any by ApplyToTensors.
type Tuple = shard.Tuple

// NewStateDict creates an empty state dict.
func NewStateDict() *StateDict {
	return shard.NewStateDict()
}

// GradientPredivideFactor returns the factor gradients are divided by
// before a pre-scaled all-reduce, the largest power of two that divides
// worldSize evenly while its square stays below worldSize.
func GradientPredivideFactor(worldSize int) float64 {
	return shard.GradientPredivideFactor(worldSize)
}

// GetShard returns rank's contiguous shard of the flattened tensor,
// zero-padded to the uniform per-rank size, plus the pad element count.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{10}, tensor.Float32)
//	local, pad, err := shard.GetShard(t, 3, 4) // 1 real element, 2 padded
func GetShard(t *tensor.Tensor, rank, worldSize int) (*tensor.Tensor, int, error) {
	return shard.GetShard(t, rank, worldSize)
}

// ChunkAndPad splits a tensor into exactly numChunks equally sized
// pieces, padding the last real piece and appending zero-filled pieces
// as needed.
func ChunkAndPad(t *tensor.Tensor, numChunks int) []*tensor.Tensor {
	return shard.ChunkAndPad(t, numChunks)
}

// FreeStorage releases the tensor's backing buffer. The tensor must be
// the sole occupant of its storage at offset zero.
func FreeStorage(t *tensor.Tensor) {
	shard.FreeStorage(t)
}

// AllocStorage reallocates the tensor's backing buffer to exactly the
// element count of the given shape. No-op when already correctly sized.
func AllocStorage(t *tensor.Tensor, shape tensor.Shape) {
	shard.AllocStorage(t, shape)
}

// CastTensorToFP16 returns a half-precision copy of a Float32 tensor,
// carrying over the gradient-tracking flag for leaf inputs. Other
// dtypes pass through unchanged.
func CastTensorToFP16(t *tensor.Tensor) *tensor.Tensor {
	return shard.CastTensorToFP16(t)
}

// CastTensorToFP32 returns a single-precision copy of a Float16 tensor,
// carrying over the gradient-tracking flag for leaf inputs. Other
// dtypes pass through unchanged.
func CastTensorToFP32(t *tensor.Tensor) *tensor.Tensor {
	return shard.CastTensorToFP32(t)
}

// ApplyToTensors rebuilds x with fn applied to every tensor nested in
// lists, tuples, and string-keyed mappings.
func ApplyToTensors(x any, fn func(*tensor.Tensor) *tensor.Tensor) any {
	return shard.ApplyToTensors(x, fn)
}

// CastFloatArguments applies fn to every tensor in a positional
// argument list and a keyword mapping, returning both transformed.
func CastFloatArguments(fn func(*tensor.Tensor) *tensor.Tensor, args []any, kwargs map[string]any) ([]any, map[string]any) {
	return shard.CastFloatArguments(fn, args, kwargs)
}

// AssertInEngine panics with msg when cond is false, logging the
// message first so it stays visible inside gradient hooks that swallow
// panics.
func AssertInEngine(cond bool, msg string) {
	shard.AssertInEngine(cond, msg)
}

// ReplaceStateDictPrefix renames every key starting with oldPrefix in
// place, replacing the prefix with newPrefix. Returns an error when the
// prefixes are identical.
func ReplaceStateDictPrefix(sd *StateDict, oldPrefix, newPrefix string) error {
	return shard.ReplaceStateDictPrefix(sd, oldPrefix, newPrefix)
}
