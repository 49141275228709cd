package shard

import (
	"github.com/fold-ml/fold/internal/tensor"
)

// CastTensorToFP16 returns a half-precision copy of a Float32 tensor.
// Tensors of any other dtype are returned unchanged, so the cast is
// idempotent. Casting produces a fresh tensor outside any gradient
// graph; for leaf inputs the gradient-tracking flag is carried over so
// the copy can accumulate gradients in the original's place.
func CastTensorToFP16(t *tensor.Tensor) *tensor.Tensor {
	if t.DType() == tensor.Float32 {
		out := t.To(tensor.Float16)
		if t.IsLeaf() {
			out.SetRequiresGrad(t.RequiresGrad())
		}
		return out
	}
	return t
}

// CastTensorToFP32 returns a single-precision copy of a Float16 tensor.
// Tensors of any other dtype are returned unchanged. Leaf inputs
// propagate their gradient-tracking flag as in CastTensorToFP16.
func CastTensorToFP32(t *tensor.Tensor) *tensor.Tensor {
	if t.DType() == tensor.Float16 {
		out := t.To(tensor.Float32)
		if t.IsLeaf() {
			out.SetRequiresGrad(t.RequiresGrad())
		}
		return out
	}
	return t
}
