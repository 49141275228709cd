// Copyright 2025 Fold ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/fold-ml/fold/tensor"
)

func TestPublicTensorAPI(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32)
	if x.NumElements() != 6 {
		t.Errorf("expected 6 elements, got %d", x.NumElements())
	}
	if x.Device() != tensor.CPU {
		t.Errorf("expected CPU device, got %s", x.Device())
	}

	y, err := tensor.FromFloat32([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{6})
	if err != nil {
		t.Fatalf("FromFloat32 failed: %v", err)
	}

	parts := y.Chunk(2)
	if len(parts) != 2 || parts[0].NumElements() != 3 {
		t.Errorf("unexpected chunking: %d parts", len(parts))
	}

	half := y.To(tensor.Float16)
	if half.DType() != tensor.Float16 {
		t.Errorf("expected float16, got %s", half.DType())
	}

	z := tensor.ZerosLike(half)
	if z.DType() != tensor.Float16 || !z.Shape().Equal(half.Shape()) {
		t.Errorf("ZerosLike mismatch: %s %v", z.DType(), z.Shape())
	}
}
