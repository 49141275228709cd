package shard

import (
	"github.com/fold-ml/fold/internal/tensor"
)

// FreeStorage releases the tensor's backing buffer, leaving the shape
// metadata in place so the storage can be reallocated later. No-op when
// the storage is already empty. Panics when the tensor is not the sole
// occupant of its buffer at offset zero: resizing memory another view
// still addresses would corrupt that view.
//
// Runs without gradient tracking; only the raw storage is touched.
func FreeStorage(t *tensor.Tensor) {
	if t.Raw().StorageNumel() > 0 {
		t.Raw().FreeStorage()
	}
}

// AllocStorage reallocates the tensor's backing buffer to exactly the
// element count of the given shape. No-op when the storage is already
// correctly sized. Panics when called on a non-empty buffer of a
// different size: in-use storage must be freed explicitly first.
//
// Runs without gradient tracking; only the raw storage is touched.
func AllocStorage(t *tensor.Tensor, shape tensor.Shape) {
	t.Raw().AllocStorage(shape.NumElements())
}
