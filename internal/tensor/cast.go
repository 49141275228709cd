package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// float32ToHalf converts a float32 to its IEEE 754 half-precision bit pattern.
func float32ToHalf(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}

// halfToFloat32 converts an IEEE 754 half-precision bit pattern to float32.
func halfToFloat32(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}

// To converts the tensor to the target data type, producing a new
// tensor with its own storage. Converting to the tensor's current
// dtype deep-copies it.
//
// The result is an operation output, not a leaf, and does not inherit
// the gradient-tracking flag: callers re-attach it explicitly when the
// conversion should stay connected to a gradient graph.
func (t *Tensor) To(dtype DataType) *Tensor {
	if t.DType() == dtype {
		out := newNonLeaf(t.raw.Copy())
		return out
	}

	raw, err := NewRaw(t.Shape(), dtype, t.Device())
	if err != nil {
		panic(fmt.Sprintf("to: %v", err))
	}
	out := newNonLeaf(raw)

	n := t.NumElements()
	switch {
	case t.DType() == Float32 && dtype == Float16:
		src, dst := t.Float32s(), out.Uint16s()
		for i := 0; i < n; i++ {
			dst[i] = float32ToHalf(src[i])
		}
	case t.DType() == Float16 && dtype == Float32:
		src, dst := t.Uint16s(), out.Float32s()
		for i := 0; i < n; i++ {
			dst[i] = halfToFloat32(src[i])
		}
	case t.DType() == Float32 && dtype == Float64:
		src, dst := t.Float32s(), out.Float64s()
		for i := 0; i < n; i++ {
			dst[i] = float64(src[i])
		}
	case t.DType() == Float64 && dtype == Float32:
		src, dst := t.Float64s(), out.Float32s()
		for i := 0; i < n; i++ {
			dst[i] = float32(src[i])
		}
	case t.DType() == Float16 && dtype == Float64:
		src, dst := t.Uint16s(), out.Float64s()
		for i := 0; i < n; i++ {
			dst[i] = float64(halfToFloat32(src[i]))
		}
	case t.DType() == Float64 && dtype == Float16:
		src, dst := t.Float64s(), out.Uint16s()
		for i := 0; i < n; i++ {
			dst[i] = float32ToHalf(float32(src[i]))
		}
	default:
		panic(fmt.Sprintf("to: unsupported conversion %s -> %s", t.DType(), dtype))
	}

	return out
}
