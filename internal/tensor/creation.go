package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4}, Float32)
func Zeros(shape Shape, dtype DataType) *Tensor {
	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New(raw)
}

// ZerosLike creates a zero-filled tensor with the same shape and dtype
// as the given tensor.
func ZerosLike(t *Tensor) *Tensor {
	return Zeros(t.Shape(), t.DType())
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14, Float64)
func Full(shape Shape, value float64, dtype DataType) *Tensor {
	t := Zeros(shape, dtype)
	switch dtype {
	case Float32:
		data := t.Float32s()
		for i := range data {
			data[i] = float32(value)
		}
	case Float64:
		data := t.Float64s()
		for i := range data {
			data[i] = value
		}
	case Float16:
		bits := float32ToHalf(float32(value))
		data := t.Uint16s()
		for i := range data {
			data[i] = bits
		}
	default:
		panic(fmt.Sprintf("full: unsupported dtype %s", dtype))
	}
	return t
}

// FromFloat32 creates a Float32 tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromFloat32(data []float32, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := Zeros(shape, Float32)
	copy(t.Float32s(), data)
	return t, nil
}

// FromFloat64 creates a Float64 tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromFloat64(data []float64, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := Zeros(shape, Float64)
	copy(t.Float64s(), data)
	return t, nil
}
