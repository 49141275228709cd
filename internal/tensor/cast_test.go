package tensor

import (
	"math"
	"testing"
)

func TestTo_Float32ToFloat16(t *testing.T) {
	x := mustFromFloat32(t, []float32{0, 1, -2, 0.5, 65504}, Shape{5})

	y := x.To(Float16)

	if y.DType() != Float16 {
		t.Fatalf("expected float16, got %s", y.DType())
	}
	if y.IsLeaf() {
		t.Error("cast result should not be a leaf")
	}

	// All inputs are exactly representable in half precision.
	back := y.To(Float32)
	if !sliceEqualF32(back.Float32s(), x.Float32s()) {
		t.Errorf("round trip changed values: %v -> %v", x.Float32s(), back.Float32s())
	}
}

func TestTo_HalfPrecisionLoss(t *testing.T) {
	x := mustFromFloat32(t, []float32{1.0001}, Shape{1})

	got := x.To(Float16).To(Float32).Float32s()[0]

	// Half precision has ~3 decimal digits around 1.0.
	if math.Abs(float64(got)-1.0001) > 1e-3 {
		t.Errorf("fp16 round trip too lossy: got %v", got)
	}
	if got == 1.0001 {
		t.Error("expected precision loss through fp16")
	}
}

func TestTo_Float64Conversions(t *testing.T) {
	tests := []struct {
		name string
		from DataType
		to   DataType
	}{
		{name: "float64 to float32", from: Float64, to: Float32},
		{name: "float32 to float64", from: Float32, to: Float64},
		{name: "float64 to float16", from: Float64, to: Float16},
		{name: "float16 to float64", from: Float16, to: Float64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := Full(Shape{3}, 2.5, tt.from)

			y := x.To(tt.to)

			if y.DType() != tt.to {
				t.Fatalf("expected %s, got %s", tt.to, y.DType())
			}
			// 2.5 survives every float width exactly.
			if got := y.To(Float64).Float64s()[0]; got != 2.5 {
				t.Errorf("expected 2.5, got %v", got)
			}
		})
	}
}

func TestTo_SameDTypeCopies(t *testing.T) {
	x := mustFromFloat32(t, []float32{1, 2}, Shape{2})

	y := x.To(Float32)

	y.Float32s()[0] = 9
	if x.Float32s()[0] != 1 {
		t.Error("same-dtype cast aliases the source")
	}
}
