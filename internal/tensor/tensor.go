package tensor

import "fmt"

// Tensor is an n-dimensional numeric array over a reference-counted
// backing buffer, carrying gradient-tracking metadata.
//
// The element type is runtime information (DType), not a type
// parameter: precision casting converts tensors between float widths,
// which a statically typed element parameter could not express.
//
// Example:
//
//	t := tensor.Zeros(Shape{3, 4}, Float32)
//	half := t.To(Float16)
type Tensor struct {
	raw          *RawTensor
	grad         *Tensor // Gradient tensor, accumulated by an external engine
	requiresGrad bool    // Whether to compute gradients for this tensor
	leaf         bool    // Whether this tensor has no recorded computation history
}

// New creates a Tensor from a RawTensor.
// The result is a leaf: it carries no computation history.
func New(raw *RawTensor) *Tensor {
	return &Tensor{
		raw:  raw,
		leaf: true,
	}
}

// newNonLeaf wraps an operation result. Outputs of tracked operations
// are not leaves and cannot directly accumulate gradients.
func newNonLeaf(raw *RawTensor) *Tensor {
	return &Tensor{
		raw:  raw,
		leaf: false,
	}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
// Used for low-level storage manipulation.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Grad returns the gradient tensor (nil until one is accumulated).
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// SetGrad sets the gradient tensor.
func (t *Tensor) SetGrad(grad *Tensor) {
	t.grad = grad
}

// RequireGrad marks this tensor for gradient computation.
// Returns the tensor itself for method chaining.
func (t *Tensor) RequireGrad() *Tensor {
	t.requiresGrad = true
	return t
}

// SetRequiresGrad sets the gradient-tracking flag.
func (t *Tensor) SetRequiresGrad(v bool) {
	t.requiresGrad = v
}

// RequiresGrad returns true if this tensor requires gradient computation.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// IsLeaf returns true if this tensor has no recorded computation
// history and is eligible to directly accumulate gradients.
func (t *Tensor) IsLeaf() bool {
	return t.leaf
}

// Detach returns a new tensor that shares the same data but doesn't
// track gradients. The result is a leaf.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{
		raw:  t.raw.Clone(), // Share data (copy-on-write handle)
		leaf: true,
	}
}

// Clone creates a copy sharing the backing buffer (copy-on-write).
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		raw:  t.raw.Clone(),
		leaf: true,
	}
}

// Copy creates a deep copy with exclusively owned storage.
func (t *Tensor) Copy() *Tensor {
	return &Tensor{
		raw:  t.raw.Copy(),
		leaf: true,
	}
}

// Float32s returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Float32s() []float32 {
	return t.raw.AsFloat32()
}

// Float64s returns a typed slice view of the tensor's data.
func (t *Tensor) Float64s() []float64 {
	return t.raw.AsFloat64()
}

// Uint16s returns the raw half-precision bit patterns of a Float16 tensor.
func (t *Tensor) Uint16s() []uint16 {
	return t.raw.AsUint16()
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}
