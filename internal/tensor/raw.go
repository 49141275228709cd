package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	default:
		return "Unknown"
	}
}

// tensorBuffer is a reference-counted shared buffer for Copy-on-Write semantics.
// It doubles as the resizable "storage" of a tensor: the buffer can be freed
// and reallocated independently of the shape metadata of the tensors viewing it,
// but only while exactly one handle exists.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation and resizing
}

// newTensorBuffer creates a new reference-counted buffer with refCount = 1.
func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone operations).
func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// resize replaces the backing memory with a zero-initialized block of the
// given byte size. Callers must hold the sole reference; shared buffers
// cannot be resized without corrupting other views.
func (tb *tensorBuffer) resize(size int) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if size == 0 {
		tb.data = []byte{}
		return
	}
	tb.data = make([]byte, size)
}

// RawTensor is the low-level tensor representation.
// It uses reference-counted shared buffers for Copy-on-Write semantics.
type RawTensor struct {
	buffer *tensorBuffer // Shared reference-counted buffer
	shape  Shape         // Tensor dimensions
	stride []int         // Memory strides (row-major)
	dtype  DataType      // Runtime type information
	device Device        // Compute device
	offset int           // Byte offset for slicing/views
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	numElements := shape.NumElements()
	byteSize := numElements * dtype.Size()

	return &RawTensor{
		buffer: newTensorBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements in the logical view.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the logical view size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// StorageNumel returns the element capacity of the backing buffer.
// This can differ from NumElements: the storage may have been freed
// (zero) while the shape metadata still describes the full tensor.
func (r *RawTensor) StorageNumel() int {
	return len(r.buffer.data) / r.dtype.Size()
}

// StorageOffset returns the element offset of this view into the backing buffer.
func (r *RawTensor) StorageOffset() int {
	return r.offset / r.dtype.Size()
}

// Data returns the raw byte slice of the logical view.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data[r.offset:]
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	if r.NumElements() == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	if r.NumElements() == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), r.NumElements())
}

// AsUint16 interprets the data as raw half-precision bit patterns.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsUint16() []uint16 {
	if r.dtype != Float16 {
		panic(fmt.Sprintf("tensor dtype is %s, not float16", r.dtype))
	}
	if r.NumElements() == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*uint16)(unsafe.Pointer(&data[0])), r.NumElements())
}

// Clone creates a shallow copy of the RawTensor (shares buffer with reference counting).
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
}

// Copy creates a deep copy of the RawTensor with its own exclusively
// owned buffer. Unlike Clone, the result never shares memory with the
// source, so its storage may be freed or resized independently.
func (r *RawTensor) Copy() *RawTensor {
	out, err := NewRaw(r.shape, r.dtype, r.device)
	if err != nil {
		panic(fmt.Sprintf("copy: %v", err))
	}
	copy(out.buffer.data, r.buffer.data[r.offset:r.offset+r.ByteSize()])
	return out
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// view returns a RawTensor viewing numElements elements of the shared
// buffer starting at the given element offset relative to this view.
func (r *RawTensor) view(elemOffset, numElements int) *RawTensor {
	r.buffer.addRef()
	shape := Shape{numElements}
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape,
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset + elemOffset*r.dtype.Size(),
	}
}

// FreeStorage releases the backing buffer, leaving the shape metadata
// intact. The tensor must exclusively own its buffer at offset zero:
// freeing memory another view still addresses would corrupt that view.
// Panics when either ownership condition is violated.
func (r *RawTensor) FreeStorage() {
	if r.StorageOffset() != 0 {
		panic(fmt.Sprintf("free storage: tensor is a view at offset %d, not the sole occupant", r.StorageOffset()))
	}
	if !r.IsUnique() {
		panic("free storage: backing buffer is shared with another view")
	}
	r.buffer.resize(0)
}

// AllocStorage reallocates the backing buffer to hold exactly numElements
// elements. No-op when the storage is already exactly that size. Panics
// when the buffer is non-empty of a different size (silent resizing of
// in-use storage) or when it is shared with another view.
func (r *RawTensor) AllocStorage(numElements int) {
	if r.StorageNumel() == numElements {
		return
	}
	if r.StorageNumel() != 0 {
		panic(fmt.Sprintf("alloc storage: buffer holds %d elements, expected empty", r.StorageNumel()))
	}
	if !r.IsUnique() {
		panic("alloc storage: backing buffer is shared with another view")
	}
	r.buffer.resize(numElements * r.dtype.Size())
}
