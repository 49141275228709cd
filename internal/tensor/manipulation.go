package tensor

import (
	"fmt"

	"github.com/fold-ml/fold/internal/parallel"
)

// copyBlockBytes is the block granularity for parallel buffer copies.
const copyBlockBytes = 64 << 10

// copyBytes copies src into dst, splitting large copies into blocks
// executed by the parallel worker helper.
func copyBytes(dst, src []byte) {
	n := len(src)
	if n <= copyBlockBytes {
		copy(dst, src)
		return
	}
	blocks := (n + copyBlockBytes - 1) / copyBlockBytes
	parallel.ForRange(blocks, func(startBlock, endBlock int) {
		start := startBlock * copyBlockBytes
		end := min(endBlock*copyBlockBytes, n)
		copy(dst[start:end], src[start:end])
	}, parallel.DefaultConfig())
}

// Flatten returns a 1-D view of the tensor (no data copy).
//
// Example:
//
//	x := tensor.Zeros(Shape{2, 3}, Float32)
//	y := x.Flatten() // Shape: [6]
func (t *Tensor) Flatten() *Tensor {
	return newNonLeaf(t.raw.view(0, t.NumElements()))
}

// Chunk splits a 1-D tensor into up to n contiguous pieces (views, no
// data copy). Pieces are sized by ceiling division: every piece except
// possibly the last holds exactly ceil(numel/n) elements, so sizes are
// non-increasing. Fewer than n pieces are returned when the tensor has
// fewer than n elements.
//
// Example:
//
//	x := tensor.Zeros(Shape{10}, Float32)
//	parts := x.Flatten().Chunk(3) // sizes [4, 4, 2]
func (t *Tensor) Chunk(n int) []*Tensor {
	if n <= 0 {
		panic(fmt.Sprintf("chunk: n must be positive, got %d", n))
	}
	if len(t.Shape()) != 1 {
		panic(fmt.Sprintf("chunk: expected a 1-D tensor, got shape %v", t.Shape()))
	}

	numel := t.NumElements()
	if numel == 0 {
		return []*Tensor{newNonLeaf(t.raw.view(0, 0))}
	}

	chunkSize := (numel + n - 1) / n
	numChunks := (numel + chunkSize - 1) / chunkSize

	chunks := make([]*Tensor, 0, numChunks)
	for start := 0; start < numel; start += chunkSize {
		end := min(start+chunkSize, numel)
		chunks = append(chunks, newNonLeaf(t.raw.view(start, end-start)))
	}
	return chunks
}

// Pad returns a new 1-D tensor extended with right trailing zero
// elements. The result owns its storage.
//
// Example:
//
//	x, _ := tensor.FromFloat32([]float32{1, 2}, Shape{2})
//	y := x.Pad(3) // [1, 2, 0, 0, 0]
func (t *Tensor) Pad(right int) *Tensor {
	if right < 0 {
		panic(fmt.Sprintf("pad: negative padding %d", right))
	}
	if len(t.Shape()) != 1 {
		panic(fmt.Sprintf("pad: expected a 1-D tensor, got shape %v", t.Shape()))
	}

	raw, err := NewRaw(Shape{t.NumElements() + right}, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("pad: %v", err))
	}
	copyBytes(raw.Data(), t.raw.Data()[:t.raw.ByteSize()])
	return newNonLeaf(raw)
}
