// Package shard provides tensor utilities for sharded data-parallel
// training: shard extraction with uniform padding, explicit storage
// lifecycle, precision casting, structural traversal, and state-dict
// key manipulation. All functions are stateless; the caller owns the
// tensors exclusively for the duration of a call.
package shard

import (
	"fmt"

	"github.com/fold-ml/fold/internal/tensor"
)

// GetShard returns the local shard of a full tensor for the given rank,
// plus the number of trailing zero elements padded onto it.
//
// The tensor is flattened and split into worldSize contiguous chunks
// with ceiling-division sizing, matching the layout an all-gather or
// reduce-scatter reassembles. When the tensor has fewer elements than
// worldSize, the missing chunks are empty. Every rank's shard is padded
// up to the first chunk's size, so results are uniform across ranks for
// a given call set. The returned shard owns its storage.
func GetShard(t *tensor.Tensor, rank, worldSize int) (*tensor.Tensor, int, error) {
	if worldSize <= 0 {
		return nil, 0, fmt.Errorf("world size must be positive, got %d", worldSize)
	}
	if rank < 0 || rank >= worldSize {
		return nil, 0, fmt.Errorf("rank %d out of range for world size %d", rank, worldSize)
	}

	flat := t.Flatten()
	chunks := flat.Chunk(worldSize)
	// The flat tensor and chunks are views into t's buffer. Drop them
	// on the way out so the caller keeps the sole handle and can still
	// free t's storage afterwards.
	defer func() {
		flat.Raw().Release()
		for _, c := range chunks {
			c.Raw().Release()
		}
	}()
	for len(chunks) < worldSize {
		chunks = append(chunks, tensor.Zeros(tensor.Shape{0}, t.DType()))
	}

	numToPad := chunks[0].NumElements() - chunks[rank].NumElements()
	// Ceiling-division chunking yields non-increasing sizes, so the
	// first chunk is never smaller than any other.
	if numToPad < 0 {
		panic(fmt.Sprintf("shard: negative padding %d for rank %d", numToPad, rank))
	}

	s := chunks[rank].Copy()
	if numToPad > 0 {
		padded := s.Pad(numToPad)
		s.Raw().Release()
		s = padded
	}
	return s, numToPad, nil
}

// ChunkAndPad splits a tensor into exactly numChunks equally sized
// pieces. The last real chunk is zero-padded up to the first chunk's
// size, and zero-filled chunks are appended when fewer than numChunks
// pieces were produced.
//
// Unpadded pieces are views sharing t's buffer; t's storage cannot be
// freed while they are alive.
func ChunkAndPad(t *tensor.Tensor, numChunks int) []*tensor.Tensor {
	flat := t.Flatten()
	defer flat.Raw().Release()
	chunks := flat.Chunk(numChunks)

	last := len(chunks) - 1
	numToPad := chunks[0].NumElements() - chunks[last].NumElements()
	if numToPad > 0 {
		padded := chunks[last].Pad(numToPad)
		chunks[last].Raw().Release()
		chunks[last] = padded
	}
	for len(chunks) < numChunks {
		chunks = append(chunks, tensor.ZerosLike(chunks[0]))
	}
	return chunks
}
