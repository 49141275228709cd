package shard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fold-ml/fold/internal/tensor"
)

// tensorComparer compares tensors by dtype, shape, and contents so
// go-cmp can diff nested argument structures.
var tensorComparer = cmp.Comparer(func(a, b *tensor.Tensor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.DType() != b.DType() || !a.Shape().Equal(b.Shape()) {
		return false
	}
	ad := a.To(tensor.Float64).Float64s()
	bd := b.To(tensor.Float64).Float64s()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
})

func identity(t *tensor.Tensor) *tensor.Tensor { return t }

func TestApplyToTensors_Identity(t *testing.T) {
	t1, err := tensor.FromFloat32([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	t2, err := tensor.FromFloat32([]float32{3}, tensor.Shape{1})
	require.NoError(t, err)

	in := map[string]any{
		"a": []any{t1, Tuple{t2}},
		"b": "not a tensor",
		"c": 42,
	}

	out := ApplyToTensors(in, identity)

	if diff := cmp.Diff(in, out, tensorComparer); diff != "" {
		t.Errorf("structure changed under identity (-want +got):\n%s", diff)
	}
}

func TestApplyToTensors_Variants(t *testing.T) {
	half := tensor.Zeros(tensor.Shape{2}, tensor.Float16)

	t.Run("bare tensor", func(t *testing.T) {
		out := ApplyToTensors(half, CastTensorToFP32)
		require.IsType(t, &tensor.Tensor{}, out)
		assert.Equal(t, tensor.Float32, out.(*tensor.Tensor).DType())
	})

	t.Run("list", func(t *testing.T) {
		out := ApplyToTensors([]any{half, "text"}, CastTensorToFP32)
		list, ok := out.([]any)
		require.True(t, ok, "list did not rebuild as a list")
		assert.Equal(t, tensor.Float32, list[0].(*tensor.Tensor).DType())
		assert.Equal(t, "text", list[1])
	})

	t.Run("tuple keeps its kind", func(t *testing.T) {
		out := ApplyToTensors(Tuple{half}, CastTensorToFP32)
		tup, ok := out.(Tuple)
		require.True(t, ok, "tuple rebuilt as a different container kind")
		assert.Equal(t, tensor.Float32, tup[0].(*tensor.Tensor).DType())
	})

	t.Run("mapping", func(t *testing.T) {
		out := ApplyToTensors(map[string]any{"w": half}, CastTensorToFP32)
		m, ok := out.(map[string]any)
		require.True(t, ok, "mapping did not rebuild as a mapping")
		assert.Equal(t, tensor.Float32, m["w"].(*tensor.Tensor).DType())
	})

	t.Run("non-tensor leaf passes through", func(t *testing.T) {
		assert.Equal(t, 3.5, ApplyToTensors(3.5, CastTensorToFP32))
		assert.Nil(t, ApplyToTensors(nil, CastTensorToFP32))
	})

	t.Run("deep nesting", func(t *testing.T) {
		in := []any{map[string]any{"x": Tuple{[]any{half}}}}
		out := ApplyToTensors(in, CastTensorToFP32)
		got := out.([]any)[0].(map[string]any)["x"].(Tuple)[0].([]any)[0].(*tensor.Tensor)
		assert.Equal(t, tensor.Float32, got.DType())
	})
}

func TestCastFloatArguments(t *testing.T) {
	full := tensor.Zeros(tensor.Shape{3}, tensor.Float32)
	args := []any{full, 7}
	kwargs := map[string]any{"mask": "none", "weight": full}

	outArgs, outKwargs := CastFloatArguments(CastTensorToFP16, args, kwargs)

	require.Len(t, outArgs, 2)
	assert.Equal(t, tensor.Float16, outArgs[0].(*tensor.Tensor).DType())
	assert.Equal(t, 7, outArgs[1])

	require.Len(t, outKwargs, 2)
	assert.Equal(t, tensor.Float16, outKwargs["weight"].(*tensor.Tensor).DType())
	assert.Equal(t, "none", outKwargs["mask"])

	// Inputs are rebuilt, not mutated.
	assert.Equal(t, tensor.Float32, args[0].(*tensor.Tensor).DType())
}

func TestCastFloatArguments_Empty(t *testing.T) {
	outArgs, outKwargs := CastFloatArguments(CastTensorToFP16, nil, nil)
	assert.Empty(t, outArgs)
	assert.Empty(t, outKwargs)
}
