package shard

import (
	"github.com/fold-ml/fold/internal/tensor"
)

// Tuple is a fixed-shape heterogeneous sequence, kept distinct from
// []any so traversal rebuilds the same container kind it received.
type Tuple []any

// ApplyToTensors rebuilds x with fn applied to every tensor nested
// inside it. Four container kinds are handled explicitly: tensors,
// lists ([]any), tuples (Tuple), and string-keyed mappings. Any other
// value is returned unchanged.
func ApplyToTensors(x any, fn func(*tensor.Tensor) *tensor.Tensor) any {
	switch v := x.(type) {
	case *tensor.Tensor:
		return fn(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ApplyToTensors(e, fn)
		}
		return out
	case Tuple:
		out := make(Tuple, len(v))
		for i, e := range v {
			out[i] = ApplyToTensors(e, fn)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = ApplyToTensors(val, fn)
		}
		return out
	default:
		return x
	}
}

// CastFloatArguments applies fn to every tensor in a positional
// argument list and a keyword argument mapping, returning both
// transformed. Used to convert call arguments around a precision
// boundary (for example fp32 inputs into an fp16 forward pass).
func CastFloatArguments(fn func(*tensor.Tensor) *tensor.Tensor, args []any, kwargs map[string]any) ([]any, map[string]any) {
	outArgs, _ := ApplyToTensors(args, fn).([]any)
	outKwargs, _ := ApplyToTensors(kwargs, fn).(map[string]any)
	return outArgs, outKwargs
}
