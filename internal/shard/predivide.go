package shard

// GradientPredivideFactor returns the factor gradients are divided by
// before a pre-scaled all-reduce. Splitting the division of a full
// all-reduce into a pre- and post-divide of roughly sqrt(worldSize)
// each keeps intermediate values away from fp16 overflow and underflow.
//
// The factor doubles while it still divides worldSize evenly and its
// square stays below worldSize.
func GradientPredivideFactor(worldSize int) float64 {
	factor := 1
	for worldSize%factor == 0 && worldSize/factor > factor {
		factor *= 2
	}
	return float64(factor)
}
