package rotation

import "golang.org/x/exp/constraints"

// clamp returns the value f coerced into the range [low, high].
func clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}
