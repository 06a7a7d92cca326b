package filter

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// DefaultHysteresis is the fraction of the signal's span that separates
// the low and high thresholds picked by AutoThreshold.
const DefaultHysteresis = 0.2

func lowHigh[T constraints.Ordered](v []T) (low, high T) {
	return slices.Min(v), slices.Max(v)
}
