package filter

import (
	"fmt"

	"github.com/edorfaus/ttl-events/ttl"
)

// Threshold is a hysteresis comparator that turns an analog TTL trace
// into a level sequence. The output goes high when a sample reaches
// High, and only goes low again when a sample drops to Low.
type Threshold struct {
	Low  float64
	High float64
}

// AutoThreshold places the thresholds around the midpoint between the
// minimum and maximum of the samples, hysteresis*span apart.
func AutoThreshold(samples []float64, hysteresis float64) (Threshold, error) {
	if len(samples) == 0 {
		return Threshold{}, fmt.Errorf(
			"%w: no samples to threshold", ttl.ErrInsufficientSamples,
		)
	}
	if hysteresis < 0 || hysteresis >= 1 {
		return Threshold{}, fmt.Errorf("bad hysteresis: %v", hysteresis)
	}

	lo, hi := lowHigh(samples)
	mid := lo + (hi-lo)/2
	half := (hi - lo) * hysteresis / 2
	return Threshold{Low: mid - half, High: mid + half}, nil
}

func (t Threshold) Run(samples []float64) []uint8 {
	out := make([]uint8, len(samples))
	if len(samples) == 0 {
		return out
	}

	// The first sample has no history, so it only needs to be closer to
	// one side than the other.
	var state uint8
	if samples[0] >= t.Low+(t.High-t.Low)/2 {
		state = 1
	}

	for i, v := range samples {
		if state == 0 && v >= t.High {
			state = 1
		} else if state == 1 && v <= t.Low {
			state = 0
		}
		out[i] = state
	}
	return out
}
