// Package spikes reads sorted spike times and arranges them around
// events for peri-event analysis.
package spikes

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/edorfaus/ttl-events/psth"
)

// Seconds converts tick counts to seconds.
func Seconds[T constraints.Integer](ticks []T, rateHz float64) []float64 {
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = float64(t) / rateHz
	}
	return out
}

// AtEvents collects, for each event, the spikes that fall strictly
// within winTicks of it, as seconds relative to the event.
func AtEvents(spikeTicks, eventTicks []int64, winTicks int64, rateHz float64) [][]float64 {
	out := make([][]float64, len(eventTicks))
	for i, e := range eventTicks {
		lo, hi := e-winTicks, e+winTicks
		trial := []float64{}
		for _, s := range spikeTicks {
			if lo < s && s < hi {
				trial = append(trial, float64(s)/rateHz-float64(e)/rateHz)
			}
		}
		out[i] = trial
	}
	return out
}

// OrderByFirstSpike returns the trial indices ordered by the latency of
// their first spike after the event. Trials with no such spike count as
// latency 0; ties keep their trial order.
func OrderByFirstSpike(trials [][]float64) []int {
	first := make([]float64, len(trials))
	order := make([]int, len(trials))
	for i, tr := range trials {
		order[i] = i
		if j := slices.IndexFunc(tr, func(v float64) bool { return v > 0 }); j >= 0 {
			first[i] = tr[j]
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case first[a] < first[b]:
			return -1
		case first[a] > first[b]:
			return 1
		}
		return 0
	})
	return order
}

// RemoveAfter returns a copy of the trials keeping only the spikes
// before each trial's event time.
func RemoveAfter(trials [][]float64, events []float64) ([][]float64, error) {
	if len(trials) != len(events) {
		return nil, fmt.Errorf(
			"%w: %v trials but %v event times",
			psth.ErrMismatchedTrialCount, len(trials), len(events),
		)
	}

	out := make([][]float64, len(trials))
	for i, tr := range trials {
		kept := []float64{}
		for _, v := range tr {
			if v < events[i] {
				kept = append(kept, v)
			}
		}
		out[i] = kept
	}
	return out, nil
}
