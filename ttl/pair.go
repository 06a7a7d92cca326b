package ttl

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Event is one matched onset/offset pair, in ticks.
type Event struct {
	Onset  int
	Offset int
}

// Duration returns the event length in ticks.
func (e Event) Duration() int {
	return e.Offset - e.Onset
}

// Events is the set of matched events found on one channel.
type Events struct {
	Onsets  []int
	Offsets []int

	// LowToHigh is true if the onsets are rising edges.
	LowToHigh bool

	// Warnings holds the diagnostics made while finding these events.
	Warnings []Diagnostic
}

// Len returns the number of matched events.
func (e Events) Len() int {
	return len(e.Onsets)
}

// Pairs returns the events as onset/offset pairs.
func (e Events) Pairs() []Event {
	out := make([]Event, len(e.Onsets))
	for i := range out {
		out[i] = Event{Onset: e.Onsets[i], Offset: e.Offsets[i]}
	}
	return out
}

// Seconds converts the onset and offset ticks to seconds.
func (e Events) Seconds(rateHz float64) (onsets, offsets []float64) {
	return toSeconds(e.Onsets, rateHz), toSeconds(e.Offsets, rateHz)
}

func toSeconds(ticks []int, rateHz float64) []float64 {
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = float64(t) / rateHz
	}
	return out
}

// PairEvents matches onset candidates with offset candidates.
//
// Both inputs must be strictly increasing. Edges left over because the
// recording started or ended in the middle of an event are dropped: an
// offset before the first onset, and an onset after the last offset.
// The returned slices always have equal length, with each onset at or
// before its offset. The inputs are not modified.
func PairEvents(onsets, offsets []int) (Events, error) {
	var ds diagnostics
	ev, err := pairEvents(onsets, offsets, &ds)
	ev.Warnings = ds.list
	return ev, err
}

func pairEvents(onsets, offsets []int, ds *diagnostics) (Events, error) {
	const stage = "pair"

	if len(onsets) == 0 || len(offsets) == 0 {
		return Events{}, fmt.Errorf(
			"%w: %v onsets, %v offsets",
			ErrEmptyEventSet, len(onsets), len(offsets),
		)
	}

	if len(onsets) != len(offsets) {
		ds.add(warning(
			stage, "onset and offset counts differ; "+
				"recording may start or end mid-event",
			"onsets", len(onsets), "offsets", len(offsets),
		))
	}

	if onsets[0] > offsets[0] {
		ds.add(warning(
			stage, "recording started mid-event; dropping first offset",
			"offset", offsets[0],
		))
		offsets = offsets[1:]
	}

	if len(offsets) > 0 && onsets[len(onsets)-1] > offsets[len(offsets)-1] {
		ds.add(warning(
			stage, "recording ended mid-event; dropping last onset",
			"onset", onsets[len(onsets)-1],
		))
		onsets = onsets[:len(onsets)-1]
	}

	n := min(len(onsets), len(offsets))
	if len(onsets) != len(offsets) {
		ds.add(warning(
			stage, "unmatched edges remain; truncating to matched pairs",
			"onsets", len(onsets), "offsets", len(offsets), "kept", n,
		))
	}

	ev := Events{
		Onsets:  slices.Clone(onsets[:n]),
		Offsets: slices.Clone(offsets[:n]),
	}
	if n == 0 {
		ds.add(warning(stage, "no complete events found"))
		return ev, nil
	}

	ds.add(info(
		stage, "paired events",
		"count", n, "medianDuration", medianDuration(ev.Onsets, ev.Offsets),
	))
	return ev, nil
}

func medianDuration(onsets, offsets []int) float64 {
	d := make([]int, len(onsets))
	for i := range d {
		d[i] = offsets[i] - onsets[i]
	}
	slices.Sort(d)
	mid := len(d) / 2
	if len(d)%2 == 1 {
		return float64(d[mid])
	}
	return float64(d[mid-1]+d[mid]) / 2
}
