package ttl

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NearestIndex maps each query tick to the index of the closest tick in
// the reference sequence, e.g. to find the camera frame during which
// each event happened.
//
// The reference must be non-empty and ascending. Each query is matched
// on its own, so several queries may map to the same reference index;
// when two reference ticks are equally close, the earlier one is used.
func NearestIndex(reference, query []int) ([]int, error) {
	if len(reference) == 0 {
		return nil, fmt.Errorf("%w: no reference events", ErrEmptyEventSet)
	}

	out := make([]int, len(query))
	for i, q := range query {
		pos, found := slices.BinarySearch(reference, q)
		switch {
		case found:
			out[i] = pos
		case pos == 0:
			out[i] = 0
		case pos == len(reference):
			out[i] = pos - 1
		case q-reference[pos-1] <= reference[pos]-q:
			out[i] = pos - 1
		default:
			out[i] = pos
		}
	}
	return out, nil
}

// AlignEvents maps both the onsets and the offsets of the query events
// onto the onsets of the reference events.
func AlignEvents(reference, query Events) (onIdx, offIdx []int, err error) {
	onIdx, err = NearestIndex(reference.Onsets, query.Onsets)
	if err != nil {
		return nil, nil, err
	}
	offIdx, err = NearestIndex(reference.Onsets, query.Offsets)
	if err != nil {
		return nil, nil, err
	}
	return onIdx, offIdx, nil
}
