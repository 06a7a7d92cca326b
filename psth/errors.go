package psth

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBinSet          = errors.New("need at least 2 bin edges")
	ErrBadBinEdges          = errors.New("bin edges must be strictly increasing")
	ErrBinMismatch          = errors.New("histogram does not match bin edges")
	ErrNoTrials             = errors.New("no trials")
	ErrMismatchedTrialCount = errors.New("mismatched trial count")
	ErrBadOption            = errors.New("bad option")
)

// binWidths validates the bin edges and returns the width of each bin.
func binWidths(edges []float64) ([]float64, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: got %v", ErrEmptyBinSet, len(edges))
	}
	widths := make([]float64, len(edges)-1)
	for i := range widths {
		w := edges[i+1] - edges[i]
		if !(w > 0) {
			return nil, fmt.Errorf(
				"%w: edge %v (%v) after %v", ErrBadBinEdges, i+1, edges[i+1], edges[i],
			)
		}
		widths[i] = w
	}
	return widths, nil
}

func checkHistograms(hists [][]float64, bins int) error {
	if len(hists) == 0 {
		return ErrNoTrials
	}
	for i, h := range hists {
		if len(h) != bins {
			return fmt.Errorf(
				"%w: trial %v has %v bins, want %v", ErrBinMismatch, i, len(h), bins,
			)
		}
	}
	return nil
}
