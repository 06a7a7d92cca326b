package psth

import (
	"math"

	"golang.org/x/exp/slices"
)

// DefaultSigma is the default Gaussian smoothing width, in bins.
const DefaultSigma = 2.0

// BinOptions controls how the trial histograms are made.
type BinOptions struct {
	// Smooth applies a Gaussian filter to each trial's counts.
	Smooth bool

	// Sigma is the width of the Gaussian filter, in bins.
	// Zero means DefaultSigma.
	Sigma float64
}

// Centers returns the centre of each bin.
func Centers(edges []float64) ([]float64, error) {
	if _, err := binWidths(edges); err != nil {
		return nil, err
	}
	out := make([]float64, len(edges)-1)
	for i := range out {
		out[i] = (edges[i] + edges[i+1]) / 2
	}
	return out, nil
}

// Histograms counts the spikes of each trial into the given bins.
//
// Spike times are relative to the trial's event. Bins are half-open,
// [edges[i], edges[i+1]), except the last which also includes its right
// edge; spikes outside the edges are not counted. The counts are stored
// as float64 so that smoothed and unsmoothed histograms share a type.
func Histograms(trials [][]float64, edges []float64, opts BinOptions) ([][]float64, error) {
	if _, err := binWidths(edges); err != nil {
		return nil, err
	}

	var kernel []float64
	if opts.Smooth {
		sigma := opts.Sigma
		if sigma == 0 {
			sigma = DefaultSigma
		}
		k, err := gaussianKernel(sigma)
		if err != nil {
			return nil, err
		}
		kernel = k
	}

	out := make([][]float64, len(trials))
	for i, spikes := range trials {
		h := histogram(spikes, edges)
		if kernel != nil {
			h = smooth(h, kernel)
		}
		out[i] = h
	}
	return out, nil
}

func histogram(values, edges []float64) []float64 {
	bins := len(edges) - 1
	h := make([]float64, bins)
	first, last := edges[0], edges[bins]
	for _, v := range values {
		if math.IsNaN(v) || v < first || v > last {
			continue
		}
		pos, found := slices.BinarySearch(edges, v)
		if !found {
			pos--
		}
		if pos == bins {
			// Exactly on the last edge.
			pos--
		}
		h[pos]++
	}
	return h
}
