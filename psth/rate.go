package psth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RateOptions controls how trial histograms are combined into a rate.
type RateOptions struct {
	// Ends, if set, holds each trial's end time relative to its event.
	// A trial only counts towards the bins that start at or before its
	// end, so trials cut short do not pull the later bins down.
	Ends []float64

	// Probability gives the mean count per bin instead of a rate.
	Probability bool
}

// Rate returns the mean firing rate in each bin, in spikes per unit of
// the bin edges (per second for edges in seconds).
//
// Bins that no trial reaches (only possible with Ends) are NaN.
func Rate(hists [][]float64, edges []float64, opts RateOptions) ([]float64, error) {
	widths, err := binWidths(edges)
	if err != nil {
		return nil, err
	}
	if err := checkHistograms(hists, len(widths)); err != nil {
		return nil, err
	}
	reach, err := trialReach(opts.Ends, edges, len(hists))
	if err != nil {
		return nil, err
	}

	all := make([]int, len(hists))
	for i := range all {
		all[i] = i
	}
	trials := make([]float64, len(widths))
	countTrials(trials, reach, all)

	sum := sumHistograms(hists, len(widths))
	scaleToRate(sum, trials, widths, opts.Probability)
	return sum, nil
}

// trialReach returns, for each trial, the number of leading bins it
// counts towards: those whose left edge is at or before its end.
// Without ends every trial reaches every bin.
func trialReach(ends, edges []float64, trials int) ([]int, error) {
	bins := len(edges) - 1
	reach := make([]int, trials)
	if ends == nil {
		for i := range reach {
			reach[i] = bins
		}
		return reach, nil
	}

	if len(ends) != trials {
		return nil, fmt.Errorf(
			"%w: %v trial ends for %v trials",
			ErrMismatchedTrialCount, len(ends), trials,
		)
	}
	for i, end := range ends {
		r := 0
		for r < bins && edges[r] <= end {
			r++
		}
		reach[i] = r
	}
	return reach, nil
}

// countTrials sets out[j] to the number of the drawn trials that reach
// bin j. A trial may be drawn more than once.
func countTrials(out []float64, reach, drawn []int) {
	clear(out)
	for _, i := range drawn {
		if r := reach[i]; r > 0 {
			out[r-1]++
		}
	}
	for j := len(out) - 2; j >= 0; j-- {
		out[j] += out[j+1]
	}
}

func sumHistograms(hists [][]float64, bins int) []float64 {
	sum := make([]float64, bins)
	for _, h := range hists {
		vecmath.AddBlockInPlace(sum, h)
	}
	return sum
}

// scaleToRate turns summed counts into a mean rate, in place, dividing
// each bin by the number of trials that reach it. Bins no trial reaches
// become NaN. Both Rate and Bootstrap use this, so identical resamples
// give identical results.
func scaleToRate(sum, trials, widths []float64, probability bool) {
	for j := range sum {
		if trials[j] == 0 {
			sum[j] = math.NaN()
			continue
		}
		sum[j] /= trials[j]
		if !probability {
			sum[j] /= widths[j]
		}
	}
}
