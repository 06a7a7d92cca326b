package psth

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	DefaultIterations = 10000
	DefaultPercentile = 95.0

	// chunkSize is the number of iterations that share one RNG stream.
	chunkSize = 256
)

// CI is a per-bin confidence interval.
type CI struct {
	Lower []float64
	Upper []float64
}

// Width returns the width of the interval in each bin.
func (c CI) Width() []float64 {
	out := make([]float64, len(c.Lower))
	for i := range out {
		out[i] = c.Upper[i] - c.Lower[i]
	}
	return out
}

// BootstrapOptions controls the bootstrap resampling.
type BootstrapOptions struct {
	// Iterations is the number of resamples; 0 means DefaultIterations.
	Iterations int

	// Percentile is the confidence level in percent; 0 means
	// DefaultPercentile.
	Percentile float64

	// Seed makes the resampling reproducible. The same seed gives the
	// same result regardless of the number of workers.
	Seed uint64

	// Workers is the number of goroutines; 0 means GOMAXPROCS.
	Workers int

	// Rate sets how each resample is turned into a rate, as for Rate.
	// Trial ends are resampled together with their trials. Analyze sets
	// this from Options.Rate.
	Rate RateOptions
}

func (o BootstrapOptions) withDefaults() (BootstrapOptions, error) {
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.Percentile == 0 {
		o.Percentile = DefaultPercentile
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	switch {
	case o.Iterations < 1:
		return o, fmt.Errorf("%w: iterations must be > 0: %v", ErrBadOption, o.Iterations)
	case !(o.Percentile > 0 && o.Percentile <= 100):
		return o, fmt.Errorf("%w: percentile must be in (0,100]: %v", ErrBadOption, o.Percentile)
	case o.Workers < 1:
		return o, fmt.Errorf("%w: workers must be > 0: %v", ErrBadOption, o.Workers)
	}
	return o, nil
}

// Bootstrap estimates a confidence interval for the rate in each bin by
// resampling whole trials with replacement.
//
// Each iteration draws len(hists) trials, and computes their mean rate
// the same way Rate does. The bounds are the (100-p)/2 and
// 100-(100-p)/2 percentiles of those rates per bin, skipping resamples
// where no drawn trial reaches the bin; a bin with no such resample at
// all is NaN.
func Bootstrap(hists [][]float64, edges []float64, opts BootstrapOptions) (CI, error) {
	widths, err := binWidths(edges)
	if err != nil {
		return CI{}, err
	}
	bins := len(widths)
	if err := checkHistograms(hists, bins); err != nil {
		return CI{}, err
	}
	opts, err = opts.withDefaults()
	if err != nil {
		return CI{}, err
	}
	reach, err := trialReach(opts.Rate.Ends, edges, len(hists))
	if err != nil {
		return CI{}, err
	}

	iters := opts.Iterations
	samples := make([]float64, iters*bins)
	chunks := (iters + chunkSize - 1) / chunkSize

	runChunk := func(c int) {
		rng := rand.New(rand.NewSource(chunkSeed(opts.Seed, c)))
		n := len(hists)
		drawn := make([]int, n)
		trials := make([]float64, bins)
		end := min((c+1)*chunkSize, iters)
		for i := c * chunkSize; i < end; i++ {
			row := samples[i*bins : (i+1)*bins]
			for k := range drawn {
				drawn[k] = rng.Intn(n)
				vecmath.AddBlockInPlace(row, hists[drawn[k]])
			}
			countTrials(trials, reach, drawn)
			scaleToRate(row, trials, widths, opts.Rate.Probability)
		}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(opts.Workers, chunks); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				runChunk(c)
			}
		}()
	}
	for c := 0; c < chunks; c++ {
		jobs <- c
	}
	close(jobs)
	wg.Wait()

	tail := (100 - opts.Percentile) / 2
	ci := CI{
		Lower: make([]float64, bins),
		Upper: make([]float64, bins),
	}
	col := make([]float64, 0, iters)
	for j := 0; j < bins; j++ {
		col = col[:0]
		for i := 0; i < iters; i++ {
			if v := samples[i*bins+j]; !math.IsNaN(v) {
				col = append(col, v)
			}
		}
		if len(col) == 0 {
			ci.Lower[j], ci.Upper[j] = math.NaN(), math.NaN()
			continue
		}
		slices.Sort(col)
		ci.Lower[j] = percentile(col, tail)
		ci.Upper[j] = percentile(col, 100-tail)
	}
	return ci, nil
}

// BootstrapSpikes bins the trials' spike times and then bootstraps them.
func BootstrapSpikes(trials [][]float64, edges []float64, opts BootstrapOptions) (CI, error) {
	hists, err := Histograms(trials, edges, BinOptions{})
	if err != nil {
		return CI{}, err
	}
	return Bootstrap(hists, edges, opts)
}

// chunkSeed derives a distinct seed for each chunk of iterations.
func chunkSeed(seed uint64, chunk int) uint64 {
	return seed + uint64(chunk+1)*0x9E3779B97F4A7C15
}

// percentile returns the p-th percentile of sorted values, using linear
// interpolation between the closest ranks.
func percentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
