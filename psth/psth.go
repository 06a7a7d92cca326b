// Package psth computes peri-event time histograms: per-trial spike
// counts around an event, the mean firing rate across trials, and a
// bootstrap confidence interval for that rate.
package psth

// Options groups the settings of a full peri-event analysis.
type Options struct {
	Bin       BinOptions
	Rate      RateOptions
	Bootstrap BootstrapOptions

	// NoCI skips the bootstrap.
	NoCI bool
}

// Result is the outcome of Analyze.
type Result struct {
	Centers []float64
	Rate    []float64
	CI      CI
	Trials  int
}

// Analyze bins the trials once, and derives both the rate and its
// confidence interval from those same histograms.
func Analyze(trials [][]float64, edges []float64, opts Options) (Result, error) {
	centers, err := Centers(edges)
	if err != nil {
		return Result{}, err
	}
	hists, err := Histograms(trials, edges, opts.Bin)
	if err != nil {
		return Result{}, err
	}
	rate, err := Rate(hists, edges, opts.Rate)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Centers: centers,
		Rate:    rate,
		Trials:  len(trials),
	}
	if opts.NoCI {
		return res, nil
	}
	bo := opts.Bootstrap
	bo.Rate = opts.Rate
	res.CI, err = Bootstrap(hists, edges, bo)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Edges returns count+1 evenly spaced bin edges from start to stop.
func Edges(start, stop float64, count int) []float64 {
	if count < 1 {
		return nil
	}
	out := make([]float64, count+1)
	step := (stop - start) / float64(count)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[count] = stop
	return out
}
