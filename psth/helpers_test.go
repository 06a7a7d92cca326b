package psth_test

import (
	"math"
	"math/rand"
)

// randomTrials makes trials with a fixed seed, each holding spikes
// spread uniformly over [lo, hi) with a per-trial count around mean.
func randomTrials(seed int64, trials, mean int, lo, hi float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, trials)
	for i := range out {
		n := mean/2 + rng.Intn(mean+1)
		spikes := make([]float64, n)
		for k := range spikes {
			spikes[k] = lo + rng.Float64()*(hi-lo)
		}
		out[i] = spikes
	}
	return out
}

func stddev(v []float64) float64 {
	mean := 0.0
	for _, x := range v {
		mean += x
	}
	mean /= float64(len(v))
	ss := 0.0
	for _, x := range v {
		ss += (x - mean) * (x - mean)
	}
	return math.Sqrt(ss / float64(len(v)-1))
}
