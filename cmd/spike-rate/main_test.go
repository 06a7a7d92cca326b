package main

import (
	"bufio"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edorfaus/ttl-events/psth"
	"github.com/edorfaus/ttl-events/spikes"
	"github.com/edorfaus/ttl-events/ttl"
)

func TestWriteResult(t *testing.T) {
	res := psth.Result{
		Centers: []float64{-0.5, 0.5},
		Rate:    []float64{2, math.NaN()},
		CI: psth.CI{
			Lower: []float64{1, math.NaN()},
			Upper: []float64{3.25, math.NaN()},
		},
	}

	var b strings.Builder
	out := bufio.NewWriter(&b)
	writeResult(out, res, true)
	out.Flush()

	assert.Equal(t,
		"center\trate\tlower\tupper\n"+
			"-0.500000\t2.0000\t1.0000\t3.2500\n"+
			"0.500000\tnan\tnan\tnan\n",
		b.String(),
	)

	b.Reset()
	out.Reset(&b)
	writeResult(out, res, false)
	out.Flush()
	assert.Equal(t, "center\trate\n-0.500000\t2.0000\n0.500000\tnan\n", b.String())
}

func TestAnalyzeUnitEndAtOffset(t *testing.T) {
	saved := args
	t.Cleanup(func() { args = saved })
	args.EndAtOffset = true
	args.Iterations = 300
	args.Seed = 3

	// Ten events at 1 kHz: the first two last 0.9 s, the rest 0.1 s.
	// Every event has a spike 0.5 s before and 0.5 s after its onset.
	var ev ttl.Events
	var u spikes.Unit
	for i := 0; i < 10; i++ {
		onset := 2000 + 3000*i
		dur := 100
		if i < 2 {
			dur = 900
		}
		ev.Onsets = append(ev.Onsets, onset)
		ev.Offsets = append(ev.Offsets, onset+dur)
		u.Ticks = append(u.Ticks, int64(onset-500), int64(onset+500))
	}

	res, trials, err := analyzeUnit(u, ev, 1000)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Trials)
	assert.Len(t, trials[0], 2)
	require.Len(t, trials[5], 1)
	assert.InDelta(t, -0.5, trials[5][0], 1e-9)

	// Bin 7 holds +0.5 s, which only the two long trials reach.
	assert.InDelta(t, 5.0, res.Rate[2], 1e-9)
	assert.InDelta(t, 5.0, res.Rate[7], 1e-9)
	assert.InDelta(t, 5.0, res.CI.Lower[7], 1e-9)
	assert.InDelta(t, 5.0, res.CI.Upper[7], 1e-9)
	for j, r := range res.Rate {
		require.False(t, math.IsNaN(r), "bin %v", j)
		assert.LessOrEqual(t, res.CI.Lower[j], r+1e-9, "bin %v", j)
		assert.LessOrEqual(t, r, res.CI.Upper[j]+1e-9, "bin %v", j)
	}
}
