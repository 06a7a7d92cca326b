package psth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edorfaus/ttl-events/psth"
)

var (
	twoTrials = [][]float64{{1, 2}, {3, 4}}
	halfEdges = []float64{0, 0.5, 1}
)

func TestRate(t *testing.T) {
	rate, err := psth.Rate(twoTrials, halfEdges, psth.RateOptions{})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 6}, rate, 1e-12)

	prob, err := psth.Rate(twoTrials, halfEdges, psth.RateOptions{Probability: true})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, prob, 1e-12)
}

func TestRateDoesNotModifyInput(t *testing.T) {
	_, err := psth.Rate(twoTrials, halfEdges, psth.RateOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, twoTrials)
}

func TestRateWithTrialEnds(t *testing.T) {
	// The first trial ends before the second bin starts.
	rate, err := psth.Rate(twoTrials, halfEdges, psth.RateOptions{
		Ends: []float64{0.4, 1},
	})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 12}, rate, 1e-12)

	// A trial ending exactly at a bin's left edge still counts there.
	rate, err = psth.Rate(twoTrials, halfEdges, psth.RateOptions{
		Ends:        []float64{0.5, 0.5},
		Probability: true,
	})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, rate, 1e-12)
}

func TestRateBinsNoTrialReaches(t *testing.T) {
	rate, err := psth.Rate(twoTrials, halfEdges, psth.RateOptions{
		Ends: []float64{0.1, 0.2},
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rate[0], 1e-12)
	assert.True(t, math.IsNaN(rate[1]))
}

func TestRateErrors(t *testing.T) {
	_, err := psth.Rate(twoTrials, []float64{0}, psth.RateOptions{})
	assert.ErrorIs(t, err, psth.ErrEmptyBinSet)

	_, err = psth.Rate(nil, halfEdges, psth.RateOptions{})
	assert.ErrorIs(t, err, psth.ErrNoTrials)

	_, err = psth.Rate([][]float64{{1}}, halfEdges, psth.RateOptions{})
	assert.ErrorIs(t, err, psth.ErrBinMismatch)

	_, err = psth.Rate(twoTrials, halfEdges, psth.RateOptions{Ends: []float64{1}})
	assert.ErrorIs(t, err, psth.ErrMismatchedTrialCount)
}
