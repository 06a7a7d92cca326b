package ttl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edorfaus/ttl-events/ttl"
)

func severities(ds []ttl.Diagnostic) (infos, warnings int) {
	for _, d := range ds {
		if d.Severity == ttl.Warning {
			warnings++
		} else {
			infos++
		}
	}
	return infos, warnings
}

func TestPairEventsClean(t *testing.T) {
	ev, err := ttl.PairEvents([]int{10, 30}, []int{20, 40})
	require.NoError(t, err)

	assert.Equal(t, []int{10, 30}, ev.Onsets)
	assert.Equal(t, []int{20, 40}, ev.Offsets)
	assert.Equal(t, 2, ev.Len())
	assert.Equal(t, []ttl.Event{{10, 20}, {30, 40}}, ev.Pairs())

	infos, warnings := severities(ev.Warnings)
	assert.Equal(t, 1, infos)
	assert.Zero(t, warnings)
	assert.Contains(t, ev.Warnings[0].Fields, 10.0)
}

func TestPairEventsStartedMidEvent(t *testing.T) {
	onsets, offsets := []int{4, 12}, []int{2, 8, 16}

	ev, err := ttl.PairEvents(onsets, offsets)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 12}, ev.Onsets)
	assert.Equal(t, []int{8, 16}, ev.Offsets)
	_, warnings := severities(ev.Warnings)
	assert.Equal(t, 2, warnings)

	// The inputs are left alone.
	assert.Equal(t, []int{2, 8, 16}, offsets)
}

func TestPairEventsEndedMidEvent(t *testing.T) {
	ev, err := ttl.PairEvents([]int{2, 8}, []int{5})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, ev.Onsets)
	assert.Equal(t, []int{5}, ev.Offsets)
}

func TestPairEventsBothEndsTruncated(t *testing.T) {
	ev, err := ttl.PairEvents([]int{10, 30, 50}, []int{5, 20, 40})
	require.NoError(t, err)

	assert.Equal(t, []int{10, 30}, ev.Onsets)
	assert.Equal(t, []int{20, 40}, ev.Offsets)
}

func TestPairEventsUnmatchedRemain(t *testing.T) {
	ev, err := ttl.PairEvents([]int{1, 2}, []int{3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, ev.Onsets)
	assert.Equal(t, []int{3, 4}, ev.Offsets)
}

func TestPairEventsNoCompletePair(t *testing.T) {
	ev, err := ttl.PairEvents([]int{5}, []int{3})
	require.NoError(t, err)

	assert.Zero(t, ev.Len())
	assert.Empty(t, ev.Offsets)
}

func TestPairEventsEmpty(t *testing.T) {
	_, err := ttl.PairEvents(nil, []int{1})
	assert.ErrorIs(t, err, ttl.ErrEmptyEventSet)

	_, err = ttl.PairEvents([]int{1}, []int{})
	assert.ErrorIs(t, err, ttl.ErrEmptyEventSet)
}

func TestPairEventsPeriodicRoundTrip(t *testing.T) {
	for _, period := range []int{2, 3, 7, 10} {
		words := digitalWords(200, nil)
		for i := range words {
			// High for the first half of each period, starting low.
			if (i/period)%2 == 1 {
				words[i] = 1
			}
		}

		e, err := ttl.DetectEdges(levelsOf(words))
		require.NoError(t, err)
		ev, err := ttl.PairEvents(e.Rising, e.Falling)
		require.NoError(t, err)

		require.Equal(t, len(ev.Onsets), len(ev.Offsets))
		require.NotZero(t, ev.Len(), "period %v", period)
		for i := range ev.Onsets {
			assert.Less(t, ev.Onsets[i], ev.Offsets[i], "period %v", period)
		}
	}
}

func TestEventsSeconds(t *testing.T) {
	ev := ttl.Events{Onsets: []int{30000}, Offsets: []int{45000}}
	on, off := ev.Seconds(30000)
	assert.Equal(t, []float64{1}, on)
	assert.Equal(t, []float64{1.5}, off)
	assert.Equal(t, 15000, ev.Pairs()[0].Duration())
}
