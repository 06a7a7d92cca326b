package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edorfaus/ttl-events/ttl"
)

func TestEventLevelsDropsPartialEvents(t *testing.T) {
	// Starts mid-event, then one whole pulse, then ends mid-event.
	levels := []uint8{1, 1, 0, 0, 1, 1, 1, 0, 0, 1}

	var x ttl.Extractor
	x.Polarity = ttl.PolarityLowToHigh
	ev, err := x.RunLevels(levels)
	require.NoError(t, err)

	assert.Equal(t,
		[]uint8{0, 0, 0, 0, 1, 1, 1, 0, 0, 0},
		eventLevels(len(levels), ev),
	)
}

func TestEventLevelsRestHigh(t *testing.T) {
	ev := ttl.Events{Onsets: []int{1}, Offsets: []int{3}}

	assert.Equal(t, []uint8{1, 0, 0, 1}, eventLevels(4, ev))
}
