package ttl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edorfaus/ttl-events/ttl"
)

func TestNearestIndexCameraFrames(t *testing.T) {
	camera, err := ttl.Timestamps(digitalWords(102, alternating(102, 2)), 0, ttl.PolarityAuto)
	require.NoError(t, err)
	laser, err := ttl.Timestamps(twoPulses(), 0, ttl.PolarityAuto)
	require.NoError(t, err)

	onFrames, err := ttl.NearestIndex(camera.Onsets, laser.Onsets)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 7}, onFrames)

	offFrames, err := ttl.NearestIndex(camera.Onsets, laser.Offsets)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, offFrames)

	on, off, err := ttl.AlignEvents(camera, laser)
	require.NoError(t, err)
	assert.Equal(t, onFrames, on)
	assert.Equal(t, offFrames, off)
}

func TestNearestIndex(t *testing.T) {
	ref := []int{10, 20, 30}
	got, err := ttl.NearestIndex(ref, []int{-5, 10, 14, 15, 16, 30, 99, 14})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 2, 0}, got)
}

func TestNearestIndexEmpty(t *testing.T) {
	_, err := ttl.NearestIndex(nil, []int{1})
	assert.ErrorIs(t, err, ttl.ErrEmptyEventSet)

	got, err := ttl.NearestIndex([]int{1}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
