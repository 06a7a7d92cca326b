package intan_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edorfaus/ttl-events/intan"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/ttl"
)

func init() {
	log.Level = -1
}

func writeWords(t *testing.T, words []uint16) string {
	t.Helper()
	data := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(data[2*i:], w)
	}
	fn := filepath.Join(t.TempDir(), "digitalin.dat")
	require.NoError(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestCameraTTL(t *testing.T) {
	// Camera frames on input 1, flipping every 2 ticks and starting
	// high, so the line rests high. Input 0 holds unrelated noise.
	words := make([]uint16, 102)
	for i := range words {
		if (i/2)%2 == 0 {
			words[i] |= 1 << intan.DefaultCameraChannel
		}
		words[i] |= uint16(i % 3 & 1)
	}
	fn := writeWords(t, words)

	ev, err := intan.CameraTTL(fn, intan.DefaultCameraChannel, ttl.PolarityAuto)
	require.NoError(t, err)

	assert.False(t, ev.LowToHigh)
	require.Equal(t, 25, ev.Len())
	assert.Equal(t, 2, ev.Onsets[0])
	assert.Equal(t, 4, ev.Offsets[0])
	assert.Equal(t, 98, ev.Onsets[24])
	assert.Equal(t, 100, ev.Offsets[24])
}

func TestCameraTTLErrors(t *testing.T) {
	_, err := intan.CameraTTL(filepath.Join(t.TempDir(), "missing.dat"), 1, ttl.PolarityAuto)
	assert.Error(t, err)

	fn := writeWords(t, make([]uint16, 20))
	_, err = intan.CameraTTL(fn, 1, ttl.PolarityAuto)
	assert.ErrorIs(t, err, ttl.ErrEmptyEventSet)

	_, err = intan.CameraTTL(fn, 16, ttl.PolarityAuto)
	assert.ErrorIs(t, err, ttl.ErrInvalidChannelIndex)
}

func TestLoadVoltage(t *testing.T) {
	raw := []int16{1, -1, 2, -2, 10, 0}
	words := make([]uint16, len(raw))
	for i, v := range raw {
		words[i] = uint16(v)
	}
	fn := writeWords(t, words)

	v, err := intan.LoadVoltage(fn, 2)
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.InDeltaSlice(t, []float64{0.195, -0.195, 0.39}, v[0], 1e-12)
	assert.InDeltaSlice(t, []float64{-0.39, 1.95, 0}, v[1], 1e-12)

	_, err = intan.LoadVoltage(fn, 4)
	assert.Error(t, err)

	_, err = intan.LoadVoltage(fn, 0)
	assert.Error(t, err)
}
