// Package intan reads the files an Intan RHD/RHS recording system
// writes: digitalin.dat, holding the 16 digital inputs packed into one
// little-endian word per tick, and amplifier.dat, holding int16
// amplifier samples.
package intan

import (
	"fmt"

	"github.com/edorfaus/ttl-events/digital"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/ttl"
)

// DefaultCameraChannel is the digital input the camera frame TTL is
// usually wired to.
const DefaultCameraChannel = 1

// MicrovoltsPerBit is the amplifier sample resolution.
const MicrovoltsPerBit = 0.195

// CameraTTL extracts the events of one channel of a digitalin.dat file.
func CameraTTL(path string, channel int, pol ttl.Polarity) (ttl.Events, error) {
	s, err := digital.ReadFile(path, 0, 2)
	if err != nil {
		return ttl.Events{}, err
	}

	x := ttl.Extractor{
		Channel:  channel,
		Polarity: pol,
		Report:   digital.Report,
	}
	ev, err := s.Events(&x)
	if err != nil {
		return ev, fmt.Errorf("%v: %w", path, err)
	}
	log.F(1, "Found %v events on channel %v\n", ev.Len(), channel)
	return ev, nil
}

// LoadVoltage loads an amplifier.dat file as microvolts, one row per
// channel. The samples are split channel-major: row c holds the c-th
// contiguous block of len/channelCount samples.
func LoadVoltage(path string, channelCount int) ([][]float64, error) {
	if channelCount <= 0 {
		return nil, fmt.Errorf("bad channel count: %v", channelCount)
	}

	s, err := digital.ReadFile(path, 0, 2)
	if err != nil {
		return nil, err
	}
	if s.Len()%channelCount != 0 {
		return nil, fmt.Errorf(
			"%v: %v samples do not split into %v channels",
			path, s.Len(), channelCount,
		)
	}

	defer log.Time(1, "Scaling %v channels...", channelCount)(" done in")

	n := s.Len() / channelCount
	out := make([][]float64, channelCount)
	for c := range out {
		row := make([]float64, n)
		for i, w := range s.Words[c*n : (c+1)*n] {
			row[i] = float64(int16(w)) * MicrovoltsPerBit
		}
		out[c] = row
	}
	return out, nil
}
