package wav

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/edorfaus/ttl-events/digital"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/ttl"
)

type Meta struct {
	SampleRate  int
	BitDepth    int
	NumChannels int
}

func readFile(filename string) ([]byte, error) {
	defer log.Time(1, "Reading: %v ...", filename)(" done in")
	return os.ReadFile(filename)
}

// LoadDigital loads digital words that were captured as PCM samples,
// taking them from the given channel of the file.
//
// 8-bit PCM is unsigned and maps directly onto 8-bit words; 16-bit PCM
// is signed, and its bit pattern is reinterpreted as a 16-bit word.
func LoadDigital(filename string, channel int) (digital.Samples, Meta, error) {
	data, meta, err := LoadInterleaved(filename)
	if err != nil {
		return digital.Samples{}, meta, err
	}

	if meta.BitDepth != 8 && meta.BitDepth != 16 {
		return digital.Samples{}, meta, fmt.Errorf(
			"%w: %v-bit PCM", ttl.ErrUnsupportedSampleWidth, meta.BitDepth,
		)
	}
	if channel < 0 || channel >= meta.NumChannels {
		return digital.Samples{}, meta, fmt.Errorf(
			"no channel %v in %v (it has %v)", channel, filename, meta.NumChannels,
		)
	}

	defer log.Time(1, "Extracting channel %v...", channel)(" done in")

	nc := meta.NumChannels
	s := digital.Samples{
		Words: make([]uint16, len(data)/nc),
		Bits:  meta.BitDepth,
	}
	for i, j := 0, channel; i < len(s.Words); i, j = i+1, j+nc {
		if s.Bits == 8 {
			s.Words[i] = uint16(uint8(data[j]))
		} else {
			s.Words[i] = uint16(int16(data[j]))
		}
	}

	meta.NumChannels = 1
	return s, meta, nil
}

// LoadInterleaved loads the wave samples from the given file, without
// de-interleaving them if there's more than one channel.
func LoadInterleaved(filename string) ([]int, Meta, error) {
	fileData, err := readFile(filename)
	if err != nil {
		return nil, Meta{}, err
	}

	defer log.Time(1, "Decoding WAVE data...\n")("Decoding done in")

	d := wav.NewDecoder(bytes.NewReader(fileData))

	if err := d.FwdToPCM(); err != nil {
		return nil, Meta{}, err
	}

	if d.BitDepth < 8 || d.BitDepth > 64 || d.BitDepth%8 != 0 {
		return nil, Meta{}, fmt.Errorf("bad bit depth: %v", d.BitDepth)
	}
	expectedSamples := int(d.PCMLen() / int64(d.BitDepth/8))
	log.Ln(2, "Expected samples:", expectedSamples)

	// +1 just in case our calculation isn't quite right.
	buf := &audio.IntBuffer{
		Data: make([]int, expectedSamples+1),
	}
	n, err := d.PCMBuffer(buf)
	if err != nil {
		return nil, Meta{}, err
	}
	buf.Data = buf.Data[:n]
	log.Ln(2, "     Got samples:", n)

	if n > expectedSamples {
		log.Warn("unexpected sample, may have lost some")
	}
	if n < expectedSamples {
		log.Warn("got fewer samples than expected")
	}

	if err := d.Err(); err != nil {
		return nil, Meta{}, err
	}

	if buf.Format == nil || buf.Format.NumChannels < 1 {
		err := fmt.Errorf("missing or bad PCM format information")
		return nil, Meta{}, err
	}

	meta := Meta{
		SampleRate:  buf.Format.SampleRate,
		BitDepth:    buf.SourceBitDepth,
		NumChannels: buf.Format.NumChannels,
	}
	return buf.Data, meta, nil
}
