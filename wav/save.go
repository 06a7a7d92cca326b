package wav

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/edorfaus/ttl-events/log"
)

// LevelTrace renders a level sequence as samples of the given bit depth,
// with high and low at half the positive and negative range. 8-bit PCM
// is unsigned, so there the trace is centered on 128 instead of 0.
func LevelTrace(levels []uint8, bits int) []int {
	high := 1 << (bits - 2)
	center := 0
	if bits == 8 {
		center = 128
	}

	out := make([]int, len(levels))
	for i, v := range levels {
		if v != 0 {
			out[i] = center + high
		} else {
			out[i] = center - high
		}
	}
	return out
}

// WordSamples converts digital words to PCM sample values that
// LoadDigital will read back as the same words.
func WordSamples(words []uint16, bits int) []int {
	out := make([]int, len(words))
	for i, w := range words {
		if bits == 8 {
			out[i] = int(uint8(w))
		} else {
			out[i] = int(int16(w))
		}
	}
	return out
}

func SaveMono(fn string, samples []int, rate, bits int) (er error) {
	defer log.Time(1, "Saving WAVE to: %v ...", fn)(" done in")

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && er == nil {
			er = err
		}
	}()

	e := wav.NewEncoder(f, rate, bits, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},

		Data: samples,

		SourceBitDepth: bits,
	}
	if err := e.Write(buf); err != nil {
		return err
	}

	if err := e.Close(); err != nil {
		return err
	}

	return nil
}
