// Package cmdutil holds the input and output handling shared by the
// command-line tools.
package cmdutil

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/edorfaus/ttl-events/digital"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/wav"
)

// Source describes how to read digital words from an input file. It is
// meant to be embedded in a go-arg args struct.
type Source struct {
	Width      int `help:"bytes per word of a raw digital file (1 or 2)"`
	Offset     int `help:"header bytes to skip in a raw digital file"`
	WavChannel int `help:"channel of a WAVE input that holds the digital words"`
}

// DefaultSource reads raw files as 16-bit words with no header.
var DefaultSource = Source{Width: 2}

// Load reads the digital words of the given file. Files ending in .wav
// are read as WAVE, anything else as raw binary. The rate is taken from
// the file if it has one, and is 0 otherwise.
func (s Source) Load(filename string) (digital.Samples, int, error) {
	if strings.EqualFold(filepath.Ext(filename), ".wav") {
		samples, meta, err := wav.LoadDigital(filename, s.WavChannel)
		if err != nil {
			return digital.Samples{}, 0, err
		}
		type d = time.Duration
		log.F(
			1, "Input: %v %v-bit words at %v Hz = %v\n",
			samples.Len(), samples.Bits, meta.SampleRate,
			d(samples.Len())*time.Second/d(meta.SampleRate),
		)
		return samples, meta.SampleRate, nil
	}

	samples, err := digital.ReadFile(filename, s.Offset, s.Width)
	return samples, 0, err
}

// Rate returns the file rate if there is one, or else the given rate.
func Rate(fileRate int, rate float64) float64 {
	if fileRate > 0 {
		return float64(fileRate)
	}
	return rate
}

// OpenOutput opens a buffered text output, with "-" meaning stdout. The
// returned func flushes the output and closes the file.
func OpenOutput(name string) (*bufio.Writer, func() error, error) {
	if name == "-" {
		out := bufio.NewWriter(os.Stdout)
		return out, out.Flush, nil
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	out := bufio.NewWriter(f)
	return out, func() error {
		err := out.Flush()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}, nil
}
