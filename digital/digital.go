// Package digital decodes the packed digital-input words that
// acquisition systems record alongside neural data, where bit c of each
// word holds the level of TTL channel c at one sample tick.
package digital

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/ttl"
)

// Samples holds decoded digital words. Bits is the recorded word width
// (8 or 16); 8-bit words are widened to uint16 on decode.
type Samples struct {
	Words []uint16
	Bits  int
}

// Len returns the number of sample ticks.
func (s Samples) Len() int {
	return len(s.Words)
}

// Levels extracts the level sequence of one channel.
func (s Samples) Levels(channel int) ([]uint8, error) {
	return ttl.ChannelLevels(s.Words, s.Bits, channel)
}

// Events extracts the matched events of one channel.
func (s Samples) Events(x *ttl.Extractor) (ttl.Events, error) {
	xc := *x
	xc.Bits = s.Bits
	return xc.Run(s.Words)
}

// Decode decodes little-endian words of the given width in bytes.
// A trailing partial word is dropped.
func Decode(data []byte, width int) (Samples, error) {
	if width != 1 && width != 2 {
		return Samples{}, fmt.Errorf(
			"%w: %v bytes per sample (only 1 or 2 is supported)",
			ttl.ErrUnsupportedSampleWidth, width,
		)
	}

	n := len(data) / width
	if extra := len(data) - n*width; extra != 0 {
		log.Warn("dropping", extra, "trailing bytes of a partial sample")
	}

	s := Samples{
		Words: make([]uint16, n),
		Bits:  width * 8,
	}
	if width == 1 {
		for i := range s.Words {
			s.Words[i] = uint16(data[i])
		}
		return s, nil
	}
	for i, j := 0, 0; i < n; i, j = i+1, j+2 {
		s.Words[i] = binary.LittleEndian.Uint16(data[j : j+2])
	}
	return s, nil
}

func readFile(filename string) ([]byte, error) {
	defer log.Time(1, "Reading: %v ...", filename)(" done in")
	return os.ReadFile(filename)
}

// ReadFile loads the digital words of a raw binary file, skipping the
// given number of header bytes first.
func ReadFile(filename string, headerOffset, width int) (Samples, error) {
	if width != 1 && width != 2 {
		// Check before reading a possibly large file.
		return Decode(nil, width)
	}
	if headerOffset < 0 {
		return Samples{}, fmt.Errorf("negative header offset: %v", headerOffset)
	}

	data, err := readFile(filename)
	if err != nil {
		return Samples{}, err
	}
	if headerOffset > len(data) {
		return Samples{}, fmt.Errorf(
			"header offset %v is past the end of %v (%v bytes)",
			headerOffset, filename, len(data),
		)
	}

	s, err := Decode(data[headerOffset:], width)
	if err != nil {
		return Samples{}, err
	}
	log.Ln(1, "Number of samples:", s.Len())
	return s, nil
}

// Report logs a pipeline diagnostic: warnings always, and everything
// else at level 2. It fits ttl.Extractor.Report.
func Report(d ttl.Diagnostic) {
	if d.Severity == ttl.Warning {
		log.Warn(d.String())
		return
	}
	log.KV(2, d.Stage+": "+d.Message, d.Fields...)
}
