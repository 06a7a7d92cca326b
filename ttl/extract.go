package ttl

import (
	"fmt"
)

// Extractor turns the digital words of a recording into the matched
// events of one channel.
//
// The zero value extracts channel 0 of 16-bit words, inferring the
// polarity with MajorityRest.
type Extractor struct {
	// Channel is the zero-based bit index of the channel.
	Channel int

	// Bits is the recorded word width, 8 or 16; 0 means 16.
	Bits int

	// Polarity overrides polarity inference unless it is PolarityAuto.
	Polarity Polarity

	// Resolver infers the polarity when Polarity is PolarityAuto.
	// If nil, MajorityRest is used.
	Resolver PolarityResolver

	// Report, if set, is called with each diagnostic as it is made.
	Report func(Diagnostic)
}

// Run extracts the events of the configured channel.
func (x *Extractor) Run(words []uint16) (Events, error) {
	bits := x.Bits
	if bits == 0 {
		bits = 16
	}
	levels, err := ChannelLevels(words, bits, x.Channel)
	if err != nil {
		return Events{}, err
	}
	return x.RunLevels(levels)
}

// RunLevels extracts events from an already separated level sequence.
func (x *Extractor) RunLevels(levels []uint8) (Events, error) {
	ds := diagnostics{report: x.Report}

	edges, err := DetectEdges(levels)
	if err != nil {
		return Events{}, err
	}

	lowToHigh, err := x.resolve(levels, &ds)
	if err != nil {
		return Events{}, err
	}

	onType := OnsetEdge(lowToHigh)
	offType := OnsetEdge(!lowToHigh)
	ev, err := pairEvents(edges.Of(onType), edges.Of(offType), &ds)
	ev.LowToHigh = lowToHigh
	ev.Warnings = ds.list
	if err != nil {
		return ev, fmt.Errorf("channel %v: %w", x.Channel, err)
	}
	return ev, nil
}

func (x *Extractor) resolve(levels []uint8, ds *diagnostics) (bool, error) {
	switch x.Polarity {
	case PolarityLowToHigh:
		return true, nil
	case PolarityHighToLow:
		return false, nil
	case PolarityAuto:
	default:
		return false, fmt.Errorf("unknown polarity: %v", x.Polarity)
	}

	r := x.Resolver
	if r == nil {
		r = MajorityRest{}
	}
	lowToHigh, d := r.Resolve(levels)
	ds.add(d...)
	return lowToHigh, nil
}

// Timestamps is a shorthand for running an Extractor on 16-bit words
// with the given channel and polarity.
func Timestamps(words []uint16, channel int, pol Polarity) (Events, error) {
	x := Extractor{Channel: channel, Polarity: pol}
	return x.Run(words)
}
