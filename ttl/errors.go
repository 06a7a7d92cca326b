package ttl

import (
	"errors"
)

var (
	// ErrInvalidChannelIndex is returned when a channel index cannot be
	// addressed by the bit width of the digital words.
	ErrInvalidChannelIndex = errors.New("invalid channel index")

	// ErrUnsupportedSampleWidth is returned for digital words that are
	// not 8 or 16 bits (1 or 2 bytes) wide.
	ErrUnsupportedSampleWidth = errors.New("unsupported sample width")

	// ErrInsufficientSamples is returned when a level sequence is too
	// short to find any transitions in.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrInvalidLevel is returned when a level sequence contains a value
	// other than 0 or 1.
	ErrInvalidLevel = errors.New("invalid level value")

	// ErrEmptyEventSet is returned when there are no edges to pair, or
	// no reference events to align against.
	ErrEmptyEventSet = errors.New("empty event set")
)
