package ttl

import (
	"fmt"
)

// ChannelLevels extracts the logic level of one channel from a sequence
// of digital words, where bit c of each word holds channel c.
//
// The bits argument is the width of the words as recorded (8 or 16),
// which limits the valid channel indexes even though the words are
// always passed as uint16.
func ChannelLevels(words []uint16, bits, channel int) ([]uint8, error) {
	if bits != 8 && bits != 16 {
		return nil, fmt.Errorf("%w: %v bits", ErrUnsupportedSampleWidth, bits)
	}
	if channel < 0 || channel >= bits {
		return nil, fmt.Errorf(
			"%w: %v (must be 0-%v)", ErrInvalidChannelIndex, channel, bits-1,
		)
	}

	mask := uint16(1) << channel
	out := make([]uint8, len(words))
	for i, w := range words {
		if w&mask != 0 {
			out[i] = 1
		}
	}
	return out, nil
}
