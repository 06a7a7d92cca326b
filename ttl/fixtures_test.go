package ttl_test

// transition is a tick at which a generated signal changes level.
type transition struct {
	tick int
	high bool
}

// digitalWords generates 16-bit words where bit 0 follows the given
// transitions; each transition holds from its tick to the end, unless
// a later transition overrides it.
func digitalWords(length int, transitions []transition) []uint16 {
	out := make([]uint16, length)
	for _, tr := range transitions {
		v := uint16(0)
		if tr.high {
			v = 1
		}
		for i := tr.tick; i < length; i++ {
			out[i] = v
		}
	}
	return out
}

// alternating returns transitions every step ticks, starting high at 0.
func alternating(length, step int) []transition {
	var out []transition
	high := true
	for i := 0; i < length; i += step {
		out = append(out, transition{i, high})
		high = !high
	}
	return out
}

// twoPulses is a 100-tick signal with pulses at [10,20) and [30,40).
func twoPulses() []uint16 {
	return digitalWords(100, []transition{
		{10, true}, {20, false}, {30, true}, {40, false},
	})
}

func levelsOf(words []uint16) []uint8 {
	out := make([]uint8, len(words))
	for i, w := range words {
		out[i] = uint8(w & 1)
	}
	return out
}
