package ttl

import (
	"fmt"
	"strings"
)

// Polarity selects which transition marks the start of an event.
type Polarity int

const (
	// PolarityAuto lets a PolarityResolver infer it from the signal.
	PolarityAuto Polarity = iota
	// PolarityLowToHigh means events are high pulses on a low signal.
	PolarityLowToHigh
	// PolarityHighToLow means events are low pulses on a high signal.
	PolarityHighToLow
)

func (p Polarity) String() string {
	switch p {
	case PolarityAuto:
		return "auto"
	case PolarityLowToHigh:
		return "low-to-high"
	case PolarityHighToLow:
		return "high-to-low"
	default:
		return fmt.Sprintf("[bad Polarity=%d]", int(p))
	}
}

// ParsePolarity parses the String form of a polarity, also accepting
// "rising" and "falling" for the fixed polarities.
func ParsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PolarityAuto, nil
	case "low-to-high", "rising":
		return PolarityLowToHigh, nil
	case "high-to-low", "falling":
		return PolarityHighToLow, nil
	}
	return PolarityAuto, fmt.Errorf("unknown polarity: %q", s)
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Polarity) UnmarshalText(b []byte) error {
	v, err := ParsePolarity(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// OnsetEdge returns the edge type that starts an event.
func OnsetEdge(lowToHigh bool) EdgeType {
	if lowToHigh {
		return EdgeToHigh
	}
	return EdgeToLow
}

// PolarityResolver decides whether events in a level sequence start
// with a low-to-high transition.
type PolarityResolver interface {
	Resolve(levels []uint8) (lowToHigh bool, diags []Diagnostic)
}

// MajorityRest assumes the signal spends most of its time at rest, so
// the more common level is the rest state and events are excursions to
// the other level. Signals that are active more than half the time are
// misclassified; use Fixed (or an explicit Polarity) for those.
type MajorityRest struct{}

func (MajorityRest) Resolve(levels []uint8) (bool, []Diagnostic) {
	high := 0
	for _, v := range levels {
		if v != 0 {
			high++
		}
	}
	low := len(levels) - high

	lowToHigh := high <= low
	d := info(
		"polarity", "resolved from level counts",
		"high", high, "low", low, "lowToHigh", lowToHigh,
	)
	return lowToHigh, []Diagnostic{d}
}

// Fixed is a PolarityResolver that always gives the same answer.
type Fixed bool

func (f Fixed) Resolve([]uint8) (bool, []Diagnostic) {
	return bool(f), nil
}
