package ttl

import (
	"fmt"
)

type EdgeType int

const (
	EdgeToHigh EdgeType = iota
	EdgeToLow
)

func (t EdgeType) String() string {
	switch t {
	case EdgeToHigh:
		return "H"
	case EdgeToLow:
		return "L"
	default:
		return "?"
	}
}

// Edges holds the ticks at which a level sequence changes state.
//
// Each tick is the first tick observed in the new state; that is, a
// change between ticks i and i+1 is reported at i+1. Both lists are
// strictly increasing, and either may be empty.
type Edges struct {
	Rising  []int
	Falling []int
}

// Of returns the edges of the given type.
func (e Edges) Of(t EdgeType) []int {
	if t == EdgeToHigh {
		return e.Rising
	}
	return e.Falling
}

// DetectEdges finds the rising and falling edges of a level sequence.
func DetectEdges(levels []uint8) (Edges, error) {
	if len(levels) < 2 {
		return Edges{}, fmt.Errorf(
			"%w: need at least 2, got %v", ErrInsufficientSamples, len(levels),
		)
	}
	if err := checkLevels(levels); err != nil {
		return Edges{}, err
	}

	var e Edges
	prev := levels[0]
	for i := 1; i < len(levels); i++ {
		cur := levels[i]
		switch {
		case cur > prev:
			e.Rising = append(e.Rising, i)
		case cur < prev:
			e.Falling = append(e.Falling, i)
		}
		prev = cur
	}
	return e, nil
}

// LowToHighTransitions returns the ticks where the signal goes high.
func LowToHighTransitions(levels []uint8) ([]int, error) {
	e, err := DetectEdges(levels)
	return e.Rising, err
}

// HighToLowTransitions returns the ticks where the signal goes low.
func HighToLowTransitions(levels []uint8) ([]int, error) {
	e, err := DetectEdges(levels)
	return e.Falling, err
}

func checkLevels(levels []uint8) error {
	for i, v := range levels {
		if v > 1 {
			return fmt.Errorf("%w: %v at tick %v", ErrInvalidLevel, v, i)
		}
	}
	return nil
}
