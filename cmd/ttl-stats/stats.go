package main

import (
	"github.com/edorfaus/ttl-events/ttl"
)

type Stats struct {
	Min, Max, Tot float64

	Count int
}

func (s *Stats) Add(v float64) {
	if s.Count == 0 {
		s.Min, s.Max, s.Tot, s.Count = v, v, v, 1
		return
	}
	if v < s.Min {
		s.Min = v
	}
	if v > s.Max {
		s.Max = v
	}
	s.Tot += v
	s.Count++
}

func (s *Stats) Avg() float64 {
	return s.Tot / float64(s.Count)
}

// ChannelStats summarizes the timing of the events of one channel, in
// ticks.
type ChannelStats struct {
	// Duration is onset to offset of each event.
	Duration Stats
	// Interval is onset to onset of consecutive events.
	Interval Stats
	// Gap is offset to the next onset.
	Gap Stats

	// Widths counts how often each event width (index 0) and gap width
	// (index 1) occurs.
	Widths map[int][2]int

	Warnings int
}

func Collect(ev ttl.Events) ChannelStats {
	cs := ChannelStats{Widths: map[int][2]int{}}

	pairs := ev.Pairs()
	for i, e := range pairs {
		d := e.Duration()
		cs.Duration.Add(float64(d))
		w := cs.Widths[d]
		w[0]++
		cs.Widths[d] = w

		if i == 0 {
			continue
		}
		prev := pairs[i-1]
		cs.Interval.Add(float64(e.Onset - prev.Onset))

		g := e.Onset - prev.Offset
		cs.Gap.Add(float64(g))
		w = cs.Widths[g]
		w[1]++
		cs.Widths[g] = w
	}

	for _, d := range ev.Warnings {
		if d.Severity == ttl.Warning {
			cs.Warnings++
		}
	}
	return cs
}
