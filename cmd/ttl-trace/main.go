package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/edorfaus/ttl-events/digital"
	"github.com/edorfaus/ttl-events/internal/cmdutil"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/ttl"
	"github.com/edorfaus/ttl-events/wav"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var args = struct {
	Input  string `arg:"positional,required" help:"input digital file (.dat or .wav)"`
	Output string `arg:"positional" help:"output wav file [out.wav]"`

	LogLevel int `help:"set the logging level (verbosity)"`

	Channel  int          `arg:"-c" help:"zero-based TTL channel (bit index)"`
	Events   bool         `help:"render the matched events instead of the raw levels"`
	Polarity ttl.Polarity `help:"event polarity, with --events"`
	Rate     int          `help:"sample rate of a raw input, in Hz"`
	Bits     int          `help:"bit depth of the output (8 or 16)"`

	cmdutil.Source
}{
	Output:   "out.wav",
	LogLevel: log.Level,
	Rate:     30000,
	Bits:     16,
	Source:   cmdutil.DefaultSource,
}

func run() error {
	argParser := arg.MustParse(&args)
	if args.Bits != 8 && args.Bits != 16 {
		argParser.Fail("bits must be 8 or 16")
	}
	if args.Rate <= 0 {
		argParser.Fail("rate must be positive")
	}

	log.Level = args.LogLevel

	samples, rate, err := args.Source.Load(args.Input)
	if err != nil {
		return err
	}
	if rate == 0 {
		rate = args.Rate
	}

	levels, err := samples.Levels(args.Channel)
	if err != nil {
		return err
	}

	if args.Events {
		x := ttl.Extractor{
			Polarity: args.Polarity,
			Report:   digital.Report,
			Channel:  args.Channel,
		}
		ev, err := x.RunLevels(levels)
		if err != nil {
			return err
		}
		log.Ln(1, "Events found:", ev.Len())
		levels = eventLevels(len(levels), ev)
	}

	return wav.SaveMono(args.Output, wav.LevelTrace(levels, args.Bits), rate, args.Bits)
}

// eventLevels rebuilds a level sequence from matched events alone, so
// edges that were dropped while pairing do not show up in it.
func eventLevels(n int, ev ttl.Events) []uint8 {
	var rest, active uint8 = 0, 1
	if !ev.LowToHigh {
		rest, active = 1, 0
	}

	out := make([]uint8, n)
	for i := range out {
		out[i] = rest
	}
	for _, e := range ev.Pairs() {
		for i := e.Onset; i < e.Offset && i < n; i++ {
			out[i] = active
		}
	}
	return out
}
