package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/edorfaus/ttl-events/digital"
	"github.com/edorfaus/ttl-events/filter"
	"github.com/edorfaus/ttl-events/intan"
	"github.com/edorfaus/ttl-events/internal/cmdutil"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/ttl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var args = struct {
	Input  string `arg:"positional,required" help:"input digital file (.dat or .wav)"`
	Output string `arg:"positional" help:"output text file, - for stdout [out.txt]"`

	LogLevel int `help:"set the logging level (verbosity)"`

	Channel  int          `arg:"-c" help:"zero-based TTL channel (bit index)"`
	Polarity ttl.Polarity `help:"auto, low-to-high (rising) or high-to-low (falling)"`
	Rate     float64      `help:"sample rate in Hz, for the seconds columns; 0 = none"`

	cmdutil.Source

	Analog     int     `help:"read an amplifier file with this many channels, and threshold the chosen channel"`
	Hysteresis float64 `help:"analog threshold hysteresis, as a fraction of the signal span"`
}{
	Output:     "out.txt",
	LogLevel:   log.Level,
	Source:     cmdutil.DefaultSource,
	Hysteresis: filter.DefaultHysteresis,
}

func run() (retErr error) {
	argParser := arg.MustParse(&args)
	if args.Channel < 0 {
		argParser.Fail("channel must not be negative")
	}
	if args.Analog < 0 {
		argParser.Fail("analog channel count must not be negative")
	}

	log.Level = args.LogLevel

	ev, rate, err := extract()
	if err != nil {
		return err
	}
	log.F(
		1, "Channel %v: %v events, polarity %v\n",
		args.Channel, ev.Len(), polarityOf(ev),
	)

	out, closeOut, err := cmdutil.OpenOutput(args.Output)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOut(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	return writeEvents(out, ev, rate)
}

func extract() (ttl.Events, float64, error) {
	x := ttl.Extractor{
		Channel:  args.Channel,
		Polarity: args.Polarity,
		Report:   digital.Report,
	}

	if args.Analog > 0 {
		levels, err := analogLevels()
		if err != nil {
			return ttl.Events{}, 0, err
		}
		defer log.Time(1, "Extracting events...\n")("Extracting done in")
		ev, err := x.RunLevels(levels)
		return ev, args.Rate, err
	}

	samples, fileRate, err := args.Source.Load(args.Input)
	if err != nil {
		return ttl.Events{}, 0, err
	}

	defer log.Time(1, "Extracting events...\n")("Extracting done in")
	ev, err := samples.Events(&x)
	return ev, cmdutil.Rate(fileRate, args.Rate), err
}

func analogLevels() ([]uint8, error) {
	if args.Channel >= args.Analog {
		return nil, fmt.Errorf(
			"%w: channel %v of %v analog channels",
			ttl.ErrInvalidChannelIndex, args.Channel, args.Analog,
		)
	}

	voltage, err := intan.LoadVoltage(args.Input, args.Analog)
	if err != nil {
		return nil, err
	}
	trace := voltage[args.Channel]

	th, err := filter.AutoThreshold(trace, args.Hysteresis)
	if err != nil {
		return nil, err
	}
	log.F(2, "  thresholds: low %.3f uV, high %.3f uV\n", th.Low, th.High)

	return th.Run(trace), nil
}

func polarityOf(ev ttl.Events) ttl.Polarity {
	if ev.LowToHigh {
		return ttl.PolarityLowToHigh
	}
	return ttl.PolarityHighToLow
}

func writeEvents(out *bufio.Writer, ev ttl.Events, rate float64) error {
	if rate > 0 {
		fmt.Fprintln(out, "onset\toffset\tduration\tonset_s\toffset_s")
	} else {
		fmt.Fprintln(out, "onset\toffset\tduration")
	}

	for _, e := range ev.Pairs() {
		if rate > 0 {
			fmt.Fprintf(
				out, "%v\t%v\t%v\t%.6f\t%.6f\n", e.Onset, e.Offset,
				e.Duration(), float64(e.Onset)/rate, float64(e.Offset)/rate,
			)
		} else {
			fmt.Fprintf(out, "%v\t%v\t%v\n", e.Onset, e.Offset, e.Duration())
		}
	}

	return out.Flush()
}
