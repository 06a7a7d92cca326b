package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"golang.org/x/exp/slices"

	"github.com/edorfaus/ttl-events/digital"
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
	Output string `arg:"positional" help:"output text file, - for stdout [-]"`

	LogLevel int  `help:"set the logging level (verbosity)"`
	Widths   bool `help:"also print a table of event and gap widths"`

	Channels []int        `arg:"-c,separate" help:"TTL channels to report on"`
	Polarity ttl.Polarity `help:"auto, low-to-high (rising) or high-to-low (falling)"`
	Rate     float64      `help:"sample rate in Hz, to also report seconds; 0 = none"`

	cmdutil.Source
}{
	Output:   "-",
	LogLevel: log.Level,
	Source:   cmdutil.DefaultSource,
}

func run() (retErr error) {
	argParser := arg.MustParse(&args)
	if len(args.Channels) == 0 {
		args.Channels = []int{0}
	}
	for _, c := range args.Channels {
		if c < 0 {
			argParser.Fail("channels must not be negative")
		}
	}

	log.Level = args.LogLevel

	samples, fileRate, err := args.Source.Load(args.Input)
	if err != nil {
		return err
	}
	rate := cmdutil.Rate(fileRate, args.Rate)

	out, closeOut, err := cmdutil.OpenOutput(args.Output)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOut(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	for _, c := range args.Channels {
		x := ttl.Extractor{
			Channel:  c,
			Polarity: args.Polarity,
			Report:   digital.Report,
		}
		ev, err := samples.Events(&x)
		if err != nil {
			return err
		}
		writeStats(out, c, ev, rate)
	}

	return out.Flush()
}

func writeStats(out *bufio.Writer, channel int, ev ttl.Events, rate float64) {
	cs := Collect(ev)

	pol := "high-to-low"
	if ev.LowToHigh {
		pol = "low-to-high"
	}
	fmt.Fprintf(
		out, "channel %v: %v events, %v, %v warnings\n",
		channel, ev.Len(), pol, cs.Warnings,
	)

	for _, row := range []struct {
		name string
		s    Stats
	}{
		{"duration", cs.Duration},
		{"interval", cs.Interval},
		{"gap", cs.Gap},
	} {
		s := row.s
		if s.Count == 0 {
			fmt.Fprintf(out, "  %-8v: 0\n", row.name)
			continue
		}
		fmt.Fprintf(
			out, "  %-8v: %v ; %.0f - %.0f ; %.3f",
			row.name, s.Count, s.Min, s.Max, s.Avg(),
		)
		if rate > 0 {
			fmt.Fprintf(
				out, " ; %.6fs - %.6fs ; %.6fs",
				s.Min/rate, s.Max/rate, s.Avg()/rate,
			)
		}
		fmt.Fprintln(out)
	}

	for _, d := range ev.Warnings {
		if d.Severity == ttl.Warning {
			fmt.Fprintf(out, "  warning: %v\n", d)
		}
	}

	if args.Widths {
		writeWidths(out, cs)
	}
	fmt.Fprintln(out)
}

func writeWidths(out *bufio.Writer, cs ChannelStats) {
	keys := make([]int, 0, len(cs.Widths))
	maxCount := 0
	for k, v := range cs.Widths {
		keys = append(keys, k)
		maxCount = max(maxCount, v[0], v[1])
	}
	if len(keys) == 0 {
		return
	}
	slices.Sort(keys)

	ksz := max(5, len(fmt.Sprint(keys[len(keys)-1])))
	vsz := max(5, len(fmt.Sprint(maxCount)))
	fmt.Fprintf(out, "  %*s %*s %*s\n", ksz, "Width", vsz, "Event", vsz, "Gap")
	for _, k := range keys {
		v := cs.Widths[k]
		fmt.Fprintf(out, "  %*v %*v %*v\n", ksz, k, vsz, v[0], vsz, v[1])
	}
}
