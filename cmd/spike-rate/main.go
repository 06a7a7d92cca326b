package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/edorfaus/ttl-events/digital"
	"github.com/edorfaus/ttl-events/internal/cmdutil"
	"github.com/edorfaus/ttl-events/log"
	"github.com/edorfaus/ttl-events/psth"
	"github.com/edorfaus/ttl-events/spikes"
	"github.com/edorfaus/ttl-events/ttl"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var args = struct {
	Spikes string `arg:"positional,required" help:"spike sorter CSV export"`
	Events string `arg:"positional,required" help:"digital file holding the event TTL"`
	Output string `arg:"positional" help:"output text file, - for stdout [out.txt]"`

	LogLevel int `help:"set the logging level (verbosity)"`

	Channel  int          `arg:"-c" help:"TTL channel of the events"`
	Polarity ttl.Polarity `help:"auto, low-to-high (rising) or high-to-low (falling)"`
	Rate     float64      `help:"sample rate of a raw input, in Hz"`
	Unit     int          `help:"only this unit id; -1 = all units"`

	Window float64 `help:"seconds before and after each event"`
	Bins   int     `help:"number of bins across the window"`
	Smooth bool    `help:"smooth each trial histogram with a gaussian"`
	Sigma  float64 `help:"gaussian sigma, in bins"`

	EndAtOffset bool `help:"end each trial at its event offset"`
	Probability bool `help:"report mean counts per bin instead of rates"`
	Order       bool `help:"also print trial order by first spike latency"`

	NoCI       bool    `help:"skip the bootstrap confidence interval"`
	Iterations int     `help:"bootstrap iterations"`
	Percentile float64 `help:"confidence level, in percent"`
	Seed       uint64  `help:"bootstrap random seed"`
	Workers    int     `help:"bootstrap workers; 0 = one per CPU"`

	cmdutil.Source
}{
	Output:     "out.txt",
	LogLevel:   log.Level,
	Rate:       30000,
	Unit:       -1,
	Window:     1,
	Bins:       100,
	Sigma:      psth.DefaultSigma,
	Iterations: psth.DefaultIterations,
	Percentile: psth.DefaultPercentile,
	Source:     cmdutil.DefaultSource,
}

func run() (retErr error) {
	argParser := arg.MustParse(&args)
	switch {
	case args.Window <= 0:
		argParser.Fail("window must be positive")
	case args.Bins < 1:
		argParser.Fail("bins must be at least 1")
	case args.Rate <= 0:
		argParser.Fail("rate must be positive")
	}

	log.Level = args.LogLevel

	samples, fileRate, err := args.Source.Load(args.Events)
	if err != nil {
		return err
	}
	rate := cmdutil.Rate(fileRate, args.Rate)

	x := ttl.Extractor{
		Channel:  args.Channel,
		Polarity: args.Polarity,
		Report:   digital.Report,
	}
	ev, err := samples.Events(&x)
	if err != nil {
		return err
	}
	log.Ln(1, "Number of events:", ev.Len())

	units, err := spikes.LoadUnits(args.Spikes, rate)
	if err != nil {
		return err
	}

	out, closeOut, err := cmdutil.OpenOutput(args.Output)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeOut(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	found := false
	for _, u := range units {
		if args.Unit >= 0 && u.ID != args.Unit {
			continue
		}
		found = true
		if err := runUnit(out, u, ev, rate); err != nil {
			return fmt.Errorf("unit %v: %w", u.ID, err)
		}
	}
	if !found && args.Unit >= 0 {
		return fmt.Errorf("no spikes for unit %v", args.Unit)
	}

	return out.Flush()
}

func runUnit(out *bufio.Writer, u spikes.Unit, ev ttl.Events, rate float64) error {
	defer log.Time(1, "Unit %v: analyzing...", u.ID)(" done in")

	res, trials, err := analyzeUnit(u, ev, rate)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# unit %v: %v spikes, %v trials\n", u.ID, len(u.Ticks), res.Trials)
	if args.Order {
		fmt.Fprintln(out, "# order:", spikes.OrderByFirstSpike(trials))
	}
	writeResult(out, res, !args.NoCI)
	fmt.Fprintln(out)
	return nil
}

// analyzeUnit windows the unit's spikes around the event onsets and
// runs the peri-event analysis on them. It also returns the trials.
func analyzeUnit(u spikes.Unit, ev ttl.Events, rate float64) (psth.Result, [][]float64, error) {
	onsets := make([]int64, ev.Len())
	for i, t := range ev.Onsets {
		onsets[i] = int64(t)
	}
	winTicks := int64(args.Window * rate)
	trials := spikes.AtEvents(u.Ticks, onsets, winTicks, rate)

	opts := psth.Options{
		Bin:  psth.BinOptions{Smooth: args.Smooth, Sigma: args.Sigma},
		Rate: psth.RateOptions{Probability: args.Probability},
		Bootstrap: psth.BootstrapOptions{
			Iterations: args.Iterations,
			Percentile: args.Percentile,
			Seed:       args.Seed,
			Workers:    args.Workers,
		},
		NoCI: args.NoCI,
	}

	if args.EndAtOffset {
		ends := make([]float64, ev.Len())
		for i, e := range ev.Pairs() {
			ends[i] = float64(e.Duration()) / rate
		}
		var err error
		trials, err = spikes.RemoveAfter(trials, ends)
		if err != nil {
			return psth.Result{}, nil, err
		}
		opts.Rate.Ends = ends
	}

	edges := psth.Edges(-args.Window, args.Window, args.Bins)
	res, err := psth.Analyze(trials, edges, opts)
	if err != nil {
		return psth.Result{}, nil, err
	}
	return res, trials, nil
}

func writeResult(out *bufio.Writer, res psth.Result, withCI bool) {
	if withCI {
		fmt.Fprintln(out, "center\trate\tlower\tupper")
	} else {
		fmt.Fprintln(out, "center\trate")
	}
	for i, c := range res.Centers {
		fmt.Fprintf(out, "%.6f\t%v", c, formatRate(res.Rate[i]))
		if withCI {
			fmt.Fprintf(
				out, "\t%v\t%v",
				formatRate(res.CI.Lower[i]), formatRate(res.CI.Upper[i]),
			)
		}
		fmt.Fprintln(out)
	}
}

func formatRate(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return fmt.Sprintf("%.4f", v)
}
