package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/edorfaus/ttl-events/digital"
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
	Camera string `arg:"positional,required" help:"digital file holding the camera frame TTL"`
	Input  string `arg:"positional,required" help:"digital file holding the event TTL"`
	Output string `arg:"positional" help:"output text file, - for stdout [out.txt]"`

	LogLevel int `help:"set the logging level (verbosity)"`

	CameraChannel  int          `help:"TTL channel of the camera frames"`
	CameraPolarity ttl.Polarity `help:"polarity of the camera frames"`
	Channel        int          `arg:"-c" help:"TTL channel of the events"`
	Polarity       ttl.Polarity `help:"polarity of the events"`

	cmdutil.Source
}{
	Output:        "out.txt",
	LogLevel:      log.Level,
	CameraChannel: intan.DefaultCameraChannel,
	Source:        cmdutil.DefaultSource,
}

func run() (retErr error) {
	arg.MustParse(&args)

	log.Level = args.LogLevel

	frames, err := extract(args.Camera, args.CameraChannel, args.CameraPolarity)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	events, err := extract(args.Input, args.Channel, args.Polarity)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	log.F(1, "Frames: %v, events: %v\n", frames.Len(), events.Len())

	onFrames, offFrames, err := ttl.AlignEvents(frames, events)
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

	return writeAligned(out, events, onFrames, offFrames)
}

func extract(fn string, channel int, pol ttl.Polarity) (ttl.Events, error) {
	samples, _, err := args.Source.Load(fn)
	if err != nil {
		return ttl.Events{}, err
	}

	defer log.Time(1, "Extracting channel %v...\n", channel)("Extracting done in")
	x := ttl.Extractor{
		Channel:  channel,
		Polarity: pol,
		Report:   digital.Report,
	}
	return samples.Events(&x)
}

func writeAligned(out *bufio.Writer, ev ttl.Events, onFrames, offFrames []int) error {
	fmt.Fprintln(out, "event\tonset\toffset\tonset_frame\toffset_frame")
	for i, e := range ev.Pairs() {
		fmt.Fprintf(
			out, "%v\t%v\t%v\t%v\t%v\n",
			i, e.Onset, e.Offset, onFrames[i], offFrames[i],
		)
	}
	return out.Flush()
}
