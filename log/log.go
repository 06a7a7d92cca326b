package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level is the current logging level - the maximum level of logs that
// will actually be output.
var Level int = 1

// Target is where the logging will be output to.
var Target io.Writer = os.Stderr

func Log(level int, v ...any) {
	if Level >= level {
		fmt.Fprint(Target, v...)
	}
}

func Ln(level int, v ...any) {
	if Level >= level {
		fmt.Fprintln(Target, v...)
	}
}

func F(level int, f string, v ...any) {
	if Level >= level {
		fmt.Fprintf(Target, f, v...)
	}
}

func Warn(v ...any) {
	if Level >= 0 {
		fmt.Fprintln(
			Target, append(append([]any(nil), "Warning:"), v...)...,
		)
	}
}

// KV logs a message followed by key=value pairs on a single line.
// The pairs are given as alternating keys and values; a trailing key
// without a value is printed with an empty value.
func KV(level int, msg string, kv ...any) {
	if Level < level {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=", kv[i])
		if i+1 < len(kv) {
			fmt.Fprint(&b, kv[i+1])
		}
	}
	fmt.Fprintln(Target, b.String())
}

func Time(level int, f string, v ...any) func(...any) {
	if Level < level {
		return func(...any) {}
	}
	fmt.Fprintf(Target, f, v...)
	start := time.Now()
	return func(v ...any) {
		dur := time.Since(start)
		fmt.Fprintln(Target, append(v, dur)...)
	}
}
