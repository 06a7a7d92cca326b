package ttl

import (
	"fmt"
	"strings"
)

type Severity int

const (
	Info Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("[bad Severity=%d]", int(s))
	}
}

// Diagnostic is a non-fatal observation made while extracting events.
// It never changes the result; it only reports what was found or
// repaired, so callers can log it or keep it with the result.
type Diagnostic struct {
	Severity Severity
	Stage    string
	Message  string

	// Fields holds alternating keys and values with details.
	Fields []any
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %v", d.Stage, d.Message)
	for i := 0; i+1 < len(d.Fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", d.Fields[i], d.Fields[i+1])
	}
	return b.String()
}

// diagnostics collects diagnostics from the stages of one extraction.
type diagnostics struct {
	list   []Diagnostic
	report func(Diagnostic)
}

func (ds *diagnostics) add(d ...Diagnostic) {
	for _, v := range d {
		ds.list = append(ds.list, v)
		if ds.report != nil {
			ds.report(v)
		}
	}
}

func info(stage, msg string, fields ...any) Diagnostic {
	return Diagnostic{Severity: Info, Stage: stage, Message: msg, Fields: fields}
}

func warning(stage, msg string, fields ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Stage: stage, Message: msg, Fields: fields}
}
