package console

import (
	"fmt"
	"io"
)

// Console is the host console surface dispatchers write to. Each method
// mirrors one browser console operation. The unstyled path passes a single
// string; the styled path passes a %c composite plus three style strings.
// Calls are assumed not to fail observably, so the methods return nothing.
type Console interface {
	Error(args ...any)
	Warn(args ...any)
	Info(args ...any)
	Log(args ...any)
	Debug(args ...any)
}

// Writer is a Console that prints each call as one labeled line on an
// io.Writer. It backs non-browser builds.
type Writer struct {
	out io.Writer
}

// NewWriter returns a Writer console printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Error prints args as an ERROR line.
func (w *Writer) Error(args ...any) { w.print("ERROR", args) }

// Warn prints args as a WARN line.
func (w *Writer) Warn(args ...any) { w.print("WARN", args) }

// Info prints args as an INFO line.
func (w *Writer) Info(args ...any) { w.print("INFO", args) }

// Log prints args as a LOG line, mirroring console.log.
func (w *Writer) Log(args ...any) { w.print("LOG", args) }

// Debug prints args as a DEBUG line, mirroring console.debug.
func (w *Writer) Debug(args ...any) { w.print("DEBUG", args) }

func (w *Writer) print(label string, args []any) {
	//nolint:errcheck // Console output has no error path by contract.
	fmt.Fprintln(w.out, append([]any{label + ":"}, args...)...)
}
