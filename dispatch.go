package consolelog

import (
	"fmt"
	"log/slog"
	"strconv"

	"consolelog/internal/console"
	"consolelog/internal/style"
)

// unknownLine marks records whose source line number is not available.
const unknownLine = "[Unknown]"

// entry is the reduced form of a record handed to a dispatcher. It lives for
// the duration of a single dispatch and is never retained.
type entry struct {
	level   slog.Level
	target  string
	file    string
	line    int
	message string
}

// dispatcher invokes the console operation mapped to an entry's severity.
type dispatcher interface {
	dispatch(e entry)
}

// consoleOp selects the host operation for a severity. The mapping is
// intentionally asymmetric at the bottom: debug records go to console.log and
// trace records to console.debug, because browsers hide console.debug output
// behind a verbosity toggle. Severities between the five canonical levels
// take the operation of the nearest level below them.
func consoleOp(c console.Console, level slog.Level) func(args ...any) {
	switch {
	case level >= slog.LevelError:
		return c.Error
	case level >= slog.LevelWarn:
		return c.Warn
	case level >= slog.LevelInfo:
		return c.Info
	case level >= slog.LevelDebug:
		return c.Log
	default:
		return c.Debug
	}
}

// levelLabel returns the upper-case badge text for a severity.
func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	case level >= slog.LevelDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

// plainDispatcher passes the message text to the mapped console operation
// untouched.
type plainDispatcher struct {
	console console.Console
}

func (d *plainDispatcher) dispatch(e entry) {
	consoleOp(d.console, e.level)(e.message)
}

// styledDispatcher renders a %c composite string and hands the console three
// style arguments, one per segment, so the browser applies per-segment CSS.
type styledDispatcher struct {
	console console.Console
	style   style.Table
}

func (d *styledDispatcher) dispatch(e entry) {
	// Records without a resolvable source fall back to the logical target
	// name and a literal unknown-line marker, never a fake number.
	file := e.file
	if file == "" {
		file = e.target
	}

	line := unknownLine
	if e.line > 0 {
		line = strconv.Itoa(e.line)
	}

	location := file + ":" + line

	composite := fmt.Sprintf("%%c%s%%c %s%%c %s", levelLabel(e.level), location, e.message)

	consoleOp(d.console, e.level)(composite, d.style.ForLevel(e.level), d.style.FileLine, d.style.Text)
}
