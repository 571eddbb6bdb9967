package style

import "log/slog"

// Table maps severities to CSS declarations consumed by the browser console's
// %c directive. A Table is read-only once constructed.
type Table struct {
	// One badge style per severity.
	Trace string
	Debug string
	Info  string
	Warn  string
	Error string

	// FileLine styles the source location segment.
	FileLine string
	// Text styles the message segment.
	Text string
}

// Default returns the stock palette: white badges over per-severity
// background colors, with the location in bold and the message text
// inheriting the console theme.
func Default() Table {
	return Table{
		Trace:    badge("gray"),
		Debug:    badge("blue"),
		Info:     badge("green"),
		Warn:     badge("orange"),
		Error:    badge("darkred"),
		FileLine: "font-weight: bold; color: inherit",
		Text:     "background: inherit; color: inherit",
	}
}

// ForLevel returns the badge style for a severity. Severities between the
// five canonical levels take the style of the nearest level below them, so
// the lookup is total.
func (t Table) ForLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return t.Error
	case level >= slog.LevelWarn:
		return t.Warn
	case level >= slog.LevelInfo:
		return t.Info
	case level >= slog.LevelDebug:
		return t.Debug
	default:
		return t.Trace
	}
}

func badge(color string) string {
	return "color: white; padding: 0 3px; background: " + color + ";"
}
