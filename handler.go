package consolelog

import (
	"context"
	"log/slog"
	"path"
	"runtime"
	"strings"

	"consolelog/internal/console"
	"consolelog/internal/style"
)

// DefaultTarget names the log source when a record carries no file location.
const DefaultTarget = "wasm"

// HandlerOptions configures a Handler. The zero value is a plain handler at
// slog.LevelInfo bound to the platform console.
type HandlerOptions struct {
	// Level is the minimum severity the handler reports as enabled.
	// Defaults to slog.LevelInfo.
	Level slog.Leveler
	// Styled selects the styled or plain dispatch path explicitly. When nil,
	// the build-time default applies (see the consolestyle build tag).
	Styled *bool
	// Style overrides the default style table on the styled path.
	Style *style.Table
	// Target is the logical source name used in styled output when a record
	// has no file location. Defaults to DefaultTarget.
	Target string
}

// Handler routes slog records to the host console. It implements
// slog.Handler and can be mounted by any log-routing setup directly; it does
// not require Init or any global registration.
type Handler struct {
	level    slog.Leveler
	dispatch dispatcher
	target   string

	// attrs is the preformatted text tail carried over from WithAttrs.
	attrs string
	// group prefixes attribute keys added after WithGroup.
	group string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a handler bound to the platform console: the browser
// console on js/wasm builds, standard error elsewhere.
func NewHandler(opts *HandlerOptions) *Handler {
	return newHandler(console.Platform(), opts)
}

func newHandler(c console.Console, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}

	target := opts.Target
	if target == "" {
		target = DefaultTarget
	}

	styled := styledByDefault
	if opts.Styled != nil {
		styled = *opts.Styled
	}

	var d dispatcher
	if styled {
		table := style.Default()
		if opts.Style != nil {
			table = *opts.Style
		}

		d = &styledDispatcher{console: c, style: table}
	} else {
		d = &plainDispatcher{console: c}
	}

	return &Handler{
		level:    level,
		dispatch: d,
		target:   target,
	}
}

// Enabled reports whether a record at the given severity would be dispatched.
// It is pure: the façade consults it before formatting arguments.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle reduces the record to its severity, source location and message
// text, then invokes the console operation mapped to the severity. It never
// fails: console output has no observable error path.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	e := entry{
		level:   record.Level,
		target:  h.target,
		message: h.text(record),
	}

	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		if frame.File != "" {
			e.file = path.Base(frame.File)
			e.line = frame.Line
		}
	}

	h.dispatch.dispatch(e)

	return nil
}

// WithAttrs returns a handler that appends the given attributes to every
// message. Attributes are flattened to plain "key=value" text, not carried as
// structured fields.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var sb strings.Builder

	sb.WriteString(h.attrs)

	for _, a := range attrs {
		writeAttr(&sb, h.group, a)
	}

	clone := *h
	clone.attrs = sb.String()

	return &clone
}

// WithGroup returns a handler that prefixes subsequent attribute keys with
// name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.group = h.group + name + "."

	return &clone
}

// Flush exists for sinks that expect a flush hook. The console is unbuffered,
// so there is nothing to do and no way to fail.
func (h *Handler) Flush() error {
	return nil
}

// text renders the record message with bound and per-record attributes
// appended as plain text.
func (h *Handler) text(record slog.Record) string {
	if h.attrs == "" && record.NumAttrs() == 0 {
		return record.Message
	}

	var sb strings.Builder

	sb.WriteString(record.Message)
	sb.WriteString(h.attrs)

	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})

	return sb.String()
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, member := range a.Value.Group() {
			writeAttr(sb, group+a.Key+".", member)
		}

		return
	}

	sb.WriteString(" ")
	sb.WriteString(group)
	sb.WriteString(a.Key)
	sb.WriteString("=")
	sb.WriteString(a.Value.String())
}
