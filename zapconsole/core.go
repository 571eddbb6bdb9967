package zapconsole

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"consolelog/internal/console"
)

// Core routes zap entries to the host console. Error and above go to
// console.error, warn to console.warn, info to console.info, and debug to
// console.log. zap defines no trace level, so console.debug stays unused.
type Core struct {
	zapcore.LevelEnabler

	enc     zapcore.Encoder
	console console.Console
}

var _ zapcore.Core = (*Core)(nil)

// NewCore returns a console-backed core enabled at the given levels.
func NewCore(enab zapcore.LevelEnabler) *Core {
	return newCore(console.Platform(), enab)
}

func newCore(c console.Console, enab zapcore.LevelEnabler) *Core {
	// Level and time are omitted: the console method conveys the severity
	// and the browser timestamps entries on its own.
	//nolint:exhaustruct // Unused encoder keys stay at their zero values.
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		NameKey:          "logger",
		CallerKey:        "caller",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	})

	return &Core{
		LevelEnabler: enab,
		enc:          enc,
		console:      c,
	}
}

// With adds structured context to the core.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.enc = c.enc.Clone()

	for i := range fields {
		fields[i].AddTo(clone.enc)
	}

	return &clone
}

// Check adds the core to the checked entry if the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

// Write renders the entry as a single console-encoded line and invokes the
// console operation mapped to its level.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}

	line := strings.TrimRight(buf.String(), "\n")
	buf.Free()

	switch {
	case ent.Level >= zapcore.ErrorLevel:
		c.console.Error(line)
	case ent.Level >= zapcore.WarnLevel:
		c.console.Warn(line)
	case ent.Level >= zapcore.InfoLevel:
		c.console.Info(line)
	default:
		c.console.Log(line)
	}

	return nil
}

// Sync is a no-op: the console is unbuffered.
func (c *Core) Sync() error {
	return nil
}
