package consolelog

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
)

// LevelTrace is the finest severity the adapter handles. log/slog defines no
// trace constant, so the adapter follows the common convention of placing
// trace one step below debug, keeping the five levels totally ordered.
const LevelTrace = slog.LevelDebug - 4

// ErrLoggerAlreadySet is returned when Init or InitWithLevel is called after
// a console handler has already been installed in this process.
var ErrLoggerAlreadySet = errors.New("console logger is already set")

// installed guards process-wide registration. It flips exactly once; repeat
// initialization fails instead of replacing the installed logger.
//
//nolint:gochecknoglobals // The install-at-most-once invariant is process-wide.
var installed atomic.Bool

// Init installs the console handler as the default slog logger with the
// minimum severity set to slog.LevelInfo.
func Init() error {
	return InitWithLevel(slog.LevelInfo)
}

// InitWithLevel installs the console handler as the default slog logger and
// sets the minimum severity to level. A second call in the same process
// returns ErrLoggerAlreadySet and leaves the first registration untouched.
func InitWithLevel(level slog.Level) error {
	if !installed.CompareAndSwap(false, true) {
		return ErrLoggerAlreadySet
	}

	slog.SetDefault(slog.New(NewHandler(&HandlerOptions{Level: level})))

	return nil
}

// Trace emits msg at LevelTrace through the default slog logger. slog ships
// convenience functions for the other four severities only.
func Trace(msg string, args ...any) {
	slog.Default().Log(context.Background(), LevelTrace, msg, args...)
}
