package consolelog

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// allLevels is the closed five-level set in ascending urgency.
var allLevels = []slog.Level{
	LevelTrace,
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// TestEnabledGrid checks Enabled over every (record severity, threshold)
// pair: a severity passes iff it is at or above the threshold's urgency.
func TestEnabledGrid(t *testing.T) {
	t.Parallel()

	for _, threshold := range allLevels {
		h := newHandler(&fakeConsole{}, &HandlerOptions{Level: threshold})

		for _, candidate := range allLevels {
			require.Equal(t, candidate >= threshold, h.Enabled(context.Background(), candidate),
				"threshold %v, candidate %v", threshold, candidate)
		}
	}
}

// TestInitWithLevelTwice verifies the set-once registration guard: the first
// install succeeds, every later attempt fails without replacing the logger.
func TestInitWithLevelTwice(t *testing.T) {
	require.NoError(t, InitWithLevel(slog.LevelDebug))

	require.ErrorIs(t, InitWithLevel(slog.LevelDebug), ErrLoggerAlreadySet)
	require.ErrorIs(t, Init(), ErrLoggerAlreadySet)
}

// TestTrace verifies the package-level trace helper reaches console.debug
// through the default logger.
func TestTrace(t *testing.T) {
	fake := &fakeConsole{}
	previous := slog.Default()

	slog.SetDefault(slog.New(newHandler(fake, &HandlerOptions{Level: LevelTrace})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	Trace("tracing", "step", 1)

	require.Len(t, fake.calls, 1)
	require.Equal(t, "debug", fake.calls[0].method)
	require.Equal(t, []any{"tracing step=1"}, fake.calls[0].args)
}
