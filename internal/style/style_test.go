package style

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultTable verifies every style string is set and the five badge
// styles are pairwise distinct.
func TestDefaultTable(t *testing.T) {
	t.Parallel()

	table := Default()

	badges := []string{table.Trace, table.Debug, table.Info, table.Warn, table.Error}
	seen := make(map[string]struct{}, len(badges))

	for _, b := range badges {
		require.NotEmpty(t, b)
		seen[b] = struct{}{}
	}

	require.Len(t, seen, len(badges))
	require.NotEmpty(t, table.FileLine)
	require.NotEmpty(t, table.Text)
}

// TestForLevel verifies the lookup is total: canonical levels map to their
// own badge and in-between severities take the nearest level below.
func TestForLevel(t *testing.T) {
	t.Parallel()

	table := Default()

	cases := map[slog.Level]string{
		slog.LevelError + 4: table.Error,
		slog.LevelError:     table.Error,
		slog.LevelWarn + 2:  table.Warn,
		slog.LevelWarn:      table.Warn,
		slog.LevelInfo:      table.Info,
		slog.LevelDebug:     table.Debug,
		slog.LevelDebug - 4: table.Trace,
		slog.LevelDebug - 8: table.Trace,
	}

	for level, want := range cases {
		require.Equal(t, want, table.ForLevel(level), "severity %v", level)
	}
}
