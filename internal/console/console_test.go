package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriterLabels verifies each console operation produces one line with
// its own label, with console.log and console.debug kept distinct.
func TestWriterLabels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := NewWriter(&buf)
	w.Error("boom")
	w.Warn("careful")
	w.Info("hello")
	w.Log("verbose")
	w.Debug("fine")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"ERROR: boom",
		"WARN: careful",
		"INFO: hello",
		"LOG: verbose",
		"DEBUG: fine",
	}, lines)
}

// TestWriterMultipleArgs verifies variadic arguments land on one line, the
// way the styled path passes a composite plus style strings.
func TestWriterMultipleArgs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	NewWriter(&buf).Warn("%cWARN%c app.go:42%c disk low", "s1", "s2", "s3")

	require.Equal(t, "WARN: %cWARN%c app.go:42%c disk low s1 s2 s3\n", buf.String())
}
