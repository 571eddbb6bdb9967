package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return non-empty consistent
// information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
}

// TestCommand ensures the version subcommand prints the full build info.
func TestCommand(t *testing.T) {
	t.Parallel()

	cmd := Command()
	require.Equal(t, "version", cmd.Use)
}
