package demo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRunStopsOnContextCancel verifies the server honors context
// cancellation and shuts down cleanly.
func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	options := &Options{
		ConfigPath:    filepath.Join(t.TempDir(), "absent.yaml"),
		ListenAddress: "127.0.0.1:0",
		WebDir:        t.TempDir(),
	}

	require.NoError(t, Run(ctx, options))
}

// TestRunRejectsBrokenConfig verifies configuration errors surface instead
// of starting the server.
func TestRunRejectsBrokenConfig(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, &Options{ListenAddress: "not an address", ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}
