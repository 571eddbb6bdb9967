package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"consolelog/internal/config"
	"consolelog/internal/service/demo"
	"consolelog/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// listenAddress overrides the configured listen address.
	listenAddress string
	// webDir overrides the configured asset directory.
	webDir string

	// rootCmd serves the demo page for the console logger.
	rootCmd = &cobra.Command{
		Use:   "consolelog-demo",
		Short: "Serve the browser demo page for the console logger.",
		Long: `Starts a small HTTP server hosting the demo page.

Compile the wasm demo first, then open the served page and the browser
console to watch the logger output:

  GOOS=js GOARCH=wasm go build -o web/demo.wasm ./examples/wasm
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &demo.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				WebDir:        webDir,
			}

			return demo.Run(ctx, options)
		},
	}
)

// Execute runs the demo CLI and exits with non-zero status on error.
func Execute() {
	rootCmd.AddCommand(version.Command())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&listenAddress, "listen", "l", "", "listen address override")
	rootCmd.Flags().StringVarP(&webDir, "web-dir", "w", "", "web asset directory override")
}
