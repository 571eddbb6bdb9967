package demo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"consolelog/internal/config"
	"consolelog/internal/hostlog"
)

const (
	// readHeaderTimeout bounds slow-header clients.
	readHeaderTimeout = 5 * time.Second
	// shutdownTimeout bounds graceful shutdown after ctx cancellation.
	shutdownTimeout = 5 * time.Second
)

// Options configures a demo server run. Non-empty fields override the
// corresponding configuration values.
type Options struct {
	// ConfigPath is the path to the YAML settings file.
	ConfigPath string
	// ListenAddress overrides the configured listen address.
	ListenAddress string
	// WebDir overrides the configured asset directory.
	WebDir string
}

// Run serves the demo page until ctx is cancelled or the listener fails.
func Run(ctx context.Context, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.ListenAddress != "" {
		cfg.ListenAddress = opts.ListenAddress
	}

	if opts.WebDir != "" {
		cfg.WebDir = opts.WebDir
	}

	// Flag overrides go through the same validation as file values.
	if err := config.Validate(cfg); err != nil {
		return err
	}

	level, _ := hostlog.ParseLevel(cfg.LogLevel)
	logger := hostlog.New(level)

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.Static("/", cfg.WebDir)

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- server.ListenAndServe()
	}()

	logger.Infof("Demo page available at http://localhost%s, serving %s", cfg.ListenAddress, cfg.WebDir)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown demo server: %w", err)
		}

		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("serve demo page: %w", err)
	}
}

// requestLogger logs one line per served request.
func requestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Debugw("Request served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
