// Package zapconsole routes zap log entries to the browser console with the
// same severity mapping as the slog handler, for applications already built
// on go.uber.org/zap that run under js/wasm.
//
//	logger := zap.New(zapconsole.NewCore(zapcore.DebugLevel))
//	logger.Info("It works!")
package zapconsole
