// Package cli implements the image-augment command-line interface.
//
// The CLI exposes one subcommand per geometric transform (skew, rotate,
// shear, distort). Each command loads an image, applies the transform with
// the requested parameters, and writes the result. A --seed flag fixes the
// random source for reproducible output; --config points at a TOML file
// supplying parameter defaults that individual flags override.
//
// Logging uses the charmbracelet/log library; --verbose enables debug-level
// output. Loggers travel through context.Context so every command shares one
// configured instance.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// newLogger creates a logger writing to w with timestamps formatted as
// "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// withLogger attaches l to the context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or a default
// logger if none is present.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// elapsed returns a human-scale duration for completion log lines.
func elapsed(start time.Time) time.Duration {
	return time.Since(start).Round(time.Millisecond)
}
