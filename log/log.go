// Package log provides structured logging (slog) for the policy toolchain.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Option configures the logger.
type Option func(*loggerConfig)

type loggerConfig struct {
	level     slog.Level
	addSource bool
	writer    io.Writer
}

// defaultLoggerConfig returns the default configuration. Logs go to
// stderr so that generated artifacts on stdout stay machine-readable.
func defaultLoggerConfig() loggerConfig {
	return loggerConfig{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) Option {
	return func(c *loggerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) Option {
	return func(c *loggerConfig) {
		c.addSource = enabled
	}
}

// WithWriter redirects log output. Useful in tests.
func WithWriter(w io.Writer) Option {
	return func(c *loggerConfig) {
		c.writer = w
	}
}

// New creates a logger with the given options.
func New(opts ...Option) *slog.Logger {
	cfg := defaultLoggerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	handler := slog.NewTextHandler(cfg.writer, &slog.HandlerOptions{
		Level:     cfg.level,
		AddSource: cfg.addSource,
	})
	return slog.New(handler)
}
