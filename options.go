package fbconnect

import (
	"io"
	"log/slog"
)

// Option configures the Adapter.
type Option func(*options)

// options holds the configuration for the Adapter.
type options struct {
	logger *slog.Logger // structured logger for per-call debug output
}

// defaultOptions returns the default configuration: no debug output.
func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets a structured logger for debug output. Each bridged external
// call logs a debug line with a unique call id when it starts and when its
// callback delivers.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
