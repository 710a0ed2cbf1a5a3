package bitflag

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	capacity         int
}

// Option configures Array construction.
type Option func(*options)

// WithMetricsCollector configures a collector for growth and migration metrics.
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for width changes and clears.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitflag.NewJSONLogger(slog.LevelDebug)
//	arr, _ := bitflag.New(4, bitflag.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithCapacity reserves room for the given number of words.
//
// The array still starts empty; capacity only avoids reallocation while
// storage grows. Negative values are ignored.
func WithCapacity(words int) Option {
	return func(o *options) {
		o.capacity = max(words, 0)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
