package setcover

import (
	"log/slog"
	"runtime"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
	verify           bool
}

// Option configures a cover computation.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &setcover.BasicMetricsCollector{}
//	keys, _ := setcover.GreedySetCover(sets, "greedy-bitvec", setcover.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Covers: %d, Avg latency: %dns\n", stats.CoverCount, stats.CoverAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := setcover.NewJSONLogger(slog.LevelInfo)
//	keys, _ := setcover.GreedySetCover(sets, "greedy-standard", setcover.WithLogger(logger))
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

// WithParallelism computes per-round gains with up to n goroutines.
//
// The cover does not depend on n: chunk winners are merged in index order
// with the same strict tie-break as the sequential scan. n <= 1 scans
// sequentially (the default). n < 0 uses runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithVerify re-checks the cover with Verify before returning it.
func WithVerify(enabled bool) Option {
	return func(o *options) {
		o.verify = enabled
	}
}

func applyOptions(opts []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		workers:          1,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
