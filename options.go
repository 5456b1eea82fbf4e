package halfvec

import (
	"log/slog"
	"runtime"
)

type options struct {
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Codec.
type Option func(*options)

// WithConcurrency bounds the number of goroutines a Codec uses for batch
// encode/decode. Values <= 0 select runtime.GOMAXPROCS(0); 1 disables
// fan-out entirely.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for codec operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &halfvec.BasicMetricsCollector{}
//	c, _ := halfvec.New(halfvec.Float16, halfvec.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Encoded: %d vectors\n", stats.EncodedVectors)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for codec operations.
// Pass nil to disable logging.
//
//	logger := halfvec.NewJSONLogger(slog.LevelDebug)
//	c, _ := halfvec.New(halfvec.BFloat16, halfvec.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		concurrency:      runtime.GOMAXPROCS(0),
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
