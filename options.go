package crcspeed

import (
	"log/slog"
	"os"

	"github.com/hupe1980/crcspeed/internal/endian"
)

type options struct {
	byteOrder        ByteOrder
	msbFirst         bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures table construction.
type Option func(*options)

// WithByteOrder builds the table for the given byte order instead of the
// native one. Both orders produce identical CRCs; forcing the non-native
// order is how tests exercise the other kernel.
//
// Invalid orders are ignored.
func WithByteOrder(order ByteOrder) Option {
	return func(o *options) {
		if order.Valid() {
			o.byteOrder = order
		}
	}
}

// WithMSBFirst declares that the reference function shifts its register
// left (non-reflected CRCs such as CRC-16/XMODEM). The default is a
// reflected, right-shifting CRC.
func WithMSBFirst(enabled bool) Option {
	return func(o *options) {
		o.msbFirst = enabled
	}
}

// WithMetricsCollector configures metrics collection for table builds.
// If nil is passed, metrics are discarded.
//
// Example with basic metrics:
//
//	metrics := &crcspeed.BasicMetricsCollector{}
//	tab := crcspeed.CRC64Redis.MakeTable(crcspeed.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().TableBuilds)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for table builds.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := crcspeed.NewJSONLogger(os.Stderr, slog.LevelDebug)
//	tab := crcspeed.MakeTable(fn, crcspeed.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a stderr text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(os.Stderr, level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(os.Stderr, level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		byteOrder:        endian.Native(),
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
