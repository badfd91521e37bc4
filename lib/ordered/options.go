package ordered

import (
	"go.uber.org/zap"
)

type options struct {
	logger      *zap.Logger
	statsName   string
	initCap     int
	enableStats bool
	isDesc      bool
}

type Option func(*options)

// WithLogger routes rejected duplicates (debug) and contract violations
// (error) to logger. Containers log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStats publishes insert, reject, remove and element counters through the
// global otel meter provider, under the meter "xcoll/ordered/<name>".
func WithStats(name string) Option {
	return func(o *options) {
		o.enableStats = true
		o.statsName = name
	}
}

// WithDesc orders the container from the largest key to the smallest.
func WithDesc() Option {
	return func(o *options) {
		o.isDesc = true
	}
}

// WithInitCapacity pre-allocates room for n nodes.
func WithInitCapacity(n int) Option {
	return func(o *options) {
		o.initCap = n
	}
}

func loadOptions(opts []Option) *options {
	o := &options{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
