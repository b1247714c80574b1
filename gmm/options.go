// SPDX-License-Identifier: MIT

package gmm

import "go.uber.org/zap"

const (
	panicNilLogger  = "gmm: WithLogger: logger must not be nil"
	panicNilMetrics = "gmm: WithMetrics: metrics must not be nil"
)

// Option configures a Machine at construction time.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics *Metrics
}

// WithLogger routes the Machine's debug events (resize, save, load,
// dataset accumulation) to l. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithMetrics reports scoring and accumulation counts to mt.
// Without it the Machine records no metrics.
func WithMetrics(mt *Metrics) Option {
	if mt == nil {
		panic(panicNilMetrics)
	}

	return func(o *options) { o.metrics = mt }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
