// SPDX-License-Identifier: MIT

package gmm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts Machine activity in Prometheus collectors.
// Collectors are registered once per registry; share one *Metrics between
// every Machine that reports to the same registry.
type Metrics struct {
	SamplesScored      prometheus.Counter
	SamplesAccumulated prometheus.Counter
	DatasetPasses      prometheus.Counter
	PassDuration       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Like promauto, it panics when the
// names are already taken in reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SamplesScored: factory.NewCounter(prometheus.CounterOpts{
			Name: "gaussmix_gmm_samples_scored_total",
			Help: "Feature vectors scored by LogLikelihood, Responsibilities or Forward",
		}),
		SamplesAccumulated: factory.NewCounter(prometheus.CounterOpts{
			Name: "gaussmix_gmm_samples_accumulated_total",
			Help: "Feature vectors folded into sufficient statistics",
		}),
		DatasetPasses: factory.NewCounter(prometheus.CounterOpts{
			Name: "gaussmix_gmm_dataset_passes_total",
			Help: "Completed AccStatisticsSampler passes",
		}),
		PassDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "gaussmix_gmm_dataset_pass_duration_seconds",
			Help:    "Duration of completed AccStatisticsSampler passes",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 60},
		}),
	}
}

// The helpers below accept a nil receiver (metrics disabled).

func (mt *Metrics) scored() {
	if mt != nil {
		mt.SamplesScored.Inc()
	}
}

func (mt *Metrics) accumulated(n int64) {
	if mt != nil {
		mt.SamplesAccumulated.Add(float64(n))
	}
}

func (mt *Metrics) pass(start time.Time) {
	if mt != nil {
		mt.DatasetPasses.Inc()
		mt.PassDuration.Observe(time.Since(start).Seconds())
	}
}
