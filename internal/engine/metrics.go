package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the evaluation collectors. Register on an injected
// registry; nil Metrics disables collection.
type Metrics struct {
	evaluations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics builds and registers the collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alphapanel",
			Name:      "factor_evaluations_total",
			Help:      "Factor evaluations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "alphapanel",
			Name:      "factor_evaluation_seconds",
			Help:      "Wall time per factor evaluation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(m.evaluations, m.duration)
	return m
}

func (m *Metrics) observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
