package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics registers the upstream collectors with reg. A nil reg leaves
// them unregistered, which is what tests and throwaway clients want.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weatherdesk",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Upstream API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weatherdesk",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Upstream API call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *metrics) observe(endpoint string, err error, d time.Duration) {
	m.requests.WithLabelValues(endpoint, outcome(err)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}
