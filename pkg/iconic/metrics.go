package iconic

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments API calls with prometheus collectors. Register the
// collectors on your own registry via Register; the library never exposes an
// HTTP endpoint itself.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates unregistered API call collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "iconic",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total API requests by method, path, and status code.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "iconic",
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "API request latency by method and path.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// Register attaches the collectors to a registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	err := reg.Register(m.requestsTotal)
	if err != nil {
		return err
	}

	return reg.Register(m.requestDuration)
}

// Observe records one completed request. Status 0 means the exchange failed
// at the transport layer before any status was received.
func (m *Metrics) Observe(method, path string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
