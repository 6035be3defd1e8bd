// Package metrics exposes Prometheus instruments for the Swikly transport.
//
// A nil *Collector is valid and records nothing, so the transport can call
// it unconditionally.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "swikly_client"

// Retry reasons used as the "reason" label.
const (
	ReasonRateLimited = "rate_limited"
	ReasonServerError = "server_error"
	ReasonTransport   = "transport"
)

// Collector records attempt, retry and latency metrics.
type Collector struct {
	attempts *prometheus.CounterVec
	retries  *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New creates a Collector and registers it with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_total",
			Help:      "HTTP attempts issued, by method and status class.",
		}, []string{"method", "status"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "retries_total",
			Help:      "Retries performed, by trigger.",
		}, []string{"reason"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "attempt_duration_seconds",
			Help:      "Latency of individual HTTP attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	cols := []prometheus.Collector{c.attempts, c.retries, c.latency}
	for i, col := range cols {
		if err := reg.Register(col); err != nil {
			for _, done := range cols[:i] {
				reg.Unregister(done)
			}
			return nil, err
		}
	}
	return c, nil
}

// ObserveAttempt records one finished attempt. A zero status means the
// attempt failed before a response arrived.
func (c *Collector) ObserveAttempt(method string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.attempts.WithLabelValues(method, StatusClass(status)).Inc()
	c.latency.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveRetry records a retry decision.
func (c *Collector) ObserveRetry(reason string) {
	if c == nil {
		return
	}
	c.retries.WithLabelValues(reason).Inc()
}

// StatusClass buckets a status code into "2xx", "4xx", ... or "error".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
