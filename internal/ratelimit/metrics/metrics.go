package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsRejected prometheus.Counter
	FallbackChecks   prometheus.Counter
	CircuitOpen      prometheus.Gauge
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers on reg so tests can use a private registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "holocron_ratelimit_rejected_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
		FallbackChecks: factory.NewCounter(prometheus.CounterOpts{
			Name: "holocron_ratelimit_fallback_checks_total",
			Help: "Total number of checks served by the in-memory fallback limiter",
		}),
		CircuitOpen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "holocron_ratelimit_circuit_open",
			Help: "1 while the primary rate limit store is bypassed",
		}),
	}
}

func (m *Metrics) IncrementRejected() {
	if m == nil {
		return
	}
	m.RequestsRejected.Inc()
}

func (m *Metrics) IncrementFallbackChecks() {
	if m == nil {
		return
	}
	m.FallbackChecks.Inc()
}

func (m *Metrics) SetCircuitOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.CircuitOpen.Set(1)
		return
	}
	m.CircuitOpen.Set(0)
}
