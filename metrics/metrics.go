// Package metrics holds the Prometheus collectors exposed by the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeSuccess labels registrations that were persisted.
const OutcomeSuccess = "success"

// Metrics holds the lead registration collectors.
type Metrics struct {
	Registrations        *prometheus.CounterVec
	RegistrationDuration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadcapture_registrations_total",
			Help: "Total number of lead registrations by outcome",
		}, []string{"outcome"}),
		RegistrationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadcapture_registration_duration_seconds",
			Help:    "Time spent validating and persisting a lead registration",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveRegistration records one finished registration. It is safe to call
// on a nil *Metrics.
func (m *Metrics) ObserveRegistration(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(outcome).Inc()
	m.RegistrationDuration.Observe(took.Seconds())
}
