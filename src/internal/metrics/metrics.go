package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OperationList         = "list"
	OperationByIdentifier = "by_identifier"
	OperationByIBAN       = "by_iban"

	OutcomeFound          = "found"
	OutcomeNotFound       = "not_found"
	OutcomeMalformedIBAN  = "malformed_iban"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeError          = "error"
)

// Metrics tracks bank lookups. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Lookups       *prometheus.CounterVec
	LookupLatency *prometheus.HistogramVec
}

// New registers the lookup metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "saudi_banks_lookups_total",
			Help: "Total bank lookups by operation and outcome",
		}, []string{"operation", "outcome"}),

		LookupLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "saudi_banks_lookup_duration_seconds",
			Help:    "Duration of bank lookups by operation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementLookup(operation, outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(operation, outcome).Inc()
	}
}

func (m *Metrics) ObserveLookupLatency(operation string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
