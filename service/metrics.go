package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records draft outcomes. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Lookups      *prometheus.CounterVec
	Submissions  *prometheus.CounterVec
	CatalogLoads *prometheus.CounterVec
}

// NewMetrics registers the draft metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phone_loan_existing_application_lookups_total",
			Help: "Existing-application lookups by outcome",
		}, []string{"outcome"}), // found, not_found, error, skipped

		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phone_loan_submissions_total",
			Help: "Application submissions by write mode and outcome",
		}, []string{"mode", "outcome"}),

		CatalogLoads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "phone_loan_catalog_loads_total",
			Help: "Device catalog loads by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) lookup(outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) submission(mode, outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(mode, outcome).Inc()
	}
}

func (m *Metrics) catalogLoad(outcome string) {
	if m != nil {
		m.CatalogLoads.WithLabelValues(outcome).Inc()
	}
}
