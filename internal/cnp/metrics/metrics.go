package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for identifier generation and validation.
type Metrics struct {
	Generated   *prometheus.CounterVec
	Validations *prometheus.CounterVec
}

// New creates the identifier metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "normalro_cnp_generated_total",
			Help: "Identifiers generated, by gender and whether inputs were defaulted",
		}, []string{"gender", "defaulted"}),

		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "normalro_cnp_validations_total",
			Help: "Identifier validations by outcome and failure reason",
		}, []string{"outcome", "reason"}), // outcome: "valid", "invalid"
	}
}

// IncrementGenerated records a generated identifier.
func (m *Metrics) IncrementGenerated(gender string, defaulted bool) {
	if m != nil {
		d := "false"
		if defaulted {
			d = "true"
		}
		m.Generated.WithLabelValues(gender, d).Inc()
	}
}

// IncrementValidation records a validation outcome. reason is empty for valid identifiers.
func (m *Metrics) IncrementValidation(valid bool, reason string) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	m.Validations.WithLabelValues(outcome, reason).Inc()
}
