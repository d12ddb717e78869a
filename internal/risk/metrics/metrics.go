package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the risk module.
type Metrics struct {
	Scores        *prometheus.CounterVec
	Probabilities prometheus.Histogram
}

// New creates a new Metrics instance with all risk metrics registered.
func New() *Metrics {
	return &Metrics{
		Scores: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "jansetu_risk_scores_total",
			Help: "Risk scores produced by scheme and resulting level",
		}, []string{"scheme_id", "risk_level"}),
		Probabilities: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "jansetu_risk_rejection_probability",
			Help:    "Distribution of predicted rejection probabilities",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		}),
	}
}

// IncrementScore records one scoring outcome.
func (m *Metrics) IncrementScore(schemeID, riskLevel string) {
	if m != nil {
		m.Scores.WithLabelValues(schemeID, riskLevel).Inc()
	}
}

// ObserveProbability records a predicted probability.
func (m *Metrics) ObserveProbability(p float64) {
	if m != nil {
		m.Probabilities.Observe(p)
	}
}
