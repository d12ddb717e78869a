package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Discovery runs, with how many schemes came back eligible
	DiscoveryRuns   prometheus.Counter
	EligibleSchemes prometheus.Histogram
	Verifications   *prometheus.CounterVec
}

// New creates a new Metrics instance with all eligibility metrics registered.
func New() *Metrics {
	return &Metrics{
		DiscoveryRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jansetu_eligibility_discovery_runs_total",
			Help: "Total scheme discovery evaluations",
		}),
		EligibleSchemes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "jansetu_eligibility_eligible_schemes",
			Help:    "Number of eligible schemes found per discovery run",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 12, 16},
		}),
		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "jansetu_eligibility_verifications_total",
			Help: "Single-scheme eligibility checks by scheme and outcome",
		}, []string{"scheme_id", "eligible"}),
	}
}

// ObserveDiscovery records one discovery run and its eligible count.
func (m *Metrics) ObserveDiscovery(total, eligible int) {
	if m != nil {
		m.DiscoveryRuns.Inc()
		m.EligibleSchemes.Observe(float64(eligible))
	}
}

// IncrementVerification records a single-scheme check.
func (m *Metrics) IncrementVerification(schemeID string, eligible bool) {
	if m != nil {
		outcome := "false"
		if eligible {
			outcome = "true"
		}
		m.Verifications.WithLabelValues(schemeID, outcome).Inc()
	}
}
