package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the application module.
type Metrics struct {
	Submissions   *prometheus.CounterVec
	TierFallbacks prometheus.Counter
	Attempts      prometheus.Histogram
}

// New creates a new Metrics instance with all application metrics registered.
func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "jansetu_application_submissions_total",
			Help: "Application submissions by scheme and final status",
		}, []string{"scheme_id", "status"}),
		TierFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "jansetu_application_tier_fallbacks_total",
			Help: "Submissions that fell back to a higher execution tier",
		}),
		Attempts: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "jansetu_application_submission_attempts",
			Help:    "Submission attempts made per application",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		}),
	}
}

// IncrementSubmission records one finished submission.
func (m *Metrics) IncrementSubmission(schemeID, status string) {
	if m != nil {
		m.Submissions.WithLabelValues(schemeID, status).Inc()
	}
}

// IncrementFallback records one tier fallback.
func (m *Metrics) IncrementFallback() {
	if m != nil {
		m.TierFallbacks.Inc()
	}
}

// ObserveAttempts records how many attempts a submission took.
func (m *Metrics) ObserveAttempts(n int) {
	if m != nil {
		m.Attempts.Observe(float64(n))
	}
}
