package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Outbound delivery latency in seconds
	EmailDispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_dispatch_duration_seconds",
			Help:    "Duration of a single email delivery attempt in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"backend", "status"},
	)

	// Contact submissions by outcome
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"outcome"}, // outcome: sent, invalid, failed, rate_limited
	)
)

// Contact submission outcomes
const (
	OutcomeSent        = "sent"
	OutcomeInvalid     = "invalid"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
)

// RecordHTTPRequestDuration records a finished HTTP request
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDispatch records one delivery attempt
func RecordDispatch(backend string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failed"
	}
	EmailDispatchDuration.WithLabelValues(backend, status).Observe(duration.Seconds())
}

// IncrementContactSubmission counts a contact submission by outcome
func IncrementContactSubmission(outcome string) {
	ContactSubmissions.WithLabelValues(outcome).Inc()
}
