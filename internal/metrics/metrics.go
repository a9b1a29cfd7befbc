// Package metrics defines the Prometheus collectors exported by the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Requests counts API requests by endpoint and outcome.
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rent_or_own_requests_total",
			Help: "Total API requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	// Errors counts failed requests by handler and error class.
	Errors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rent_or_own_errors_total",
			Help: "Failed API requests by handler and error type.",
		},
		[]string{"handler", "error_type"},
	)

	// Verdicts counts analyzed scenarios by winner.
	Verdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rent_or_own_verdicts_total",
			Help: "Analyzed scenarios by cheaper option.",
		},
		[]string{"winner"},
	)

	// RequestDuration observes request latency by endpoint.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rent_or_own_request_duration_seconds",
			Help:    "API request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Error types used as the error_type label.
const (
	ErrorTypeValidation = "validation"
	ErrorTypeDecode     = "decode"
	ErrorTypeInternal   = "internal"
	ErrorTypeTooLarge   = "too_large"
)
