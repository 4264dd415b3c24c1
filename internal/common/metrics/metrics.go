// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signup_requests_total",
			Help: "Total number of signup requests by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	UnregisterRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unregister_requests_total",
			Help: "Total number of unregister requests by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	ActivityParticipants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_participants",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "route", "status"},
	)
)

// Outcome label values for the request counters.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
