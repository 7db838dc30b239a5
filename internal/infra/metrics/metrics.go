package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IssuanceDuration tracks the latency of redemption-token issuance
	IssuanceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redemption_issue_duration_seconds",
			Help:    "Duration of redemption token issuance in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"status"}, // success or failed
	)

	// RedemptionDuration tracks verification latency per verdict
	RedemptionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redemption_verify_duration_seconds",
			Help:    "Duration of redemption token verification in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"outcome"}, // valid, token expired, token already used, ...
	)
)

func RecordIssuance(status string, duration float64) {
	IssuanceDuration.WithLabelValues(status).Observe(duration)
}

func RecordRedemption(outcome string, duration float64) {
	RedemptionDuration.WithLabelValues(outcome).Observe(duration)
}
