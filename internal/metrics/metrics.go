package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK              = "ok"
	OutcomePredictionError = "prediction_error"
	OutcomeValidationError = "validation_error"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climatehealth_requests_total",
			Help: "Total number of prediction and prescription requests by outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "climatehealth_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	AlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climatehealth_alerts_raised_total",
			Help: "Alerts emitted by combined analyses",
		},
		[]string{"alert"},
	)

	AnalysesStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "climatehealth_analyses_stored_total",
			Help: "Combined analyses written to the latest-analysis slot",
		},
	)
)
