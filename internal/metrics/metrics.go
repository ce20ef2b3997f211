// Estimo - Property Valuation and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/estimo

// Package metrics defines the service's Prometheus instruments and small
// helpers that record into them. Instruments register with the default
// registry at init and are exposed by promhttp on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes.
const (
	PredictionSuccess = "success"
	PredictionInvalid = "invalid"
	PredictionFailed  = "failed"
)

// Reload outcomes.
const (
	ReloadSuccess   = "success"
	ReloadFailure   = "failure"
	ReloadRejected  = "rejected" // breaker open
	ReloadThrottled = "throttled"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimo_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "estimo_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "estimo_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimo_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Valuation
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimo_predictions_total",
			Help: "Total number of price predictions by outcome",
		},
		[]string{"result"},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimo_prediction_duration_seconds",
			Help:    "Time to encode features and evaluate the model",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// Recommendations
	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimo_recommendation_results",
			Help:    "Number of listings returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimo_recommendation_duration_seconds",
			Help:    "Time to filter and rank recommendations",
			Buckets: prometheus.DefBuckets,
		},
	)

	SimilarCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estimo_similar_cache_hits_total",
			Help: "Total number of similar-properties cache hits",
		},
	)

	SimilarCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "estimo_similar_cache_misses_total",
			Help: "Total number of similar-properties cache misses",
		},
	)

	// Data
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "estimo_catalog_records",
			Help: "Number of listings in the active catalog",
		},
	)

	CatalogRowsSkipped = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "estimo_catalog_rows_skipped",
			Help: "Rows skipped while loading the active catalog, by reason",
		},
		[]string{"reason"},
	)

	SnapshotGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "estimo_snapshot_generation",
			Help: "Generation number of the published data snapshot",
		},
	)

	SnapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "estimo_snapshot_build_duration_seconds",
			Help:    "Time to load the catalog and model into a snapshot",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "estimo_reloads_total",
			Help: "Total number of snapshot reload attempts by result",
		},
		[]string{"result"},
	)

	ReloadBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "estimo_reload_breaker_state",
			Help: "Reload circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPrediction records one prediction and its outcome.
func RecordPrediction(result string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(result).Inc()
	if result == PredictionSuccess {
		PredictionDuration.Observe(duration.Seconds())
	}
}

// RecordRecommendation records a recommendation result size.
func RecordRecommendation(results int, duration time.Duration) {
	RecommendationResults.Observe(float64(results))
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordSimilarCache counts a similar-properties cache lookup.
func RecordSimilarCache(hit bool) {
	if hit {
		SimilarCacheHits.Inc()
	} else {
		SimilarCacheMisses.Inc()
	}
}

// RecordCatalogLoad publishes the size and skip counts of a newly active
// catalog, replacing the previous catalog's values.
func RecordCatalogLoad(records int, skippedByReason map[string]int) {
	CatalogRecords.Set(float64(records))
	CatalogRowsSkipped.Reset()
	for reason, n := range skippedByReason {
		CatalogRowsSkipped.WithLabelValues(reason).Set(float64(n))
	}
}

// RecordSnapshot publishes a new snapshot generation.
func RecordSnapshot(generation uint64, buildDuration time.Duration) {
	SnapshotGeneration.Set(float64(generation))
	SnapshotBuildDuration.Observe(buildDuration.Seconds())
}

// RecordReload counts a reload attempt.
func RecordReload(result string) {
	ReloadsTotal.WithLabelValues(result).Inc()
}

// SetReloadBreakerState publishes the breaker state by name.
func SetReloadBreakerState(state string) {
	switch state {
	case "closed":
		ReloadBreakerState.Set(0)
	case "half-open":
		ReloadBreakerState.Set(1)
	case "open":
		ReloadBreakerState.Set(2)
	}
}
