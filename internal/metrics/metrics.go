// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction outcomes used as the "outcome" label.
const (
	OutcomeSuccess             = "success"
	OutcomeValidationError     = "validation_error"
	OutcomeScalingError        = "scaling_error"
	OutcomeClassificationError = "classification_error"
	OutcomeUnavailable         = "unavailable"
	OutcomeCanceled            = "canceled"
)

// Pipeline warning kinds used as the "kind" label.
const (
	WarningDerivedFeature   = "derived_feature"
	WarningSimilarityLookup = "similarity_lookup"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Prediction Pipeline Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dogmatch_predictions_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dogmatch_prediction_duration_seconds",
			Help:    "Duration of the recommendation pipeline in seconds",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
		[]string{"outcome"},
	)

	PredictedBreeds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dogmatch_predicted_breed_total",
			Help: "Number of times each breed was the primary prediction",
		},
		[]string{"breed"},
	)

	PipelineWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dogmatch_pipeline_warnings_total",
			Help: "Non-fatal pipeline failures that degraded a result",
		},
		[]string{"kind"},
	)

	// Artifact Metrics
	ArtifactsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dogmatch_artifacts_loaded",
			Help: "1 when the model artifacts are loaded, 0 otherwise",
		},
	)

	ArtifactLoadAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dogmatch_artifact_load_attempts_total",
			Help: "Artifact load attempts by result",
		},
		[]string{"result"}, // "success", "failure"
	)

	ArtifactLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dogmatch_artifact_load_duration_seconds",
			Help:    "Time taken to load the model artifacts",
			Buckets: prometheus.DefBuckets,
		},
	)

	ReferenceRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dogmatch_reference_rows",
			Help: "Number of rows in the loaded reference dataset",
		},
	)

	// Cache Metrics (General)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_expired_total",
			Help: "Total number of cache entries removed by the TTL sweeper",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_evicted_entries",
			Help: "Entries evicted to stay within capacity since the cache was created",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPrediction records one recommendation request and its pipeline duration.
// The predicted breed is counted only for successful requests.
func RecordPrediction(outcome, breed string, duration time.Duration) {
	PredictionsTotal.WithLabelValues(outcome).Inc()
	PredictionDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	if outcome == OutcomeSuccess && breed != "" {
		PredictedBreeds.WithLabelValues(breed).Inc()
	}
}

// RecordPipelineWarning records a degraded but successful pipeline step
func RecordPipelineWarning(kind string) {
	PipelineWarnings.WithLabelValues(kind).Inc()
}

// RecordArtifactLoad records an artifact load attempt
func RecordArtifactLoad(duration time.Duration, referenceRows int, err error) {
	ArtifactLoadDuration.Observe(duration.Seconds())
	if err != nil {
		ArtifactLoadAttempts.WithLabelValues("failure").Inc()
		ArtifactsLoaded.Set(0)
		return
	}
	ArtifactLoadAttempts.WithLabelValues("success").Inc()
	ArtifactsLoaded.Set(1)
	ReferenceRows.Set(float64(referenceRows))
}

// RecordCacheLookup records a hit or miss for the named cache
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// UpdateCacheSize sets the current entry count of the named cache
func UpdateCacheSize(cacheType string, entries int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
}

// RecordCacheSweep records one TTL sweep of the named cache
func RecordCacheSweep(cacheType string, expired, entries int, evictions int64) {
	CacheExpired.WithLabelValues(cacheType).Add(float64(expired))
	CacheSize.WithLabelValues(cacheType).Set(float64(entries))
	CacheEvictions.WithLabelValues(cacheType).Set(float64(evictions))
}

// SetAppInfo publishes the running version
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
