// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto at
package init, so importing the package is enough to expose them at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limiter rejections (counter)
    Labels: endpoint

Prediction Metrics:
  - dogmatch_predictions_total: Recommendation requests (counter)
    Labels: outcome (success, validation_error, scaling_error,
    classification_error, unavailable, canceled)
  - dogmatch_prediction_duration_seconds: Pipeline duration (histogram)
    Labels: outcome
  - dogmatch_predicted_breed_total: Primary predictions per breed (counter)
    Labels: breed
  - dogmatch_pipeline_warnings_total: Degraded pipeline steps (counter)
    Labels: kind (derived_feature, similarity_lookup)

Artifact Metrics:
  - dogmatch_artifacts_loaded: 1 once the model is loaded (gauge)
  - dogmatch_artifact_load_attempts_total: Load attempts (counter)
    Labels: result
  - dogmatch_artifact_load_duration_seconds: Load time (histogram)
  - dogmatch_reference_rows: Breeds in the reference dataset (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counter)
    Labels: cache_type
  - cache_entries: Current entry count (gauge)
    Labels: cache_type

# Usage Example

	start := time.Now()
	rec, err := svc.Recommend(ctx, prefs, topK)
	metrics.RecordPrediction(outcome(err), rec.PrimaryBreed(), time.Since(start))

# Cardinality Management

The breed label is bounded by the reference dataset (a few hundred breeds).
Endpoint labels use the chi route pattern, never the raw URL path.

# Thread Safety

All recording functions are safe for concurrent use; the Prometheus client
handles synchronization internally.
*/
package metrics
