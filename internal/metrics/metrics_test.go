// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package metrics

import (
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful recommendation",
			method:     "POST",
			endpoint:   "/api/recommend",
			statusCode: "200",
			duration:   3 * time.Millisecond,
		},
		{
			name:       "validation failure",
			method:     "POST",
			endpoint:   "/api/recommend",
			statusCode: "400",
			duration:   time.Millisecond,
		},
		{
			name:       "model unavailable",
			method:     "GET",
			endpoint:   "/api/breeds",
			statusCode: "503",
			duration:   time.Millisecond,
		},
		{
			name:       "rate limited request",
			method:     "POST",
			endpoint:   "/api/recommend",
			statusCode: "429",
			duration:   100 * time.Microsecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("api_requests_total delta = %v, want 1", after-before)
			}
		})
	}
}

// TestTrackActiveRequest_RequestLifecycle simulates a realistic request lifecycle
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	for i := 0; i < 10; i++ {
		TrackActiveRequest(true)
	}
	if got := testutil.ToFloat64(APIActiveRequests) - start; got != 10 {
		t.Errorf("active requests = %v, want 10", got)
	}

	for i := 0; i < 10; i++ {
		TrackActiveRequest(false)
	}
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests = %v, want %v", got, start)
	}
}

func TestRecordPrediction(t *testing.T) {
	success := PredictionsTotal.WithLabelValues(OutcomeSuccess)
	invalid := PredictionsTotal.WithLabelValues(OutcomeValidationError)
	breed := PredictedBreeds.WithLabelValues("Metrics Test Terrier")

	beforeSuccess := testutil.ToFloat64(success)
	beforeInvalid := testutil.ToFloat64(invalid)
	beforeBreed := testutil.ToFloat64(breed)

	RecordPrediction(OutcomeSuccess, "Metrics Test Terrier", 2*time.Millisecond)
	RecordPrediction(OutcomeValidationError, "Metrics Test Terrier", time.Millisecond)

	if got := testutil.ToFloat64(success) - beforeSuccess; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(invalid) - beforeInvalid; got != 1 {
		t.Errorf("validation_error delta = %v, want 1", got)
	}
	// Only the successful request counts towards the breed.
	if got := testutil.ToFloat64(breed) - beforeBreed; got != 1 {
		t.Errorf("breed delta = %v, want 1", got)
	}
}

// histogramCount reads the sample count of a histogram series.
func histogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	var m dto.Metric
	if err := o.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordPrediction_Duration(t *testing.T) {
	series := PredictionDuration.WithLabelValues(OutcomeCanceled)
	before := histogramCount(t, series)

	RecordPrediction(OutcomeCanceled, "", 300*time.Microsecond)
	RecordPrediction(OutcomeCanceled, "", 40*time.Millisecond)

	if got := histogramCount(t, series) - before; got != 2 {
		t.Errorf("duration sample delta = %d, want 2", got)
	}
}

func TestRecordPipelineWarning(t *testing.T) {
	for _, kind := range []string{WarningDerivedFeature, WarningSimilarityLookup} {
		c := PipelineWarnings.WithLabelValues(kind)
		before := testutil.ToFloat64(c)
		RecordPipelineWarning(kind)
		if got := testutil.ToFloat64(c) - before; got != 1 {
			t.Errorf("%s delta = %v, want 1", kind, got)
		}
	}
}

func TestRecordArtifactLoad(t *testing.T) {
	failures := ArtifactLoadAttempts.WithLabelValues("failure")
	successes := ArtifactLoadAttempts.WithLabelValues("success")
	beforeFail := testutil.ToFloat64(failures)
	beforeOK := testutil.ToFloat64(successes)

	RecordArtifactLoad(10*time.Millisecond, 0, errors.New("missing model.json"))
	if testutil.ToFloat64(ArtifactsLoaded) != 0 {
		t.Error("artifacts_loaded should be 0 after a failure")
	}
	if got := testutil.ToFloat64(failures) - beforeFail; got != 1 {
		t.Errorf("failure delta = %v, want 1", got)
	}

	RecordArtifactLoad(20*time.Millisecond, 277, nil)
	if testutil.ToFloat64(ArtifactsLoaded) != 1 {
		t.Error("artifacts_loaded should be 1 after a success")
	}
	if got := testutil.ToFloat64(ReferenceRows); got != 277 {
		t.Errorf("reference rows = %v, want 277", got)
	}
	if got := testutil.ToFloat64(successes) - beforeOK; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
}

func TestCacheMetrics(t *testing.T) {
	hits := CacheHits.WithLabelValues("metrics_test")
	misses := CacheMisses.WithLabelValues("metrics_test")
	beforeHits := testutil.ToFloat64(hits)
	beforeMisses := testutil.ToFloat64(misses)

	RecordCacheLookup("metrics_test", true)
	RecordCacheLookup("metrics_test", true)
	RecordCacheLookup("metrics_test", false)
	UpdateCacheSize("metrics_test", 42)

	if got := testutil.ToFloat64(hits) - beforeHits; got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(misses) - beforeMisses; got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("metrics_test")); got != 42 {
		t.Errorf("size = %v, want 42", got)
	}
}

func TestRecordCacheSweep(t *testing.T) {
	expired := CacheExpired.WithLabelValues("sweep_test")
	before := testutil.ToFloat64(expired)

	RecordCacheSweep("sweep_test", 3, 7, 2)
	RecordCacheSweep("sweep_test", 1, 6, 4)

	if got := testutil.ToFloat64(expired) - before; got != 4 {
		t.Errorf("expired = %v, want 4", got)
	}
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("sweep_test")); got != 6 {
		t.Errorf("size = %v, want 6", got)
	}
	if got := testutil.ToFloat64(CacheEvictions.WithLabelValues("sweep_test")); got != 4 {
		t.Errorf("evictions = %v, want 4", got)
	}
}

func TestRecordRateLimitHit(t *testing.T) {
	c := APIRateLimitHits.WithLabelValues("/api/metrics-test")
	before := testutil.ToFloat64(c)
	RecordRateLimitHit("/api/metrics-test")
	if got := testutil.ToFloat64(c) - before; got != 1 {
		t.Errorf("rate limit hits = %v, want 1", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	c := PredictionsTotal.WithLabelValues(OutcomeCanceled)
	before := testutil.ToFloat64(c)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				RecordPrediction(OutcomeCanceled, "", time.Microsecond)
				RecordAPIRequest("POST", "/api/recommend", "499", time.Microsecond)
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(c) - before; got != 1000 {
		t.Errorf("canceled delta = %v, want 1000", got)
	}
}

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		PredictionsTotal,
		PredictionDuration,
		PredictedBreeds,
		PipelineWarnings,
		ArtifactsLoaded,
		ArtifactLoadAttempts,
		ArtifactLoadDuration,
		ReferenceRows,
		CacheHits,
		CacheMisses,
		CacheSize,
		AppInfo,
		AppUptime,
	}

	for _, m := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

func TestAppInfoAndUptime(t *testing.T) {
	SetAppInfo("1.0.0")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", runtime.Version())); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}

	UpdateUptime(time.Now().Add(-90 * time.Second))
	if got := testutil.ToFloat64(AppUptime); got < 90 {
		t.Errorf("app_uptime_seconds = %v, want >= 90", got)
	}
}

// TestMetricGathering checks the registered metrics for lint problems
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/api/health", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordPrediction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordPrediction(OutcomeSuccess, "Beagle", 500*time.Microsecond)
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("POST", "/api/recommend", "200", 2*time.Millisecond)
	}
}
