// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"net/http"
	"testing"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	rec := do(t, newUnavailableServer(t), http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body IndexResponse
	decodeBody(t, rec, &body)
	if body.Status != "online" || body.Version != "1.0.0" {
		t.Errorf("index = %+v", body)
	}
	if _, ok := body.Endpoints["POST /api/recommend"]; !ok {
		t.Errorf("endpoints = %v", body.Endpoints)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		available   bool
		wantStatus  int
		wantHealth  string
		wantLoaded  bool
		wantMessage bool
	}{
		{"model loaded", true, http.StatusOK, "healthy", true, true},
		{"model unavailable", false, http.StatusServiceUnavailable, "unhealthy", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newUnavailableServer(t)
			if tt.available {
				srv = newTestServer(t, nil)
			}

			rec := do(t, srv, http.MethodGet, "/api/health", nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body HealthResponse
			decodeBody(t, rec, &body)
			if body.Status != tt.wantHealth || body.ModelLoaded != tt.wantLoaded {
				t.Errorf("health = %+v", body)
			}
			if tt.wantMessage && body.Message == "" {
				t.Error("message should be set when healthy")
			}
			if !tt.wantMessage && body.Error == "" {
				t.Error("error should be set when unhealthy")
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	rec := do(t, newUnavailableServer(t), http.MethodGet, "/api/health/live", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["alive"] != true {
		t.Errorf("live = %v", body)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	// Readiness never triggers a load.
	rec := do(t, srv, http.MethodGet, "/api/health/ready", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before load = %d", rec.Code)
	}

	if rec := do(t, srv, http.MethodGet, "/api/health", nil); rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}

	rec = do(t, srv, http.MethodGet, "/api/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status after load = %d, body = %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["ready"] != true || body["attempts"] != float64(1) {
		t.Errorf("ready = %v", body)
	}
}

func TestHealthReady_ReportsLastError(t *testing.T) {
	t.Parallel()

	srv := newUnavailableServer(t)
	do(t, srv, http.MethodGet, "/api/health", nil)

	rec := do(t, srv, http.MethodGet, "/api/health/ready", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["ready"] != false || body["error"] == nil {
		t.Errorf("ready = %v", body)
	}
}
