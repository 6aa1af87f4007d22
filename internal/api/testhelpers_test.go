// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dogmatch/internal/artifacts"
	"github.com/tomtom215/dogmatch/internal/artifacts/artifactstest"
	"github.com/tomtom215/dogmatch/internal/config"
	"github.com/tomtom215/dogmatch/internal/predictor"
)

// testConfig mirrors the built-in defaults with rate limiting disabled.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 5000, Host: "127.0.0.1", Environment: "development"},
		API: config.APIConfig{
			Version:      "1.0.0",
			DefaultTopK:  5,
			MaxBodyBytes: 4096,
		},
		Security: config.SecurityConfig{
			CORSOrigins:            []string{"*"},
			RateLimitReqs:          100,
			RateLimitWindow:        time.Minute,
			RateLimitDisabled:      true,
			RecommendRateLimitReqs: 30,
		},
	}
}

// newTestServer returns the full router over a loaded fixture model.
func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	handle := predictor.NewHandle(artifactstest.Dir(t))
	return NewRouter(NewHandler(handle, cfg), cfg).SetupChi()
}

// newUnavailableServer returns a router whose model never loads.
func newUnavailableServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := testConfig()
	failing := func(dir string) (*artifacts.Bundle, error) {
		return nil, errors.New("model.json: no such file or directory")
	}
	handle := predictor.NewHandleWithLoader(t.TempDir(), failing)
	return NewRouter(NewHandler(handle, cfg), cfg).SetupChi()
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, h http.Handler, target string, v interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return do(t, h, http.MethodPost, target, bytes.NewReader(data))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
}
