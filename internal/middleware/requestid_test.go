// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/dogmatch/internal/logging"
)

// captureIDs returns a handler that records the IDs found in the request context.
func captureIDs(requestID, correlationID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requestID = logging.RequestIDFromContext(r.Context())
		*correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_GeneratesNewIDs(t *testing.T) {
	t.Parallel()

	var requestID, correlationID string
	handler := RequestID(captureIDs(&requestID, &correlationID))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	header := rec.Header().Get(HeaderRequestID)
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID: %v", header, err)
	}
	if requestID != header {
		t.Errorf("context request ID %q != header %q", requestID, header)
	}
	if len(correlationID) != 8 {
		t.Errorf("correlation ID %q should be 8 characters", correlationID)
	}
	if rec.Header().Get(HeaderCorrelationID) != correlationID {
		t.Error("X-Correlation-ID header should match context")
	}
}

func TestRequestID_PreservesUpstreamIDs(t *testing.T) {
	t.Parallel()

	var requestID, correlationID string
	handler := RequestID(captureIDs(&requestID, &correlationID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "upstream-request")
	req.Header.Set(HeaderCorrelationID, "upstream-corr")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if requestID != "upstream-request" || rec.Header().Get(HeaderRequestID) != "upstream-request" {
		t.Errorf("request ID not preserved: ctx=%q header=%q", requestID, rec.Header().Get(HeaderRequestID))
	}
	if correlationID != "upstream-corr" {
		t.Errorf("correlation ID = %q", correlationID)
	}
}

func TestRequestID_RejectsOversizedHeader(t *testing.T) {
	t.Parallel()

	var requestID, correlationID string
	handler := RequestID(captureIDs(&requestID, &correlationID))

	oversized := strings.Repeat("x", maxIDLength+1)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, oversized)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if requestID == oversized {
		t.Error("oversized request ID should be replaced")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("replacement %q is not a UUID", requestID)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(HeaderRequestID)
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}
