// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dogmatch/internal/logging"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error          string                 `json:"error"`
	RequiredFields []string               `json:"required_fields,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
	RequestID      string                 `json:"request_id,omitempty"`
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		status = http.StatusInternalServerError
		data = []byte(`{"error":"` + msgInternal + `"}`)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes an ErrorResponse tagged with the request ID.
func respondError(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	body.RequestID = logging.RequestIDFromContext(r.Context())
	respondJSON(w, status, body)
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
