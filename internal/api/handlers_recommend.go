// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dogmatch/internal/features"
	"github.com/tomtom215/dogmatch/internal/logging"
	"github.com/tomtom215/dogmatch/internal/validation"
)

// Recommend handles POST /api/recommend.
//
// The body must be a non-empty JSON object carrying every schema feature.
// Missing fields are reported with the full required list before the model
// is touched; everything else is validated by the pipeline.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	logger := logging.Ctx(r.Context())

	query, err := parseRecommendQuery(r, h.config.API.DefaultTopK)
	if err != nil {
		body := ErrorResponse{Error: "invalid query: " + err.Error()}
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			body.Details = verr.Details()
		}
		respondError(w, r, http.StatusBadRequest, body)
		return
	}

	prefs, status, err := h.decodePreferences(w, r)
	if err != nil {
		respondError(w, r, status, ErrorResponse{Error: err.Error()})
		return
	}

	required := h.requiredFields()
	if missing := missingFields(prefs, required); len(missing) > 0 {
		respondError(w, r, http.StatusBadRequest, ErrorResponse{
			Error:          "missing required fields: " + strings.Join(missing, ", "),
			RequiredFields: required,
		})
		return
	}

	svc, err := h.model.Service(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Recommendation rejected: model unavailable")
		respondError(w, r, http.StatusServiceUnavailable, ErrorResponse{Error: msgUnavailable})
		return
	}

	result, err := svc.Recommend(r.Context(), prefs, query.TopK)
	if err != nil {
		h.respondPipelineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result.WithMetadata(h.apiVersion(), time.Now()))
}

// decodePreferences reads the request body as a JSON object. The returned
// status is meaningful only when err is non-nil.
func (h *Handler) decodePreferences(w http.ResponseWriter, r *http.Request) (features.Preferences, int, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.config.API.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge,
				fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, http.StatusBadRequest, errors.New("failed to read request body")
	}

	var prefs features.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, http.StatusBadRequest, errors.New("JSON object body is required")
	}
	if len(prefs) == 0 {
		return nil, http.StatusBadRequest, errors.New("JSON object body is required")
	}
	return prefs, http.StatusOK, nil
}

// respondPipelineError maps a Recommend error to a response. Validation
// errors carry their details; other causes are logged and hidden.
func (h *Handler) respondPipelineError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusBadRequest:
		respondError(w, r, status, ErrorResponse{
			Error:   "validation error: " + err.Error(),
			Details: validationDetails(err),
		})
	case http.StatusServiceUnavailable:
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Recommendation unavailable")
		respondError(w, r, status, ErrorResponse{Error: msgUnavailable})
	default:
		logging.Ctx(r.Context()).Error().
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Recommendation pipeline failed")
		respondError(w, r, status, ErrorResponse{Error: msgInternal})
	}
}

// requiredFields returns the loaded schema's feature columns, or the
// canonical list while the model is not loaded yet.
func (h *Handler) requiredFields() []string {
	if svc, ok := h.model.Current(); ok {
		return svc.Schema().FeatureColumns()
	}
	return features.CanonicalFeatures()
}

// missingFields returns the names in required that prefs lacks, in order.
func missingFields(prefs features.Preferences, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := prefs[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
