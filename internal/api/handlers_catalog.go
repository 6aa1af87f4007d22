// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"net/http"

	"github.com/tomtom215/dogmatch/internal/features"
	"github.com/tomtom215/dogmatch/internal/logging"
	"github.com/tomtom215/dogmatch/internal/predictor"
)

// BreedsResponse is the body of GET /api/breeds.
type BreedsResponse struct {
	Breeds      []string `json:"breeds"`
	TotalBreeds int      `json:"total_breeds"`
	APIVersion  string   `json:"api_version"`
}

// FeatureSummary groups the input columns by kind.
type FeatureSummary struct {
	Categorical []string `json:"categorical"`
	Numeric     []string `json:"numeric"`
	Total       int      `json:"total"`
}

// FeaturesResponse is the body of GET /api/features.
type FeaturesResponse struct {
	Features          FeatureSummary      `json:"features"`
	CategoricalValues map[string][]string `json:"categorical_values"`
	APIVersion        string              `json:"api_version"`
}

// ModelInfoResponse is the body of GET /api/model-info.
type ModelInfoResponse struct {
	Model      predictor.ModelInfo `json:"model"`
	APIVersion string              `json:"api_version"`
}

// ExampleResponse is the body of GET /api/example.
type ExampleResponse struct {
	ExampleInput features.Preferences `json:"example_input"`
	Description  string               `json:"description"`
	Usage        string               `json:"usage"`
}

// service returns the loaded predictor or writes a 503.
func (h *Handler) service(w http.ResponseWriter, r *http.Request) (*predictor.Service, bool) {
	svc, err := h.model.Service(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Model unavailable")
		respondError(w, r, http.StatusServiceUnavailable, ErrorResponse{Error: msgUnavailable})
		return nil, false
	}
	return svc, true
}

// Breeds lists the breed names known to the classifier.
func (h *Handler) Breeds(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	names := svc.FeatureInfo().BreedNames
	respondJSON(w, http.StatusOK, BreedsResponse{
		Breeds:      names,
		TotalBreeds: len(names),
		APIVersion:  h.apiVersion(),
	})
}

// Features describes the input schema.
func (h *Handler) Features(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	info := svc.FeatureInfo()
	respondJSON(w, http.StatusOK, FeaturesResponse{
		Features: FeatureSummary{
			Categorical: info.CategoricalColumns,
			Numeric:     info.NumericColumns,
			Total:       len(info.FeatureColumns),
		},
		CategoricalValues: info.CategoricalValues,
		APIVersion:        h.apiVersion(),
	})
}

// ModelInfo summarizes the loaded models.
func (h *Handler) ModelInfo(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, ModelInfoResponse{
		Model:      svc.ModelInfo(),
		APIVersion: h.apiVersion(),
	})
}

// Example returns a complete request body for POST /api/recommend. It does
// not need the model.
func (h *Handler) Example(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ExampleResponse{
		ExampleInput: features.ExamplePreferences(),
		Description:  "Example input for the /api/recommend endpoint",
		Usage:        "POST /api/recommend with this JSON as the body",
	})
}
