// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/dogmatch/internal/logging"
)

// IndexResponse is the body of GET /.
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Index describes the service and its endpoints.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, IndexResponse{
		Message: "DogMatch API - hybrid dog breed recommendation",
		Version: h.apiVersion(),
		Status:  "online",
		Endpoints: map[string]string{
			"POST /api/recommend": "Recommend dog breeds",
			"GET /api/breeds":     "List all breeds",
			"GET /api/health":     "API status",
			"GET /api/features":   "Feature information",
			"GET /api/model-info": "Model information",
			"GET /api/example":    "Example request body",
		},
	})
}

// Health loads the model if it is not loaded yet and reports the result.
// A load failure answers 503 with the cause.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := h.model.Service(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check: model unavailable")
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:      "unhealthy",
			ModelLoaded: false,
			Error:       err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		ModelLoaded: true,
		Message:     "API running normally",
	})
}

// HealthLive answers 200 while the process is alive.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 200 once the artifacts are loaded and 503 before.
// It never triggers a load.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.model.Status()
	body := map[string]interface{}{
		"ready":    status.Loaded,
		"attempts": status.Attempts,
	}
	if status.Loaded {
		body["loaded_at"] = status.LoadedAt
		respondJSON(w, http.StatusOK, body)
		return
	}
	if status.LastError != "" {
		body["error"] = status.LastError
	}
	respondJSON(w, http.StatusServiceUnavailable, body)
}
