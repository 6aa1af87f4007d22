// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"time"

	"github.com/tomtom215/dogmatch/internal/config"
	"github.com/tomtom215/dogmatch/internal/predictor"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: index and health probes
//   - handlers_recommend.go: POST /api/recommend
//   - handlers_catalog.go: breeds, features, model info, example
type Handler struct {
	model     *predictor.Handle
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler. The predictor handle is shared with
// the warm-up service, so a model loaded there is visible here.
//
//	handle := predictor.NewHandle(cfg.Artifacts.Dir)
//	handler := api.NewHandler(handle, cfg)
//	router := api.NewRouter(handler, cfg)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(model *predictor.Handle, cfg *config.Config) *Handler {
	return &Handler{
		model:     model,
		config:    cfg,
		startTime: time.Now(),
	}
}

func (h *Handler) apiVersion() string {
	return h.config.API.Version
}
