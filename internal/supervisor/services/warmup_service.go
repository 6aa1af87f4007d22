// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/dogmatch/internal/logging"
)

// ModelLoader loads the model artifacts. *predictor.Handle satisfies it.
type ModelLoader interface {
	Load(ctx context.Context) error
}

// ModelWarmupService loads the model once at startup so the first
// recommendation does not pay the artifact load.
//
// A failed load is returned as an error and the supervisor retries it with
// its failure backoff. Requests arriving meanwhile still trigger a lazy load
// through the handle. After a successful load the service returns
// suture.ErrDoNotRestart and is removed from the tree.
type ModelWarmupService struct {
	loader ModelLoader
	name   string
}

// NewModelWarmupService creates the warm-up service.
func NewModelWarmupService(loader ModelLoader) *ModelWarmupService {
	return &ModelWarmupService{
		loader: loader,
		name:   "model-warmup",
	}
}

// Serve implements suture.Service.
func (s *ModelWarmupService) Serve(ctx context.Context) error {
	start := time.Now()
	if err := s.loader.Load(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("model warm-up failed: %w", err)
	}

	logging.Info().
		Str("service", s.name).
		Dur("duration", time.Since(start)).
		Msg("Model warm-up complete")
	return suture.ErrDoNotRestart
}

// String identifies the service in supervisor events.
func (s *ModelWarmupService) String() string {
	return s.name
}
