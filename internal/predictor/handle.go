// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package predictor

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/dogmatch/internal/artifacts"
	"github.com/tomtom215/dogmatch/internal/logging"
	"github.com/tomtom215/dogmatch/internal/metrics"
)

// Loader reads an artifact bundle from a directory.
type Loader func(dir string) (*artifacts.Bundle, error)

// Handle owns the process-wide Service. The first caller loads the
// artifacts; a failed load is reported as UnavailableError and retried on
// the next call.
type Handle struct {
	dir  string
	load Loader
	opts []Option

	mu       sync.Mutex
	svc      *Service
	lastErr  error
	attempts int
}

// NewHandle returns a handle that loads artifacts from dir with artifacts.Load.
func NewHandle(dir string, opts ...Option) *Handle {
	return NewHandleWithLoader(dir, artifacts.Load, opts...)
}

// NewHandleWithLoader returns a handle using a custom loader.
func NewHandleWithLoader(dir string, load Loader, opts ...Option) *Handle {
	return &Handle{dir: dir, load: load, opts: opts}
}

// Service returns the loaded service, loading it first if necessary.
func (h *Handle) Service(ctx context.Context) (*Service, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.svc != nil {
		return h.svc, nil
	}
	if err := h.loadLocked(ctx); err != nil {
		return nil, err
	}
	return h.svc, nil
}

// Load loads the artifacts eagerly. It is a no-op once loaded.
func (h *Handle) Load(ctx context.Context) error {
	_, err := h.Service(ctx)
	return err
}

func (h *Handle) loadLocked(ctx context.Context) error {
	start := time.Now()
	h.attempts++

	bundle, err := h.load(h.dir)
	var svc *Service
	if err == nil {
		svc, err = New(bundle, h.opts...)
	}

	refRows := 0
	if err == nil {
		refRows = bundle.Reference.Len()
	}
	metrics.RecordArtifactLoad(time.Since(start), refRows, err)

	if err != nil {
		h.lastErr = err
		logging.Ctx(ctx).Error().Err(err).
			Str("dir", h.dir).
			Int("attempt", h.attempts).
			Msg("failed to load model artifacts")
		return &UnavailableError{Err: err}
	}

	h.svc = svc
	h.lastErr = nil
	logging.Ctx(ctx).Info().
		Str("dir", h.dir).
		Str("model_type", bundle.ModelType).
		Int("breeds", len(bundle.Schema.BreedNames())).
		Int("reference_rows", refRows).
		Dur("duration", time.Since(start)).
		Msg("model artifacts loaded")
	return nil
}

// Current returns the loaded service without triggering a load.
func (h *Handle) Current() (*Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.svc, h.svc != nil
}

// SweepCache sweeps the loaded service's result cache. It does nothing
// before the model is loaded.
func (h *Handle) SweepCache() int {
	svc, ok := h.Current()
	if !ok {
		return 0
	}
	return svc.SweepCache()
}

// Loaded reports whether the service is ready without triggering a load.
func (h *Handle) Loaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.svc != nil
}

// Status is a snapshot of the handle state.
type Status struct {
	Loaded    bool      `json:"loaded"`
	Dir       string    `json:"dir"`
	LoadedAt  time.Time `json:"loaded_at,omitempty"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

// Status reports the handle state without triggering a load.
func (h *Handle) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()

	st := Status{Loaded: h.svc != nil, Dir: h.dir, Attempts: h.attempts}
	if h.svc != nil {
		st.LoadedAt = h.svc.LoadedAt()
	}
	if h.lastErr != nil {
		st.LastError = h.lastErr.Error()
	}
	return st
}
