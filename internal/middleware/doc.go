// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package middleware provides HTTP middleware for the DogMatch API.

All middleware use the chi signature func(http.Handler) http.Handler and are
installed by internal/api:

  - RequestID: X-Request-ID / X-Correlation-ID propagation into logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - Compression: gzip responses (klauspost/compress)

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

CORS and rate limiting come from go-chi/cors and go-chi/httprate and are
configured in internal/api.
*/
package middleware
