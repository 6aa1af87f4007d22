// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/dogmatch/internal/config"
	"github.com/tomtom215/dogmatch/internal/logging"
	"github.com/tomtom215/dogmatch/internal/metrics"
	"github.com/tomtom215/dogmatch/internal/middleware"
)

// ChiMiddlewareConfig holds configuration for Chi middleware factories.
type ChiMiddlewareConfig struct {
	// CORS configuration
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// Rate limiting configuration
	RateLimitRequests          int
	RateLimitWindow            time.Duration
	RateLimitDisabled          bool
	RecommendRateLimitRequests int
}

// DefaultChiMiddlewareConfig returns the defaults used when no config is given.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{"*"},
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", middleware.HeaderRequestID, middleware.HeaderCorrelationID},
		CORSExposedHeaders:   []string{middleware.HeaderRequestID, middleware.HeaderCorrelationID},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400, // 24 hours

		RateLimitRequests:          100,
		RateLimitWindow:            time.Minute,
		RateLimitDisabled:          false,
		RecommendRateLimitRequests: 30,
	}
}

// ChiMiddlewareConfigFrom builds the middleware configuration from the
// application's security settings.
func ChiMiddlewareConfigFrom(cfg *config.Config) *ChiMiddlewareConfig {
	mc := DefaultChiMiddlewareConfig()
	if cfg == nil {
		return mc
	}
	mc.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mc.RateLimitRequests = cfg.Security.RateLimitReqs
	mc.RateLimitWindow = cfg.Security.RateLimitWindow
	mc.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mc.RecommendRateLimitRequests = cfg.Security.RecommendRateLimitReqs
	return mc
}

// ChiMiddleware provides Chi-compatible middleware factories.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a new Chi middleware factory with the given configuration.
func NewChiMiddleware(mc *ChiMiddlewareConfig) *ChiMiddleware {
	if mc == nil {
		mc = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   mc.CORSAllowedOrigins,
		AllowedMethods:   mc.CORSAllowedMethods,
		AllowedHeaders:   mc.CORSAllowedHeaders,
		ExposedHeaders:   mc.CORSExposedHeaders,
		AllowCredentials: mc.CORSAllowCredentials,
		MaxAge:           mc.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: mc,
		cors:   corsHandler,
	}
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the default per-IP rate limiter.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.rateLimit(m.config.RateLimitRequests)
}

// RateLimitRecommend returns the stricter per-IP limiter for the prediction
// endpoint, which does the most work per request.
func (m *ChiMiddleware) RateLimitRecommend() func(http.Handler) http.Handler {
	return m.rateLimit(m.config.RecommendRateLimitRequests)
}

func (m *ChiMiddleware) rateLimit(requests int) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		requests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

// rateLimitExceeded answers 429 in the API error format and counts the rejection.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	route := middleware.RoutePattern(r)
	metrics.RecordRateLimitHit(route)
	logging.Ctx(r.Context()).Warn().
		Str("route", route).
		Str("remote_addr", sanitizeLogValue(r.RemoteAddr)).
		Msg("Rate limit exceeded")
	respondError(w, r, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
}

// APISecurityHeaders returns a middleware that adds security headers to API responses.
//
// Headers added:
//   - X-Content-Type-Options: nosniff
//   - X-Frame-Options: DENY
//   - Cache-Control: no-store
//   - Referrer-Policy: strict-origin-when-cross-origin
//   - Strict-Transport-Security when the request arrived over HTTPS
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
