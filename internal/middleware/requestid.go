// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package middleware

import (
	"net/http"

	"github.com/tomtom215/dogmatch/internal/logging"
)

// Header names used for request tracing.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxIDLength bounds identifiers accepted from upstream proxies.
const maxIDLength = 128

// RequestID assigns a request ID and a correlation ID to every request.
// An X-Request-ID or X-Correlation-ID sent by an upstream proxy is reused;
// otherwise new IDs are generated. Both are echoed in the response headers and
// stored in the request context for logging.Ctx.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := headerID(r, HeaderRequestID)
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		correlationID := headerID(r, HeaderCorrelationID)
		if correlationID == "" {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(HeaderRequestID, requestID)
		w.Header().Set(HeaderCorrelationID, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func headerID(r *http.Request, name string) string {
	id := r.Header.Get(name)
	if len(id) > maxIDLength {
		return ""
	}
	return id
}
