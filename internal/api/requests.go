// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/tomtom215/dogmatch/internal/validation"
)

// MaxTopK bounds the top_k query parameter.
const MaxTopK = 100

// RecommendQuery holds the validated query parameters of POST /api/recommend.
type RecommendQuery struct {
	TopK int `json:"top_k" validate:"min=1,max=100"`
}

// parseRecommendQuery reads top_k, falling back to defaultTopK when absent.
func parseRecommendQuery(r *http.Request, defaultTopK int) (RecommendQuery, error) {
	q := RecommendQuery{TopK: defaultTopK}

	if raw := r.URL.Query().Get("top_k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("top_k must be an integer, got %q", raw)
		}
		q.TopK = n
	}

	if verr := validation.ValidateStruct(&q); verr != nil {
		return q, verr
	}
	return q, nil
}
