// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps the validator in a thread-safe singleton (struct metadata is
// cached after first use) and translates failures into short messages keyed
// by JSON field name.
//
// Two kinds of structs are validated:
//
//   - HTTP query parameters, e.g. the recommend endpoint's top_k
//   - Artifact descriptors decoded from the model directory
//
// Example:
//
//	type RecommendQuery struct {
//	    TopK int `json:"top_k" validate:"min=1,max=100"`
//	}
//
//	if err := validation.ValidateStruct(&q); err != nil {
//	    respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), err.Details())
//	    return
//	}
package validation
