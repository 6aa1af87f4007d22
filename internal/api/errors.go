// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/dogmatch/internal/artifacts"
	"github.com/tomtom215/dogmatch/internal/features"
	"github.com/tomtom215/dogmatch/internal/predictor"
)

// Messages for errors whose cause is not shown to clients.
const (
	msgInternal    = "internal server error"
	msgUnavailable = "model not available"
)

// statusFor maps a pipeline error to an HTTP status code.
func statusFor(err error) int {
	var (
		unavailable *predictor.UnavailableError
		loadErr     *artifacts.ArtifactLoadError
	)
	switch {
	case features.IsValidationError(err):
		return http.StatusBadRequest
	case errors.As(err, &unavailable), errors.As(err, &loadErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validationDetails returns the structured fields of a validation error.
func validationDetails(err error) map[string]interface{} {
	var (
		missing     *features.MissingFeaturesError
		numeric     *features.InvalidNumericValueError
		categorical *features.UnknownCategoricalValueError
	)
	switch {
	case errors.As(err, &missing):
		return map[string]interface{}{"missing_fields": missing.Names}
	case errors.As(err, &numeric):
		return map[string]interface{}{"field": numeric.Field, "value": numeric.Value}
	case errors.As(err, &categorical):
		return map[string]interface{}{
			"field":           categorical.Field,
			"value":           categorical.Value,
			"accepted_values": categorical.Accepted,
		}
	default:
		return nil
	}
}
