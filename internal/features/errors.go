// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for derived feature and vector construction failures.
var (
	// ErrUnmappedCode indicates an encoded categorical value has no score.
	ErrUnmappedCode = errors.New("encoded value has no score")

	// ErrNonFinite indicates a computation produced NaN or Inf.
	ErrNonFinite = errors.New("result is not a finite number")

	// ErrMissingModelColumn indicates a model column is absent from the record.
	ErrMissingModelColumn = errors.New("model column missing from record")
)

// MissingFeaturesError reports schema features absent from the user input.
type MissingFeaturesError struct {
	// Names is the sorted set of missing feature names.
	Names []string
}

func (e *MissingFeaturesError) Error() string {
	return "missing features: " + quoteJoin(e.Names)
}

// InvalidNumericValueError reports a numeric field whose value does not parse.
type InvalidNumericValueError struct {
	Field string
	Value interface{}
}

func (e *InvalidNumericValueError) Error() string {
	return fmt.Sprintf("%q must be a number, got %v", e.Field, e.Value)
}

// UnknownCategoricalValueError reports a categorical value outside the
// field's accepted values.
type UnknownCategoricalValueError struct {
	Field    string
	Value    interface{}
	Accepted []string
}

func (e *UnknownCategoricalValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %v (accepted values: %s)",
		e.Field, e.Value, quoteJoin(e.Accepted))
}

// ScalingError reports a failure applying the numeric scaler.
type ScalingError struct {
	// Column is set when a required numeric column is absent.
	Column string
	Err    error
}

func (e *ScalingError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("scaling failed: numeric column %q missing after enrichment", e.Column)
	}
	return fmt.Sprintf("scaling failed: %v", e.Err)
}

func (e *ScalingError) Unwrap() error {
	return e.Err
}

// DerivedFeatureWarning records a derived feature that could not be computed.
// The feature is omitted from the record; the pipeline continues.
type DerivedFeatureWarning struct {
	Feature string
	Err     error
}

func (w DerivedFeatureWarning) Error() string {
	return fmt.Sprintf("derived feature %s skipped: %v", w.Feature, w.Err)
}

func (w DerivedFeatureWarning) Unwrap() error {
	return w.Err
}

// IsValidationError reports whether err is one of the validation-class
// errors caused by bad user input.
func IsValidationError(err error) bool {
	var missing *MissingFeaturesError
	var numeric *InvalidNumericValueError
	var categorical *UnknownCategoricalValueError
	return errors.As(err, &missing) || errors.As(err, &numeric) || errors.As(err, &categorical)
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
