// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package predictor

import (
	"fmt"
)

// ClassificationError reports a failure of the primary classifier.
type ClassificationError struct {
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// SimilarityLookupWarning reports a failed similarity query. The result is
// still returned, with an empty similar-breed list.
type SimilarityLookupWarning struct {
	Err error
}

func (w *SimilarityLookupWarning) Error() string {
	return fmt.Sprintf("similarity lookup failed: %v", w.Err)
}

func (w *SimilarityLookupWarning) Unwrap() error {
	return w.Err
}

// UnavailableError reports that the model artifacts are not loaded.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return "model not available"
	}
	return fmt.Sprintf("model not available: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
