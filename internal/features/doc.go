// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

// Package features implements the request-time feature transformation pipeline
// that turns user preferences into the vector consumed by the breed classifier
// and the similarity index.
//
// # Pipeline
//
// The stages run in a fixed order and every stage works on a fresh copy of
// its input, so the shared Schema and Scaler are never mutated:
//
//  1. Validate: every schema feature is present and numeric fields parse
//  2. Encode: categorical values are replaced by their trained integer code
//  3. Derive: five composite scores are added when their inputs exist
//  4. Normalize: the pre-fit robust scaler is applied to the numeric columns
//  5. Vector: the record is projected onto the ordered model columns
//
// # Encodings
//
// A categorical code is the position of the value in the schema's accepted
// value list. The derived scores never assume a particular order: the
// code-to-score tables are built from the accepted labels when the Schema is
// created, and an accepted label without a known score is rejected there.
//
// # Errors
//
// Validation and encoding failures are returned as *MissingFeaturesError,
// *InvalidNumericValueError and *UnknownCategoricalValueError. Derivation
// failures are non-fatal and reported as DerivedFeatureWarning values.
// Normalization failures are returned as *ScalingError.
package features
