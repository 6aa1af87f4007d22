// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

// Package artifacts loads the pre-trained DogMatch model artifacts from a
// directory and adapts them to the capability interfaces used by the
// prediction pipeline.
//
// # Directory Layout
//
//	feature_info.json        feature, categorical, numeric and breed lists
//	label_encoders.json      accepted values per categorical column (position = code)
//	robust_scaler.json       per-column center and scale of the robust scaler
//	model.json               k-nearest-neighbors classifier parameters
//	similarity_model.json    nearest-neighbors index parameters
//	reference.parquet        reference rows (breed, features); reference.json as fallback
//
// # Adapters
//
//   - KNNClassifier: majority or distance-weighted vote of the k nearest
//     training rows
//   - NearestNeighbors: exact brute-force neighbor search
//   - RobustScaler: (x - center) / scale per column
//
// All adapters are immutable after Load and safe for concurrent use.
//
// Any missing, unreadable or inconsistent artifact fails Load with an
// *ArtifactLoadError naming the artifact.
package artifacts
