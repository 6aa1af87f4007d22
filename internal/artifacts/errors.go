// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"fmt"
)

// ArtifactLoadError reports a missing, unreadable or inconsistent artifact.
type ArtifactLoadError struct {
	// Artifact is the logical artifact name, e.g. "robust_scaler".
	Artifact string
	Path     string
	Err      error
}

func (e *ArtifactLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load artifact %s: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("failed to load artifact %s (%s): %v", e.Artifact, e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error {
	return e.Err
}
