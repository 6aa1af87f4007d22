// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

/*
Package predictor runs the hybrid recommendation pipeline.

A request flows through the features package (Validate, Encode, Derive,
Normalize) and is then answered three ways:

  - Classify: the k-NN classifier picks the primary breed (score 1.0)
  - FindSimilar: the nearest-neighbor index ranks the closest reference breeds
  - Profile: a five-key summary of the enriched, unscaled preferences

Assemble packs these into a Result. The HTTP layer adds the API version and
timestamp with Result.WithMetadata.

# Service and Handle

Service wraps one loaded artifacts.Bundle and is safe for concurrent use.
Handle owns the process-wide Service: it loads on first use (or eagerly from
the warm-up service), reports failures as UnavailableError and retries the
load on the next call.

	h := predictor.NewHandle("/app/models", predictor.WithCache(1024, 10*time.Minute))
	svc, err := h.Service(ctx)
	if err != nil {
	    // 503
	}
	res, err := svc.Recommend(ctx, prefs, 5)

# Errors

Validation errors come from the features package. ScalingError (features)
and ClassificationError fail the request. DerivedFeatureWarning and
SimilarityLookupWarning degrade it: the request succeeds and the warning
text is listed in Result.Warnings.
*/
package predictor
