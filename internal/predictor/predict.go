// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package predictor

import (
	"fmt"
	"math"

	"github.com/tomtom215/dogmatch/internal/artifacts"
	"github.com/tomtom215/dogmatch/internal/features"
)

// Profile keys.
const (
	ProfileFamilyFriendly    = "family_friendly"
	ProfileEnergyLevel       = "energy_level"
	ProfileMaintenanceLevel  = "maintenance_level"
	ProfileIntelligenceLevel = "intelligence_level"
	ProfileSizePreference    = "size_preference"
)

// Classifier predicts a breed label for a model vector.
type Classifier interface {
	Predict(vec []float64) (string, error)
}

// NeighborIndex answers k-nearest-neighbor queries over the reference rows.
type NeighborIndex interface {
	KNeighbors(vec []float64, k int) ([]artifacts.Neighbor, error)
	Len() int
}

// BreedLookup maps a reference row index to its breed name.
type BreedLookup interface {
	Breed(i int) (string, bool)
}

// Classify runs the classifier once. The score is fixed at 1.0.
func Classify(c Classifier, vec []float64) (Prediction, error) {
	breed, err := c.Predict(vec)
	if err != nil {
		return Prediction{}, &ClassificationError{Err: err}
	}
	return Prediction{Breed: breed, Score: 1.0}, nil
}

// FindSimilar returns up to topK reference breeds ordered by ascending
// distance. Similarity is 1 - distance rounded to three decimals and may be
// negative. On failure it returns an empty list and a SimilarityLookupWarning.
func FindSimilar(idx NeighborIndex, breeds BreedLookup, vec []float64, topK int) ([]SimilarBreed, error) {
	k := topK
	if n := idx.Len(); k > n {
		k = n
	}
	if k <= 0 {
		return []SimilarBreed{}, nil
	}

	neighbors, err := idx.KNeighbors(vec, k)
	if err != nil {
		return []SimilarBreed{}, &SimilarityLookupWarning{Err: err}
	}

	similar := make([]SimilarBreed, 0, len(neighbors))
	for i, nb := range neighbors {
		name, ok := breeds.Breed(nb.Index)
		if !ok {
			return []SimilarBreed{}, &SimilarityLookupWarning{Err: fmt.Errorf("reference row %d out of range", nb.Index)}
		}
		similar = append(similar, SimilarBreed{
			Breed:      name,
			Similarity: round(1-nb.Distance, 3),
			Rank:       i + 1,
		})
	}
	return similar, nil
}

var profileSources = []struct {
	key      string
	column   string
	decimals int
}{
	{ProfileFamilyFriendly, features.DerivedFamilyCompatibility, 2},
	{ProfileEnergyLevel, features.DerivedEnergy, 2},
	{ProfileMaintenanceLevel, features.DerivedMaintenance, 2},
	{ProfileIntelligenceLevel, features.ColumnIntelligence, 1},
	{ProfileSizePreference, features.DerivedSize, 1},
}

// Profile summarizes the enriched (unscaled) record. Keys whose source
// column is absent are omitted.
func Profile(rec features.Record) map[string]float64 {
	profile := make(map[string]float64, len(profileSources))
	for _, src := range profileSources {
		if v, ok := rec[src.column]; ok {
			profile[src.key] = round(v, src.decimals)
		}
	}
	return profile
}

// round rounds half to even at the given number of decimals.
func round(x float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(x*p) / p
}
