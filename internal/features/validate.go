// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"sort"
)

// Validate checks that prefs carries every schema feature and that each
// numeric field present parses as a number. Categorical legality is checked
// by Encode.
func Validate(s *Schema, prefs Preferences) error {
	var missing []string
	for _, col := range s.featureColumns {
		if _, ok := prefs[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &MissingFeaturesError{Names: missing}
	}

	for _, col := range s.numericColumns {
		v, ok := prefs[col]
		if !ok {
			continue
		}
		if _, ok := ToFloat(v); !ok {
			return &InvalidNumericValueError{Field: col, Value: v}
		}
	}
	return nil
}
