// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

// Encode converts prefs into a Record restricted to the schema's feature
// columns. Categorical values become their zero-based position in the
// accepted value list (exact, case-sensitive match); all other features are
// converted to float64.
//
// Encode expects prefs to have passed Validate.
func Encode(s *Schema, prefs Preferences) (Record, error) {
	rec := make(Record, len(s.featureColumns)+len(DerivedFeatures()))

	for _, col := range s.featureColumns {
		raw, ok := prefs[col]
		if !ok {
			continue
		}

		if s.isCategorical[col] {
			str, isString := raw.(string)
			code, known := s.codes[col][str]
			if !isString || !known {
				return nil, &UnknownCategoricalValueError{
					Field:    col,
					Value:    raw,
					Accepted: cloneStrings(s.acceptedValues[col]),
				}
			}
			rec[col] = float64(code)
			continue
		}

		f, ok := ToFloat(raw)
		if !ok {
			return nil, &InvalidNumericValueError{Field: col, Value: raw}
		}
		rec[col] = f
	}

	return rec, nil
}
