// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"fmt"
	"math"
)

// labelScores holds the semantic score of each categorical label used by the
// derived features. Scores are keyed by label, not by code; NewSchema turns
// them into code-indexed tables.
var labelScores = map[string]map[string]float64{
	ColumnGoodWithChildren: {
		"No":            0,
		"Yes":           1,
		"With Training": 0.5,
	},
	ColumnShedding: {
		"Low":       0,
		"Moderate":  0.5,
		"High":      1,
		"Very High": 1.5,
	},
	ColumnHealthRisk: {
		"Low":      0,
		"Moderate": 0.5,
		"Medium":   0.5,
		"High":     1,
	},
	ColumnSize: {
		"Small":  1,
		"Medium": 2,
		"Large":  3,
		"Giant":  4,
	},
}

// derivation describes one derived feature and the fields it needs.
type derivation struct {
	name     string
	requires []string
	compute  func(s *Schema, r Record) (float64, error)
}

// derivations run in order; later ones never read earlier outputs.
//
// Products are wrapped in explicit float64 conversions so the compiler cannot
// fuse them into FMA instructions and change the last bit of the result.
var derivations = []derivation{
	{
		name:     DerivedFamilyCompatibility,
		requires: []string{ColumnGoodWithChildren, ColumnFriendly, ColumnTrainingDifficulty},
		compute: func(s *Schema, r Record) (float64, error) {
			children, err := s.score(ColumnGoodWithChildren, r[ColumnGoodWithChildren])
			if err != nil {
				return 0, err
			}
			return float64(children*0.4) +
				float64(r[ColumnFriendly]*0.1) +
				float64((10-r[ColumnTrainingDifficulty])*0.1), nil
		},
	},
	{
		name:     DerivedMaintenance,
		requires: []string{ColumnShedding, ColumnExercise, ColumnHealthRisk},
		compute: func(s *Schema, r Record) (float64, error) {
			shedding, err := s.score(ColumnShedding, r[ColumnShedding])
			if err != nil {
				return 0, err
			}
			health, err := s.score(ColumnHealthRisk, r[ColumnHealthRisk])
			if err != nil {
				return 0, err
			}
			return float64(shedding*0.3) +
				float64(r[ColumnExercise]*0.2) +
				float64(health*0.3), nil
		},
	},
	{
		name:     DerivedEnergy,
		requires: []string{ColumnExercise, ColumnIntelligence},
		compute: func(_ *Schema, r Record) (float64, error) {
			return float64(r[ColumnExercise]*0.4) + float64(r[ColumnIntelligence]*0.1), nil
		},
	},
	{
		name:     DerivedIntelligenceRatio,
		requires: []string{ColumnIntelligence, ColumnTrainingDifficulty},
		compute: func(_ *Schema, r Record) (float64, error) {
			return r[ColumnIntelligence] / (r[ColumnTrainingDifficulty] + 1), nil
		},
	},
	{
		name:     DerivedSize,
		requires: []string{ColumnSize},
		compute: func(s *Schema, r Record) (float64, error) {
			return s.score(ColumnSize, r[ColumnSize])
		},
	},
}

// Derive returns a copy of rec enriched with every derived feature whose
// inputs are present. A feature that fails to compute is left out and
// reported as a warning.
func Derive(s *Schema, rec Record) (Record, []DerivedFeatureWarning) {
	out := rec.Clone()
	var warnings []DerivedFeatureWarning

	for _, d := range derivations {
		if !rec.Has(d.requires...) {
			continue
		}
		v, err := d.compute(s, rec)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = ErrNonFinite
		}
		if err != nil {
			warnings = append(warnings, DerivedFeatureWarning{Feature: d.name, Err: err})
			continue
		}
		out[d.name] = v
	}

	return out, warnings
}

// score looks up the derived-feature score of an encoded categorical value.
func (s *Schema) score(field string, code float64) (float64, error) {
	table, ok := s.scoreTables[field]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not categorical", ErrUnmappedCode, field)
	}
	i := int(code)
	if float64(i) != code || i < 0 || i >= len(table) {
		return 0, fmt.Errorf("%w: %q code %v", ErrUnmappedCode, field, code)
	}
	return table[i], nil
}
