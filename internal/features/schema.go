// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"fmt"
)

// Input feature names used by the derived score formulas and the example request.
const (
	ColumnSize               = "Size"
	ColumnExercise           = "Exercise Requirements (hrs/day)"
	ColumnGoodWithChildren   = "Good with Children"
	ColumnIntelligence       = "Intelligence Rating (1-10)"
	ColumnTrainingDifficulty = "Training Difficulty (1-10)"
	ColumnShedding           = "Shedding Level"
	ColumnHealthRisk         = "Health Issues Risk"
	ColumnType               = "Type"
	ColumnFriendly           = "Friendly Rating (1-10)"
	ColumnLifeSpan           = "Life Span"
	ColumnWeight             = "Average Weight (kg)"
)

// Derived feature names.
const (
	DerivedFamilyCompatibility = "Family_Compatibility_Score"
	DerivedMaintenance         = "Maintenance_Score"
	DerivedEnergy              = "Energy_Score"
	DerivedIntelligenceRatio   = "Intelligence_Training_Ratio"
	DerivedSize                = "Size_Score"
)

// CanonicalFeatures returns the input features expected by the trained model,
// in questionnaire order.
func CanonicalFeatures() []string {
	return []string{
		ColumnSize,
		ColumnExercise,
		ColumnGoodWithChildren,
		ColumnIntelligence,
		ColumnTrainingDifficulty,
		ColumnShedding,
		ColumnHealthRisk,
		ColumnType,
		ColumnFriendly,
		ColumnLifeSpan,
		ColumnWeight,
	}
}

// DerivedFeatures returns the derived feature names in the order they are
// appended to the model vector.
func DerivedFeatures() []string {
	return []string{
		DerivedFamilyCompatibility,
		DerivedMaintenance,
		DerivedEnergy,
		DerivedIntelligenceRatio,
		DerivedSize,
	}
}

// ExamplePreferences returns a complete, valid preference record.
func ExamplePreferences() Preferences {
	return Preferences{
		ColumnSize:               "Medium",
		ColumnExercise:           2.0,
		ColumnGoodWithChildren:   "Yes",
		ColumnIntelligence:       7,
		ColumnTrainingDifficulty: 3,
		ColumnShedding:           "Moderate",
		ColumnHealthRisk:         "Low",
		ColumnType:               "Herding",
		ColumnFriendly:           8,
		ColumnLifeSpan:           12,
		ColumnWeight:             20,
	}
}

// SchemaSpec is the raw description a Schema is built from.
type SchemaSpec struct {
	FeatureColumns     []string
	CategoricalColumns []string
	NumericColumns     []string
	// CategoricalValues holds the accepted values per categorical column.
	// The position of a value is its encoded code.
	CategoricalValues map[string][]string
	BreedNames        []string
	// ModelColumns is the vector order fed to the classifier and the
	// similarity index. Empty means FeatureColumns followed by DerivedFeatures.
	ModelColumns []string
}

// Schema is the immutable feature descriptor shared by all requests.
type Schema struct {
	featureColumns     []string
	categoricalColumns []string
	numericColumns     []string
	acceptedValues     map[string][]string
	codes              map[string]map[string]int
	breedNames         []string
	modelColumns       []string
	isCategorical      map[string]bool
	isNumeric          map[string]bool

	// scoreTables maps a categorical column to scores indexed by code.
	scoreTables map[string][]float64
}

// NewSchema validates spec and builds a Schema, including the code-to-score
// tables used by the derived features.
func NewSchema(spec SchemaSpec) (*Schema, error) {
	if len(spec.FeatureColumns) == 0 {
		return nil, fmt.Errorf("schema has no feature columns")
	}
	if len(spec.BreedNames) == 0 {
		return nil, fmt.Errorf("schema has no breed names")
	}

	s := &Schema{
		featureColumns:     cloneStrings(spec.FeatureColumns),
		categoricalColumns: cloneStrings(spec.CategoricalColumns),
		numericColumns:     cloneStrings(spec.NumericColumns),
		acceptedValues:     make(map[string][]string, len(spec.CategoricalColumns)),
		codes:              make(map[string]map[string]int, len(spec.CategoricalColumns)),
		breedNames:         cloneStrings(spec.BreedNames),
		isCategorical:      make(map[string]bool, len(spec.CategoricalColumns)),
		isNumeric:          make(map[string]bool, len(spec.NumericColumns)),
		scoreTables:        make(map[string][]float64),
	}

	features := make(map[string]bool, len(spec.FeatureColumns))
	for _, col := range s.featureColumns {
		if col == "" {
			return nil, fmt.Errorf("schema has an empty feature column name")
		}
		if features[col] {
			return nil, fmt.Errorf("duplicate feature column %q", col)
		}
		features[col] = true
	}
	derived := make(map[string]bool)
	for _, name := range DerivedFeatures() {
		derived[name] = true
	}

	for _, col := range s.categoricalColumns {
		if !features[col] {
			return nil, fmt.Errorf("categorical column %q is not a feature column", col)
		}
		values := spec.CategoricalValues[col]
		if len(values) == 0 {
			return nil, fmt.Errorf("categorical column %q has no accepted values", col)
		}
		index := make(map[string]int, len(values))
		for code, v := range values {
			if _, dup := index[v]; dup {
				return nil, fmt.Errorf("categorical column %q lists %q twice", col, v)
			}
			index[v] = code
		}
		s.isCategorical[col] = true
		s.acceptedValues[col] = cloneStrings(values)
		s.codes[col] = index
	}

	for _, col := range s.numericColumns {
		if s.isCategorical[col] {
			return nil, fmt.Errorf("column %q is both categorical and numeric", col)
		}
		if !features[col] && !derived[col] {
			return nil, fmt.Errorf("numeric column %q is neither a feature nor a derived column", col)
		}
		s.isNumeric[col] = true
	}

	s.modelColumns = cloneStrings(spec.ModelColumns)
	if len(s.modelColumns) == 0 {
		s.modelColumns = append(cloneStrings(s.featureColumns), DerivedFeatures()...)
	}
	for _, col := range s.modelColumns {
		if !features[col] && !derived[col] {
			return nil, fmt.Errorf("model column %q is neither a feature nor a derived column", col)
		}
	}

	if err := s.buildScoreTables(); err != nil {
		return nil, err
	}
	return s, nil
}

// buildScoreTables resolves the label-based score maps against this schema's
// code order. Fields that are not categorical get no table.
func (s *Schema) buildScoreTables() error {
	for field, labels := range labelScores {
		accepted, ok := s.acceptedValues[field]
		if !ok {
			continue
		}
		table := make([]float64, len(accepted))
		for code, label := range accepted {
			score, known := labels[label]
			if !known {
				return fmt.Errorf("categorical column %q: accepted value %q has no known score", field, label)
			}
			table[code] = score
		}
		s.scoreTables[field] = table
	}
	return nil
}

// FeatureColumns returns the required input features in schema order.
func (s *Schema) FeatureColumns() []string { return cloneStrings(s.featureColumns) }

// CategoricalColumns returns the categorical features.
func (s *Schema) CategoricalColumns() []string { return cloneStrings(s.categoricalColumns) }

// NumericColumns returns the columns transformed by the scaler.
func (s *Schema) NumericColumns() []string { return cloneStrings(s.numericColumns) }

// ModelColumns returns the ordered vector layout.
func (s *Schema) ModelColumns() []string { return cloneStrings(s.modelColumns) }

// BreedNames returns the breeds known to the classifier.
func (s *Schema) BreedNames() []string { return cloneStrings(s.breedNames) }

// AcceptedValues returns the accepted values of a categorical column in code order.
func (s *Schema) AcceptedValues(field string) ([]string, bool) {
	values, ok := s.acceptedValues[field]
	return cloneStrings(values), ok
}

// AcceptedValuesByField returns a copy of every categorical column's accepted values.
func (s *Schema) AcceptedValuesByField() map[string][]string {
	out := make(map[string][]string, len(s.acceptedValues))
	for field, values := range s.acceptedValues {
		out[field] = cloneStrings(values)
	}
	return out
}

// Code returns the trained code of value for a categorical field.
func (s *Schema) Code(field, value string) (int, bool) {
	code, ok := s.codes[field][value]
	return code, ok
}

// IsCategorical reports whether field is categorical.
func (s *Schema) IsCategorical(field string) bool { return s.isCategorical[field] }

// IsNumeric reports whether field is scaled as numeric.
func (s *Schema) IsNumeric(field string) bool { return s.isNumeric[field] }

// Vector projects rec onto the model columns.
func (s *Schema) Vector(rec Record) ([]float64, error) {
	vec := make([]float64, len(s.modelColumns))
	for i, col := range s.modelColumns {
		v, ok := rec[col]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingModelColumn, col)
		}
		vec[i] = v
	}
	return vec, nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
