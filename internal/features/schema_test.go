// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// testSpec returns a schema description shaped like the trained artifacts.
func testSpec() SchemaSpec {
	return SchemaSpec{
		FeatureColumns: CanonicalFeatures(),
		CategoricalColumns: []string{
			ColumnSize, ColumnGoodWithChildren, ColumnShedding, ColumnHealthRisk, ColumnType,
		},
		NumericColumns: append([]string{
			ColumnExercise, ColumnIntelligence, ColumnTrainingDifficulty,
			ColumnFriendly, ColumnLifeSpan, ColumnWeight,
		}, DerivedFeatures()...),
		CategoricalValues: map[string][]string{
			ColumnSize:             {"Small", "Medium", "Large", "Giant"},
			ColumnGoodWithChildren: {"No", "Yes", "With Training"},
			ColumnShedding:         {"Low", "Moderate", "High", "Very High"},
			ColumnHealthRisk:       {"Low", "Moderate", "High"},
			ColumnType:             {"Herding", "Hound", "Non-Sporting", "Sporting", "Terrier", "Toy", "Working"},
		},
		BreedNames: []string{"Beagle", "Border Collie", "Poodle"},
	}
}

func newTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema(testSpec())
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}
	return s
}

func TestNewSchema_DefaultModelColumns(t *testing.T) {
	t.Parallel()
	s := newTestSchema(t)

	want := append(CanonicalFeatures(), DerivedFeatures()...)
	if got := s.ModelColumns(); !reflect.DeepEqual(got, want) {
		t.Errorf("ModelColumns() = %v, want %v", got, want)
	}
}

func TestNewSchema_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*SchemaSpec)
		wantErr string
	}{
		{
			name:    "no feature columns",
			mutate:  func(s *SchemaSpec) { s.FeatureColumns = nil },
			wantErr: "no feature columns",
		},
		{
			name:    "no breeds",
			mutate:  func(s *SchemaSpec) { s.BreedNames = nil },
			wantErr: "no breed names",
		},
		{
			name:    "duplicate feature",
			mutate:  func(s *SchemaSpec) { s.FeatureColumns = append(s.FeatureColumns, ColumnSize) },
			wantErr: "duplicate feature column",
		},
		{
			name:    "categorical without values",
			mutate:  func(s *SchemaSpec) { delete(s.CategoricalValues, ColumnType) },
			wantErr: "has no accepted values",
		},
		{
			name:    "categorical not a feature",
			mutate:  func(s *SchemaSpec) { s.CategoricalColumns = append(s.CategoricalColumns, "Coat") },
			wantErr: "is not a feature column",
		},
		{
			name:    "numeric overlaps categorical",
			mutate:  func(s *SchemaSpec) { s.NumericColumns = append(s.NumericColumns, ColumnSize) },
			wantErr: "both categorical and numeric",
		},
		{
			name:    "unknown model column",
			mutate:  func(s *SchemaSpec) { s.ModelColumns = []string{"Coat"} },
			wantErr: "model column",
		},
		{
			name: "label without score",
			mutate: func(s *SchemaSpec) {
				s.CategoricalValues[ColumnSize] = []string{"Tiny", "Small", "Medium", "Large", "Giant"}
			},
			wantErr: `accepted value "Tiny" has no known score`,
		},
		{
			name: "duplicate accepted value",
			mutate: func(s *SchemaSpec) {
				s.CategoricalValues[ColumnType] = []string{"Toy", "Toy"}
			},
			wantErr: "twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			spec := testSpec()
			tt.mutate(&spec)
			_, err := NewSchema(spec)
			if err == nil {
				t.Fatal("NewSchema() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewSchema() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestSchema_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	s := newTestSchema(t)

	cols := s.FeatureColumns()
	cols[0] = "mutated"
	if s.FeatureColumns()[0] != ColumnSize {
		t.Error("FeatureColumns() exposed internal slice")
	}

	values, ok := s.AcceptedValues(ColumnSize)
	if !ok {
		t.Fatal("AcceptedValues(Size) not found")
	}
	values[0] = "Tiny"
	if got, _ := s.AcceptedValues(ColumnSize); got[0] != "Small" {
		t.Error("AcceptedValues() exposed internal slice")
	}

	byField := s.AcceptedValuesByField()
	byField[ColumnType][0] = "Lapdog"
	if got, _ := s.AcceptedValues(ColumnType); got[0] != "Herding" {
		t.Error("AcceptedValuesByField() exposed internal slice")
	}
}

func TestSchema_Code(t *testing.T) {
	t.Parallel()
	s := newTestSchema(t)

	if code, ok := s.Code(ColumnSize, "Medium"); !ok || code != 1 {
		t.Errorf("Code(Size, Medium) = %d, %v; want 1, true", code, ok)
	}
	if _, ok := s.Code(ColumnSize, "medium"); ok {
		t.Error("Code() should be case-sensitive")
	}
	if !s.IsCategorical(ColumnType) || s.IsNumeric(ColumnType) {
		t.Error("Type should be categorical only")
	}
	if !s.IsNumeric(DerivedSize) {
		t.Error("Size_Score should be numeric")
	}
}

func TestSchema_Vector(t *testing.T) {
	t.Parallel()
	spec := testSpec()
	spec.ModelColumns = []string{ColumnExercise, DerivedSize}
	s, err := NewSchema(spec)
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	vec, err := s.Vector(Record{ColumnExercise: 2, DerivedSize: 3, ColumnWeight: 20})
	if err != nil {
		t.Fatalf("Vector() error = %v", err)
	}
	if !reflect.DeepEqual(vec, []float64{2, 3}) {
		t.Errorf("Vector() = %v, want [2 3]", vec)
	}

	_, err = s.Vector(Record{ColumnExercise: 2})
	if !errors.Is(err, ErrMissingModelColumn) {
		t.Errorf("Vector() error = %v, want ErrMissingModelColumn", err)
	}
}
