// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

// Package artifactstest writes small but complete artifact directories for
// tests. The reference vectors are produced by running each breed's raw
// attributes through the real feature pipeline, so a query equal to a
// breed's attributes lands exactly on that breed.
package artifactstest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dogmatch/internal/artifacts"
	"github.com/tomtom215/dogmatch/internal/features"
)

// ExampleBreed is the breed whose attributes equal features.ExamplePreferences.
const ExampleBreed = "Shetland Sheepdog"

// Breed is a named set of raw breed attributes.
type Breed struct {
	Name       string
	Attributes features.Preferences
}

// Fixture describes every artifact of a test directory. Tests mutate the
// exported fields before writing.
type Fixture struct {
	FeatureInfo   artifacts.FeatureInfo
	LabelEncoders artifacts.LabelEncoders
	Scaler        artifacts.ScalerParams
	Model         artifacts.ModelParams
	Similarity    artifacts.SimilarityParams
	Breeds        []Breed

	// ReferenceJSON writes reference.json instead of reference.parquet.
	ReferenceJSON bool
}

// New returns the default fixture: ten breeds, a distance-weighted 3-NN
// classifier and a euclidean similarity index.
func New() *Fixture {
	numeric := append([]string{
		features.ColumnExercise,
		features.ColumnIntelligence,
		features.ColumnTrainingDifficulty,
		features.ColumnFriendly,
		features.ColumnLifeSpan,
		features.ColumnWeight,
	}, features.DerivedFeatures()...)

	breeds := defaultBreeds()
	names := make([]string, len(breeds))
	for i, b := range breeds {
		names[i] = b.Name
	}

	return &Fixture{
		FeatureInfo: artifacts.FeatureInfo{
			FeatureColumns: features.CanonicalFeatures(),
			CategoricalColumns: []string{
				features.ColumnSize,
				features.ColumnGoodWithChildren,
				features.ColumnShedding,
				features.ColumnHealthRisk,
				features.ColumnType,
			},
			NumericColumns: numeric,
			BreedNames:     names,
		},
		LabelEncoders: artifacts.LabelEncoders{
			features.ColumnSize:             {"Small", "Medium", "Large", "Giant"},
			features.ColumnGoodWithChildren: {"No", "Yes", "With Training"},
			features.ColumnShedding:         {"Low", "Moderate", "High", "Very High"},
			features.ColumnHealthRisk:       {"Low", "Moderate", "High"},
			features.ColumnType:             {"Herding", "Hound", "Non-Sporting", "Sporting", "Terrier", "Toy", "Working"},
		},
		Scaler: artifacts.ScalerParams{
			Columns: numeric,
			//            exer intel  td   friend life weight fam  maint energy ratio size
			Center: []float64{1.5, 7, 4, 7.5, 12.5, 21.5, 1.6, 0.6, 1.3, 1.5, 2},
			Scale:  []float64{1, 3, 3, 1.5, 3, 20, 0.5, 0.4, 0.5, 1, 1},
		},
		Model: artifacts.ModelParams{
			Type:       artifacts.ModelTypeKNN,
			Name:       "KNN_Advanced",
			NNeighbors: 3,
			Weights:    artifacts.WeightsDistance,
			Metric:     artifacts.MetricMinkowski,
			P:          2,
		},
		Similarity: artifacts.SimilarityParams{
			Type:   artifacts.ModelTypeNearestNeighbors,
			Metric: artifacts.MetricEuclidean,
		},
		Breeds: breeds,
	}
}

func breed(name, size string, exercise float64, children string, intel, td float64,
	shedding, health, kind string, friendly, life, weight float64,
) Breed {
	return Breed{Name: name, Attributes: features.Preferences{
		features.ColumnSize:               size,
		features.ColumnExercise:           exercise,
		features.ColumnGoodWithChildren:   children,
		features.ColumnIntelligence:       intel,
		features.ColumnTrainingDifficulty: td,
		features.ColumnShedding:           shedding,
		features.ColumnHealthRisk:         health,
		features.ColumnType:               kind,
		features.ColumnFriendly:           friendly,
		features.ColumnLifeSpan:           life,
		features.ColumnWeight:             weight,
	}}
}

func defaultBreeds() []Breed {
	return []Breed{
		breed("Labrador Retriever", "Large", 2.0, "Yes", 8, 2, "High", "Moderate", "Sporting", 10, 12, 32),
		breed("Border Collie", "Medium", 2.5, "With Training", 10, 2, "Moderate", "Low", "Herding", 7, 13, 18),
		breed("Beagle", "Small", 1.5, "Yes", 6, 6, "Moderate", "Low", "Hound", 9, 13, 10),
		breed("Poodle", "Medium", 1.0, "Yes", 9, 3, "Low", "Moderate", "Non-Sporting", 8, 14, 25),
		breed("Bulldog", "Medium", 0.5, "Yes", 4, 7, "Low", "High", "Non-Sporting", 7, 9, 23),
		breed("German Shepherd", "Large", 2.0, "With Training", 9, 3, "High", "Moderate", "Herding", 7, 11, 35),
		breed("Chihuahua", "Small", 0.5, "No", 5, 6, "Low", "Moderate", "Toy", 5, 16, 2),
		breed("Great Dane", "Giant", 1.0, "Yes", 5, 5, "Moderate", "High", "Working", 8, 8, 60),
		breed(ExampleBreed, "Medium", 2.0, "Yes", 7, 3, "Moderate", "Low", "Herding", 8, 12, 20),
		breed("Jack Russell Terrier", "Small", 2.0, "With Training", 7, 7, "Moderate", "Low", "Terrier", 7, 14, 6),
	}
}

// Schema builds the schema the fixture describes.
func (f *Fixture) Schema() (*features.Schema, error) {
	values := make(map[string][]string, len(f.FeatureInfo.CategoricalColumns))
	for _, col := range f.FeatureInfo.CategoricalColumns {
		values[col] = f.LabelEncoders[col]
	}
	return features.NewSchema(features.SchemaSpec{
		FeatureColumns:     f.FeatureInfo.FeatureColumns,
		CategoricalColumns: f.FeatureInfo.CategoricalColumns,
		NumericColumns:     f.FeatureInfo.NumericColumns,
		CategoricalValues:  values,
		BreedNames:         f.FeatureInfo.BreedNames,
		ModelColumns:       f.FeatureInfo.ModelColumns,
	})
}

// ReferenceRows runs every breed through the feature pipeline.
func (f *Fixture) ReferenceRows() ([]artifacts.ReferenceRow, error) {
	schema, err := f.Schema()
	if err != nil {
		return nil, err
	}
	scaler, err := artifacts.NewRobustScaler(f.Scaler.Columns, f.Scaler.Center, f.Scaler.Scale)
	if err != nil {
		return nil, err
	}

	rows := make([]artifacts.ReferenceRow, 0, len(f.Breeds))
	for _, b := range f.Breeds {
		vec, err := Vector(schema, scaler, b.Attributes)
		if err != nil {
			return nil, fmt.Errorf("breed %s: %w", b.Name, err)
		}
		rows = append(rows, artifacts.ReferenceRow{Breed: b.Name, Features: vec})
	}
	return rows, nil
}

// Vector runs prefs through the feature pipeline and returns the model vector.
func Vector(schema *features.Schema, scaler features.Scaler, prefs features.Preferences) ([]float64, error) {
	if err := features.Validate(schema, prefs); err != nil {
		return nil, err
	}
	encoded, err := features.Encode(schema, prefs)
	if err != nil {
		return nil, err
	}
	enriched, warnings := features.Derive(schema, encoded)
	if len(warnings) > 0 {
		return nil, warnings[0]
	}
	scaled, err := features.Normalize(schema, scaler, enriched)
	if err != nil {
		return nil, err
	}
	return schema.Vector(scaled)
}

// Write writes every artifact into dir.
func (f *Fixture) Write(dir string) error {
	files := map[string]interface{}{
		artifacts.FeatureInfoFile:     f.FeatureInfo,
		artifacts.LabelEncodersFile:   f.LabelEncoders,
		artifacts.ScalerFile:          f.Scaler,
		artifacts.ModelFile:           f.Model,
		artifacts.SimilarityModelFile: f.Similarity,
	}
	for name, v := range files {
		if err := writeJSON(filepath.Join(dir, name), v); err != nil {
			return err
		}
	}

	rows, err := f.ReferenceRows()
	if err != nil {
		return err
	}
	if f.ReferenceJSON {
		return writeJSON(filepath.Join(dir, artifacts.ReferenceJSONFile), rows)
	}
	return artifacts.WriteReferenceParquet(rows, filepath.Join(dir, artifacts.ReferenceFile))
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Dir writes a fixture into a fresh temporary directory and returns its path.
// Each mutator is applied to the default fixture before writing.
func Dir(tb testing.TB, mutators ...func(*Fixture)) string {
	tb.Helper()
	f := New()
	for _, m := range mutators {
		m(f)
	}
	dir := tb.TempDir()
	if err := f.Write(dir); err != nil {
		tb.Fatalf("write artifact fixture: %v", err)
	}
	return dir
}

// Load writes a fixture and loads it.
func Load(tb testing.TB, mutators ...func(*Fixture)) *artifacts.Bundle {
	tb.Helper()
	bundle, err := artifacts.Load(Dir(tb, mutators...))
	if err != nil {
		tb.Fatalf("load artifact fixture: %v", err)
	}
	return bundle
}
