// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/dogmatch/internal/features"
	"github.com/tomtom215/dogmatch/internal/validation"
)

// Bundle is the complete, immutable set of loaded artifacts.
type Bundle struct {
	Dir        string
	Schema     *features.Schema
	Classifier *KNNClassifier
	Index      *NearestNeighbors
	Scaler     *RobustScaler
	Reference  *Reference

	ModelType           string
	ModelName           string
	SimilarityModelType string
	LoadedAt            time.Time
}

// SupportsProbabilities reports whether the classifier can produce class
// probabilities. The pipeline never requests them.
func (b *Bundle) SupportsProbabilities() bool {
	return b.ModelType == ModelTypeKNN
}

// Load reads and cross-checks every artifact in dir.
func Load(dir string) (*Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: "directory", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &ArtifactLoadError{Artifact: "directory", Path: dir, Err: errors.New("not a directory")}
	}

	var fi FeatureInfo
	if err := readDescriptor(dir, FeatureInfoFile, &fi); err != nil {
		return nil, err
	}
	var encoders LabelEncoders
	if err := readJSON(dir, LabelEncodersFile, &encoders); err != nil {
		return nil, err
	}
	var sp ScalerParams
	if err := readDescriptor(dir, ScalerFile, &sp); err != nil {
		return nil, err
	}
	var mp ModelParams
	if err := readDescriptor(dir, ModelFile, &mp); err != nil {
		return nil, err
	}
	var simp SimilarityParams
	if err := readDescriptor(dir, SimilarityModelFile, &simp); err != nil {
		return nil, err
	}

	schema, err := buildSchema(dir, fi, encoders)
	if err != nil {
		return nil, err
	}

	scaler, err := buildScaler(schema, sp)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: "robust_scaler", Path: filepath.Join(dir, ScalerFile), Err: err}
	}

	reference, refPath, err := loadReference(dir)
	if err != nil {
		return nil, err
	}
	if dim := len(schema.ModelColumns()); reference.Dim() != dim {
		return nil, &ArtifactLoadError{Artifact: "reference", Path: refPath,
			Err: fmt.Errorf("%w: rows have %d features, model expects %d", ErrDimensionMismatch, reference.Dim(), dim)}
	}

	simMetric, err := NewMetric(simp.Metric, simp.P)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: "similarity_model", Path: filepath.Join(dir, SimilarityModelFile), Err: err}
	}
	index, err := NewNearestNeighbors(simMetric, reference.Vectors())
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: "similarity_model", Path: filepath.Join(dir, SimilarityModelFile), Err: err}
	}

	classifier, err := buildClassifier(schema, mp, reference)
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: "model", Path: filepath.Join(dir, ModelFile), Err: err}
	}

	return &Bundle{
		Dir:                 dir,
		Schema:              schema,
		Classifier:          classifier,
		Index:               index,
		Scaler:              scaler,
		Reference:           reference,
		ModelType:           mp.Type,
		ModelName:           mp.Name,
		SimilarityModelType: simp.Type,
		LoadedAt:            time.Now(),
	}, nil
}

func artifactName(file string) string {
	return file[:len(file)-len(filepath.Ext(file))]
}

func readJSON(dir, file string, v interface{}) error {
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return &ArtifactLoadError{Artifact: artifactName(file), Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ArtifactLoadError{Artifact: artifactName(file), Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return nil
}

// readDescriptor decodes a descriptor and runs its struct validation.
func readDescriptor(dir, file string, v interface{}) error {
	if err := readJSON(dir, file, v); err != nil {
		return err
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		return &ArtifactLoadError{Artifact: artifactName(file), Path: filepath.Join(dir, file), Err: verr}
	}
	return nil
}

func buildSchema(dir string, fi FeatureInfo, encoders LabelEncoders) (*features.Schema, error) {
	values := make(map[string][]string, len(fi.CategoricalColumns))
	for _, col := range fi.CategoricalColumns {
		classes, ok := encoders[col]
		if !ok || len(classes) == 0 {
			return nil, &ArtifactLoadError{Artifact: "label_encoders", Path: filepath.Join(dir, LabelEncodersFile),
				Err: fmt.Errorf("no encoder for categorical column %q", col)}
		}
		values[col] = classes
	}

	schema, err := features.NewSchema(features.SchemaSpec{
		FeatureColumns:     fi.FeatureColumns,
		CategoricalColumns: fi.CategoricalColumns,
		NumericColumns:     fi.NumericColumns,
		CategoricalValues:  values,
		BreedNames:         fi.BreedNames,
		ModelColumns:       fi.ModelColumns,
	})
	if err != nil {
		return nil, &ArtifactLoadError{Artifact: "feature_info", Path: filepath.Join(dir, FeatureInfoFile), Err: err}
	}
	return schema, nil
}

func buildScaler(schema *features.Schema, sp ScalerParams) (*RobustScaler, error) {
	want := schema.NumericColumns()
	got := append([]string(nil), sp.Columns...)
	sort.Strings(want)
	sort.Strings(got)
	if fmt.Sprint(want) != fmt.Sprint(got) {
		return nil, fmt.Errorf("scaler columns %q do not match numeric columns %q", sp.Columns, schema.NumericColumns())
	}

	center, scale := sp.Center, sp.Scale
	if sp.WithCentering != nil && !*sp.WithCentering {
		center = nil
	} else if center == nil {
		return nil, errors.New("center is required when centering is enabled")
	}
	if sp.WithScaling != nil && !*sp.WithScaling {
		scale = nil
	} else if scale == nil {
		return nil, errors.New("scale is required when scaling is enabled")
	}
	return NewRobustScaler(sp.Columns, center, scale)
}

// loadReference prefers the Parquet dataset and falls back to JSON.
func loadReference(dir string) (*Reference, string, error) {
	path := filepath.Join(dir, ReferenceFile)
	rows, err := ReadReferenceParquet(path)
	if errors.Is(err, os.ErrNotExist) {
		path = filepath.Join(dir, ReferenceJSONFile)
		rows, err = ReadReferenceJSON(path)
	}
	if err != nil {
		return nil, path, &ArtifactLoadError{Artifact: "reference", Path: path, Err: err}
	}

	ref, err := NewReference(rows)
	if err != nil {
		return nil, path, &ArtifactLoadError{Artifact: "reference", Path: path, Err: err}
	}
	return ref, path, nil
}

func buildClassifier(schema *features.Schema, mp ModelParams, reference *Reference) (*KNNClassifier, error) {
	metric, err := NewMetric(mp.Metric, mp.P)
	if err != nil {
		return nil, err
	}

	rows, labels := mp.Vectors, mp.Labels
	if len(rows) == 0 && len(labels) == 0 {
		rows, labels = reference.Vectors(), reference.Labels()
	}
	if dim := len(schema.ModelColumns()); len(rows) > 0 && len(rows[0]) != dim {
		return nil, fmt.Errorf("%w: training rows have %d features, model expects %d", ErrDimensionMismatch, len(rows[0]), dim)
	}

	classifier, err := NewKNNClassifier(KNNConfig{K: mp.NNeighbors, Weights: mp.Weights, Metric: metric}, rows, labels)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, b := range schema.BreedNames() {
		known[b] = true
	}
	for _, c := range classifier.Classes() {
		if !known[c] {
			return nil, fmt.Errorf("class %q is not a known breed", c)
		}
	}
	return classifier, nil
}
