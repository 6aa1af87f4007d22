// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

// Artifact file names inside the artifact directory.
const (
	FeatureInfoFile     = "feature_info.json"
	LabelEncodersFile   = "label_encoders.json"
	ScalerFile          = "robust_scaler.json"
	ModelFile           = "model.json"
	SimilarityModelFile = "similarity_model.json"
	ReferenceFile       = "reference.parquet"
	ReferenceJSONFile   = "reference.json"
)

// Model type names reported by the introspection endpoints.
const (
	ModelTypeKNN              = "KNeighborsClassifier"
	ModelTypeNearestNeighbors = "NearestNeighbors"
)

// FeatureInfo is the feature_info.json descriptor.
type FeatureInfo struct {
	FeatureColumns     []string `json:"feature_columns" validate:"required,min=1,dive,required"`
	CategoricalColumns []string `json:"categorical_columns" validate:"omitempty,dive,required"`
	NumericColumns     []string `json:"numeric_columns" validate:"omitempty,dive,required"`
	BreedNames         []string `json:"breed_names" validate:"required,min=1,dive,required"`
	// ModelColumns overrides the default vector layout (features, then derived).
	ModelColumns []string `json:"model_columns,omitempty" validate:"omitempty,dive,required"`
}

// LabelEncoders is the label_encoders.json descriptor: accepted values per
// categorical column, in code order.
type LabelEncoders map[string][]string

// ScalerParams is the robust_scaler.json descriptor.
type ScalerParams struct {
	Columns []string  `json:"columns" validate:"required,min=1,dive,required"`
	Center  []float64 `json:"center,omitempty"`
	Scale   []float64 `json:"scale,omitempty"`
	// WithCentering and WithScaling default to true when absent.
	WithCentering *bool `json:"with_centering,omitempty"`
	WithScaling   *bool `json:"with_scaling,omitempty"`
}

// ModelParams is the model.json descriptor of the primary classifier.
type ModelParams struct {
	Type       string  `json:"type" validate:"required,eq=KNeighborsClassifier"`
	Name       string  `json:"name,omitempty"`
	NNeighbors int     `json:"n_neighbors" validate:"required,min=1"`
	Weights    string  `json:"weights,omitempty" validate:"omitempty,oneof=uniform distance"`
	Metric     string  `json:"metric,omitempty" validate:"omitempty,oneof=euclidean manhattan chebyshev minkowski cosine"`
	P          float64 `json:"p,omitempty" validate:"omitempty,gte=1"`
	// Vectors and Labels hold the training rows. When empty the classifier
	// is fit on the reference dataset.
	Vectors [][]float64 `json:"vectors,omitempty"`
	Labels  []string    `json:"labels,omitempty"`
}

// SimilarityParams is the similarity_model.json descriptor.
type SimilarityParams struct {
	Type   string  `json:"type" validate:"required,eq=NearestNeighbors"`
	Metric string  `json:"metric,omitempty" validate:"omitempty,oneof=euclidean manhattan chebyshev minkowski cosine"`
	P      float64 `json:"p,omitempty" validate:"omitempty,gte=1"`
}
