// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package predictor

import (
	"time"
)

// TimestampLayout is the format of Result.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Prediction is the primary classifier output.
type Prediction struct {
	Breed string `json:"breed"`
	// Score is always 1.0: the classifier is queried for a label only.
	Score float64 `json:"score"`
}

// SimilarBreed is one entry of the similarity ranking.
type SimilarBreed struct {
	Breed      string  `json:"breed"`
	Similarity float64 `json:"similarity"`
	Rank       int     `json:"rank"`
}

// Result is the assembled recommendation.
type Result struct {
	Predictions   []Prediction       `json:"predictions"`
	SimilarBreeds []SimilarBreed     `json:"similar_breeds"`
	UserProfile   map[string]float64 `json:"user_profile"`
	APIVersion    string             `json:"api_version,omitempty"`
	Timestamp     string             `json:"timestamp,omitempty"`
	Warnings      []string           `json:"warnings,omitempty"`
}

// Assemble packs the three pipeline outputs into a Result. Nil slices and
// maps are replaced by empty ones so they encode as [] and {}.
func Assemble(prediction Prediction, similar []SimilarBreed, profile map[string]float64) *Result {
	if similar == nil {
		similar = []SimilarBreed{}
	}
	if profile == nil {
		profile = map[string]float64{}
	}
	return &Result{
		Predictions:   []Prediction{prediction},
		SimilarBreeds: similar,
		UserProfile:   profile,
	}
}

// WithMetadata returns a copy of r carrying the API version and timestamp.
func (r *Result) WithMetadata(apiVersion string, at time.Time) *Result {
	out := r.Clone()
	out.APIVersion = apiVersion
	out.Timestamp = at.Format(TimestampLayout)
	return out
}

// PrimaryBreed returns the predicted breed, or "" for an empty result.
func (r *Result) PrimaryBreed() string {
	if r == nil || len(r.Predictions) == 0 {
		return ""
	}
	return r.Predictions[0].Breed
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Predictions = append([]Prediction{}, r.Predictions...)
	out.SimilarBreeds = append([]SimilarBreed{}, r.SimilarBreeds...)
	out.UserProfile = make(map[string]float64, len(r.UserProfile))
	for k, v := range r.UserProfile {
		out.UserProfile[k] = v
	}
	if r.Warnings != nil {
		out.Warnings = append([]string{}, r.Warnings...)
	}
	return &out
}
