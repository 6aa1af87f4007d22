// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"errors"
	"fmt"
	"sort"
)

// Vote weighting schemes for KNNClassifier.
const (
	WeightsUniform  = "uniform"
	WeightsDistance = "distance"
)

// KNNConfig contains the classifier hyperparameters.
type KNNConfig struct {
	// K is the number of neighbors that vote.
	K int

	// Weights is "uniform" (one vote each) or "distance" (inverse distance).
	Weights string

	Metric Metric
}

// KNNClassifier predicts the label voted by the k nearest training rows.
type KNNClassifier struct {
	config  KNNConfig
	index   *NearestNeighbors
	labels  []int
	classes []string
}

// NewKNNClassifier fits the classifier on rows and their labels.
// Classes are ordered lexically; vote ties go to the first class in that order.
func NewKNNClassifier(cfg KNNConfig, rows [][]float64, labels []string) (*KNNClassifier, error) {
	if len(rows) != len(labels) {
		return nil, fmt.Errorf("knn: %d rows but %d labels", len(rows), len(labels))
	}
	if cfg.K <= 0 {
		return nil, fmt.Errorf("knn: n_neighbors must be positive, got %d", cfg.K)
	}
	if cfg.K > len(rows) {
		return nil, fmt.Errorf("knn: n_neighbors=%d exceeds %d training rows", cfg.K, len(rows))
	}
	switch cfg.Weights {
	case "":
		cfg.Weights = WeightsUniform
	case WeightsUniform, WeightsDistance:
	default:
		return nil, fmt.Errorf("knn: unsupported weights %q", cfg.Weights)
	}

	index, err := NewNearestNeighbors(cfg.Metric, rows)
	if err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}

	seen := make(map[string]bool)
	for _, l := range labels {
		if l == "" {
			return nil, errors.New("knn: empty label")
		}
		seen[l] = true
	}
	classes := make([]string, 0, len(seen))
	for l := range seen {
		classes = append(classes, l)
	}
	sort.Strings(classes)

	pos := make(map[string]int, len(classes))
	for i, c := range classes {
		pos[c] = i
	}
	encoded := make([]int, len(labels))
	for i, l := range labels {
		encoded[i] = pos[l]
	}

	return &KNNClassifier{config: cfg, index: index, labels: encoded, classes: classes}, nil
}

// Classes returns the known class labels in vote-tiebreak order.
func (c *KNNClassifier) Classes() []string {
	return append([]string(nil), c.classes...)
}

// Dim returns the expected vector dimension.
func (c *KNNClassifier) Dim() int { return c.index.Dim() }

// Predict returns the winning label for vec.
func (c *KNNClassifier) Predict(vec []float64) (string, error) {
	neighbors, err := c.index.KNeighbors(vec, c.config.K)
	if err != nil {
		return "", err
	}

	votes := make([]float64, len(c.classes))
	if c.config.Weights == WeightsDistance && hasExactMatch(neighbors) {
		// Exact matches take all the weight.
		for _, n := range neighbors {
			if n.Distance == 0 {
				votes[c.labels[n.Index]]++
			}
		}
	} else {
		for _, n := range neighbors {
			w := 1.0
			if c.config.Weights == WeightsDistance {
				w = 1 / n.Distance
			}
			votes[c.labels[n.Index]] += w
		}
	}

	best := 0
	for i := 1; i < len(votes); i++ {
		if votes[i] > votes[best] {
			best = i
		}
	}
	return c.classes[best], nil
}

func hasExactMatch(neighbors []Neighbor) bool {
	for _, n := range neighbors {
		if n.Distance == 0 {
			return true
		}
	}
	return false
}
