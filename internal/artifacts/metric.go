// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"fmt"
	"math"
)

// Supported distance metric names.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
	MetricMinkowski = "minkowski"
	MetricCosine    = "cosine"
)

// Metric computes the distance between two vectors of equal length.
type Metric struct {
	name string
	p    float64
	dist func(a, b []float64) float64
}

// NewMetric resolves a metric by name. p is only used by minkowski, where
// p=1 and p=2 reduce to manhattan and euclidean. An empty name means
// minkowski with p=2 (euclidean).
func NewMetric(name string, p float64) (Metric, error) {
	if name == "" {
		name = MetricMinkowski
	}
	if name == MetricMinkowski {
		switch {
		case p == 0 || p == 2:
			return Metric{name: name, p: 2, dist: euclidean}, nil
		case p == 1:
			return Metric{name: name, p: 1, dist: manhattan}, nil
		case p < 1 || math.IsNaN(p):
			return Metric{}, fmt.Errorf("minkowski p must be >= 1, got %v", p)
		case math.IsInf(p, 1):
			return Metric{name: name, p: p, dist: chebyshev}, nil
		default:
			return Metric{name: name, p: p, dist: minkowski(p)}, nil
		}
	}

	switch name {
	case MetricEuclidean:
		return Metric{name: name, p: 2, dist: euclidean}, nil
	case MetricManhattan:
		return Metric{name: name, p: 1, dist: manhattan}, nil
	case MetricChebyshev:
		return Metric{name: name, dist: chebyshev}, nil
	case MetricCosine:
		return Metric{name: name, dist: cosine}, nil
	default:
		return Metric{}, fmt.Errorf("unsupported metric %q", name)
	}
}

// Name returns the configured metric name.
func (m Metric) Name() string { return m.name }

// Distance returns the distance between a and b.
func (m Metric) Distance(a, b []float64) float64 { return m.dist(a, b) }

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

func chebyshev(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

func minkowski(p float64) func(a, b []float64) float64 {
	return func(a, b []float64) float64 {
		var sum float64
		for i := range a {
			sum += math.Pow(math.Abs(a[i]-b[i]), p)
		}
		return math.Pow(sum, 1/p)
	}
}

// cosine returns 1 - cos(a, b). A zero vector is at distance 1 from
// everything.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
