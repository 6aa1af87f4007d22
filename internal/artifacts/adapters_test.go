// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"errors"
	"io"
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

func mustMetric(t *testing.T, name string, p float64) Metric {
	t.Helper()
	m, err := NewMetric(name, p)
	if err != nil {
		t.Fatalf("NewMetric(%q, %v) error = %v", name, p, err)
	}
	return m
}

func TestMetric_Distances(t *testing.T) {
	t.Parallel()

	a := []float64{0, 0}
	b := []float64{3, 4}

	tests := []struct {
		name   string
		metric string
		p      float64
		want   float64
	}{
		{"euclidean", MetricEuclidean, 0, 5},
		{"default is euclidean", "", 0, 5},
		{"minkowski p=2", MetricMinkowski, 2, 5},
		{"minkowski p=1", MetricMinkowski, 1, 7},
		{"manhattan", MetricManhattan, 0, 7},
		{"chebyshev", MetricChebyshev, 0, 4},
		{"minkowski p=3", MetricMinkowski, 3, math.Pow(91, 1.0/3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mustMetric(t, tt.metric, tt.p).Distance(a, b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetric_Cosine(t *testing.T) {
	t.Parallel()
	m := mustMetric(t, MetricCosine, 0)

	if d := m.Distance([]float64{1, 0}, []float64{2, 0}); math.Abs(d) > 1e-12 {
		t.Errorf("parallel distance = %v, want 0", d)
	}
	if d := m.Distance([]float64{1, 0}, []float64{0, 1}); math.Abs(d-1) > 1e-12 {
		t.Errorf("orthogonal distance = %v, want 1", d)
	}
	if d := m.Distance([]float64{1, 0}, []float64{-1, 0}); math.Abs(d-2) > 1e-12 {
		t.Errorf("opposite distance = %v, want 2", d)
	}
	if d := m.Distance([]float64{0, 0}, []float64{1, 1}); d != 1 {
		t.Errorf("zero vector distance = %v, want 1", d)
	}
}

func TestMetric_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewMetric("hamming", 0); err == nil {
		t.Error("NewMetric(hamming) expected error")
	}
	if _, err := NewMetric(MetricMinkowski, 0.5); err == nil {
		t.Error("NewMetric(minkowski, 0.5) expected error")
	}
}

func TestNearestNeighbors_KNeighbors(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0}, {5}, {1}, {-1}, {3}}
	nn, err := NewNearestNeighbors(mustMetric(t, MetricEuclidean, 0), rows)
	if err != nil {
		t.Fatalf("NewNearestNeighbors() error = %v", err)
	}
	rows[0][0] = 100

	got, err := nn.KNeighbors([]float64{0}, 4)
	if err != nil {
		t.Fatalf("KNeighbors() error = %v", err)
	}
	// Rows 2 and 3 tie at distance 1 and keep fitted order.
	want := []Neighbor{{0, 0}, {2, 1}, {3, 1}, {4, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KNeighbors() = %v, want %v", got, want)
	}
	if nn.Len() != 5 || nn.Dim() != 1 {
		t.Errorf("Len, Dim = %d, %d", nn.Len(), nn.Dim())
	}
}

func TestNearestNeighbors_Errors(t *testing.T) {
	t.Parallel()
	m := mustMetric(t, MetricEuclidean, 0)

	if _, err := NewNearestNeighbors(m, nil); err == nil {
		t.Error("expected error for no rows")
	}
	if _, err := NewNearestNeighbors(m, [][]float64{{1, 2}, {1}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ragged rows error = %v", err)
	}

	nn, err := NewNearestNeighbors(m, [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("NewNearestNeighbors() error = %v", err)
	}
	if _, err := nn.KNeighbors([]float64{1}, 1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short query error = %v", err)
	}
	if _, err := nn.KNeighbors([]float64{1, 2}, 3); err == nil {
		t.Error("expected error for k > rows")
	}
	if _, err := nn.KNeighbors([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for k = 0")
	}
}

func TestNearestNeighbors_NonFiniteQuery(t *testing.T) {
	t.Parallel()

	nn, err := NewNearestNeighbors(mustMetric(t, MetricEuclidean, 0), [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("NewNearestNeighbors() error = %v", err)
	}
	c, err := NewKNNClassifier(KNNConfig{K: 1, Metric: mustMetric(t, MetricEuclidean, 0)},
		[][]float64{{1, 2}, {3, 4}}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("NewKNNClassifier() error = %v", err)
	}

	for _, vec := range [][]float64{{math.NaN(), 2}, {1, math.Inf(-1)}} {
		if _, err := nn.KNeighbors(vec, 1); !errors.Is(err, ErrNonFiniteVector) {
			t.Errorf("KNeighbors(%v) error = %v, want ErrNonFiniteVector", vec, err)
		}
		if got, err := c.Predict(vec); !errors.Is(err, ErrNonFiniteVector) {
			t.Errorf("Predict(%v) = %q, %v, want ErrNonFiniteVector", vec, got, err)
		}
	}
}

func TestKNNClassifier_Uniform(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0}, {1}, {2}, {10}, {11}}
	labels := []string{"b", "a", "a", "c", "c"}
	c, err := NewKNNClassifier(KNNConfig{K: 3, Metric: mustMetric(t, MetricEuclidean, 0)}, rows, labels)
	if err != nil {
		t.Fatalf("NewKNNClassifier() error = %v", err)
	}

	if got, _ := c.Predict([]float64{0.4}); got != "a" {
		t.Errorf("Predict(0.4) = %q, want a", got)
	}
	if got, _ := c.Predict([]float64{10.5}); got != "c" {
		t.Errorf("Predict(10.5) = %q, want c", got)
	}
	if !reflect.DeepEqual(c.Classes(), []string{"a", "b", "c"}) {
		t.Errorf("Classes() = %v", c.Classes())
	}
}

func TestKNNClassifier_TieGoesToFirstClass(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0}, {1}}
	labels := []string{"zebra", "aardvark"}
	c, err := NewKNNClassifier(KNNConfig{K: 2, Metric: mustMetric(t, MetricEuclidean, 0)}, rows, labels)
	if err != nil {
		t.Fatalf("NewKNNClassifier() error = %v", err)
	}
	if got, _ := c.Predict([]float64{0}); got != "aardvark" {
		t.Errorf("Predict() = %q, want aardvark", got)
	}
}

func TestKNNClassifier_DistanceWeights(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0}, {3}, {3.5}}
	labels := []string{"near", "far", "far"}
	c, err := NewKNNClassifier(KNNConfig{K: 3, Weights: WeightsDistance, Metric: mustMetric(t, MetricEuclidean, 0)}, rows, labels)
	if err != nil {
		t.Fatalf("NewKNNClassifier() error = %v", err)
	}

	// 1/0.5 = 2 beats 1/2.5 + 1/3.
	if got, _ := c.Predict([]float64{0.5}); got != "near" {
		t.Errorf("Predict(0.5) = %q, want near", got)
	}
	// An exact match takes all the weight.
	if got, _ := c.Predict([]float64{3}); got != "far" {
		t.Errorf("Predict(3) = %q, want far", got)
	}
}

func TestKNNClassifier_Invalid(t *testing.T) {
	t.Parallel()
	m := mustMetric(t, MetricEuclidean, 0)
	rows := [][]float64{{0}, {1}}

	tests := []struct {
		name   string
		cfg    KNNConfig
		labels []string
	}{
		{"k too large", KNNConfig{K: 3, Metric: m}, []string{"a", "b"}},
		{"k zero", KNNConfig{K: 0, Metric: m}, []string{"a", "b"}},
		{"label count", KNNConfig{K: 1, Metric: m}, []string{"a"}},
		{"empty label", KNNConfig{K: 1, Metric: m}, []string{"a", ""}},
		{"bad weights", KNNConfig{K: 1, Weights: "gaussian", Metric: m}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewKNNClassifier(tt.cfg, rows, tt.labels); err == nil {
				t.Error("NewKNNClassifier() expected error")
			}
		})
	}
}

func TestRobustScaler(t *testing.T) {
	t.Parallel()

	s, err := NewRobustScaler([]string{"a", "b", "c"}, []float64{1, 2, 3}, []float64{2, 0, 4})
	if err != nil {
		t.Fatalf("NewRobustScaler() error = %v", err)
	}
	in := []float64{5, 4, 3}
	got, err := s.Transform(in)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if !reflect.DeepEqual(got, []float64{2, 2, 0}) {
		t.Errorf("Transform() = %v, want [2 2 0]", got)
	}
	if !reflect.DeepEqual(in, []float64{5, 4, 3}) {
		t.Error("Transform() modified its input")
	}

	if _, err := s.Transform([]float64{1}); err == nil {
		t.Error("Transform() expected error for wrong length")
	}

	noCenter, err := NewRobustScaler([]string{"a"}, nil, []float64{2})
	if err != nil {
		t.Fatalf("NewRobustScaler() error = %v", err)
	}
	if got, _ := noCenter.Transform([]float64{4}); got[0] != 2 {
		t.Errorf("unscaled center Transform() = %v, want [2]", got)
	}

	if _, err := NewRobustScaler([]string{"a", "b"}, []float64{1}, nil); err == nil {
		t.Error("NewRobustScaler() expected error for short center")
	}
}

func TestReference_ParquetRoundTrip(t *testing.T) {
	t.Parallel()

	rows := []ReferenceRow{
		{Breed: "Beagle", Features: []float64{1, 2, 3}},
		{Breed: "Poodle", Features: []float64{-1, 0.5, 9}},
	}
	path := filepath.Join(t.TempDir(), ReferenceFile)
	if err := WriteReferenceParquet(rows, path); err != nil {
		t.Fatalf("WriteReferenceParquet() error = %v", err)
	}

	got, err := ReadReferenceParquet(path)
	if err != nil {
		t.Fatalf("ReadReferenceParquet() error = %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("ReadReferenceParquet() = %v, want %v", got, rows)
	}
}

// chunkedRows returns at most size rows per Read, then io.EOF.
type chunkedRows struct {
	rows []ReferenceRow
	size int
}

func (c *chunkedRows) Read(dst []ReferenceRow) (int, error) {
	if len(c.rows) == 0 {
		return 0, io.EOF
	}
	n := c.size
	if n > len(dst) {
		n = len(dst)
	}
	if n > len(c.rows) {
		n = len(c.rows)
	}
	copy(dst, c.rows[:n])
	c.rows = c.rows[n:]
	return n, nil
}

func TestReadAllRows(t *testing.T) {
	t.Parallel()

	src := []ReferenceRow{
		{Breed: "A", Features: []float64{1}},
		{Breed: "B", Features: []float64{2}},
		{Breed: "C", Features: []float64{3}},
	}

	t.Run("chunked reads are joined", func(t *testing.T) {
		t.Parallel()
		dst := make([]ReferenceRow, len(src))
		n, err := readAllRows(&chunkedRows{rows: src, size: 1}, dst)
		if err != nil || n != len(src) {
			t.Fatalf("readAllRows() = %d, %v, want %d rows", n, err, len(src))
		}
		if !reflect.DeepEqual(dst, src) {
			t.Errorf("rows = %v, want %v", dst, src)
		}
	})

	t.Run("early EOF reports the short count", func(t *testing.T) {
		t.Parallel()
		dst := make([]ReferenceRow, 5)
		n, err := readAllRows(&chunkedRows{rows: src, size: 2}, dst)
		if err != nil {
			t.Fatalf("readAllRows() error = %v", err)
		}
		if n != len(src) {
			t.Errorf("n = %d, want %d", n, len(src))
		}
	})
}

func TestNewReference(t *testing.T) {
	t.Parallel()

	ref, err := NewReference([]ReferenceRow{
		{Breed: "Beagle", Features: []float64{1, 2}},
		{Breed: "Poodle", Features: []float64{3, 4}},
	})
	if err != nil {
		t.Fatalf("NewReference() error = %v", err)
	}
	if ref.Len() != 2 || ref.Dim() != 2 {
		t.Errorf("Len, Dim = %d, %d", ref.Len(), ref.Dim())
	}
	if b, ok := ref.Breed(1); !ok || b != "Poodle" {
		t.Errorf("Breed(1) = %q, %v", b, ok)
	}
	if _, ok := ref.Breed(2); ok {
		t.Error("Breed(2) should be out of range")
	}

	vecs := ref.Vectors()
	vecs[0][0] = 99
	if ref.Vectors()[0][0] != 1 {
		t.Error("Vectors() exposed internal rows")
	}

	if _, err := NewReference(nil); err == nil {
		t.Error("NewReference(nil) expected error")
	}
	if _, err := NewReference([]ReferenceRow{{Breed: "A", Features: []float64{1}}, {Breed: "B", Features: []float64{1, 2}}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("ragged NewReference() error = %v", err)
	}
	if _, err := NewReference([]ReferenceRow{{Features: []float64{1}}}); err == nil {
		t.Error("NewReference() expected error for missing breed")
	}
}
