// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrDimensionMismatch is returned when a query vector does not have the
	// dimension of the fitted rows.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrNonFiniteVector is returned when a query vector holds NaN or Inf.
	ErrNonFiniteVector = errors.New("vector contains NaN or Inf")
)

// Neighbor is one result of a nearest-neighbor query.
type Neighbor struct {
	// Index is the row position in the fitted data.
	Index    int
	Distance float64
}

// NearestNeighbors is an exact brute-force nearest-neighbor index.
type NearestNeighbors struct {
	metric Metric
	rows   [][]float64
	dim    int
}

// NewNearestNeighbors fits an index over rows. Rows are copied.
func NewNearestNeighbors(metric Metric, rows [][]float64) (*NearestNeighbors, error) {
	if len(rows) == 0 {
		return nil, errors.New("nearest neighbors: no rows to fit")
	}
	dim := len(rows[0])
	if dim == 0 {
		return nil, errors.New("nearest neighbors: rows have no columns")
	}

	fitted := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("nearest neighbors: row %d: %w: got %d, want %d", i, ErrDimensionMismatch, len(row), dim)
		}
		fitted[i] = append([]float64(nil), row...)
	}

	return &NearestNeighbors{metric: metric, rows: fitted, dim: dim}, nil
}

// Len returns the number of fitted rows.
func (n *NearestNeighbors) Len() int { return len(n.rows) }

// Dim returns the vector dimension.
func (n *NearestNeighbors) Dim() int { return n.dim }

// Metric returns the distance metric.
func (n *NearestNeighbors) Metric() Metric { return n.metric }

// KNeighbors returns the k rows closest to vec, ordered by ascending
// distance. Rows at equal distance keep their fitted order.
func (n *NearestNeighbors) KNeighbors(vec []float64, k int) ([]Neighbor, error) {
	if len(vec) != n.dim {
		return nil, fmt.Errorf("nearest neighbors: %w: got %d, want %d", ErrDimensionMismatch, len(vec), n.dim)
	}
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("nearest neighbors: %w at column %d", ErrNonFiniteVector, i)
		}
	}
	if k <= 0 || k > len(n.rows) {
		return nil, fmt.Errorf("nearest neighbors: k=%d out of range 1..%d", k, len(n.rows))
	}

	all := make([]Neighbor, len(n.rows))
	for i, row := range n.rows {
		all[i] = Neighbor{Index: i, Distance: n.metric.Distance(vec, row)}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Distance < all[j].Distance
	})

	return all[:k], nil
}
