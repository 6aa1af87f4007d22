// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"fmt"
)

// RobustScaler applies a pre-fit median/IQR scaling: (x - center) / scale.
// It implements features.Scaler.
type RobustScaler struct {
	columns []string
	center  []float64
	scale   []float64
}

// NewRobustScaler builds a scaler. A nil center disables centering and a nil
// scale disables scaling. Zero scales are replaced by 1.
func NewRobustScaler(columns []string, center, scale []float64) (*RobustScaler, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("robust scaler: no columns")
	}
	if center != nil && len(center) != len(columns) {
		return nil, fmt.Errorf("robust scaler: %d centers for %d columns", len(center), len(columns))
	}
	if scale != nil && len(scale) != len(columns) {
		return nil, fmt.Errorf("robust scaler: %d scales for %d columns", len(scale), len(columns))
	}

	s := &RobustScaler{columns: append([]string(nil), columns...)}
	if center != nil {
		s.center = append([]float64(nil), center...)
	}
	if scale != nil {
		s.scale = make([]float64, len(scale))
		for i, v := range scale {
			if v == 0 {
				v = 1
			}
			s.scale[i] = v
		}
	}
	return s, nil
}

// Columns returns the scaled columns in transform order.
func (s *RobustScaler) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Transform scales values, which must be in Columns order.
func (s *RobustScaler) Transform(values []float64) ([]float64, error) {
	if len(values) != len(s.columns) {
		return nil, fmt.Errorf("robust scaler: got %d values for %d columns", len(values), len(s.columns))
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if s.center != nil {
			v -= s.center[i]
		}
		if s.scale != nil {
			v /= s.scale[i]
		}
		out[i] = v
	}
	return out, nil
}
