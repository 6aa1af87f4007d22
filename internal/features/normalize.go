// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"fmt"
)

// Scaler is a pre-fit column transform. Transform receives the values of
// Columns in that order and returns the transformed values in the same order.
// Implementations must not retain or modify the input slice.
type Scaler interface {
	Columns() []string
	Transform(values []float64) ([]float64, error)
}

// Normalize returns a copy of rec with the schema's numeric columns replaced
// by their scaled values. The scaler must cover exactly those columns.
func Normalize(s *Schema, scaler Scaler, rec Record) (Record, error) {
	cols := scaler.Columns()
	if len(cols) != len(s.numericColumns) {
		return nil, &ScalingError{Err: fmt.Errorf("scaler has %d columns, schema has %d numeric columns",
			len(cols), len(s.numericColumns))}
	}

	in := make([]float64, len(cols))
	for i, col := range cols {
		if !s.isNumeric[col] {
			return nil, &ScalingError{Err: fmt.Errorf("scaler column %q is not numeric in the schema", col)}
		}
		v, ok := rec[col]
		if !ok {
			return nil, &ScalingError{Column: col}
		}
		in[i] = v
	}

	scaled, err := scaler.Transform(in)
	if err != nil {
		return nil, &ScalingError{Err: err}
	}
	if len(scaled) != len(cols) {
		return nil, &ScalingError{Err: fmt.Errorf("scaler returned %d values for %d columns", len(scaled), len(cols))}
	}

	out := rec.Clone()
	for i, col := range cols {
		out[col] = scaled[i]
	}
	return out, nil
}
