// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package features

import (
	"math"
	"strconv"
	"strings"
)

// Preferences is a user preference record keyed by feature name.
// Categorical fields hold strings; numeric fields hold numbers.
type Preferences map[string]interface{}

// Record is a preference record after encoding: every value is numeric.
type Record map[string]float64

// Clone returns an independent copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether every named field is present.
func (r Record) Has(fields ...string) bool {
	for _, f := range fields {
		if _, ok := r[f]; !ok {
			return false
		}
	}
	return true
}

// ToFloat converts a decoded JSON value to a finite float64. Numbers,
// booleans (as 0 or 1) and decimal or exponent strings with optional
// surrounding spaces are accepted. NaN and infinities are rejected in any form.
func ToFloat(v interface{}) (float64, bool) {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
