// DogMatch - Dog Breed Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/dogmatch

package artifacts

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"
)

// ReferenceRow is one row of the reference dataset: a breed and its feature
// vector in model-column order.
type ReferenceRow struct {
	Breed    string    `parquet:"breed" json:"breed"`
	Features []float64 `parquet:"features" json:"features"`
}

// Reference is the read-only dataset the similarity index is fit on.
type Reference struct {
	rows []ReferenceRow
}

// NewReference validates rows and returns a Reference holding a copy of them.
func NewReference(rows []ReferenceRow) (*Reference, error) {
	if len(rows) == 0 {
		return nil, errors.New("reference dataset is empty")
	}
	dim := len(rows[0].Features)
	out := make([]ReferenceRow, len(rows))
	for i, r := range rows {
		if r.Breed == "" {
			return nil, fmt.Errorf("reference row %d has no breed", i)
		}
		if len(r.Features) == 0 || len(r.Features) != dim {
			return nil, fmt.Errorf("reference row %d: %w: got %d, want %d", i, ErrDimensionMismatch, len(r.Features), dim)
		}
		out[i] = ReferenceRow{Breed: r.Breed, Features: append([]float64(nil), r.Features...)}
	}
	return &Reference{rows: out}, nil
}

// Len returns the number of rows.
func (r *Reference) Len() int { return len(r.rows) }

// Dim returns the feature vector dimension.
func (r *Reference) Dim() int { return len(r.rows[0].Features) }

// Breed returns the breed of row i.
func (r *Reference) Breed(i int) (string, bool) {
	if i < 0 || i >= len(r.rows) {
		return "", false
	}
	return r.rows[i].Breed, true
}

// Vectors returns a copy of every feature vector in row order.
func (r *Reference) Vectors() [][]float64 {
	out := make([][]float64, len(r.rows))
	for i, row := range r.rows {
		out[i] = append([]float64(nil), row.Features...)
	}
	return out
}

// Labels returns the breed of every row in row order.
func (r *Reference) Labels() []string {
	out := make([]string, len(r.rows))
	for i, row := range r.rows {
		out[i] = row.Breed
	}
	return out
}

// ReadReferenceParquet reads reference rows from a Parquet file.
func ReadReferenceParquet(path string) ([]ReferenceRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[ReferenceRow](file)
	defer func() { _ = reader.Close() }()

	rows := make([]ReferenceRow, reader.NumRows())
	n, err := readAllRows(reader, rows)
	if err != nil {
		return nil, err
	}
	if n != len(rows) {
		return nil, fmt.Errorf("short parquet read: got %d of %d rows", n, len(rows))
	}
	return rows, nil
}

// rowReader is the subset of parquet.GenericReader used by readAllRows.
type rowReader interface {
	Read(rows []ReferenceRow) (int, error)
}

// readAllRows fills rows from r, which may return fewer rows per call than
// requested (for example at row group boundaries). It stops at io.EOF.
func readAllRows(r rowReader, rows []ReferenceRow) (int, error) {
	total := 0
	for total < len(rows) {
		n, err := r.Read(rows[total:])
		total += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("failed to read parquet rows: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// WriteReferenceParquet writes reference rows to a Parquet file.
func WriteReferenceParquet(rows []ReferenceRow, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	writer := parquet.NewGenericWriter[ReferenceRow](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		_ = file.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return file.Close()
}

// ReadReferenceJSON reads reference rows from a JSON array.
func ReadReferenceJSON(path string) ([]ReferenceRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []ReferenceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode reference rows: %w", err)
	}
	return rows, nil
}
