// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NewAugmentedFromRows builds an n×(n+1) matrix from literal rows.
// MAIN DESCRIPTION:
//   - Deep-copies rows into a fresh row-major buffer; the caller keeps ownership
//     of the input slices.
//
// Implementation:
//   - Stage 1: n = len(rows); require n >= MinSize (ErrInvalidDimensions).
//   - Stage 2: every row must have exactly n+1 entries (ErrBadShape).
//   - Stage 3: with the finite policy on, reject NaN/±Inf (ErrNaNInf).
//   - Stage 4: copy row by row.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewAugmentedFromRows(rows [][]float64, opts ...Option) (*Augmented, error) {
	n := len(rows)
	if n < MinSize {
		return nil, fmt.Errorf("NewAugmentedFromRows: %d rows: %w", n, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	cols := n + 1
	data := make([]float64, n*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewAugmentedFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrBadShape)
		}
		if o.validateNaNInf {
			if err := ValidateFinite(row); err != nil {
				return nil, fmt.Errorf("NewAugmentedFromRows: row %d: %w", i, err)
			}
		}
		copy(data[i*cols:(i+1)*cols], row)
	}

	return &Augmented{
		n:              n,
		data:           data,
		validateNaNInf: o.validateNaNInf,
		eps:            o.eps,
	}, nil
}

// MustAugmentedFromRows is NewAugmentedFromRows for fixed literals; it panics on error.
func MustAugmentedFromRows(rows [][]float64, opts ...Option) *Augmented {
	m, err := NewAugmentedFromRows(rows, opts...)
	if err != nil {
		panic(err)
	}

	return m
}
