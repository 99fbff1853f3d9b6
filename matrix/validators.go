// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep row kernels minimal by delegating nil/bounds/finite checks here.
//   - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Bounds → Finite).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Augmented) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateRow checks that row indexes an existing row. Assumes m != nil.
func validateRow(m *Augmented, row int) error {
	if row < 0 || row >= m.n {
		return ErrOutOfRange
	}

	return nil
}

// ValidateRows ensures m is non-nil and every index in rows addresses an existing row.
// Complexity: O(len(rows)).
func ValidateRows(m *Augmented, rows ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, r := range rows {
		if err := validateRow(m, r); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateRows(%d)", r), err)
		}
	}

	return nil
}

// ValidateFinite checks a value slice for NaN/±Inf.
// Returns ErrNaNInf tagged with the first offending position.
func ValidateFinite(values []float64) error {
	for i, v := range values {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
