// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (invalid Option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf -> arithmetic (division by zero).

var (
	// ErrInvalidDimensions indicates that a requested size is below MinSize.
	ErrInvalidDimensions = errors.New("matrix: size must be >= 2")

	// ErrBadShape is returned when literal rows do not form an n×(n+1) augmented shape.
	ErrBadShape = errors.New("matrix: invalid augmented shape")

	// ErrOutOfRange indicates that a row, column or linear index is outside valid bounds.
	// Public indexers (At/Set/AtIndex/SetAtIndex) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDivisionByZero signals an attempt to divide a row by an exact zero.
	// The row is left untouched; no NaN/Inf is ever written.
	ErrDivisionByZero = errors.New("matrix: cannot divide values by zero")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Augmented (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotReduced is returned by Solution when the coefficient block is not
	// the identity within the requested tolerance.
	ErrNotReduced = errors.New("matrix: coefficient block is not reduced to identity")
)
