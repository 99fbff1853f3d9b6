// SPDX-License-Identifier: MIT
// Package matrix - elementary row operations.
//
// Purpose:
//   - The five primitives every elimination step is built from: swap, multiply,
//     divide, subtract and subtract-scaled.
//   - All rows are 0-based; all functions operate in place on one matrix.
//
// Contract:
//   - Bad row index → ErrOutOfRange; nil matrix → ErrNilMatrix.
//   - Under the finite policy a result containing NaN/±Inf is rejected with
//     ErrNaNInf and the matrix is left unchanged (all-or-nothing).
//   - DivideRow refuses an exact zero divisor regardless of policy.
//
// Complexity:
//   - O(Cols()) time per call; at most one row-sized scratch buffer.

package matrix

import "fmt"

const (
	ctxSwap        = "SwapRows"
	ctxMultiply    = "MultiplyRow"
	ctxDivide      = "DivideRow"
	ctxSubtract    = "SubtractRow"
	ctxSubtractMul = "SubtractScaledRow"
)

// rowOpErrorf tags a sentinel with the primitive name and its row arguments.
func rowOpErrorf(op string, rows []int, err error) error {
	return fmt.Errorf("%s%v: %w", op, rows, err)
}

// rowSlice returns the live backing slice of row r. Assumes r is valid.
func (m *Augmented) rowSlice(r int) []float64 {
	cols := m.n + 1

	return m.data[r*cols : (r+1)*cols]
}

// commitRow writes scratch into row r after applying the finite policy.
func commitRow(m *Augmented, op string, r int, scratch []float64) error {
	if m.validateNaNInf {
		if err := ValidateFinite(scratch); err != nil {
			return rowOpErrorf(op, []int{r}, err)
		}
	}
	copy(m.rowSlice(r), scratch)

	return nil
}

// SwapRows exchanges rows a and b. Swapping a row with itself is a no-op.
func SwapRows(m *Augmented, a, b int) error {
	if err := ValidateRows(m, a, b); err != nil {
		return rowOpErrorf(ctxSwap, []int{a, b}, err)
	}
	if a == b {
		return nil
	}
	ra, rb := m.rowSlice(a), m.rowSlice(b)
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}

	return nil
}

// MultiplyRow scales every cell of row by scalar.
//
//	[2, 3, 4] × 2 → [4, 6, 8]
func MultiplyRow(m *Augmented, row int, scalar float64) error {
	if err := ValidateRows(m, row); err != nil {
		return rowOpErrorf(ctxMultiply, []int{row}, err)
	}
	src := m.rowSlice(row)
	scratch := make([]float64, len(src))
	for j, v := range src {
		scratch[j] = v * scalar
	}

	return commitRow(m, ctxMultiply, row, scratch)
}

// DivideRow divides every cell of row by divisor.
// MAIN DESCRIPTION:
//   - Normalising step of the forward pass.
//
// Errors:
//   - ErrDivisionByZero when divisor == 0 exactly; the row is not touched.
//   - ErrOutOfRange, ErrNilMatrix, ErrNaNInf as for every primitive.
//
// Complexity:
//   - Time O(Cols()), Space O(Cols()).
func DivideRow(m *Augmented, row int, divisor float64) error {
	if err := ValidateRows(m, row); err != nil {
		return rowOpErrorf(ctxDivide, []int{row}, err)
	}
	if divisor == 0 {
		return rowOpErrorf(ctxDivide, []int{row}, ErrDivisionByZero)
	}
	src := m.rowSlice(row)
	scratch := make([]float64, len(src))
	for j, v := range src {
		scratch[j] = v / divisor
	}

	return commitRow(m, ctxDivide, row, scratch)
}

// SubtractRow sets dst = dst - src cell by cell. src is unchanged.
//
//	[7, 9, 11] - [2, 3, 4] → [5, 6, 7]
func SubtractRow(m *Augmented, dst, src int) error {
	if err := ValidateRows(m, dst, src); err != nil {
		return rowOpErrorf(ctxSubtract, []int{dst, src}, err)
	}
	d, s := m.rowSlice(dst), m.rowSlice(src)
	scratch := make([]float64, len(d))
	for j := range d {
		scratch[j] = d[j] - s[j]
	}

	return commitRow(m, ctxSubtract, dst, scratch)
}

// SubtractScaledRow sets dst = dst - scalar*src cell by cell. src is unchanged.
//
//	[7, 9, 11] - 2×[2, 3, 4] → [3, 3, 3]
func SubtractScaledRow(m *Augmented, dst, src int, scalar float64) error {
	if err := ValidateRows(m, dst, src); err != nil {
		return rowOpErrorf(ctxSubtractMul, []int{dst, src}, err)
	}
	d, s := m.rowSlice(dst), m.rowSlice(src)
	scratch := make([]float64, len(d))
	for j := range d {
		scratch[j] = d[j] - scalar*s[j]
	}

	return commitRow(m, ctxSubtractMul, dst, scratch)
}
