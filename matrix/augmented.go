// SPDX-License-Identifier: MIT

// Package matrix - Augmented storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an n×(n+1) row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the augmented-column invariant (cols == rows+1) across every resize.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewAugmented: O(n²) zero-init; At/Set/AtIndex/SetAtIndex: O(1);
//     IncreaseSize/DecreaseSize/Clone/String: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxAtIndex    = "AtIndex"
	ctxSetIndex   = "SetAtIndex"
	ctxIndexToPos = "IndexToPosition"
	ctxPosToIndex = "PositionToIndex"
	ctxRow        = "Row"
	ctxSolution   = "Solution"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtRowSep   = "\n"
	_fmtSep      = ", "
)

// augErrorf wraps a sentinel with method context and coordinates.
// Output shape: "Augmented.<method>(row,col): <sentinel>".
func augErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Augmented.%s(%d,%d): %w", method, row, col, err)
}

// augIndexErrorf is the linear-index flavour of augErrorf.
func augIndexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Augmented.%s(%d): %w", method, idx, err)
}

// Augmented is the augmented matrix [A|b] of a square linear system.
//   - n is the number of unknowns (rows); the column count is always n+1.
//   - data is a flat buffer of length n*(n+1) in row-major order (offset = i*(n+1) + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and in the row operations.
//   - eps is the tolerance used by Equal-style helpers.
type Augmented struct {
	n              int       // rows (unknowns), >= MinSize
	data           []float64 // contiguous row-major storage (len == n*(n+1))
	validateNaNInf bool      // numeric guard
	eps            float64   // tolerance for Solution
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Augmented)(nil)

// NewAugmented creates a size×(size+1) zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate size >= MinSize; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Inputs:
//   - size: number of unknowns (rows).
//   - opts: numeric policy options (WithEpsilon, WithNoValidateNaNInf, ...).
//
// Returns:
//   - *Augmented: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (size < MinSize).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewAugmented(size int, opts ...Option) (*Augmented, error) {
	if size < MinSize {
		return nil, fmt.Errorf("NewAugmented(%d): %w", size, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Augmented{
		n:              size,
		data:           make([]float64, size*(size+1)), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
		eps:            o.eps,
	}, nil
}

// NewDefaultAugmented returns a DefaultSize×(DefaultSize+1) zero matrix.
func NewDefaultAugmented(opts ...Option) *Augmented {
	m, _ := NewAugmented(DefaultSize, opts...) // DefaultSize >= MinSize, cannot fail

	return m
}

// Rows returns the row count (number of unknowns).
func (m *Augmented) Rows() int { return m.n }

// Cols returns the column count, always Rows()+1.
func (m *Augmented) Cols() int { return m.n + 1 }

// Size is an alias of Rows that reads better in resize-heavy code.
func (m *Augmented) Size() int { return m.n }

// Shape packs Rows() and Cols() into a single call.
func (m *Augmented) Shape() (rows, cols int) { return m.n, m.n + 1 }

// Len returns the number of cells (Rows()*Cols()).
func (m *Augmented) Len() int { return len(m.data) }

// Epsilon returns the tolerance this matrix was built with.
func (m *Augmented) Epsilon() float64 { return m.eps }

// indexOf bounds-checks (row, col) and returns the flat offset.
// Returns the bare sentinel; public callers wrap it with coordinates.
func (m *Augmented) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col > m.n {
		return 0, ErrOutOfRange
	}

	return row*(m.n+1) + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Augmented) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, augErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf while the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Augmented) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return augErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return augErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// IndexToPosition converts a linear index into (row, col).
//
//	row = (i / Cols()) mod Rows()
//	col = i - row*Cols()
//
// Errors: ErrOutOfRange when i < 0 or i >= Rows()*Cols().
func (m *Augmented) IndexToPosition(i int) (row, col int, err error) {
	if i < 0 || i >= len(m.data) {
		return 0, 0, augIndexErrorf(ctxIndexToPos, i, ErrOutOfRange)
	}
	cols := m.n + 1
	row = (i / cols) % m.n
	col = i - row*cols

	return row, col, nil
}

// PositionToIndex converts (row, col) into the linear index row*Cols()+col.
// Only the resulting index is range-checked: any (row, col) whose index lands
// inside [0, Rows()*Cols()) is accepted, so (0, Cols()) maps to the first cell
// of row 1. Negative coordinates are rejected.
func (m *Augmented) PositionToIndex(row, col int) (int, error) {
	if row < 0 || col < 0 {
		return 0, augErrorf(ctxPosToIndex, row, col, ErrOutOfRange)
	}
	idx := row*(m.n+1) + col
	if idx > len(m.data)-1 {
		return 0, augErrorf(ctxPosToIndex, row, col, ErrOutOfRange)
	}

	return idx, nil
}

// AtIndex reads the cell at linear index i.
func (m *Augmented) AtIndex(i int) (float64, error) {
	row, col, err := m.IndexToPosition(i)
	if err != nil {
		return 0, augIndexErrorf(ctxAtIndex, i, ErrOutOfRange)
	}

	return m.At(row, col)
}

// SetAtIndex writes v at linear index i (same numeric policy as Set).
func (m *Augmented) SetAtIndex(i int, v float64) error {
	row, col, err := m.IndexToPosition(i)
	if err != nil {
		return augIndexErrorf(ctxSetIndex, i, ErrOutOfRange)
	}

	return m.Set(row, col, v)
}

// IncreaseSize grows the matrix to (n+1)×(n+2).
// MAIN DESCRIPTION:
//   - Append one zero row and one zero column to every row.
//
// Implementation:
//   - Stage 1: allocate the (n+1)×(n+2) buffer (zero-filled).
//   - Stage 2: copy each old row into the wider stride.
//
// Behavior highlights:
//   - Existing values keep their (row, col) coordinates; the previous right-hand
//     side column becomes the last coefficient column.
//   - No failure mode.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Augmented) IncreaseSize() {
	oldCols := m.n + 1
	size := m.n + 1
	buf := make([]float64, size*(size+1))
	for i := 0; i < m.n; i++ {
		copy(buf[i*(size+1):i*(size+1)+oldCols], m.data[i*oldCols:(i+1)*oldCols])
	}
	m.n = size
	m.data = buf
}

// DecreaseSize shrinks the matrix to (n-1)×n by dropping the last row and the
// last column of every remaining row. Ignored when Rows() < 3 so the matrix
// never drops below MinSize.
// Complexity: O(n²).
func (m *Augmented) DecreaseSize() {
	if m.n < MinSize+1 {
		return
	}
	oldCols := m.n + 1
	size := m.n - 1
	buf := make([]float64, size*(size+1))
	for i := 0; i < size; i++ {
		copy(buf[i*(size+1):(i+1)*(size+1)], m.data[i*oldCols:i*oldCols+size+1])
	}
	m.n = size
	m.data = buf
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations on either copy never show through the other.
// Complexity: O(n²).
func (m *Augmented) Clone() *Augmented {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Augmented{
		n:              m.n,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		eps:            m.eps,
	}
}

// Row returns a copy of row i.
func (m *Augmented) Row(i int) ([]float64, error) {
	if err := validateRow(m, i); err != nil {
		return nil, fmt.Errorf("Augmented.%s(%d): %w", ctxRow, i, err)
	}
	cols := m.n + 1
	out := make([]float64, cols)
	copy(out, m.data[i*cols:(i+1)*cols])

	return out, nil
}

// Rows2D returns a deep [][]float64 copy of the matrix, row by row.
func (m *Augmented) Rows2D() [][]float64 {
	cols := m.n + 1
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]float64, cols)
		copy(out[i], m.data[i*cols:(i+1)*cols])
	}

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Augmented) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	cols := m.n + 1
	for i = 0; i < m.n; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Equal reports whether other has the same shape and every cell differs from
// the matching cell of m by less than eps. A nil operand is never equal.
func (m *Augmented) Equal(other *Augmented, eps float64) bool {
	if m == nil || other == nil || m.n != other.n {
		return false
	}
	for idx, v := range m.data {
		if math.Abs(v-other.data[idx]) >= eps {
			return false
		}
	}

	return true
}

// Solution returns the right-hand-side column once the coefficient block is
// the identity within the matrix tolerance, i.e. after a successful solve.
// MAIN DESCRIPTION:
//   - Read x from [I|x].
//
// Errors:
//   - ErrNotReduced when any coefficient cell deviates from the identity.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (m *Augmented) Solution() ([]float64, error) {
	cols := m.n + 1
	var i, j int
	var want float64
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(m.data[i*cols+j]-want) >= m.eps {
				return nil, augErrorf(ctxSolution, i, j, ErrNotReduced)
			}
		}
	}
	x := make([]float64, m.n)
	for i = 0; i < m.n; i++ {
		x[i] = m.data[i*cols+m.n]
	}

	return x, nil
}

// String renders the canonical textual form:
//
//	[v00, v01, …]
//	[v10, v11, …]
//
// Rows are joined by "\n" with no trailing newline; values use FormatValue.
// Complexity: O(n²).
func (m *Augmented) String() string {
	var b strings.Builder
	var i, j, base int
	cols := m.n + 1
	for i = 0; i < m.n; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		base = i * cols
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(FormatValue(m.data[base+j]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
