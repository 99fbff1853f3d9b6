// Package matrix provides the augmented matrix [A|b] of a square linear system
// and the elementary row operations used to reduce it.
//
// The matrix package provides:
//
//   - Augmented, an n×(n+1) float64 grid stored row-major in one flat buffer,
//     with bounds-checked access by (row, col) or by linear index.
//   - IncreaseSize / DecreaseSize to grow or shrink the system by one unknown
//     while keeping the surviving cells in place.
//   - The row primitives SwapRows, MultiplyRow, DivideRow, SubtractRow and
//     SubtractScaledRow.
//   - A canonical text form (String, FormatValue) shared by rendered matrices
//     and step labels.
//
// All failures are reported as wrapped sentinels (ErrOutOfRange,
// ErrDivisionByZero, ...) and matched with errors.Is. Options only panic on
// nonsensical values such as a negative epsilon.
//
// Matrices are not safe for concurrent mutation; callers sharing one must
// synchronise externally.
package matrix
