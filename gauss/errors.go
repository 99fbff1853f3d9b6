// SPDX-License-Identifier: MIT

package gauss

import "errors"

// ErrSingular is returned in strict mode when a column has no usable pivot.
// It is always wrapped together with matrix.ErrDivisionByZero.
var ErrSingular = errors.New("gauss: matrix has no unique solution")
