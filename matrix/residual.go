// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const ctxResidual = "Residual"

// Residual computes r = A·x - b where [A|b] is m.
//
// Contract: m non-nil; len(x) == m.Rows().
// Determinism: fixed i→j loop order.
// Complexity: Time O(n²), Space O(n) for r.
//
// Typical use: keep a Clone of the input system, solve m in place, then
// check Residual(input, solution) against the solver tolerance.
func Residual(m *Augmented, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxResidual, err)
	}
	if len(x) != m.n {
		return nil, fmt.Errorf("%s: len(x)=%d, want %d: %w", ctxResidual, len(x), m.n, ErrBadShape)
	}

	cols := m.n + 1
	r := make([]float64, m.n)
	var i, j, base int
	var acc float64
	for i = 0; i < m.n; i++ {
		acc = 0
		base = i * cols
		for j = 0; j < m.n; j++ {
			if x[j] != 0 { // skip zero multiplications
				acc += m.data[base+j] * x[j]
			}
		}
		r[i] = acc - m.data[base+m.n]
	}

	return r, nil
}

// MaxResidual returns max_i |(A·x - b)_i|.
func MaxResidual(m *Augmented, x []float64) (float64, error) {
	r, err := Residual(m, x)
	if err != nil {
		return 0, err
	}
	var worst float64
	for _, v := range r {
		worst = math.Max(worst, math.Abs(v))
	}

	return worst, nil
}
