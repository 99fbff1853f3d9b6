// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Decimal window: values with magnitude in [1e-3, 1e7) are written in plain
// decimal notation, everything else in scientific notation.
const (
	plainLow  = 1e-3
	plainHigh = 1e7
)

// FormatValue renders v in the canonical cell/label notation. Whole numbers
// always carry ".0" and scientific notation uses an upper-case "E":
//
//	2      -> "2.0"
//	-0.5   -> "-0.5"
//	1e7    -> "1.0E7"
//	1.5e-4 -> "1.5E-4"
//	NaN    -> "NaN", ±Inf -> "Infinity" / "-Infinity"
//
// The shortest representation that round-trips is used for the digits.
// Negative zero is written as "0.0" so reduced rows never show "-0.0" cells.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= plainLow && abs < plainHigh {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}

	// 'e' yields "1.5e-04" / "1e+07"; rewrite to "1.5E-4" / "1.0E7".
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp) // Atoi accepts the leading sign

	return mant + "E" + strconv.Itoa(e)
}

// subscriptZero is U+2080 SUBSCRIPT ZERO; digits follow contiguously.
const subscriptZero = '₀'

// Subscript writes the decimal digits of a non-negative number as Unicode
// subscript digits: 12 -> "₁₂".
func Subscript(number int) string {
	digits := strconv.Itoa(number)
	var b strings.Builder
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			b.WriteRune(ch)
			continue
		}
		b.WriteRune(subscriptZero + (ch - '0'))
	}

	return b.String()
}

// VariableName names the cell at (row, col) the way the system is written on
// paper: coefficient cells are x with 1-based row and column subscripts
// (x₁₂), the right-hand-side column is b with the 1-based row (b₁).
func (m *Augmented) VariableName(row, col int) (string, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return "", augErrorf("VariableName", row, col, err)
	}
	if col == m.n {
		return "b" + Subscript(row+1), nil
	}

	return "x" + Subscript(row+1) + Subscript(col+1), nil
}
