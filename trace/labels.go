// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/gausstrace/matrix"
)

// Label templates. Row arguments are 1-based.
const (
	fmtSwap             = "Swap row %d with row %d."
	fmtDivide           = "Divide row %d by %s."
	fmtSubtract         = "Subtract row %d from row %d."
	fmtMultiplySubtract = "Multiply row %d by %s and subtract from row %d."

	// BackSubstitutionPrefix marks labels recorded during the backward pass.
	BackSubstitutionPrefix = "Back substitution: "

	// InvalidLabel is recorded when no non-zero pivot can be found.
	InvalidLabel = "Invalid input given: Matrix has no unique solution."
)

// withPhase prepends BackSubstitutionPrefix when back is set.
func withPhase(label string, back bool) string {
	if back {
		return BackSubstitutionPrefix + label
	}

	return label
}

// SwapLabel describes swapping 0-based rows a and b.
func SwapLabel(a, b int, back bool) string {
	return withPhase(fmt.Sprintf(fmtSwap, a+1, b+1), back)
}

// DivisionLabel describes dividing 0-based row by divisor.
func DivisionLabel(row int, divisor float64, back bool) string {
	return withPhase(fmt.Sprintf(fmtDivide, row+1, matrix.FormatValue(divisor)), back)
}

// SubtractLabel describes subtracting 0-based row src from row dst.
func SubtractLabel(src, dst int, back bool) string {
	return withPhase(fmt.Sprintf(fmtSubtract, src+1, dst+1), back)
}

// MultiplySubtractLabel describes dst -= scalar*src for 0-based rows.
func MultiplySubtractLabel(src, dst int, scalar float64, back bool) string {
	return withPhase(fmt.Sprintf(fmtMultiplySubtract, src+1, matrix.FormatValue(scalar), dst+1), back)
}
