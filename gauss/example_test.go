// SPDX-License-Identifier: MIT
package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/matrix"
)

// ExampleSolve solves a 3×3 system and prints each recorded step.
func ExampleSolve() {
	m := matrix.MustAugmentedFromRows([][]float64{
		{1, 1, -1, 9},
		{0, 1, 3, 3},
		{-1, 0, -2, 6},
	})
	tr, err := gauss.Solve(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, label := range tr.Labels() {
		fmt.Println(label)
	}
	fmt.Println(m)

	// Output:
	// Multiply row 1 by -1.0 and subtract from row 3.
	// Subtract row 2 from row 3.
	// Divide row 3 by -6.0.
	// Back substitution: Subtract row 2 from row 1.
	// Back substitution: Multiply row 3 by 3.0 and subtract from row 2.
	// Back substitution: Multiply row 3 by -4.0 and subtract from row 1.
	// [1.0, 0.0, 0.0, -2.0]
	// [0.0, 1.0, 0.0, 9.0]
	// [0.0, 0.0, 1.0, -2.0]
}

// ExampleSolve_singular shows the default handling of a singular system.
func ExampleSolve_singular() {
	m := matrix.MustAugmentedFromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
	})
	tr, _ := gauss.Solve(m)
	fmt.Println(tr.Invalid())
	label, _ := tr.Label(tr.StepCount() - 1)
	fmt.Println(label)

	// Output:
	// true
	// Invalid input given: Matrix has no unique solution.
}
