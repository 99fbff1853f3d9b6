// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for augmented matrices and row kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/stretchr/testify/require"
)

// MustAugmented ALLOCATES an n×(n+1) zero matrix or fails the test.
func MustAugmented(t testing.TB, n int, opts ...matrix.Option) *matrix.Augmented {
	t.Helper()
	m, err := matrix.NewAugmented(n, opts...)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a matrix from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Augmented {
	t.Helper()
	m, err := matrix.NewAugmentedFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Augmented, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Augmented, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// MustRow reads row i or fails the test.
func MustRow(t testing.TB, m *matrix.Augmented, i int) []float64 {
	t.Helper()
	row, err := m.Row(i)
	require.NoError(t, err)

	return row
}

// fillSequential writes 1, 2, 3, ... in row-major order.
func fillSequential(t testing.TB, m *matrix.Augmented) {
	t.Helper()
	for i := 0; i < m.Len(); i++ {
		require.NoError(t, m.SetAtIndex(i, float64(i+1)))
	}
}
