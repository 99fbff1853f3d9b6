// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustAugmented(t, 2)))
}

func TestValidateRows(t *testing.T) {
	m := MustAugmented(t, 3)
	require.NoError(t, matrix.ValidateRows(m, 0, 1, 2))
	require.ErrorIs(t, matrix.ValidateRows(m, 0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRows(m, -1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRows(nil, 0), matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{1, math.NaN()}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.Inf(-1)}), matrix.ErrNaNInf)

	require.True(t, matrix.ExportedIsNonFinite(math.Inf(1)))
	require.False(t, matrix.ExportedIsNonFinite(-0.0))
}
