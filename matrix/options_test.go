// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestNewMatrixOptions_LastWriterWins ensures options apply in order.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6), nil)
	require.Equal(t, 1e-6, o.Epsilon())
}

// TestWithEpsilon_PanicsOnInvalid covers the programmer-error guard.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{0, -1e-12, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() {
			_ = matrix.WithEpsilon(eps)
		})
	}
}

// TestOptions_FlowIntoMatrix checks that the policy survives Clone.
func TestOptions_FlowIntoMatrix(t *testing.T) {
	m := MustAugmented(t, 2, matrix.WithEpsilon(1e-6), matrix.WithNoValidateNaNInf())
	require.Equal(t, 1e-6, m.Epsilon())
	require.NoError(t, m.Set(0, 0, math.NaN()))

	c := m.Clone()
	require.Equal(t, 1e-6, c.Epsilon())
	require.NoError(t, c.Set(0, 1, math.Inf(-1)))
}
