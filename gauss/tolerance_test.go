// SPDX-License-Identifier: MIT
package gauss_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gausstrace/gauss"
)

func TestTolerance(t *testing.T) {
	eps := gauss.DefaultEpsilon
	assert.True(t, gauss.IsZero(0, eps))
	assert.True(t, gauss.IsZero(-1e-10, eps))
	assert.False(t, gauss.IsZero(1e-9, eps)) // strict inequality
	assert.True(t, gauss.IsOne(1+1e-12, eps))
	assert.False(t, gauss.IsOne(1.1, eps))
	assert.False(t, gauss.Equal(-2, -2, 0)) // zero tolerance accepts nothing
	assert.True(t, gauss.Equal(3, 3.0000000001, eps))
	assert.False(t, gauss.Equal(math.NaN(), math.NaN(), eps))
}

func TestOptions(t *testing.T) {
	o := gauss.NewOptions()
	require.Equal(t, gauss.DefaultEpsilon, o.Epsilon())
	require.False(t, o.FailOnSingular())

	o = gauss.NewOptions(gauss.WithEpsilon(1e-4), gauss.WithFailOnSingular(), nil)
	require.Equal(t, 1e-4, o.Epsilon())
	require.True(t, o.FailOnSingular())

	require.Panics(t, func() { gauss.WithEpsilon(0) })
	require.Panics(t, func() { gauss.WithEpsilon(-1) })
	require.Panics(t, func() { gauss.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { gauss.WithLogger(nil) })
}
