// SPDX-License-Identifier: MIT
package trace_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/katalvlaran/gausstrace/trace"
)

func fixture(t *testing.T) *matrix.Augmented {
	t.Helper()
	m, err := matrix.NewAugmentedFromRows([][]float64{{2, 4, 6}, {1, 3, 5}})
	require.NoError(t, err)

	return m
}

func TestNewTrace(t *testing.T) {
	tr := trace.New()
	require.Zero(t, tr.StepCount())
	require.False(t, tr.Invalid())
	_, err := uuid.Parse(tr.ID())
	require.NoError(t, err)
	require.NotEqual(t, tr.ID(), trace.New().ID())
}

func TestLabels(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{trace.SwapLabel(0, 1, false), "Swap row 1 with row 2."},
		{trace.DivisionLabel(2, -6, false), "Divide row 3 by -6.0."},
		{trace.DivisionLabel(0, 0.5, false), "Divide row 1 by 0.5."},
		{trace.SubtractLabel(1, 2, false), "Subtract row 2 from row 3."},
		{trace.SubtractLabel(1, 0, true), "Back substitution: Subtract row 2 from row 1."},
		{trace.MultiplySubtractLabel(0, 2, -1, false), "Multiply row 1 by -1.0 and subtract from row 3."},
		{trace.MultiplySubtractLabel(2, 1, 3, true), "Back substitution: Multiply row 3 by 3.0 and subtract from row 2."},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.got)
	}
}

func TestAddStepSnapshotIndependence(t *testing.T) {
	m := fixture(t)
	tr := trace.New()
	tr.AddDivision(m, 0, 2, false) // label only; the caller mutates separately
	require.NoError(t, matrix.DivideRow(m, 0, 2))
	tr.AddSubtract(m, 0, 1, false)

	first, err := tr.Step(0)
	require.NoError(t, err)
	require.Equal(t, "[2.0, 4.0, 6.0]\n[1.0, 3.0, 5.0]", first.String())

	// mutating the returned copy must not touch the log
	require.NoError(t, first.Set(0, 0, 99))
	again, err := tr.Step(0)
	require.NoError(t, err)
	require.Equal(t, "[2.0, 4.0, 6.0]\n[1.0, 3.0, 5.0]", again.String())

	// mutating the source after recording must not touch the log either
	require.NoError(t, m.Set(1, 1, -1))
	second, err := tr.Step(1)
	require.NoError(t, err)
	require.Equal(t, "[1.0, 2.0, 3.0]\n[1.0, 3.0, 5.0]", second.String())
}

func TestRecordersAndAccessors(t *testing.T) {
	m := fixture(t)
	tr := trace.New()
	tr.AddSwap(m, 0, 1, false)
	tr.AddMultiplyAndSubtract(m, 1, 0, 0.5, true)
	tr.AddStep(m, "custom")
	require.Equal(t, 3, tr.StepCount())
	require.Equal(t, []string{
		"Swap row 1 with row 2.",
		"Back substitution: Multiply row 2 by 0.5 and subtract from row 1.",
		"custom",
	}, tr.Labels())

	label, err := tr.Label(2)
	require.NoError(t, err)
	require.Equal(t, "custom", label)

	_, err = tr.Label(3)
	require.ErrorIs(t, err, trace.ErrStepOutOfRange)
	_, err = tr.Step(-1)
	require.ErrorIs(t, err, trace.ErrStepOutOfRange)

	final, err := tr.Final()
	require.NoError(t, err)
	require.Equal(t, m.String(), final.String())

	_, err = trace.New().Final()
	require.ErrorIs(t, err, trace.ErrStepOutOfRange)
}

func TestAddInvalid(t *testing.T) {
	tr := trace.New()
	tr.AddInvalid(fixture(t))
	require.True(t, tr.Invalid())
	label, err := tr.Label(0)
	require.NoError(t, err)
	require.Equal(t, trace.InvalidLabel, label)
}

func TestDoEarlyStop(t *testing.T) {
	m := fixture(t)
	tr := trace.New()
	for i := 0; i < 4; i++ {
		tr.AddStep(m, "s")
	}
	visited := 0
	tr.Do(func(i int, snap *matrix.Augmented, label string) bool {
		visited++
		require.Equal(t, "s", label)
		return i < 1
	})
	require.Equal(t, 2, visited)
}

func TestExport(t *testing.T) {
	tr := trace.New()
	tr.AddSwap(fixture(t), 0, 1, false)
	ex := tr.Export()
	require.Equal(t, tr.ID(), ex.ID)
	require.False(t, ex.Invalid)
	require.Len(t, ex.Steps, 1)
	require.Equal(t, [][]float64{{2, 4, 6}, {1, 3, 5}}, ex.Steps[0].Rows)

	raw, err := json.Marshal(ex)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"label":"Swap row 1 with row 2."`)

	var back trace.Export
	out, err := yaml.Marshal(ex)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, ex, back)
}
