// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/katalvlaran/gausstrace/trace"
)

// solver carries the state of one Solve call.
type solver struct {
	m   *matrix.Augmented
	tr  *trace.Trace
	eps float64
	log *slog.Logger
}

// Solve reduces m to [I|x] in place and returns the trace of every operation.
// MAIN DESCRIPTION:
//   - Forward elimination with pivot search, then full back substitution.
//
// Implementation:
//   - Stage 1 (forward, i = 0..n-1):
//     a) while (i,i) is numerically zero, swap row i with row i+k, k = 1..n-i-1;
//     b) no pivot left: record an invalid step and stop (strict mode: error);
//     c) pivot not numerically one: divide row i by it;
//     d) clear column i below the pivot.
//   - Stage 2 (back, i = 0..n-1): clear column i above the pivot, rows i-1 down to 0.
//
// Behavior highlights:
//   - Every applied operation is followed by exactly one recorded step.
//   - Entries that are numerically zero are skipped, numerically one are
//     subtracted plainly, anything else is subtracted scaled.
//   - An input already in [I|x] form yields an empty trace.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - ErrSingular wrapped together with matrix.ErrDivisionByZero in strict mode.
//   - Any row primitive failure (e.g. matrix.ErrNaNInf) aborts the solve.
//     No partial trace is returned with an error.
//
// Complexity:
//   - Time O(n³) arithmetic plus O(n²) per recorded snapshot.
func Solve(m *matrix.Augmented, opts ...Option) (*trace.Trace, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("gauss.Solve: %w", err)
	}
	o := gatherOptions(opts...)
	s := &solver{
		m:   m,
		tr:  trace.New(),
		eps: o.eps,
	}
	s.log = o.logger.With(slog.String("trace_id", s.tr.ID()))
	s.log.Debug("solve started", slog.Int("size", m.Rows()))

	n := m.Rows()
	for i := 0; i < n; i++ {
		ok, err := s.pivot(i)
		if err != nil {
			return nil, err
		}
		if !ok {
			if o.failOnSingular {
				err = fmt.Errorf("gauss.Solve: pivot row %d: %w: %w", i+1, ErrSingular, matrix.ErrDivisionByZero)
				s.log.Info("solve failed", slog.String("error", err.Error()))
				return nil, err
			}
			s.tr.AddInvalid(m)
			s.recorded()
			s.finish()
			return s.tr, nil
		}
		if err = s.normalise(i); err != nil {
			return nil, err
		}
		for j := i + 1; j < n; j++ {
			if err = s.eliminate(i, j, false); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i - 1; j >= 0; j-- {
			if err := s.eliminate(i, j, true); err != nil {
				return nil, err
			}
		}
	}
	s.finish()

	return s.tr, nil
}

// at reads a cell the solver knows to be in range.
func (s *solver) at(row, col int) float64 {
	v, _ := s.m.At(row, col)

	return v
}

// recorded logs the most recent step.
func (s *solver) recorded() {
	idx := s.tr.StepCount() - 1
	label, _ := s.tr.Label(idx)
	s.log.Debug("step", slog.Int("index", idx), slog.String("label", label))
}

// finish emits the summary record.
func (s *solver) finish() {
	s.log.Info("solve finished",
		slog.Int("steps", s.tr.StepCount()),
		slog.Bool("invalid", s.tr.Invalid()),
	)
}

// pivot makes (i,i) numerically non-zero by swapping in rows from below.
// Reports false when every candidate was tried and the pivot is still zero.
func (s *solver) pivot(i int) (bool, error) {
	n := s.m.Rows()
	for k := 1; IsZero(s.at(i, i), s.eps) && k <= n-i-1; k++ {
		if err := matrix.SwapRows(s.m, i, i+k); err != nil {
			return false, fmt.Errorf("gauss.Solve: %w", err)
		}
		s.tr.AddSwap(s.m, i, i+k, false)
		s.recorded()
	}

	return !IsZero(s.at(i, i), s.eps), nil
}

// normalise divides row i by its pivot unless the pivot is already one.
func (s *solver) normalise(i int) error {
	p := s.at(i, i)
	if IsOne(p, s.eps) {
		return nil
	}
	if err := matrix.DivideRow(s.m, i, p); err != nil {
		return fmt.Errorf("gauss.Solve: %w", err)
	}
	s.tr.AddDivision(s.m, i, p, false)
	s.recorded()

	return nil
}

// eliminate clears (j,i) using pivot row i.
func (s *solver) eliminate(i, j int, back bool) error {
	v := s.at(j, i)
	switch {
	case IsZero(v, s.eps):
		return nil
	case IsOne(v, s.eps):
		if err := matrix.SubtractRow(s.m, j, i); err != nil {
			return fmt.Errorf("gauss.Solve: %w", err)
		}
		s.tr.AddSubtract(s.m, i, j, back)
	default:
		if err := matrix.SubtractScaledRow(s.m, j, i, v); err != nil {
			return fmt.Errorf("gauss.Solve: %w", err)
		}
		s.tr.AddMultiplyAndSubtract(s.m, i, j, v, back)
	}
	s.recorded()

	return nil
}
