// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gausstrace/matrix"
)

// step is one recorded operation: the matrix right after it, and its label.
type step struct {
	snapshot *matrix.Augmented
	label    string
}

// Trace is the ordered log of a single solve.
// The zero value is not usable; create traces with New.
type Trace struct {
	id      string
	steps   []step
	invalid bool
}

// New returns an empty trace with a fresh random id.
func New() *Trace {
	return &Trace{id: uuid.NewString()}
}

// ID returns the trace identifier.
func (t *Trace) ID() string { return t.id }

// StepCount returns the number of recorded steps.
func (t *Trace) StepCount() int { return len(t.steps) }

// Invalid reports whether the solve ended without a unique solution.
func (t *Trace) Invalid() bool { return t.invalid }

// AddStep appends a deep copy of m with the given label.
// m must be non-nil; the solver validates its input before recording.
func (t *Trace) AddStep(m *matrix.Augmented, label string) {
	t.steps = append(t.steps, step{snapshot: m.Clone(), label: label})
}

// AddSwap records a swap of 0-based rows a and b.
func (t *Trace) AddSwap(m *matrix.Augmented, a, b int, back bool) {
	t.AddStep(m, SwapLabel(a, b, back))
}

// AddDivision records dividing row by divisor.
func (t *Trace) AddDivision(m *matrix.Augmented, row int, divisor float64, back bool) {
	t.AddStep(m, DivisionLabel(row, divisor, back))
}

// AddSubtract records subtracting row src from row dst.
func (t *Trace) AddSubtract(m *matrix.Augmented, src, dst int, back bool) {
	t.AddStep(m, SubtractLabel(src, dst, back))
}

// AddMultiplyAndSubtract records dst -= scalar*src.
func (t *Trace) AddMultiplyAndSubtract(m *matrix.Augmented, src, dst int, scalar float64, back bool) {
	t.AddStep(m, MultiplySubtractLabel(src, dst, scalar, back))
}

// AddInvalid marks the trace invalid and records the final matrix with InvalidLabel.
func (t *Trace) AddInvalid(m *matrix.Augmented) {
	t.invalid = true
	t.AddStep(m, InvalidLabel)
}

// checkIndex bounds-checks a step index.
func (t *Trace) checkIndex(method string, i int) error {
	if i < 0 || i >= len(t.steps) {
		return fmt.Errorf("Trace.%s(%d): %w", method, i, ErrStepOutOfRange)
	}

	return nil
}

// Step returns a copy of the matrix recorded at step i.
// The copy may be mutated freely; the log is not affected.
func (t *Trace) Step(i int) (*matrix.Augmented, error) {
	if err := t.checkIndex("Step", i); err != nil {
		return nil, err
	}

	return t.steps[i].snapshot.Clone(), nil
}

// Label returns the description of step i.
func (t *Trace) Label(i int) (string, error) {
	if err := t.checkIndex("Label", i); err != nil {
		return "", err
	}

	return t.steps[i].label, nil
}

// Labels returns all labels in chronological order.
func (t *Trace) Labels() []string {
	out := make([]string, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.label
	}

	return out
}

// Final returns a copy of the last recorded matrix.
// An empty trace (the input needed no operation) yields ErrStepOutOfRange.
func (t *Trace) Final() (*matrix.Augmented, error) {
	return t.Step(len(t.steps) - 1)
}

// Do visits steps in order and stops early when f returns false.
// f receives a copy of each snapshot.
func (t *Trace) Do(f func(i int, m *matrix.Augmented, label string) bool) {
	for i, s := range t.steps {
		if !f(i, s.snapshot.Clone(), s.label) {
			return
		}
	}
}
