// SPDX-License-Identifier: MIT

package trace

// Export is the serialisable view of a Trace.
type Export struct {
	ID      string       `json:"id" yaml:"id"`
	Invalid bool         `json:"invalid" yaml:"invalid"`
	Steps   []ExportStep `json:"steps" yaml:"steps"`
}

// ExportStep is one step of an Export. Index is 0-based.
type ExportStep struct {
	Index int         `json:"index" yaml:"index"`
	Label string      `json:"label" yaml:"label"`
	Rows  [][]float64 `json:"rows" yaml:"rows"`
}

// Export copies the trace into plain data for encoders.
func (t *Trace) Export() Export {
	out := Export{
		ID:      t.id,
		Invalid: t.invalid,
		Steps:   make([]ExportStep, len(t.steps)),
	}
	for i, s := range t.steps {
		out.Steps[i] = ExportStep{
			Index: i,
			Label: s.label,
			Rows:  s.snapshot.Rows2D(),
		}
	}

	return out
}
