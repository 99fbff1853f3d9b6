// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gausstrace/internal/config"
	"github.com/katalvlaran/gausstrace/matrix"
	"github.com/katalvlaran/gausstrace/trace"
)

// Palette
var (
	colorTealBright  = lipgloss.Color("#2CD7C7") // titles, solution
	colorTealPrimary = lipgloss.Color("#20B9B4") // step headers
	colorSlate       = lipgloss.Color("#2C4A54") // muted text
	colorError       = lipgloss.Color("#E74C3C") // invalid marker
)

// styles groups the text-mode styles bound to one output renderer.
type styles struct {
	Title    lipgloss.Style
	Step     lipgloss.Style
	Muted    lipgloss.Style
	Invalid  lipgloss.Style
	Solution lipgloss.Style
}

// newStyles builds styles for w. Colour follows mode; "auto" enables it only
// when w is a terminal.
func newStyles(w io.Writer, mode string) styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return styles{
		Title:    r.NewStyle().Bold(true).Foreground(colorTealBright),
		Step:     r.NewStyle().Bold(true).Foreground(colorTealPrimary),
		Muted:    r.NewStyle().Foreground(colorSlate),
		Invalid:  r.NewStyle().Bold(true).Foreground(colorError),
		Solution: r.NewStyle().Foreground(colorTealBright),
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// systemLines writes each input row as named cells: "x₁₁ = 1.0, x₁₂ = 2.0 | b₁ = 3.0".
func systemLines(m *matrix.Augmented) []string {
	lines := make([]string, m.Rows())
	for i := range lines {
		var b strings.Builder
		for j := 0; j < m.Cols(); j++ {
			name, _ := m.VariableName(i, j)
			v, _ := m.At(i, j)
			switch {
			case j == m.Cols()-1:
				b.WriteString(" | ")
			case j > 0:
				b.WriteString(", ")
			}
			b.WriteString(name + " = " + matrix.FormatValue(v))
		}
		lines[i] = b.String()
	}

	return lines
}

// solutionLine formats x as "x₁ = -2.0, x₂ = 9.0".
func solutionLine(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = "x" + matrix.Subscript(i+1) + " = " + matrix.FormatValue(v)
	}

	return strings.Join(parts, ", ")
}

// notReducedMessage explains a result whose coefficient block is not the
// identity within the matrix tolerance.
func notReducedMessage(result *matrix.Augmented) string {
	return "Result is not reduced to [I|x] within tolerance " + matrix.FormatValue(result.Epsilon()) + "."
}

// renderText prints the input system, every step and the outcome.
func renderText(w io.Writer, input *matrix.Augmented, tr *trace.Trace, result *matrix.Augmented, st styles) error {
	var b strings.Builder
	b.WriteString(st.Title.Render("Trace "+tr.ID()) + "\n")
	for _, line := range systemLines(input) {
		b.WriteString(st.Muted.Render(line) + "\n")
	}

	if tr.StepCount() == 0 {
		b.WriteString("\nAlready reduced; no row operations needed.\n")
	}
	tr.Do(func(i int, m *matrix.Augmented, label string) bool {
		header := st.Step.Render(fmt.Sprintf("Step %d:", i+1)) + " "
		if label == trace.InvalidLabel {
			header += st.Invalid.Render(label)
		} else {
			header += label
		}
		b.WriteString("\n" + header + "\n" + m.String() + "\n")
		return true
	})

	b.WriteString("\n")
	if tr.Invalid() {
		b.WriteString(st.Invalid.Render("No unique solution.") + "\n")
	} else if x, err := result.Solution(); err == nil {
		b.WriteString(st.Solution.Render("Solution: "+solutionLine(x)) + "\n")
		if worst, err := matrix.MaxResidual(input, x); err == nil {
			b.WriteString(st.Muted.Render("Max residual: "+matrix.FormatValue(worst)) + "\n")
		}
	} else {
		b.WriteString(st.Invalid.Render(notReducedMessage(result)) + "\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// document is the machine-readable output: the exported trace plus x and its
// residual against the input system when solved.
type document struct {
	trace.Export `yaml:",inline"`
	Solution     []float64 `json:"solution,omitempty" yaml:"solution,omitempty"`
	MaxResidual  *float64  `json:"max_residual,omitempty" yaml:"max_residual,omitempty"`
}

func newDocument(tr *trace.Trace, input, result *matrix.Augmented) document {
	doc := document{Export: tr.Export()}
	if tr.Invalid() {
		return doc
	}
	x, err := result.Solution()
	if err != nil {
		return doc
	}
	doc.Solution = x
	if worst, err := matrix.MaxResidual(input, x); err == nil {
		doc.MaxResidual = &worst
	}

	return doc
}

// renderJSON writes the document as indented JSON.
func renderJSON(w io.Writer, tr *trace.Trace, input, result *matrix.Augmented) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(newDocument(tr, input, result))
}

// renderYAML writes the document as YAML.
func renderYAML(w io.Writer, tr *trace.Trace, input, result *matrix.Augmented) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(tr, input, result)); err != nil {
		return err
	}

	return enc.Close()
}
