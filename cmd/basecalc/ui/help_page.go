package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# basecalc

A multi-radix calculator and bit-twiddling toolbox.

## Calculator

Type an expression and the result updates live. The selected radix
(ctrl+r) controls how numbers are read **and** how the result is shown.

* Implicit multiplication: ` + "`2(3+1)`" + `, ` + "`2pi`" + `
* Functions: sin, cos, tan, asin, acos, atan, sqrt, abs, log, ln,
  exp, floor, ceil, round, min, max
* Constants: pi, e
* Digit separators: ` + "`1010_1100`" + `
* Decimal points are accepted in base 10 only

Successful evaluations land in the history (newest first, capped at
200 entries). Select one with up/down and press enter on an empty
input line to reuse it.

## Conversion pages

* **Number** — unsigned integers across binary, decimal, and hex.
* **Text** — ASCII text to hex bytes and back.
* **Float** — float32 values to their IEEE 754 bit patterns, with a
  sign/exponent/mantissa breakdown.
* **Bits** — a hex word as individual bits, grouped by configurable
  field widths. Toggle bits with space, invert with ctrl+t.
`

// HelpPageModel renders the built-in manual.
type HelpPageModel struct {
	styles   Styles
	viewport viewport.Model
}

// NewHelpPageModel builds the help page, rendered at a default width until
// the first resize arrives.
func NewHelpPageModel(styles Styles) HelpPageModel {
	m := HelpPageModel{styles: styles, viewport: viewport.New(80, 24)}
	m.render(80)
	return m
}

// SetSize re-renders the manual at the new width.
func (m *HelpPageModel) SetSize(width, height int) {
	m.viewport.Width = width
	if height > 6 {
		m.viewport.Height = height - 5
	}
	m.render(width)
}

func (m *HelpPageModel) render(width int) {
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		m.viewport.SetContent(helpMarkdown)
		return
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		out = helpMarkdown
	}
	m.viewport.SetContent(out)
}

// Update scrolls the manual.
func (m HelpPageModel) Update(msg tea.Msg) (HelpPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View shows the rendered manual.
func (m HelpPageModel) View() string {
	return m.viewport.View()
}
