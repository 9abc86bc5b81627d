package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"basecalc/internal/backend"
	"basecalc/internal/frontend"
)

// FloatPageModel converts between float32 values and their hex bit patterns,
// with an IEEE 754 field breakdown.
type FloatPageModel struct {
	state  *frontend.State
	styles Styles

	floatInput textinput.Model
	hexInput   textinput.Model
	focus      int // 0 = float->hex, 1 = hex->float
}

// NewFloatPageModel builds the float conversion page.
func NewFloatPageModel(state *frontend.State, styles Styles) FloatPageModel {
	f := textinput.New()
	f.Prompt = "Float32: "
	f.Placeholder = "3.14"
	f.CharLimit = 64
	f.Focus()

	h := textinput.New()
	h.Prompt = "Hex:     "
	h.Placeholder = "4048F5C3"
	h.CharLimit = 16

	return FloatPageModel{state: state, styles: styles, floatInput: f, hexInput: h}
}

// Update routes keys to the focused direction.
func (m FloatPageModel) Update(msg tea.Msg) (FloatPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "down", "enter":
			if m.focus == 0 {
				m.focus = 1
				m.floatInput.Blur()
				m.hexInput.Focus()
			} else {
				m.focus = 0
				m.hexInput.Blur()
				m.floatInput.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.floatInput, cmd = m.floatInput.Update(msg)
		field := &m.state.Float.F32ToHex
		if m.floatInput.Value() != field.Input {
			field.Input = m.floatInput.Value()
			m.state.SubmitFloat(backend.Float32ToHex)
		}
	} else {
		m.hexInput, cmd = m.hexInput.Update(msg)
		field := &m.state.Float.HexToF32
		if m.hexInput.Value() != field.Input {
			field.Input = m.hexInput.Value()
			m.state.SubmitFloat(backend.HexToFloat32)
		}
	}
	return m, cmd
}

// View renders both directions plus the bit-field analysis.
func (m FloatPageModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Float32 ↔ Hex"))
	b.WriteString("\n\n")

	b.WriteString(m.floatInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderResult(&m.state.Float.F32ToHex))

	b.WriteString("\n")
	b.WriteString(m.hexInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderResult(&m.state.Float.HexToF32))

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("up/down: switch direction"))
	return b.String()
}

func (m FloatPageModel) renderResult(field *frontend.FloatField) string {
	if field.Err != "" {
		return "  " + m.styles.Error.Render(field.Err) + "\n"
	}
	if field.Input == "" {
		return "\n"
	}
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render("→ "))
	b.WriteString(m.styles.Value.Render(field.Output))
	b.WriteString("\n")
	if field.Analysis != "" {
		for _, line := range strings.Split(field.Analysis, "\n") {
			b.WriteString("  ")
			b.WriteString(m.styles.Muted.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}
