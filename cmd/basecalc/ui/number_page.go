package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"basecalc/internal/convert"
	"basecalc/internal/frontend"
)

// numberRow binds one input base to its textinput and field state.
type numberRow struct {
	label string
	base  convert.NumberBase
	input textinput.Model
}

// NumberPageModel is the unsigned integer conversion view: type a value in
// any base, read it back in all three.
type NumberPageModel struct {
	state  *frontend.State
	styles Styles
	rows   []numberRow
	focus  int
}

// NewNumberPageModel builds the number conversion page.
func NewNumberPageModel(state *frontend.State, styles Styles) NumberPageModel {
	mk := func(label, placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = label + ": "
		ti.CharLimit = 80
		return ti
	}
	rows := []numberRow{
		{label: "Binary", base: convert.BaseBinary, input: mk("Binary     ", "1010_1100")},
		{label: "Decimal", base: convert.BaseDecimal, input: mk("Decimal    ", "172")},
		{label: "Hex", base: convert.BaseHexadecimal, input: mk("Hexadecimal", "AC")},
	}
	rows[0].input.Focus()
	return NumberPageModel{state: state, styles: styles, rows: rows}
}

// Update handles input on the three fields; up/down move focus.
func (m NumberPageModel) Update(msg tea.Msg) (NumberPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up":
			m.setFocus((m.focus + len(m.rows) - 1) % len(m.rows))
			return m, nil
		case "down", "enter":
			m.setFocus((m.focus + 1) % len(m.rows))
			return m, nil
		}
	}

	row := &m.rows[m.focus]
	var cmd tea.Cmd
	row.input, cmd = row.input.Update(msg)

	field := m.field(row.base)
	if row.input.Value() != field.Input {
		field.Input = row.input.Value()
		m.state.SubmitNumber(row.base)
	}
	return m, cmd
}

// View renders each field with its three-base result.
func (m NumberPageModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Number Conversion"))
	b.WriteString("\n\n")

	for i := range m.rows {
		row := &m.rows[i]
		field := m.field(row.base)
		b.WriteString(row.input.View())
		b.WriteString("\n")
		if field.Err != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.Error.Render(field.Err))
			b.WriteString("\n")
		} else if field.Input != "" {
			b.WriteString(m.styles.Muted.Render("  bin: "))
			b.WriteString(m.styles.Value.Render(field.Binary))
			b.WriteString(m.styles.Muted.Render("  dec: "))
			b.WriteString(m.styles.Value.Render(field.Decimal))
			b.WriteString(m.styles.Muted.Render("  hex: "))
			b.WriteString(m.styles.Value.Render(field.Hexadecimal))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("up/down: switch field"))
	return b.String()
}

func (m *NumberPageModel) setFocus(i int) {
	m.rows[m.focus].input.Blur()
	m.focus = i
	m.rows[m.focus].input.Focus()
}

func (m NumberPageModel) field(base convert.NumberBase) *frontend.NumberField {
	switch base {
	case convert.BaseBinary:
		return &m.state.Number.BinaryField
	case convert.BaseDecimal:
		return &m.state.Number.DecimalField
	default:
		return &m.state.Number.HexField
	}
}
