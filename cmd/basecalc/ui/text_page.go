package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"basecalc/internal/backend"
	"basecalc/internal/frontend"
)

// TextPageModel converts between ASCII text and hex byte strings.
type TextPageModel struct {
	state  *frontend.State
	styles Styles

	asciiInput textinput.Model
	hexInput   textinput.Model
	focus      int // 0 = ascii->hex, 1 = hex->ascii
}

// NewTextPageModel builds the text conversion page.
func NewTextPageModel(state *frontend.State, styles Styles) TextPageModel {
	ascii := textinput.New()
	ascii.Prompt = "Text: "
	ascii.Placeholder = "Hello"
	ascii.CharLimit = 256
	ascii.Focus()

	hex := textinput.New()
	hex.Prompt = "Hex:  "
	hex.Placeholder = "48 65 6C 6C 6F"
	hex.CharLimit = 512

	return TextPageModel{state: state, styles: styles, asciiInput: ascii, hexInput: hex}
}

// Update routes keys to the focused direction.
func (m TextPageModel) Update(msg tea.Msg) (TextPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "down", "enter":
			if m.focus == 0 {
				m.focus = 1
				m.asciiInput.Blur()
				m.hexInput.Focus()
			} else {
				m.focus = 0
				m.hexInput.Blur()
				m.asciiInput.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.asciiInput, cmd = m.asciiInput.Update(msg)
		field := &m.state.Text.ASCIIToHex
		if m.asciiInput.Value() != field.Input {
			field.Input = m.asciiInput.Value()
			m.state.SubmitText(backend.ASCIIToHex)
		}
	} else {
		m.hexInput, cmd = m.hexInput.Update(msg)
		field := &m.state.Text.HexToASCII
		if m.hexInput.Value() != field.Input {
			field.Input = m.hexInput.Value()
			m.state.SubmitText(backend.HexToASCII)
		}
	}
	return m, cmd
}

// View renders both directions.
func (m TextPageModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Text ↔ Hex"))
	b.WriteString("\n\n")

	b.WriteString(m.asciiInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderResult(&m.state.Text.ASCIIToHex))

	b.WriteString("\n")
	b.WriteString(m.hexInput.View())
	b.WriteString("\n")
	b.WriteString(m.renderResult(&m.state.Text.HexToASCII))

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("up/down: switch direction"))
	return b.String()
}

func (m TextPageModel) renderResult(field *frontend.TextField) string {
	if field.Err != "" {
		return "  " + m.styles.Error.Render(field.Err) + "\n"
	}
	if field.Input == "" {
		return "\n"
	}
	return "  " + m.styles.Muted.Render("→ ") + m.styles.Value.Render(field.Output) + "\n"
}
