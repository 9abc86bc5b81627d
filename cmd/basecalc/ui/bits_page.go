package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"basecalc/internal/convert"
	"basecalc/internal/frontend"
)

// BitsPageModel is the bit viewer: a hex word rendered as individual bits,
// grouped by configurable field widths, with per-bit toggling.
type BitsPageModel struct {
	state  *frontend.State
	styles Styles

	hexInput    textinput.Model
	widthsInput textinput.Model
	focus       int    // 0 = hex, 1 = widths
	cursor      int    // bit index, 0 = most significant
	lastHex     string // last value the user typed, to detect backend rewrites
}

// NewBitsPageModel builds the bit viewer page.
func NewBitsPageModel(state *frontend.State, styles Styles) BitsPageModel {
	hex := textinput.New()
	hex.Prompt = "Hex:    "
	hex.Placeholder = "DEAD_BEEF"
	hex.CharLimit = 64
	hex.Focus()

	widths := textinput.New()
	widths.Prompt = "Fields: "
	widths.SetValue(state.Bits.FieldWidthsInput)
	widths.CharLimit = 128

	return BitsPageModel{state: state, styles: styles, hexInput: hex, widthsInput: widths}
}

// Update handles hex/widths editing plus bit-cursor keys. The cursor keys
// use characters no hex input needs, so they work while typing.
func (m BitsPageModel) Update(msg tea.Msg) (BitsPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "down", "enter":
			if m.focus == 0 {
				m.focus = 1
				m.hexInput.Blur()
				m.widthsInput.Focus()
			} else {
				m.focus = 0
				m.widthsInput.Blur()
				m.hexInput.Focus()
			}
			return m, nil
		case "<":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case ">":
			if m.cursor < len(m.state.Bits.Bits)-1 {
				m.cursor++
			}
			return m, nil
		case " ":
			if len(m.state.Bits.Bits) > 0 {
				m.state.SubmitBitsToggle(m.cursor)
			}
			return m, nil
		case "ctrl+t":
			if len(m.state.Bits.Bits) > 0 {
				m.state.SubmitBitsInvert()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.hexInput, cmd = m.hexInput.Update(msg)
		if m.hexInput.Value() != m.lastHex {
			m.lastHex = m.hexInput.Value()
			m.state.Bits.HexInput = m.lastHex
			m.state.SubmitBitsParse()
			m.cursor = 0
		}
	} else {
		m.widthsInput, cmd = m.widthsInput.Update(msg)
		if m.widthsInput.Value() != m.state.Bits.FieldWidthsInput {
			m.state.Bits.FieldWidthsInput = m.widthsInput.Value()
			m.state.ParseFieldWidths()
		}
	}
	return m, cmd
}

// SyncFromState pulls a backend-rewritten hex value (after a toggle or
// invert) back into the textinput so the next keystroke does not re-submit
// the stale text.
func (m BitsPageModel) SyncFromState() BitsPageModel {
	if m.state.Bits.HexInput != m.lastHex && m.state.Bits.Err == "" {
		m.lastHex = m.state.Bits.HexInput
		m.hexInput.SetValue(m.lastHex)
		m.hexInput.CursorEnd()
	}
	if m.cursor >= len(m.state.Bits.Bits) && m.cursor > 0 {
		m.cursor = len(m.state.Bits.Bits) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	return m
}

// View renders the inputs, the grouped bit row, and per-field values.
func (m BitsPageModel) View() string {
	var b strings.Builder
	bits := m.state.Bits

	b.WriteString(m.styles.Title.Render("Bit Viewer"))
	b.WriteString("\n\n")
	b.WriteString(m.hexInput.View())
	b.WriteString("\n")
	b.WriteString(m.widthsInput.View())
	b.WriteString("\n\n")

	if bits.Err != "" {
		b.WriteString(m.styles.Error.Render(bits.Err))
		b.WriteString("\n")
	} else if len(bits.Bits) > 0 {
		b.WriteString(m.bitRow())
		b.WriteString("\n")
		b.WriteString(m.fieldValues())
		b.WriteString(m.styles.Muted.Render("hex: "))
		b.WriteString(m.styles.Value.Render(convert.BitsToHex(bits.Bits)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("</>: move bit cursor • space: toggle bit • ctrl+t: invert all • up/down: switch field"))
	return b.String()
}

// bitRow draws the bit vector most-significant first, spaced at the field
// boundaries, with the cursor bit highlighted.
func (m BitsPageModel) bitRow() string {
	bits := m.state.Bits
	groups := convert.FieldGroups(len(bits.Bits), bits.FieldWidths)

	var b strings.Builder
	idx := 0
	for gi, width := range groups {
		if gi > 0 {
			b.WriteString("  ")
		}
		for i := 0; i < width; i++ {
			ch := "0"
			style := m.styles.BitOff
			if bits.Bits[idx] {
				ch = "1"
				style = m.styles.BitOn
			}
			if idx == m.cursor {
				b.WriteString(m.styles.BitCursor.Render(ch))
			} else {
				b.WriteString(style.Render(ch))
			}
			idx++
		}
	}
	return b.String()
}

// fieldValues renders each field group's value in hex and decimal.
func (m BitsPageModel) fieldValues() string {
	bits := m.state.Bits
	groups := convert.FieldGroups(len(bits.Bits), bits.FieldWidths)

	var b strings.Builder
	start := 0
	for gi, width := range groups {
		v := convert.FieldValue(bits.Bits, start, width)
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("field %d (%d bits): ", gi, width)))
		b.WriteString(m.styles.Value.Render(fmt.Sprintf("0x%X = %d", v, v)))
		b.WriteString("\n")
		start += width
	}
	return b.String()
}
