package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"basecalc/internal/frontend"
	"basecalc/internal/radix"
)

// calculatorRadices is the cycle order for ctrl+r.
var calculatorRadices = []uint32{2, 8, 10, 16}

// CalculatorPageModel is the main expression calculator view.
type CalculatorPageModel struct {
	state  *frontend.State
	styles Styles

	input      textinput.Model
	history    viewport.Model
	historySel int // index into reversed history, 0 = newest

	width  int
	height int
}

// NewCalculatorPageModel builds the calculator page.
func NewCalculatorPageModel(state *frontend.State, styles Styles) CalculatorPageModel {
	ti := textinput.New()
	ti.Placeholder = "expression"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256

	vp := viewport.New(0, 8)

	return CalculatorPageModel{
		state:   state,
		styles:  styles,
		input:   ti,
		history: vp,
	}
}

// Init focuses the input.
func (m CalculatorPageModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize adjusts the layout to the terminal dimensions.
func (m *CalculatorPageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
	m.history.Width = width - 4
	if height > 18 {
		m.history.Height = height - 16
	} else {
		m.history.Height = 4
	}
}

// Update handles calculator keys.
func (m CalculatorPageModel) Update(msg tea.Msg) (CalculatorPageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+r":
			m.state.SetCalculatorRadix(nextRadix(m.state.Calculator.Radix))
			return m, nil
		case "ctrl+l":
			m.state.ClearHistory()
			m.historySel = 0
			return m, nil
		case "up":
			if m.historySel < len(m.state.Calculator.History)-1 {
				m.historySel++
			}
			return m, nil
		case "down":
			if m.historySel > 0 {
				m.historySel--
			}
			return m, nil
		case "enter":
			if entry, ok := m.selectedEntry(); ok && m.state.Calculator.Input == "" {
				m.state.SetCalculatorRadix(entry.Radix)
				m.state.Calculator.Input = entry.Input
				m.input.SetValue(entry.Input)
				m.input.CursorEnd()
				m.state.SubmitCalculator()
			}
			return m, nil
		}

		// Reject runes the active radix can never use, before the
		// textinput sees them.
		if key.Type == tea.KeyRunes && !runesAllowed(key.Runes, m.state.Calculator.Radix) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != m.state.Calculator.Input {
		m.state.Calculator.Input = m.input.Value()
		m.state.SubmitCalculator()
		m.historySel = 0
	}
	return m, cmd
}

// View renders the calculator page.
func (m CalculatorPageModel) View() string {
	var b strings.Builder
	calc := m.state.Calculator

	b.WriteString(m.styles.Title.Render("Radix Calculator"))
	b.WriteString("  ")
	b.WriteString(m.radixSelector())
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if calc.Err != "" {
		b.WriteString(m.styles.Error.Render(calc.Err))
		b.WriteString("\n")
	} else if calc.Output != "" {
		b.WriteString(m.styles.Label.Render("= "))
		b.WriteString(m.styles.Value.Render(calc.Output))
		b.WriteString("\n")
		if calc.HasValue {
			b.WriteString(m.allBases(calc.Value))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("History (%d)", len(calc.History))))
	b.WriteString("\n")
	m.history.SetContent(m.historyLines())
	b.WriteString(m.history.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("ctrl+r: radix • up/down: select history • enter (empty input): reuse • ctrl+l: clear history"))
	return b.String()
}

func (m CalculatorPageModel) radixSelector() string {
	parts := make([]string, 0, len(calculatorRadices))
	for _, r := range calculatorRadices {
		label := fmt.Sprintf("base %d", r)
		if r == m.state.Calculator.Radix {
			parts = append(parts, m.styles.TabActive.Render(label))
		} else {
			parts = append(parts, m.styles.TabIdle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// allBases shows the current value rendered in every supported base.
func (m CalculatorPageModel) allBases(value float64) string {
	var b strings.Builder
	for _, r := range calculatorRadices {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  base %2d: ", r)))
		b.WriteString(radix.Format(value, r, m.state.FracDigits()))
		b.WriteString("\n")
	}
	return b.String()
}

// historyLines renders the history newest first, with the selection marked.
func (m CalculatorPageModel) historyLines() string {
	hist := m.state.Calculator.History
	if len(hist) == 0 {
		return m.styles.Muted.Render("(empty)")
	}
	var b strings.Builder
	for i := len(hist) - 1; i >= 0; i-- {
		entry := hist[i]
		sel := len(hist) - 1 - i
		marker := "  "
		line := fmt.Sprintf("[base %2d] %s = %s", entry.Radix, entry.Input, entry.Output)
		if sel == m.historySel {
			marker = m.styles.BitCursor.Render("> ")
			line = m.styles.Value.Render(line)
		}
		b.WriteString(marker)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m CalculatorPageModel) selectedEntry() (frontend.HistoryEntry, bool) {
	hist := m.state.Calculator.History
	if len(hist) == 0 || m.historySel >= len(hist) {
		return frontend.HistoryEntry{}, false
	}
	return hist[len(hist)-1-m.historySel], true
}

func nextRadix(current uint32) uint32 {
	for i, r := range calculatorRadices {
		if r == current {
			return calculatorRadices[(i+1)%len(calculatorRadices)]
		}
	}
	return 10
}

func runesAllowed(runes []rune, r uint32) bool {
	for _, ch := range runes {
		if !radix.IsInputRune(ch, r) {
			return false
		}
	}
	return true
}
