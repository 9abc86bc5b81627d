package ui

import (
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"basecalc/internal/backend"
	"basecalc/internal/frontend"
)

// literalEvaluator parses plain decimal literals; enough for UI tests.
type literalEvaluator struct{}

func (literalEvaluator) Evaluate(expr string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(expr), 64)
}

func newTestApp(t *testing.T) (AppModel, *frontend.State) {
	t.Helper()
	worker := backend.NewWorker(literalEvaluator{}, nil)
	t.Cleanup(worker.Shutdown)
	state := frontend.New(worker, 16, nil)
	return NewAppModel(state, nil), state
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func settle(t *testing.T, state *frontend.State, done func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state.PollResponses()
		if done() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("backend response did not arrive in time")
}

func TestTabCyclesPages(t *testing.T) {
	app, _ := newTestApp(t)

	if app.page != PageCalculator {
		t.Fatalf("initial page = %v, want Calculator", app.page)
	}
	for i := 0; i < int(pageCount); i++ {
		model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
		app = model.(AppModel)
	}
	if app.page != PageCalculator {
		t.Errorf("after full cycle page = %v, want Calculator", app.page)
	}

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	app = model.(AppModel)
	if app.page != PageHelp {
		t.Errorf("shift+tab from first page = %v, want Help", app.page)
	}
}

func TestCalculatorTypingEvaluates(t *testing.T) {
	app, state := newTestApp(t)

	for _, ch := range "42" {
		model, _ := app.Update(keyRunes(string(ch)))
		app = model.(AppModel)
	}
	if state.Calculator.Input != "42" {
		t.Fatalf("input = %q, want 42", state.Calculator.Input)
	}

	settle(t, state, func() bool { return state.Calculator.Output != "" })
	if state.Calculator.Output != "42" {
		t.Errorf("output = %q, want 42", state.Calculator.Output)
	}

	view := app.View()
	if !strings.Contains(view, "History") {
		t.Errorf("calculator view missing history section:\n%s", view)
	}
}

func TestCalculatorRejectsRunesOutsideRadix(t *testing.T) {
	app, state := newTestApp(t)

	model, _ := app.calculator.Update(keyRunes("@"))
	app.calculator = model
	if state.Calculator.Input != "" {
		t.Errorf("invalid rune reached input: %q", state.Calculator.Input)
	}

	// Letters are fine once the radix admits them.
	state.SetCalculatorRadix(16)
	model, _ = app.calculator.Update(keyRunes("A"))
	app.calculator = model
	if state.Calculator.Input != "A" {
		t.Errorf("hex digit rejected in base 16: %q", state.Calculator.Input)
	}
}

func TestCalculatorRadixCycle(t *testing.T) {
	app, state := newTestApp(t)

	want := []uint32{2, 8, 10, 16, 2}
	for _, w := range want {
		model, _ := app.calculator.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
		app.calculator = model
		if got := state.Calculator.Radix; got != w {
			t.Fatalf("radix after ctrl+r = %d, want %d", got, w)
		}
	}
}

func TestCalculatorHistoryReuse(t *testing.T) {
	app, state := newTestApp(t)

	state.Calculator.Input = "7"
	state.SubmitCalculator()
	settle(t, state, func() bool { return len(state.Calculator.History) == 1 })

	// Clear the input, then reuse the selected entry.
	state.Calculator.Input = ""
	app.calculator.input.SetValue("")
	model, _ := app.calculator.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app.calculator = model

	if state.Calculator.Input != "7" {
		t.Errorf("reused input = %q, want 7", state.Calculator.Input)
	}
}

func TestNumberPageFocusAndSubmit(t *testing.T) {
	app, state := newTestApp(t)

	// Move focus binary -> decimal.
	model, _ := app.number.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.number = model
	model, _ = app.number.Update(keyRunes("9"))
	app.number = model

	if state.Number.DecimalField.Input != "9" {
		t.Fatalf("decimal input = %q, want 9", state.Number.DecimalField.Input)
	}
	settle(t, state, func() bool { return state.Number.DecimalField.Binary != "" })
	if state.Number.DecimalField.Binary != "1001" {
		t.Errorf("binary render = %q, want 1001", state.Number.DecimalField.Binary)
	}
}

func TestBitsPageCursorAndToggle(t *testing.T) {
	app, state := newTestApp(t)

	model, _ := app.bits.Update(keyRunes("A"))
	app.bits = model
	settle(t, state, func() bool { return len(state.Bits.Bits) == 4 })

	// Move the cursor one bit right and toggle it: A (1010) -> E (1110).
	model, _ = app.bits.Update(keyRunes(">"))
	app.bits = model
	model, _ = app.bits.Update(keyRunes(" "))
	app.bits = model

	settle(t, state, func() bool {
		return len(state.Bits.Bits) == 4 && state.Bits.Bits[1]
	})
	view := app.bits.View()
	if !strings.Contains(view, "E") {
		t.Errorf("bit view missing toggled hex value:\n%s", view)
	}
}

func TestHelpPageRenders(t *testing.T) {
	app, _ := newTestApp(t)

	// Rendered content is available before any resize message.
	if !strings.Contains(app.help.View(), "basecalc") {
		t.Errorf("help view missing title before first resize")
	}

	app.help.SetSize(120, 40)
	if !strings.Contains(app.help.View(), "basecalc") {
		t.Errorf("help view missing title after resize")
	}
}
