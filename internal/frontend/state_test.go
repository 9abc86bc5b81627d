package frontend

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basecalc/internal/backend"
	"basecalc/internal/convert"
)

// parseEvaluator evaluates plain numeric literals and a couple of fixed
// expressions; enough to drive the correlator deterministically.
type parseEvaluator struct{}

func (parseEvaluator) Evaluate(expr string) (float64, error) {
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return v, nil
	}
	switch expr {
	case "1+2":
		return 3, nil
	case "2+2":
		return 4, nil
	}
	return 0, fmt.Errorf("cannot evaluate %q", expr)
}

func newTestState(t *testing.T) (*State, *backend.Worker) {
	t.Helper()
	w := backend.NewWorker(parseEvaluator{}, nil)
	t.Cleanup(w.Shutdown)
	return New(w, 16, nil), w
}

// settle polls until the condition holds or the deadline passes.
func settle(t *testing.T, s *State, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.PollResponses()
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("state never settled")
}

func TestCalculator_SuccessfulEvaluation(t *testing.T) {
	s, _ := newTestState(t)
	s.Calculator.Radix = 16
	s.Calculator.Input = "1+2"
	s.SubmitCalculator()

	settle(t, s, func() bool { return s.Calculator.HasValue })
	assert.Equal(t, 3.0, s.Calculator.Value)
	assert.Equal(t, "3", s.Calculator.Output)
	assert.Empty(t, s.Calculator.Err)
	require.Len(t, s.Calculator.History, 1)
	assert.Equal(t, "1+2", s.Calculator.History[0].Input)
	assert.Equal(t, uint32(16), s.Calculator.History[0].Radix)
}

func TestCalculator_NormalizationErrorSkipsWorker(t *testing.T) {
	s, _ := newTestState(t)
	s.Calculator.Radix = 2
	s.Calculator.Input = "123"
	s.SubmitCalculator()

	// The error is synchronous; no response will ever arrive.
	assert.NotEmpty(t, s.Calculator.Err)
	assert.False(t, s.Calculator.pending.armed)
	s.PollResponses()
	assert.False(t, s.Calculator.HasValue)
	assert.Empty(t, s.Calculator.History)
}

func TestCalculator_StaleResponseDiscarded(t *testing.T) {
	s, _ := newTestState(t)
	s.Calculator.Input = "1+2"
	s.SubmitCalculator()
	// Supersede before polling: only the second request may win.
	s.Calculator.Input = "2+2"
	s.SubmitCalculator()

	settle(t, s, func() bool { return s.Calculator.HasValue })
	assert.Equal(t, 4.0, s.Calculator.Value)
	// The stale response must not have produced a history entry.
	require.Len(t, s.Calculator.History, 1)
	assert.Equal(t, "2+2", s.Calculator.History[0].Input)
}

func TestCalculator_HistoryBound(t *testing.T) {
	s, _ := newTestState(t)
	for i := 0; i < 250; i++ {
		s.Calculator.Input = strconv.Itoa(i)
		s.SubmitCalculator()
		want := i
		settle(t, s, func() bool {
			return s.Calculator.HasValue && s.Calculator.Value == float64(want)
		})
	}

	require.Len(t, s.Calculator.History, MaxHistory)
	// FIFO eviction: the 50 oldest entries are gone.
	assert.Equal(t, "50", s.Calculator.History[0].Input)
	assert.Equal(t, "249", s.Calculator.History[MaxHistory-1].Input)
}

func TestCalculator_EmptyInputClears(t *testing.T) {
	s, _ := newTestState(t)
	s.Calculator.Input = "1+2"
	s.SubmitCalculator()
	settle(t, s, func() bool { return s.Calculator.HasValue })

	s.Calculator.Input = "   "
	s.SubmitCalculator()
	assert.False(t, s.Calculator.HasValue)
	assert.Empty(t, s.Calculator.Output)
	assert.Empty(t, s.Calculator.Err)
}

func TestCalculator_RadixSwitchRecomputes(t *testing.T) {
	s, _ := newTestState(t)
	s.Calculator.Input = "10"
	s.SubmitCalculator()
	settle(t, s, func() bool { return s.Calculator.HasValue })
	assert.Equal(t, "10", s.Calculator.Output)

	// Same digits reinterpreted as binary: 0b10 = 2, shown in binary.
	s.SetCalculatorRadix(2)
	settle(t, s, func() bool {
		return s.Calculator.HasValue && s.Calculator.Output == "10"
	})
	assert.Equal(t, 2.0, s.Calculator.Value)
}

func TestCalculator_BackendUnavailable(t *testing.T) {
	w := backend.NewWorker(parseEvaluator{}, nil)
	s := New(w, 16, nil)
	w.Shutdown()

	s.Calculator.Input = "1+2"
	s.SubmitCalculator()
	assert.Equal(t, backendUnavailableMsg, s.Calculator.Err)
	assert.False(t, s.Calculator.pending.armed)
}

func TestNumberFields_RouteByPendingID(t *testing.T) {
	s, _ := newTestState(t)
	s.Number.BinaryField.Input = "1010"
	s.SubmitNumber(convert.BaseBinary)
	s.Number.HexField.Input = "FF"
	s.SubmitNumber(convert.BaseHexadecimal)

	settle(t, s, func() bool {
		return s.Number.BinaryField.Decimal != "" && s.Number.HexField.Decimal != ""
	})
	assert.Equal(t, "10", s.Number.BinaryField.Decimal)
	assert.Equal(t, "255", s.Number.HexField.Decimal)
	// The untouched field stays empty.
	assert.Empty(t, s.Number.DecimalField.Decimal)
}

func TestTextAndFloatFields(t *testing.T) {
	s, _ := newTestState(t)

	s.Text.ASCIIToHex.Input = "Hi"
	s.SubmitText(backend.ASCIIToHex)
	settle(t, s, func() bool { return s.Text.ASCIIToHex.Output != "" })
	assert.Equal(t, "48 69", s.Text.ASCIIToHex.Output)

	s.Float.HexToF32.Input = "3F800000"
	s.SubmitFloat(backend.HexToFloat32)
	settle(t, s, func() bool { return s.Float.HexToF32.Output != "" })
	assert.Equal(t, "1", s.Float.HexToF32.Output)
	assert.Contains(t, s.Float.HexToF32.Analysis, "IEEE 754")
}

func TestBitsFlow(t *testing.T) {
	s, _ := newTestState(t)

	s.Bits.HexInput = "A5"
	s.SubmitBitsParse()
	settle(t, s, func() bool { return len(s.Bits.Bits) == 8 })

	s.SubmitBitsToggle(0)
	settle(t, s, func() bool { return s.Bits.HexInput == "25" })

	s.SubmitBitsInvert()
	settle(t, s, func() bool { return s.Bits.HexInput == "DA" })
}

func TestParseFieldWidths(t *testing.T) {
	s, _ := newTestState(t)

	s.Bits.FieldWidthsInput = "8 8 16"
	s.ParseFieldWidths()
	assert.Equal(t, []int{8, 8, 16}, s.Bits.FieldWidths)

	// Junk and out-of-range widths are skipped; empty falls back to nibbles.
	s.Bits.FieldWidthsInput = "0 x 99"
	s.ParseFieldWidths()
	assert.Equal(t, []int{4, 4, 4, 4, 4, 4, 4, 4}, s.Bits.FieldWidths)
}

func TestClearHistory(t *testing.T) {
	s, _ := newTestState(t)
	s.Calculator.Input = "1+2"
	s.SubmitCalculator()
	settle(t, s, func() bool { return len(s.Calculator.History) == 1 })

	s.ClearHistory()
	assert.Empty(t, s.Calculator.History)
}
