// Package frontend holds the UI-side state machine: it fires requests at
// the compute worker, correlates responses back to the field that asked,
// discards stale answers, and maintains the bounded calculator history.
// It contains no rendering; the TUI layer reads these structs and calls the
// Submit methods on user edits.
package frontend

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"basecalc/internal/backend"
	"basecalc/internal/convert"
	"basecalc/internal/radix"
)

// MaxHistory bounds the calculator history; oldest entries are evicted
// first once the bound is exceeded.
const MaxHistory = 200

// backendUnavailableMsg is shown when the worker has stopped accepting
// requests. There is no retry; the failure is permanent for the session.
const backendUnavailableMsg = "calculation backend unavailable"

// pendingSlot tracks the single outstanding request ID a field may own.
// A response is applied only while its ID matches the armed slot; anything
// else is a superseded request's answer and is dropped.
type pendingSlot struct {
	id    uint64
	armed bool
}

func (p *pendingSlot) arm(id uint64) {
	p.id = id
	p.armed = true
}

func (p *pendingSlot) matches(id uint64) bool {
	return p.armed && p.id == id
}

func (p *pendingSlot) clear() {
	p.armed = false
}

// ============================================================================
// Field state
// ============================================================================

// NumberField is one input on the number conversion page. Whatever base the
// user types in, the result shows all three.
type NumberField struct {
	Input       string
	Binary      string
	Decimal     string
	Hexadecimal string
	Err         string
	pending     pendingSlot
}

// NumberState is the number conversion page: one field per input base.
type NumberState struct {
	BinaryField  NumberField
	DecimalField NumberField
	HexField     NumberField
}

// TextField is one direction of the text conversion page.
type TextField struct {
	Input   string
	Output  string
	Err     string
	pending pendingSlot
}

// TextState is the text conversion page.
type TextState struct {
	ASCIIToHex TextField
	HexToASCII TextField
}

// FloatField is one direction of the float conversion page.
type FloatField struct {
	Input    string
	Output   string
	Analysis string
	Err      string
	pending  pendingSlot
}

// FloatState is the float conversion page.
type FloatState struct {
	F32ToHex FloatField
	HexToF32 FloatField
}

// BitsState is the bit viewer page.
type BitsState struct {
	HexInput         string
	FieldWidthsInput string
	FieldWidths      []int
	Bits             []bool
	Err              string
	pending          pendingSlot
}

// HistoryEntry records one successful calculator evaluation.
type HistoryEntry struct {
	Radix       uint32
	Input       string
	DecimalExpr string
	Output      string
}

// CalculatorState is the calculator page: radix selection, live input, the
// last result, and the bounded history.
type CalculatorState struct {
	Radix    uint32
	Input    string
	Output   string
	Err      string
	Value    float64
	HasValue bool
	History  []HistoryEntry // oldest first; displayed newest first
	pending  pendingSlot
}

// ============================================================================
// State manager
// ============================================================================

// State owns all page states and the worker handle.
type State struct {
	Calculator CalculatorState
	Number     NumberState
	Text       TextState
	Float      FloatState
	Bits       BitsState

	worker     *backend.Worker
	logger     *zap.Logger
	fracDigits int
	maxHistory int
}

// New builds the frontend state around a running worker. The logger may be
// nil.
func New(worker *backend.Worker, fracDigits int, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fracDigits <= 0 {
		fracDigits = 16
	}
	s := &State{
		worker:     worker,
		logger:     logger,
		fracDigits: fracDigits,
		maxHistory: MaxHistory,
	}
	s.Calculator.Radix = 10
	s.Bits.FieldWidthsInput = "4 4 4 4 4 4 4 4"
	s.Bits.FieldWidths = []int{4, 4, 4, 4, 4, 4, 4, 4}
	return s
}

// FracDigits returns the fractional-digit budget used when formatting
// calculator results.
func (s *State) FracDigits() int { return s.fracDigits }

// ============================================================================
// Submissions (user edits)
// ============================================================================

// SubmitCalculator normalizes the calculator input for the current radix
// and, when it normalizes cleanly, sends an evaluation request. All
// normalization errors surface immediately without a worker round-trip.
func (s *State) SubmitCalculator() {
	c := &s.Calculator
	c.Err = ""
	c.Output = ""
	c.HasValue = false

	expr := strings.TrimSpace(c.Input)
	if expr == "" {
		c.pending.clear()
		return
	}

	decimalExpr, err := radix.Normalize(expr, c.Radix)
	if err != nil {
		c.Err = err.Error()
		c.pending.clear()
		return
	}

	id := s.worker.NextID()
	c.pending.arm(id)
	if !s.worker.SendRequest(backend.CalculatorRequest{
		ID:            id,
		DecimalExpr:   decimalExpr,
		Radix:         c.Radix,
		OriginalInput: expr,
	}) {
		c.pending.clear()
		c.Err = backendUnavailableMsg
	}
}

// SetCalculatorRadix switches the working radix and recomputes the current
// input under it.
func (s *State) SetCalculatorRadix(r uint32) {
	if r < radix.MinRadix || r > radix.MaxRadix {
		return
	}
	s.Calculator.Radix = r
	s.SubmitCalculator()
}

// SubmitNumber sends a number conversion for the field owning the given
// input base.
func (s *State) SubmitNumber(base convert.NumberBase) {
	f := s.numberField(base)
	f.Err = ""
	if strings.TrimSpace(f.Input) == "" {
		f.Binary, f.Decimal, f.Hexadecimal = "", "", ""
		f.pending.clear()
		return
	}
	id := s.worker.NextID()
	f.pending.arm(id)
	if !s.worker.SendRequest(backend.NumberRequest{ID: id, Base: base, Input: f.Input}) {
		f.pending.clear()
		f.Err = backendUnavailableMsg
	}
}

// SubmitText sends a text conversion in the given direction.
func (s *State) SubmitText(dir backend.TextDirection) {
	f := s.textField(dir)
	f.Err = ""
	if f.Input == "" {
		f.Output = ""
		f.pending.clear()
		return
	}
	id := s.worker.NextID()
	f.pending.arm(id)
	if !s.worker.SendRequest(backend.TextRequest{ID: id, Direction: dir, Input: f.Input}) {
		f.pending.clear()
		f.Err = backendUnavailableMsg
	}
}

// SubmitFloat sends a float conversion in the given direction.
func (s *State) SubmitFloat(dir backend.FloatDirection) {
	f := s.floatField(dir)
	f.Err = ""
	if strings.TrimSpace(f.Input) == "" {
		f.Output = ""
		f.Analysis = ""
		f.pending.clear()
		return
	}
	id := s.worker.NextID()
	f.pending.arm(id)
	if !s.worker.SendRequest(backend.FloatRequest{ID: id, Direction: dir, Input: f.Input}) {
		f.pending.clear()
		f.Err = backendUnavailableMsg
	}
}

// SubmitBitsParse parses the bit viewer's hex input into bits.
func (s *State) SubmitBitsParse() {
	b := &s.Bits
	b.Err = ""
	if strings.TrimSpace(b.HexInput) == "" {
		b.Bits = nil
		b.pending.clear()
		return
	}
	id := s.worker.NextID()
	b.pending.arm(id)
	if !s.worker.SendRequest(backend.BitsRequest{ID: id, Op: backend.BitParseHex, HexInput: b.HexInput}) {
		b.pending.clear()
		b.Err = backendUnavailableMsg
	}
}

// SubmitBitsToggle flips one bit.
func (s *State) SubmitBitsToggle(index int) {
	s.submitBitsEdit(backend.BitsRequest{Op: backend.BitToggle, Bits: s.Bits.Bits, BitIndex: index})
}

// SubmitBitsInvert flips every bit.
func (s *State) SubmitBitsInvert() {
	s.submitBitsEdit(backend.BitsRequest{Op: backend.BitInvertAll, Bits: s.Bits.Bits})
}

func (s *State) submitBitsEdit(req backend.BitsRequest) {
	b := &s.Bits
	if len(b.Bits) == 0 {
		return
	}
	b.Err = ""
	req.ID = s.worker.NextID()
	b.pending.arm(req.ID)
	if !s.worker.SendRequest(req) {
		b.pending.clear()
		b.Err = backendUnavailableMsg
	}
}

// ParseFieldWidths re-parses the bit viewer's field width configuration.
// Invalid or empty input falls back to eight nibbles.
func (s *State) ParseFieldWidths() {
	b := &s.Bits
	b.FieldWidths = b.FieldWidths[:0]
	for _, part := range strings.Fields(b.FieldWidthsInput) {
		if w, err := strconv.Atoi(part); err == nil && w > 0 && w <= 64 {
			b.FieldWidths = append(b.FieldWidths, w)
		}
	}
	if len(b.FieldWidths) == 0 {
		b.FieldWidths = []int{4, 4, 4, 4, 4, 4, 4, 4}
	}
}

// ClearHistory drops all calculator history entries.
func (s *State) ClearHistory() {
	s.Calculator.History = nil
}

// ============================================================================
// Response handling
// ============================================================================

// PollResponses drains every response the worker has queued and applies the
// ones that still match a pending slot. Call once per UI tick.
func (s *State) PollResponses() {
	for {
		resp, ok := s.worker.TryRecvResponse()
		if !ok {
			return
		}
		s.handleResponse(resp)
	}
}

func (s *State) handleResponse(resp backend.Response) {
	switch r := resp.(type) {
	case backend.CalculatorResponse:
		s.applyCalculator(r)
	case backend.NumberResponse:
		s.applyNumber(r)
	case backend.TextResponse:
		s.applyText(r)
	case backend.FloatResponse:
		s.applyFloat(r)
	case backend.BitsResponse:
		s.applyBits(r)
	default:
		s.logger.Warn("dropping unknown response type", zap.Any("response", resp))
	}
}

func (s *State) applyCalculator(r backend.CalculatorResponse) {
	c := &s.Calculator
	if !c.pending.matches(r.ID) {
		s.logger.Debug("discarding stale calculator response", zap.Uint64("id", r.ID))
		return
	}
	c.pending.clear()
	if r.Err != "" {
		c.Err = r.Err
		c.HasValue = false
		return
	}
	c.Value = r.Value
	c.HasValue = true
	c.Err = ""
	c.Output = radix.Format(r.Value, r.Radix, s.fracDigits)
	s.appendHistory(HistoryEntry{
		Radix:       r.Radix,
		Input:       r.OriginalInput,
		DecimalExpr: r.DecimalExpr,
		Output:      c.Output,
	})
}

func (s *State) appendHistory(entry HistoryEntry) {
	c := &s.Calculator
	c.History = append(c.History, entry)
	if n := len(c.History) - s.maxHistory; n > 0 {
		c.History = append(c.History[:0:0], c.History[n:]...)
	}
}

func (s *State) applyNumber(r backend.NumberResponse) {
	for _, f := range []*NumberField{
		&s.Number.BinaryField, &s.Number.DecimalField, &s.Number.HexField,
	} {
		if !f.pending.matches(r.ID) {
			continue
		}
		f.pending.clear()
		f.Err = r.Err
		f.Binary = r.Result.Binary
		f.Decimal = r.Result.Decimal
		f.Hexadecimal = r.Result.Hexadecimal
		return
	}
}

func (s *State) applyText(r backend.TextResponse) {
	for _, f := range []*TextField{&s.Text.ASCIIToHex, &s.Text.HexToASCII} {
		if !f.pending.matches(r.ID) {
			continue
		}
		f.pending.clear()
		f.Err = r.Err
		f.Output = r.Output
		return
	}
}

func (s *State) applyFloat(r backend.FloatResponse) {
	for _, f := range []*FloatField{&s.Float.F32ToHex, &s.Float.HexToF32} {
		if !f.pending.matches(r.ID) {
			continue
		}
		f.pending.clear()
		f.Err = r.Err
		f.Output = r.Output
		f.Analysis = r.Analysis
		return
	}
}

func (s *State) applyBits(r backend.BitsResponse) {
	b := &s.Bits
	if !b.pending.matches(r.ID) {
		return
	}
	b.pending.clear()
	b.Err = r.Err
	if r.Err == "" {
		b.HexInput = r.HexInput
		b.Bits = r.Bits
	}
}

func (s *State) numberField(base convert.NumberBase) *NumberField {
	switch base {
	case convert.BaseBinary:
		return &s.Number.BinaryField
	case convert.BaseHexadecimal:
		return &s.Number.HexField
	default:
		return &s.Number.DecimalField
	}
}

func (s *State) textField(dir backend.TextDirection) *TextField {
	if dir == backend.ASCIIToHex {
		return &s.Text.ASCIIToHex
	}
	return &s.Text.HexToASCII
}

func (s *State) floatField(dir backend.FloatDirection) *FloatField {
	if dir == backend.Float32ToHex {
		return &s.Float.F32ToHex
	}
	return &s.Float.HexToF32
}
