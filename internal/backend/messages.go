// Package backend implements the compute worker: a single dedicated
// goroutine that receives typed requests over a channel, dispatches them to
// the matching handler, and posts typed responses back. The UI thread never
// blocks on it; responses are polled and matched to requests by correlation
// ID on the frontend side.
package backend

import "basecalc/internal/convert"

// Request is the closed set of messages accepted by the worker. Each
// variant carries the client-assigned correlation ID; the worker echoes it
// back untouched.
type Request interface {
	isRequest()
}

// Response is the closed set of messages the worker produces.
type Response interface {
	// CorrelationID returns the ID of the request this response answers.
	CorrelationID() uint64
}

// ============================================================================
// Calculator
// ============================================================================

// CalculatorRequest asks for evaluation of an already-normalized decimal
// expression. Radix and OriginalInput ride along for display and history;
// the worker does not interpret them.
type CalculatorRequest struct {
	ID            uint64
	DecimalExpr   string
	Radix         uint32
	OriginalInput string
}

// CalculatorResponse carries either a finite value or an error string,
// never both.
type CalculatorResponse struct {
	ID            uint64
	Value         float64
	Err           string
	Radix         uint32
	OriginalInput string
	DecimalExpr   string
}

// ============================================================================
// Number conversion
// ============================================================================

// NumberRequest converts an integer typed in one base into all three UI
// bases.
type NumberRequest struct {
	ID    uint64
	Base  convert.NumberBase
	Input string
}

// NumberResponse is the rendered result or an error.
type NumberResponse struct {
	ID     uint64
	Result convert.NumberResult
	Err    string
}

// ============================================================================
// Text conversion
// ============================================================================

// TextDirection selects which way a text conversion runs.
type TextDirection int

const (
	ASCIIToHex TextDirection = iota
	HexToASCII
)

// TextRequest converts between ASCII text and hex bytes.
type TextRequest struct {
	ID        uint64
	Direction TextDirection
	Input     string
}

// TextResponse is the converted text or an error.
type TextResponse struct {
	ID     uint64
	Output string
	Err    string
}

// ============================================================================
// Float conversion
// ============================================================================

// FloatDirection selects which way a float conversion runs.
type FloatDirection int

const (
	Float32ToHex FloatDirection = iota
	HexToFloat32
)

// FloatRequest converts between a float32 and its IEEE-754 bit pattern.
type FloatRequest struct {
	ID        uint64
	Direction FloatDirection
	Input     string
}

// FloatResponse carries the converted value and, for hex decoding, the
// field-by-field analysis text.
type FloatResponse struct {
	ID       uint64
	Output   string
	Analysis string
	Err      string
}

// ============================================================================
// Bit viewer
// ============================================================================

// BitOp is a bit viewer operation kind.
type BitOp int

const (
	BitParseHex BitOp = iota
	BitToggle
	BitInvertAll
)

// BitsRequest parses or edits a bit vector.
type BitsRequest struct {
	ID       uint64
	Op       BitOp
	HexInput string // for BitParseHex
	Bits     []bool // current bits, for BitToggle / BitInvertAll
	BitIndex int    // for BitToggle
}

// BitsResponse is the updated hex string and bit vector.
type BitsResponse struct {
	ID       uint64
	HexInput string
	Bits     []bool
	Err      string
}

// shutdownRequest is the terminal message; the worker loop exits on it and
// never responds.
type shutdownRequest struct{}

func (CalculatorRequest) isRequest() {}
func (NumberRequest) isRequest()     {}
func (TextRequest) isRequest()       {}
func (FloatRequest) isRequest()      {}
func (BitsRequest) isRequest()       {}
func (shutdownRequest) isRequest()   {}

func (r CalculatorResponse) CorrelationID() uint64 { return r.ID }
func (r NumberResponse) CorrelationID() uint64     { return r.ID }
func (r TextResponse) CorrelationID() uint64       { return r.ID }
func (r FloatResponse) CorrelationID() uint64      { return r.ID }
func (r BitsResponse) CorrelationID() uint64       { return r.ID }
