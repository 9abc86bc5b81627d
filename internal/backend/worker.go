package backend

import (
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"basecalc/internal/convert"
)

// Evaluator is the narrow contract to the external arithmetic evaluator: it
// accepts a decimal-notation infix expression and returns a floating-point
// value or an error. Malformed input and domain errors come back as errors,
// never panics.
type Evaluator interface {
	Evaluate(decimalExpr string) (float64, error)
}

// nonFiniteErr is the user-facing error for NaN/Inf results. A non-finite
// number is never a valid calculator output.
const nonFiniteErr = "computation result is not finite"

// Worker owns the compute goroutine and the two channels connecting it to
// the UI. Requests flow UI -> worker, responses worker -> UI; there is no
// shared mutable state between the two sides.
type Worker struct {
	requests  chan Request
	responses chan Response
	quit      chan struct{} // closed by Shutdown; unblocks the worker anywhere
	done      chan struct{} // closed by the worker goroutine on exit

	evaluator Evaluator
	logger    *zap.Logger

	nextID       atomic.Uint64
	shutdownOnce sync.Once
}

// NewWorker starts the compute goroutine. The logger may be nil.
func NewWorker(evaluator Evaluator, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Worker{
		requests:  make(chan Request, 16),
		responses: make(chan Response, 16),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		evaluator: evaluator,
		logger:    logger,
	}
	go w.run()
	return w
}

// NextID returns the next correlation ID. IDs increase monotonically and
// wrap on overflow; the collision window is harmless because at most one
// request per field is ever in flight.
func (w *Worker) NextID() uint64 {
	return w.nextID.Add(1) - 1
}

// SendRequest enqueues a request. It returns false once the worker has
// stopped; callers must treat that as a permanent failure for this request.
func (w *Worker) SendRequest(req Request) bool {
	select {
	case <-w.done:
		return false
	default:
	}
	select {
	case w.requests <- req:
		return true
	case <-w.done:
		return false
	}
}

// TryRecvResponse returns the next pending response without blocking. The UI
// polls this once per tick.
func (w *Worker) TryRecvResponse() (Response, bool) {
	select {
	case resp := <-w.responses:
		return resp, true
	default:
		return nil, false
	}
}

// Shutdown stops the worker and waits for its goroutine to exit. It is
// idempotent and must not race with further SendRequest calls.
func (w *Worker) Shutdown() {
	w.shutdownOnce.Do(func() {
		// Close quit first: it unblocks the loop even when the response
		// buffer is full, so the terminal message can never deadlock.
		close(w.quit)
		select {
		case w.requests <- shutdownRequest{}:
		default:
		}
		<-w.done
	})
}

// run is the worker loop: blocking-receive, dispatch, respond. It exits on
// the shutdown message or when the quit channel closes while a response
// cannot be delivered.
func (w *Worker) run() {
	defer close(w.done)
	for {
		select {
		case <-w.quit:
			return
		case req := <-w.requests:
			if _, ok := req.(shutdownRequest); ok {
				w.logger.Debug("worker shutting down")
				return
			}
			resp := w.process(req)
			if resp == nil {
				continue
			}
			select {
			case w.responses <- resp:
			case <-w.quit:
				// Receiver is gone; treat as shutdown.
				return
			}
		}
	}
}

// process dispatches one request to its handler. The match is exhaustive
// over the request variants; an unknown type is a programming error and is
// dropped with a log line rather than a panic.
func (w *Worker) process(req Request) Response {
	switch r := req.(type) {
	case CalculatorRequest:
		return w.handleCalculator(r)
	case NumberRequest:
		return w.handleNumber(r)
	case TextRequest:
		return w.handleText(r)
	case FloatRequest:
		return w.handleFloat(r)
	case BitsRequest:
		return w.handleBits(r)
	}
	w.logger.Warn("dropping unknown request type", zap.Any("request", req))
	return nil
}

func (w *Worker) handleCalculator(req CalculatorRequest) Response {
	resp := CalculatorResponse{
		ID:            req.ID,
		Radix:         req.Radix,
		OriginalInput: req.OriginalInput,
		DecimalExpr:   req.DecimalExpr,
	}
	value, err := w.evaluator.Evaluate(req.DecimalExpr)
	switch {
	case err != nil:
		resp.Err = err.Error()
	case math.IsNaN(value) || math.IsInf(value, 0):
		resp.Err = nonFiniteErr
	default:
		resp.Value = value
	}
	if resp.Err != "" {
		w.logger.Debug("calculator evaluation failed",
			zap.Uint64("id", req.ID),
			zap.String("expr", req.DecimalExpr),
			zap.String("error", resp.Err))
	}
	return resp
}

func (w *Worker) handleNumber(req NumberRequest) Response {
	resp := NumberResponse{ID: req.ID}
	result, err := convert.Number(req.Input, req.Base)
	if err != nil {
		resp.Err = err.Error()
	} else {
		resp.Result = result
	}
	return resp
}

func (w *Worker) handleText(req TextRequest) Response {
	resp := TextResponse{ID: req.ID}
	switch req.Direction {
	case ASCIIToHex:
		resp.Output = convert.ASCIIToHex(req.Input)
	case HexToASCII:
		out, err := convert.HexToASCII(req.Input)
		if err != nil {
			resp.Err = err.Error()
		} else {
			resp.Output = out
		}
	}
	return resp
}

func (w *Worker) handleFloat(req FloatRequest) Response {
	resp := FloatResponse{ID: req.ID}
	switch req.Direction {
	case Float32ToHex:
		out, err := convert.Float32ToHex(req.Input)
		if err != nil {
			resp.Err = err.Error()
		} else {
			resp.Output = out
		}
	case HexToFloat32:
		out, analysis, err := convert.HexToFloat32(req.Input)
		if err != nil {
			resp.Err = err.Error()
		} else {
			resp.Output = out
			resp.Analysis = analysis.Render()
		}
	}
	return resp
}

func (w *Worker) handleBits(req BitsRequest) Response {
	resp := BitsResponse{ID: req.ID}
	switch req.Op {
	case BitParseHex:
		hex, bits, err := convert.ParseHexBits(req.HexInput)
		if err != nil {
			resp.Err = err.Error()
		} else {
			resp.HexInput = hex
			resp.Bits = bits
		}
	case BitToggle:
		bits := convert.ToggleBit(req.Bits, req.BitIndex)
		resp.Bits = bits
		resp.HexInput = convert.BitsToHex(bits)
	case BitInvertAll:
		bits := convert.InvertBits(req.Bits)
		resp.Bits = bits
		resp.HexInput = convert.BitsToHex(bits)
	}
	return resp
}
