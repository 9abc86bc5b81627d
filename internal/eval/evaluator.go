// Package eval implements the arithmetic evaluator behind the compute
// worker: an in-process engine built on govaluate, exposing the narrow
// Evaluate(decimalExpr) contract. The normalizer guarantees the input is
// plain decimal-notation infix, so the only lexical adaptation needed here
// is rewriting '^' (power, calculator convention) to govaluate's '**'.
package eval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single evaluation. Expressions are tiny, so this
// only matters for pathological inputs.
const DefaultTimeout = 5 * time.Second

// Engine evaluates decimal-notation infix expressions. Safe for concurrent
// use; every call parses its own expression.
type Engine struct {
	functions map[string]govaluate.ExpressionFunction
	constants map[string]interface{}
	timeout   time.Duration
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides the per-evaluation timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine builds the evaluator with the fixed function and constant
// tables the expression language understands.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		functions: builtinFunctions(),
		constants: map[string]interface{}{
			"pi": math.Pi,
			"e":  math.E,
		},
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate parses and evaluates one expression, returning a float64 or an
// error string suitable for direct display. It never panics; govaluate
// panics inside function calls are converted to errors by the goroutine
// boundary below.
func (e *Engine) Evaluate(decimalExpr string) (float64, error) {
	expr := strings.TrimSpace(decimalExpr)
	if expr == "" {
		return 0, errors.New("empty expression")
	}
	// The calculator convention is '^' for power; govaluate spells it '**'.
	expr = strings.ReplaceAll(expr, "^", "**")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, e.functions)
	if err != nil {
		return 0, fmt.Errorf("syntax error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	type outcome struct {
		value float64
		err   error
	}
	resultCh := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- outcome{err: fmt.Errorf("evaluation failed: %v", r)}
			}
		}()
		raw, err := parsed.Evaluate(e.constants)
		if err != nil {
			resultCh <- outcome{err: err}
			return
		}
		v, ok := raw.(float64)
		if !ok {
			resultCh <- outcome{err: fmt.Errorf("expression did not produce a number (got %T)", raw)}
			return
		}
		resultCh <- outcome{value: v}
	}()

	select {
	case out := <-resultCh:
		if out.err != nil {
			e.logger.Debug("evaluation error",
				zap.String("expr", decimalExpr), zap.Error(out.err))
		}
		return out.value, out.err
	case <-ctx.Done():
		return 0, fmt.Errorf("evaluation timed out after %s", e.timeout)
	}
}

// builtinFunctions is the fixed function set the normalizer recognizes.
// log and ln are both the natural logarithm, mirroring the symbolic engine
// the original application shelled out to.
func builtinFunctions() map[string]govaluate.ExpressionFunction {
	fns := map[string]govaluate.ExpressionFunction{
		"pow": binary("pow", math.Pow),
		"min": binary("min", math.Min),
		"max": binary("max", math.Max),
		"round": unary("round", func(x float64) float64 {
			return math.Round(x)
		}, nil),
	}

	unaryFns := []struct {
		name  string
		fn    func(float64) float64
		check func(float64) error
	}{
		{"sin", math.Sin, nil},
		{"cos", math.Cos, nil},
		{"tan", math.Tan, nil},
		{"asin", math.Asin, domain("asin", -1, 1)},
		{"acos", math.Acos, domain("acos", -1, 1)},
		{"atan", math.Atan, nil},
		{"sinh", math.Sinh, nil},
		{"cosh", math.Cosh, nil},
		{"tanh", math.Tanh, nil},
		{"log", math.Log, positive("log")},
		{"ln", math.Log, positive("ln")},
		{"sqrt", math.Sqrt, nonNegative("sqrt")},
		{"abs", math.Abs, nil},
		{"floor", math.Floor, nil},
		{"ceil", math.Ceil, nil},
		{"exp", math.Exp, nil},
	}
	for _, f := range unaryFns {
		fns[f.name] = unary(f.name, f.fn, f.check)
	}
	return fns
}

func unary(name string, fn func(float64) float64, check func(float64) error) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		x, err := oneArg(name, args)
		if err != nil {
			return nil, err
		}
		if check != nil {
			if err := check(x); err != nil {
				return nil, err
			}
		}
		return fn(x), nil
	}
}

func binary(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		a, aok := args[0].(float64)
		b, bok := args[1].(float64)
		if !aok || !bok {
			return nil, fmt.Errorf("%s expects numeric arguments", name)
		}
		return fn(a, b), nil
	}
}

func oneArg(name string, args []interface{}) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
	}
	x, ok := args[0].(float64)
	if !ok {
		return 0, fmt.Errorf("%s expects a numeric argument", name)
	}
	return x, nil
}

func domain(name string, lo, hi float64) func(float64) error {
	return func(x float64) error {
		if x < lo || x > hi {
			return fmt.Errorf("%s argument %g is outside [%g, %g]", name, x, lo, hi)
		}
		return nil
	}
}

func positive(name string) func(float64) error {
	return func(x float64) error {
		if x <= 0 {
			return fmt.Errorf("%s argument must be positive, got %g", name, x)
		}
		return nil
	}
}

func nonNegative(name string) func(float64) error {
	return func(x float64) error {
		if x < 0 {
			return fmt.Errorf("%s argument must not be negative, got %g", name, x)
		}
		return nil
	}
}
