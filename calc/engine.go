package calc

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultHistoryLimit is the evaluation history capacity used by New.
const DefaultHistoryLimit = 20

// Engine evaluates calculator expressions and owns the session state: the
// memory cell and the evaluation history.
type Engine struct {
	memory  float64
	history *History
}

func New() *Engine { return NewWithHistoryLimit(DefaultHistoryLimit) }

func NewWithHistoryLimit(limit int) *Engine {
	return &Engine{history: newHistory(limit)}
}

// Evaluate translates, parses, and evaluates a raw expression. On success the
// result is formatted and appended to history; on any failure history is left
// untouched and a classified error is returned.
func (e *Engine) Evaluate(raw string) (Result, error) {
	v, err := e.eval(raw, nil)
	if err != nil {
		return Result{}, err
	}
	res := Result{Expr: raw, Value: FormatValue(v)}
	e.history.Append(res)
	return res, nil
}

// EvaluateAt evaluates a raw expression with the sampling variable x bound.
// It never touches history; the function sampler is its only intended caller.
func (e *Engine) EvaluateAt(raw string, x float64) (float64, error) {
	return e.eval(raw, &x)
}

func (e *Engine) eval(raw string, x *float64) (float64, error) {
	expr, err := e.Translate(raw)
	if err != nil {
		return 0, err
	}
	root, err := parseExpression(expr)
	if err != nil {
		return 0, err
	}
	v, err := root.eval(e.envFor(x))
	if err != nil {
		return 0, err
	}
	// The result contract is a finite float64.
	return classify(v)
}

func (e *Engine) MemoryAdd(v float64)      { e.memory += v }
func (e *Engine) MemorySubtract(v float64) { e.memory -= v }
func (e *Engine) MemoryRecall() float64    { return e.memory }
func (e *Engine) MemoryClear()             { e.memory = 0 }

// HistorySnapshot returns a read-only copy of the evaluation history.
func (e *Engine) HistorySnapshot() []Result { return e.history.Snapshot() }

// FormatValue renders a value the way the calculator displays it: noise below
// 1e-10 snaps to zero, integral values below 1e4 print as plain integers, and
// everything else gets 10 significant digits.
func FormatValue(v float64) string {
	if math.Abs(v) < 1e-10 {
		v = 0
	}
	if math.Abs(v) < 1e4 && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.10g", v)
}
