package calc

import (
	"fmt"
	"math"
)

// env is the per-call evaluation environment. It carries the closed symbol
// table: constants, the memory binding, and (for sampling calls only) the
// plotting variable. Nothing outside it is resolvable.
type env struct {
	vars map[string]float64
}

// builtin describes a numeric function callable from expressions.
type builtin struct {
	minArgs int
	maxArgs int
	fn      func(args []float64) (float64, error)
}

func unary(fn func(float64) float64) builtin {
	return builtin{minArgs: 1, maxArgs: 1, fn: func(args []float64) (float64, error) {
		return fn(args[0]), nil
	}}
}

// builtins is the whitelisted function set. Domain violations are reported
// here, at the point of failure; anything not listed is a syntax error.
var builtins = map[string]builtin{
	// Trigonometry.
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"asin": unary(math.Asin),
	"acos": unary(math.Acos),
	"atan": unary(math.Atan),

	// Exponentials and logs. `log` is base-10 and `ln` natural, matching
	// calculator convention.
	"exp":   unary(math.Exp),
	"ln":    {minArgs: 1, maxArgs: 1, fn: scalarLog(math.Log, "ln")},
	"log":   {minArgs: 1, maxArgs: 1, fn: scalarLog(math.Log10, "log")},
	"log10": {minArgs: 1, maxArgs: 1, fn: scalarLog(math.Log10, "log10")},

	// Powers and roots.
	"sqrt": {minArgs: 1, maxArgs: 1, fn: scalarSqrt},
	"pow":  {minArgs: 2, maxArgs: 2, fn: scalarPow},

	// Misc numeric.
	"abs":       unary(math.Abs),
	"fabs":      unary(math.Abs),
	"factorial": {minArgs: 1, maxArgs: 1, fn: scalarFactorial},
}

func scalarLog(fn func(float64) float64, name string) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, fmt.Errorf("%w: %s of %g", ErrMathDomain, name, args[0])
		}
		return fn(args[0]), nil
	}
}

func scalarSqrt(args []float64) (float64, error) {
	if args[0] < 0 {
		return 0, fmt.Errorf("%w: square root of %g", ErrMathDomain, args[0])
	}
	return math.Sqrt(args[0]), nil
}

func scalarPow(args []float64) (float64, error) {
	if args[0] == 0 && args[1] < 0 {
		return 0, fmt.Errorf("%w: zero raised to a negative power", ErrDivideByZero)
	}
	return math.Pow(args[0], args[1]), nil
}

// scalarFactorial applies integer factorial to the operand truncated toward
// zero, so 3.9! is 3! = 6.
func scalarFactorial(args []float64) (float64, error) {
	if math.IsNaN(args[0]) {
		return 0, fmt.Errorf("%w: factorial of NaN", ErrMathDomain)
	}
	n := math.Trunc(args[0])
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of %g", ErrMathDomain, args[0])
	}
	out := 1.0
	for i := 2.0; i <= n; i++ {
		out *= i
		if math.IsInf(out, 0) {
			return 0, fmt.Errorf("%w: factorial(%g)", ErrOverflow, n)
		}
	}
	return out, nil
}

// envFor builds the symbol table for one evaluation. x, when non-nil, is the
// sampling variable bound only for graphing calls.
func (e *Engine) envFor(x *float64) *env {
	vars := map[string]float64{
		"pi": math.Pi,
		"e":  math.E,
		"M":  e.memory,
	}
	if x != nil {
		vars["x"] = *x
	}
	return &env{vars: vars}
}
