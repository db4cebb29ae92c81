package calc

// This file contains the AST node types and the tree-walking evaluator.

import (
	"fmt"
	"math"
)

type node interface {
	eval(e *env) (float64, error)
}

type nodeNumber struct{ v float64 }

func (n nodeNumber) eval(_ *env) (float64, error) { return n.v, nil }

type nodeIdent struct{ name string }

func (n nodeIdent) eval(e *env) (float64, error) {
	v, ok := e.vars[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown identifier %q", ErrSyntax, n.name)
	}
	return v, nil
}

type nodeUnary struct {
	op byte
	x  node
}

func (n nodeUnary) eval(e *env) (float64, error) {
	v, err := n.x.eval(e)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case '+':
		return v, nil
	case '-':
		return -v, nil
	default:
		return 0, fmt.Errorf("%w: unary %q", ErrSyntax, n.op)
	}
}

type nodeBinary struct {
	op    byte
	left  node
	right node
}

func (n nodeBinary) eval(e *env) (float64, error) {
	a, err := n.left.eval(e)
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval(e)
	if err != nil {
		return 0, err
	}

	var out float64
	switch n.op {
	case '+':
		out = a + b
	case '-':
		out = a - b
	case '*':
		out = a * b
	case '/':
		if b == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrDivideByZero)
		}
		out = a / b
	case '%':
		if b == 0 {
			return 0, fmt.Errorf("%w: modulo by zero", ErrDivideByZero)
		}
		out = math.Mod(a, b)
	case '^':
		if a == 0 && b < 0 {
			return 0, fmt.Errorf("%w: zero raised to a negative power", ErrDivideByZero)
		}
		out = math.Pow(a, b)
	default:
		return 0, fmt.Errorf("%w: binary %q", ErrSyntax, n.op)
	}

	return classify(out, a, b)
}

type nodeCall struct {
	name string
	args []node
}

func (n nodeCall) eval(e *env) (float64, error) {
	fn, ok := builtins[n.name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown function %q", ErrSyntax, n.name)
	}
	if len(n.args) < fn.minArgs || len(n.args) > fn.maxArgs {
		return 0, fmt.Errorf("%w: %s expects %d argument(s)", ErrSyntax, n.name, fn.minArgs)
	}
	args := make([]float64, len(n.args))
	for i, a := range n.args {
		v, err := a.eval(e)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	out, err := fn.fn(args)
	if err != nil {
		return 0, err
	}
	return classify(out, args...)
}

// classify turns the non-finite fallout of an operation into the error
// taxonomy: NaN from valid operands is a domain failure, Inf from finite
// operands is an overflow. Non-finite inputs pass through so the failure is
// reported once, at its source.
func classify(out float64, in ...float64) (float64, error) {
	for _, f := range in {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return out, nil
		}
	}
	if math.IsNaN(out) {
		return 0, fmt.Errorf("%w: result is undefined", ErrMathDomain)
	}
	if math.IsInf(out, 0) {
		return 0, fmt.Errorf("%w: result too large", ErrOverflow)
	}
	return out, nil
}
