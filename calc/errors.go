package calc

import "errors"

var (
	// ErrSyntax is returned for empty or unparseable input and for any
	// identifier outside the symbol table.
	ErrSyntax = errors.New("syntax error")
	// ErrMathDomain is returned when a function argument falls outside its
	// real domain.
	ErrMathDomain = errors.New("math domain error")
	ErrDivideByZero = errors.New("divide by zero")
	// ErrOverflow is returned when a result's magnitude exceeds the
	// representable float64 range.
	ErrOverflow = errors.New("overflow")
)
