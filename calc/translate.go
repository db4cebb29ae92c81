package calc

import (
	"fmt"
	"strings"
)

// glyphs maps calculator-only notation to the evaluator's ASCII grammar. The
// caret needs no entry: `^` is this grammar's own exponentiation operator.
// Factorial is likewise left alone; the parser owns postfix `!`.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"√", "sqrt",
	"π", "pi",
)

// Translate rewrites a raw calculator expression into the canonical form the
// parser accepts. The Ans token is substituted with the most recent history
// entry's displayed value (or 0 when the ledger is empty), then the Unicode
// glyphs are replaced. Translate is idempotent on already-canonical input.
func (e *Engine) Translate(raw string) (string, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return "", fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	ans := "0"
	if last, ok := e.history.MostRecent(); ok {
		ans = last.Value
	}
	expr = strings.ReplaceAll(expr, "Ans", ans)
	return glyphs.Replace(expr), nil
}
