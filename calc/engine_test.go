package calc

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestEvaluate_Formatting(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4/2", "2"},
		{"1/3", "0.3333333333"},
		{"2^0.5", "1.414213562"},
		{"1e-11", "0"},
		{"sin(pi)", "0"}, // fp noise near exact zero snaps to 0
		{"-8/2", "-4"},
		{"9999", "9999"},
		{"10000000000", "1e+10"},
		{"12345.5", "12345.5"},
	}
	for _, tc := range cases {
		eng := New()
		res, err := eng.Evaluate(tc.in)
		if err != nil {
			t.Fatalf("%q: err=%v", tc.in, err)
		}
		if res.Value != tc.want {
			t.Fatalf("%q = %q, want %q", tc.in, res.Value, tc.want)
		}
	}
}

func TestEvaluate_DivideByZero(t *testing.T) {
	eng := New()
	for _, in := range []string{"1/0", "5%0", "0^-1", "pow(0,-2)"} {
		_, err := eng.Evaluate(in)
		if !errors.Is(err, ErrDivideByZero) {
			t.Fatalf("%q err=%v, want ErrDivideByZero", in, err)
		}
	}
	res, err := eng.Evaluate("7/2")
	if err != nil || res.Value != "3.5" {
		t.Fatalf("7/2 = %v, %v", res, err)
	}
}

func TestEvaluate_MathDomain(t *testing.T) {
	eng := New()
	for _, in := range []string{"sqrt(-1)", "asin(2)", "acos(-1.5)", "ln(0)", "ln(-1)", "log(-5)", "(-1)!"} {
		_, err := eng.Evaluate(in)
		if !errors.Is(err, ErrMathDomain) {
			t.Fatalf("%q err=%v, want ErrMathDomain", in, err)
		}
	}
}

func TestEvaluate_Overflow(t *testing.T) {
	eng := New()
	for _, in := range []string{"exp(1000)", "10^10000", "200!", "1e308*10"} {
		_, err := eng.Evaluate(in)
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("%q err=%v, want ErrOverflow", in, err)
		}
	}
}

func TestEvaluate_Glyphs(t *testing.T) {
	eng := New()
	cases := []struct {
		in   string
		want string
	}{
		{"6×7", "42"},
		{"8÷2", "4"},
		{"√(16)", "4"},
		{"π", "3.141592654"},
		{"2^10", "1024"},
	}
	for _, tc := range cases {
		res, err := eng.Evaluate(tc.in)
		if err != nil {
			t.Fatalf("%q: err=%v", tc.in, err)
		}
		if res.Value != tc.want {
			t.Fatalf("%q = %q, want %q", tc.in, res.Value, tc.want)
		}
	}
}

func TestEvaluate_AnsChaining(t *testing.T) {
	eng := New()
	if _, err := eng.Evaluate("3+4"); err != nil {
		t.Fatalf("3+4: %v", err)
	}
	res, err := eng.Evaluate("Ans*2")
	if err != nil {
		t.Fatalf("Ans*2: %v", err)
	}
	if res.Value != "14" {
		t.Fatalf("Ans*2 = %q, want 14", res.Value)
	}
}

func TestEvaluate_AnsEmptyHistory(t *testing.T) {
	eng := New()
	res, err := eng.Evaluate("Ans+5")
	if err != nil {
		t.Fatalf("Ans+5: %v", err)
	}
	if res.Value != "5" {
		t.Fatalf("Ans+5 = %q, want 5", res.Value)
	}
}

func TestEvaluate_HistoryLimit(t *testing.T) {
	eng := NewWithHistoryLimit(3)
	for i := 0; i < 5; i++ {
		if _, err := eng.Evaluate(fmt.Sprintf("%d+0", i)); err != nil {
			t.Fatalf("eval %d: %v", i, err)
		}
	}
	snap := eng.HistorySnapshot()
	if len(snap) != 3 {
		t.Fatalf("history len=%d, want 3", len(snap))
	}
	for i, want := range []string{"2", "3", "4"} {
		if snap[i].Value != want {
			t.Fatalf("history[%d]=%q, want %q", i, snap[i].Value, want)
		}
	}
}

func TestEvaluate_FailureLeavesHistoryUntouched(t *testing.T) {
	eng := New()
	if _, err := eng.Evaluate("1+1"); err != nil {
		t.Fatalf("1+1: %v", err)
	}
	if _, err := eng.Evaluate("1/0"); err == nil {
		t.Fatal("1/0 should fail")
	}
	snap := eng.HistorySnapshot()
	if len(snap) != 1 || snap[0].Expr != "1+1" {
		t.Fatalf("history=%v, want only 1+1", snap)
	}
}

func TestMemory(t *testing.T) {
	eng := New()
	eng.MemoryAdd(5)
	if got := eng.MemoryRecall(); got != 5 {
		t.Fatalf("recall=%v, want 5", got)
	}
	res, err := eng.Evaluate("M+1")
	if err != nil || res.Value != "6" {
		t.Fatalf("M+1 = %v, %v", res, err)
	}
	eng.MemorySubtract(3)
	if got := eng.MemoryRecall(); got != 2 {
		t.Fatalf("recall=%v, want 2", got)
	}
	eng.MemoryClear()
	if got := eng.MemoryRecall(); got != 0 {
		t.Fatalf("recall=%v, want 0", got)
	}
	// Evaluation must never mutate the memory cell.
	if _, err := eng.Evaluate("M+10"); err != nil {
		t.Fatalf("M+10: %v", err)
	}
	if got := eng.MemoryRecall(); got != 0 {
		t.Fatalf("recall after eval=%v, want 0", got)
	}
}

func TestEvaluateAt(t *testing.T) {
	eng := New()
	got, err := eng.EvaluateAt("x^2", 3)
	if err != nil || got != 9 {
		t.Fatalf("x^2 at 3 = %v, %v", got, err)
	}
	got, err = eng.EvaluateAt("sin(x)", math.Pi/2)
	if err != nil || math.Abs(got-1) > 1e-12 {
		t.Fatalf("sin(x) at pi/2 = %v, %v", got, err)
	}
	if _, err := eng.EvaluateAt("1/x", 0); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("1/x at 0 err=%v", err)
	}
	if n := len(eng.HistorySnapshot()); n != 0 {
		t.Fatalf("EvaluateAt touched history (len=%d)", n)
	}
}
