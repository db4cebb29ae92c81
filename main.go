// Command ti84 is an interactive TI-84 style calculator: expressions are
// evaluated at a prompt, equation slots Y1..Y6 can be graphed in a desktop
// window, and a single memory cell plus a bounded answer history round out
// the calculator state.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"ti84/calc"
	"ti84/graph"
	"ti84/graphview"
	"ti84/internal/buildinfo"
)

const historyFile = ".ti84_history"

func main() {
	var (
		samples      int
		historyLimit int
		windowSpec   string
	)
	flag.IntVar(&samples, "samples", graph.DefaultSamples, "Samples per curve when plotting.")
	flag.IntVar(&historyLimit, "history", calc.DefaultHistoryLimit, "Evaluation history capacity.")
	flag.StringVar(&windowSpec, "window", "", "Initial window as xmin,xmax,ymin,ymax.")
	flag.Parse()

	eng := calc.NewWithHistoryLimit(historyLimit)
	gr := graph.New(eng)
	gr.SetSamples(samples)

	if windowSpec != "" {
		if err := applyWindowSpec(gr, windowSpec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	// Positional arguments preload equation slots: ti84 'sin(x)' 'cos(x)'.
	for i, expr := range flag.Args() {
		gr.SetEquation(fmt.Sprintf("Y%d", i+1), expr)
	}

	if err := repl(eng, gr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func applyWindowSpec(gr *graph.Grapher, spec string) error {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return fmt.Errorf("window: want xmin,xmax,ymin,ymax, got %q", spec)
	}
	var b [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("window: %v", err)
		}
		b[i] = v
	}
	return gr.SetWindow(b[0], b[1], b[2], b[3])
}

func repl(eng *calc.Engine, gr *graph.Grapher) error {
	fmt.Printf("TI-84 style calculator (%s)\n", buildinfo.Short())
	fmt.Println("Type 'help' for commands, 'quit' to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		ln.AppendHistory(input)

		if quit := dispatch(eng, gr, input); quit {
			return nil
		}
	}
}

// dispatch interprets one REPL line, returning true on quit.
func dispatch(eng *calc.Engine, gr *graph.Grapher, input string) bool {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
		return false
	case "hist":
		for _, r := range eng.HistorySnapshot() {
			fmt.Printf("%s = %s\n", strings.TrimSpace(r.Expr), r.Value)
		}
		return false
	case "mr":
		fmt.Println(calc.FormatValue(eng.MemoryRecall()))
		return false
	case "mc":
		eng.MemoryClear()
		return false
	case "m+", "m-":
		memoryOp(eng, cmd, strings.TrimSpace(input[2:]))
		return false
	case "eqs":
		printEquations(gr)
		return false
	case "window":
		setWindowCmd(gr, fields[1:])
		return false
	case "zstd":
		gr.AutoWindow()
		return false
	case "graph", "plot":
		showGraph(gr)
		return false
	}

	if label, expr, ok := equationInput(input); ok {
		gr.SetEquation(label, expr)
		return false
	}

	res, err := eng.Evaluate(input)
	if err != nil {
		fmt.Println(displayError(err))
		return false
	}
	fmt.Println(res.Value)
	return false
}

// equationInput recognizes slot assignments such as "Y1=sin(x)". An empty
// right-hand side clears the slot.
func equationInput(input string) (label, expr string, ok bool) {
	left, right, found := strings.Cut(input, "=")
	if !found {
		return "", "", false
	}
	left = strings.TrimSpace(left)
	if len(left) < 2 || (left[0] != 'Y' && left[0] != 'y') {
		return "", "", false
	}
	if _, err := strconv.Atoi(left[1:]); err != nil {
		return "", "", false
	}
	return "Y" + left[1:], strings.TrimSpace(right), true
}

// memoryOp evaluates the operand expression like any other entry, then folds
// its displayed value into the memory cell.
func memoryOp(eng *calc.Engine, op, operand string) {
	if operand == "" {
		fmt.Println(displayError(calc.ErrSyntax))
		return
	}
	res, err := eng.Evaluate(operand)
	if err != nil {
		fmt.Println(displayError(err))
		return
	}
	v, err := strconv.ParseFloat(res.Value, 64)
	if err != nil {
		fmt.Println(displayError(calc.ErrSyntax))
		return
	}
	if op == "m+" {
		eng.MemoryAdd(v)
	} else {
		eng.MemorySubtract(v)
	}
	fmt.Printf("M = %s\n", calc.FormatValue(eng.MemoryRecall()))
}

func printEquations(gr *graph.Grapher) {
	eqs := gr.Equations()
	if len(eqs) == 0 {
		fmt.Println("no equations configured")
		return
	}
	labels := make([]string, 0, len(eqs))
	for l := range eqs {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for _, l := range labels {
		fmt.Printf("%s = %s\n", l, eqs[l])
	}
}

func setWindowCmd(gr *graph.Grapher, args []string) {
	if len(args) != 4 {
		fmt.Println("usage: window xmin xmax ymin ymax")
		return
	}
	var b [4]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Println(displayError(calc.ErrSyntax))
			return
		}
		b[i] = v
	}
	if err := gr.SetWindow(b[0], b[1], b[2], b[3]); err != nil {
		fmt.Println(displayError(err))
	}
}

func showGraph(gr *graph.Grapher) {
	p, err := gr.Plot()
	if err != nil {
		fmt.Println(displayError(err))
		return
	}
	title := "TI-84 Style Graph (" + buildinfo.Short() + ")"
	if err := graphview.Run(p, title); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// displayError maps the error taxonomy to the calculator's display strings.
func displayError(err error) string {
	switch {
	case errors.Is(err, calc.ErrDivideByZero):
		return "ERROR: DIVIDE BY 0"
	case errors.Is(err, calc.ErrMathDomain):
		return "ERROR: MATH"
	case errors.Is(err, calc.ErrOverflow):
		return "ERROR: OVERFLOW"
	case errors.Is(err, graph.ErrWindow):
		return "ERROR: WINDOW"
	case errors.Is(err, graph.ErrNoFunction):
		return "ERROR: NO FUNCTION"
	case errors.Is(err, calc.ErrSyntax):
		return "ERROR: SYNTAX"
	}
	return "ERROR: " + err.Error()
}

func printHelp() {
	fmt.Print(`Enter an expression to evaluate it. Notation: ^ power, n! factorial,
Ans previous answer, M memory, pi/e constants, sin cos tan asin acos atan
sqrt ln log exp abs pow factorial.

Commands:
  Y<n>=<expr>   set equation slot (empty expression clears it)
  eqs           list equation slots
  window a b c d  set view window (xmin xmax ymin ymax)
  zstd          reset window to -10..10
  graph         open the plot window (Esc or Q closes it)
  hist          show evaluation history
  m+ <expr>     add to memory      m- <expr>  subtract from memory
  mr            recall memory      mc         clear memory
  quit          exit
`)
}
