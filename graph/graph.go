// Package graph samples calculator expressions over a numeric domain and
// assembles plot scenes: labeled equation slots, a viewing window, per-curve
// sampled series, and approximate intersection points between curve pairs.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"ti84/calc"
)

var (
	// ErrWindow is returned for non-increasing window bounds.
	ErrWindow = errors.New("window bounds")
	// ErrNoFunction is returned when a plot is requested with no equations
	// configured.
	ErrNoFunction = errors.New("no function")
)

// Window is the plot viewport. Construct through NewWindow so the
// xmin < xmax and ymin < ymax invariants hold.
type Window struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func NewWindow(xmin, xmax, ymin, ymax float64) (Window, error) {
	if xmin >= xmax || ymin >= ymax {
		return Window{}, fmt.Errorf("%w: min must be below max", ErrWindow)
	}
	return Window{Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax}, nil
}

// DefaultWindow is the standard ±10 viewport.
func DefaultWindow() Window {
	return Window{Xmin: -10, Xmax: 10, Ymin: -10, Ymax: 10}
}

// Point is an approximate intersection location.
type Point struct {
	X, Y float64
}

// Series holds parallel sample arrays; Ys[i] is NaN where evaluation failed.
type Series struct {
	Xs []float64
	Ys []float64
}

// Curve is one sampled equation slot.
type Curve struct {
	Label string
	Expr  string
	Series
}

// Plot is a fully sampled scene ready for rendering.
type Plot struct {
	Window Window
	Curves []Curve
	Marks  []Point
}

// DefaultSamples is the number of domain points sampled per curve.
const DefaultSamples = 400

// Grapher owns the graphing session state: equation slots and the window.
// It evaluates through a calculator engine and shares its symbol table.
type Grapher struct {
	eng       *calc.Engine
	equations map[string]string
	window    Window
	samples   int
}

func New(eng *calc.Engine) *Grapher {
	return &Grapher{
		eng:       eng,
		equations: make(map[string]string),
		window:    DefaultWindow(),
		samples:   DefaultSamples,
	}
}

func (g *Grapher) SetSamples(n int) {
	if n < 2 {
		n = 2
	}
	g.samples = n
}

func (g *Grapher) Window() Window { return g.window }

// SetWindow validates and applies new bounds. On failure the current window
// is left unchanged.
func (g *Grapher) SetWindow(xmin, xmax, ymin, ymax float64) error {
	w, err := NewWindow(xmin, xmax, ymin, ymax)
	if err != nil {
		return err
	}
	g.window = w
	return nil
}

// AutoWindow resets the viewport to the default ±10 range.
func (g *Grapher) AutoWindow() { g.window = DefaultWindow() }

// SetEquation stores an equation slot. An empty (or blank) expression clears
// the slot instead of storing an empty string.
func (g *Grapher) SetEquation(label, expr string) {
	clean := strings.TrimSpace(expr)
	if clean == "" {
		delete(g.equations, label)
		return
	}
	g.equations[label] = clean
}

// Equations returns a copy of the configured slots.
func (g *Grapher) Equations() map[string]string {
	out := make(map[string]string, len(g.equations))
	for k, v := range g.equations {
		out[k] = v
	}
	return out
}

func (g *Grapher) labels() []string {
	out := make([]string, 0, len(g.equations))
	for label := range g.equations {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Plot samples every configured equation across the window's x-range and
// collects intersection marks for every unordered pair of equations.
func (g *Grapher) Plot() (Plot, error) {
	if len(g.equations) == 0 {
		return Plot{}, fmt.Errorf("%w: no equations configured", ErrNoFunction)
	}

	xs := Points(g.window.Xmin, g.window.Xmax, g.samples)
	labels := g.labels()

	curves := make([]Curve, 0, len(labels))
	for _, label := range labels {
		expr := g.equations[label]
		curves = append(curves, Curve{Label: label, Expr: expr, Series: g.Sample(expr, xs)})
	}

	var marks []Point
	for i := 0; i < len(labels); i++ {
		for j := i + 1; j < len(labels); j++ {
			a := g.equations[labels[i]]
			b := g.equations[labels[j]]
			marks = append(marks, g.Intersections(a, b, xs)...)
		}
	}

	return Plot{Window: g.window, Curves: curves, Marks: marks}, nil
}
