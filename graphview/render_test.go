package graphview

import (
	"image/color"
	"math"
	"testing"

	"ti84/calc"
	"ti84/graph"
)

func TestNiceStep(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.7, 1},
		{1.3, 2},
		{3, 5},
		{7, 10},
		{0.03, 0.05},
		{15, 20},
		{-1, 1},
		{math.NaN(), 1},
	}
	for _, tc := range cases {
		if got := niceStep(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("niceStep(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFmtAxis(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5e-13, "0"},
		{12, "12"},
		{2.5, "2.50"},
		{0.125, "0.125"},
		{12345, "1.2e+04"},
		{math.Inf(1), ""},
	}
	for _, tc := range cases {
		if got := fmtAxis(tc.in); got != tc.want {
			t.Fatalf("fmtAxis(%v)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClipLineToRect(t *testing.T) {
	// Fully inside.
	x0, y0, x1, y1, ok := clipLineToRect(1, 1, 5, 5, 0, 0, 10, 10)
	if !ok || x0 != 1 || y0 != 1 || x1 != 5 || y1 != 5 {
		t.Fatalf("inside: %v %v %v %v ok=%v", x0, y0, x1, y1, ok)
	}
	// Fully outside.
	if _, _, _, _, ok := clipLineToRect(-5, -5, -1, -1, 0, 0, 10, 10); ok {
		t.Fatal("outside segment reported visible")
	}
	// Crossing: endpoints clamped to the rectangle.
	x0, y0, x1, y1, ok = clipLineToRect(-10, 5, 20, 5, 0, 0, 10, 10)
	if !ok || x0 != 0 || x1 != 10 || y0 != 5 || y1 != 5 {
		t.Fatalf("crossing: %v %v %v %v ok=%v", x0, y0, x1, y1, ok)
	}
}

func TestDisplay_Bounds(t *testing.T) {
	d := newImageDisplay(10, 8)
	w, h := d.Size()
	if w != 10 || h != 8 {
		t.Fatalf("size=%dx%d", w, h)
	}
	// Out-of-range pixels are dropped, not wrapped.
	d.SetPixel(-1, 0, colorFG)
	d.SetPixel(10, 0, colorFG)
	d.SetPixel(0, 8, colorFG)
	for i := range d.img.Pix {
		if d.img.Pix[i] != 0 {
			t.Fatal("out-of-bounds SetPixel wrote into the buffer")
		}
	}
	_ = d.FillRectangle(-5, -5, 100, 100, color.RGBA{R: 1, A: 0xFF})
	if got := d.img.RGBAAt(0, 0); got.R != 1 {
		t.Fatalf("fill did not cover origin: %v", got)
	}
	if got := d.img.RGBAAt(9, 7); got.R != 1 {
		t.Fatalf("fill did not cover far corner: %v", got)
	}
}

func renderScene(t *testing.T, exprs ...string) *imageDisplay {
	t.Helper()
	g := graph.New(calc.New())
	for i, e := range exprs {
		g.SetEquation("Y"+string(rune('1'+i)), e)
	}
	p, err := g.Plot()
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	d := newImageDisplay(viewWidth, viewHeight)
	newRenderer(d, p).render()
	return d
}

func countColor(d *imageDisplay, c color.RGBA) int {
	n := 0
	b := d.img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if d.img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestRender_DrawsCurveAndAxes(t *testing.T) {
	d := renderScene(t, "sin(x)")
	if n := countColor(d, plotColors[0]); n == 0 {
		t.Fatal("no curve pixels drawn")
	}
	if n := countColor(d, colorAxis); n == 0 {
		t.Fatal("no axis pixels drawn")
	}
}

func TestRender_MarksIntersections(t *testing.T) {
	d := renderScene(t, "x", "-x")
	if n := countColor(d, colorMark); n == 0 {
		t.Fatal("no intersection mark drawn")
	}
	if n := countColor(d, plotColors[1]); n == 0 {
		t.Fatal("second curve not drawn")
	}
}

func TestRender_NaNBreaksCurveOnly(t *testing.T) {
	// 1/x is undefined at 0 but the curve must still be drawn elsewhere.
	d := renderScene(t, "1/x")
	if n := countColor(d, plotColors[0]); n == 0 {
		t.Fatal("curve with a pole was not drawn at all")
	}
}
