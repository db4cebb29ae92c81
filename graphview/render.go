package graphview

// This file turns a plot scene into pixels: margins, grid, axes, curves,
// intersection marks, and the legend.

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"ti84/graph"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorPanelBG  = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorLegendBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorGrid     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorMark     = color.RGBA{R: 0xFF, G: 0x3B, B: 0x3B, A: 0xFF}

	plotColors = [...]color.RGBA{
		{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF},
		{R: 0x7F, G: 0xFF, B: 0x7F, A: 0xFF},
		{R: 0xFF, G: 0x7F, B: 0xFF, A: 0xFF},
	}
)

type renderer struct {
	d    *imageDisplay
	plot graph.Plot

	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16

	// Plot area in display pixels, set by render.
	plotX, plotY int16
	plotW, plotH int16
}

func newRenderer(d *imageDisplay, p graph.Plot) *renderer {
	r := &renderer{
		d:          d,
		plot:       p,
		font:       &proggy.TinySZ8pt7b,
		fontHeight: 10,
		fontOffset: 6,
	}
	_, outboxWidth := tinyfont.LineWidth(r.font, "0")
	r.fontWidth = int16(outboxWidth)
	if r.fontWidth < 1 {
		r.fontWidth = 4
	}
	return r
}

func (r *renderer) render() {
	w, h := r.d.Size()
	_ = r.d.FillRectangle(0, 0, w, h, colorBG)

	leftMargin := 7 * r.fontWidth
	bottomMargin := r.fontHeight + 2

	r.plotX = leftMargin
	r.plotY = 1
	r.plotW = w - leftMargin - 1
	r.plotH = h - bottomMargin - 2
	if r.plotW <= 2 || r.plotH <= 2 {
		return
	}

	_ = r.d.FillRectangle(r.plotX, r.plotY, r.plotW, r.plotH, colorPanelBG)
	r.drawGrid(leftMargin)
	r.drawAxes()
	r.drawCurves()
	r.drawMarks()
	r.drawLegend()
}

// toPixels maps window coordinates to plot-local pixel coordinates.
func (r *renderer) toPixels(x, y float64) (px, py float64) {
	w := r.plot.Window
	px = (x - w.Xmin) / (w.Xmax - w.Xmin) * float64(r.plotW-1)
	py = (w.Ymax - y) / (w.Ymax - w.Ymin) * float64(r.plotH-1)
	return px, py
}

func (r *renderer) drawGrid(leftMargin int16) {
	w := r.plot.Window

	xPxPerUnit := float64(r.plotW-1) / (w.Xmax - w.Xmin)
	yPxPerUnit := float64(r.plotH-1) / (w.Ymax - w.Ymin)
	if xPxPerUnit <= 0 || yPxPerUnit <= 0 || math.IsInf(xPxPerUnit, 0) || math.IsInf(yPxPerUnit, 0) {
		return
	}

	stepX := niceStep(40 / xPxPerUnit)
	stepY := niceStep(28 / yPxPerUnit)

	for x := math.Ceil(w.Xmin/stepX) * stepX; x <= w.Xmax; x += stepX {
		ix := int16((x - w.Xmin) / (w.Xmax - w.Xmin) * float64(r.plotW-1))
		for y := int16(0); y < r.plotH; y++ {
			r.d.SetPixel(r.plotX+ix, r.plotY+y, colorGrid)
		}
		r.drawXAxisLabel(r.plotX+ix, r.plotY+r.plotH+1, fmtAxis(x))
	}

	for y := math.Ceil(w.Ymin/stepY) * stepY; y <= w.Ymax; y += stepY {
		iy := int16((w.Ymax - y) / (w.Ymax - w.Ymin) * float64(r.plotH-1))
		for x := int16(0); x < r.plotW; x++ {
			r.d.SetPixel(r.plotX+x, r.plotY+iy, colorGrid)
		}
		r.drawYAxisLabel(r.plotX-1, r.plotY+iy, fmtAxis(y), leftMargin)
	}
}

func (r *renderer) drawAxes() {
	w := r.plot.Window
	if w.Xmin <= 0 && w.Xmax >= 0 {
		x := int16((0 - w.Xmin) / (w.Xmax - w.Xmin) * float64(r.plotW-1))
		for y := int16(0); y < r.plotH; y++ {
			r.d.SetPixel(r.plotX+x, r.plotY+y, colorAxis)
		}
	}
	if w.Ymin <= 0 && w.Ymax >= 0 {
		y := int16(w.Ymax / (w.Ymax - w.Ymin) * float64(r.plotH-1))
		for x := int16(0); x < r.plotW; x++ {
			r.d.SetPixel(r.plotX+x, r.plotY+y, colorAxis)
		}
	}
}

func (r *renderer) drawCurves() {
	for i, c := range r.plot.Curves {
		r.drawSeries(c.Series, plotColors[i%len(plotColors)])
	}
}

// drawSeries draws one sampled curve, breaking the line at NaN samples and
// clipping segments to the plot area.
func (r *renderer) drawSeries(s graph.Series, c color.RGBA) {
	if len(s.Xs) == 0 || len(s.Xs) != len(s.Ys) {
		return
	}

	xMax := float64(r.plotW - 1)
	yMax := float64(r.plotH - 1)
	prevOK := false
	var prevX, prevY float64

	for i := range s.Xs {
		x := s.Xs[i]
		y := s.Ys[i]
		if math.IsNaN(y) || math.IsInf(y, 0) {
			prevOK = false
			continue
		}

		curX, curY := r.toPixels(x, y)
		if prevOK {
			cx0, cy0, cx1, cy1, ok := clipLineToRect(prevX, prevY, curX, curY, 0, 0, xMax, yMax)
			if ok {
				r.drawLine(
					r.plotX+roundInt16(cx0),
					r.plotY+roundInt16(cy0),
					r.plotX+roundInt16(cx1),
					r.plotY+roundInt16(cy1),
					c,
				)
			}
		} else if curX >= 0 && curX <= xMax && curY >= 0 && curY <= yMax {
			r.d.SetPixel(r.plotX+roundInt16(curX), r.plotY+roundInt16(curY), c)
		}
		prevOK = true
		prevX = curX
		prevY = curY
	}
}

// drawMarks paints intersection points as small crosses annotated with their
// coordinates to two decimals.
func (r *renderer) drawMarks() {
	xMax := float64(r.plotW - 1)
	yMax := float64(r.plotH - 1)
	for _, m := range r.plot.Marks {
		px, py := r.toPixels(m.X, m.Y)
		if px < 0 || px > xMax || py < 0 || py > yMax {
			continue
		}
		cx := r.plotX + roundInt16(px)
		cy := r.plotY + roundInt16(py)
		for d := int16(-2); d <= 2; d++ {
			r.d.SetPixel(cx+d, cy, colorMark)
			r.d.SetPixel(cx, cy+d, colorMark)
		}
		label := fmt.Sprintf("(%.2f, %.2f)", m.X, m.Y)
		r.writeText(cx+4, cy-r.fontHeight, label, colorMark)
	}
}

func (r *renderer) drawLegend() {
	curves := r.plot.Curves
	if len(curves) == 0 {
		return
	}

	maxLabel := 0
	for _, c := range curves {
		if n := len(c.Label) + 2 + len(c.Expr); n > maxLabel {
			maxLabel = n
		}
	}
	if maxLabel > 24 {
		maxLabel = 24
	}

	swatchW := 3 * r.fontWidth
	boxW := swatchW + int16(maxLabel+2)*r.fontWidth + 4
	boxH := int16(len(curves))*r.fontHeight + 4
	if boxW > r.plotW-2 {
		boxW = r.plotW - 2
	}
	if boxH > r.plotH-2 {
		boxH = r.plotH - 2
	}

	x := r.plotX + 1
	y := r.plotY + 1
	_ = r.d.FillRectangle(x, y, boxW, boxH, colorLegendBG)
	_ = r.d.FillRectangle(x, y, boxW, 1, colorAxis)
	_ = r.d.FillRectangle(x, y+boxH-1, boxW, 1, colorAxis)
	_ = r.d.FillRectangle(x, y, 1, boxH, colorAxis)
	_ = r.d.FillRectangle(x+boxW-1, y, 1, boxH, colorAxis)

	for i, c := range curves {
		cy := y + 2 + int16(i)*r.fontHeight
		_ = r.d.FillRectangle(x+2, cy+r.fontHeight/2-1, swatchW, 2, plotColors[i%len(plotColors)])
		text := c.Label + ": " + c.Expr
		if len(text) > maxLabel {
			text = text[:maxLabel]
		}
		r.writeText(x+2+swatchW+r.fontWidth, cy, text, colorFG)
	}
}

func (r *renderer) drawXAxisLabel(px, py int16, s string) {
	if s == "" {
		return
	}
	w := int16(len(s)) * r.fontWidth
	x := px - w/2
	if x < 0 {
		x = 0
	}
	r.writeText(x, py, s, colorDim)
}

func (r *renderer) drawYAxisLabel(rightEdgePx, py int16, s string, leftMargin int16) {
	if s == "" {
		return
	}
	w := int16(len(s)) * r.fontWidth
	x := rightEdgePx - w - 1
	if minX := rightEdgePx - leftMargin + 1; x < minX {
		x = minX
	}
	if x < 0 {
		x = 0
	}
	r.writeText(x, py-r.fontHeight/2, s, colorDim)
}

func (r *renderer) writeText(x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(r.d, r.font, x, y+r.fontOffset, s, c)
}

func (r *renderer) drawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

// clipLineToRect clips a segment to the rectangle with the Liang-Barsky
// parametric test, returning ok=false when the segment lies fully outside.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clampFloat(x0+u1*dx, xmin, xmax)
	cy0 = clampFloat(y0+u1*dy, ymin, ymax)
	cx1 = clampFloat(x0+u2*dx, xmin, xmax)
	cy1 = clampFloat(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// niceStep rounds a raw spacing up to a 1/2/5 multiple of a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	pow := math.Pow(10, math.Floor(math.Log10(raw)))
	if pow == 0 || math.IsNaN(pow) || math.IsInf(pow, 0) {
		return 1
	}
	switch frac := raw / pow; {
	case frac <= 1:
		return pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

func fmtAxis(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}
