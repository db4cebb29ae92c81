package graph

import "math"

// Intersections walks the domain once, evaluating both expressions at each
// point, and reports approximate crossings. Points where either evaluation
// fails or the difference is not finite are skipped. An exact zero difference
// (with a previous valid sample) marks the current point; a sign change is
// bracketed and linearly interpolated along the first expression's values.
// Crossings between adjacent samples on the same side of zero are missed;
// resolution is the domain's sampling density.
func (g *Grapher) Intersections(exprA, exprB string, xs []float64) []Point {
	var out []Point
	havePrev := false
	var prevDiff, prevX, prevY float64

	for _, x := range xs {
		ya, err := g.eng.EvaluateAt(exprA, x)
		if err != nil {
			continue
		}
		yb, err := g.eng.EvaluateAt(exprB, x)
		if err != nil {
			continue
		}
		diff := ya - yb
		if math.IsNaN(diff) || math.IsInf(diff, 0) {
			continue
		}

		if havePrev && diff == 0 {
			out = append(out, Point{X: x, Y: ya})
		} else if havePrev && (diff > 0) != (prevDiff > 0) {
			proportion := math.Abs(prevDiff) / (math.Abs(prevDiff) + math.Abs(diff))
			out = append(out, Point{
				X: prevX + (x-prevX)*proportion,
				Y: prevY + (ya-prevY)*proportion,
			})
		}

		prevDiff = diff
		prevX = x
		prevY = ya
		havePrev = true
	}
	return out
}
