package graph

import "math"

// Points generates count equidistant domain values spanning [start, stop],
// inclusive of both ends when count > 1.
func Points(start, stop float64, count int) []float64 {
	if count < 1 {
		return nil
	}
	step := (stop - start) / math.Max(float64(count-1), 1)
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = start + step*float64(i)
	}
	return xs
}

// Sample evaluates expr at each domain value. A failed evaluation yields NaN
// at that index instead of aborting the series, so one undefined point never
// prevents plotting the rest of the curve.
func (g *Grapher) Sample(expr string, xs []float64) Series {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		v, err := g.eng.EvaluateAt(expr, x)
		if err != nil {
			ys[i] = math.NaN()
			continue
		}
		ys[i] = v
	}
	return Series{Xs: append([]float64(nil), xs...), Ys: ys}
}
