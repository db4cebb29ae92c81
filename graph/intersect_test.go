package graph

import (
	"math"
	"testing"

	"ti84/calc"
)

func TestIntersections_LinearCross(t *testing.T) {
	g := New(calc.New())
	xs := Points(-10, 10, 400)
	pts := g.Intersections("x", "-x", xs)
	if len(pts) != 1 {
		t.Fatalf("got %d points, want 1", len(pts))
	}
	if math.Abs(pts[0].X) > 1e-9 || math.Abs(pts[0].Y) > 1e-9 {
		t.Fatalf("point=%v, want (0,0)", pts[0])
	}
}

func TestIntersections_ExactZeroSample(t *testing.T) {
	g := New(calc.New())
	// xs = [-1, 0, 1]; the difference is exactly zero at x=0, and the
	// following sign change re-brackets to the same point.
	pts := g.Intersections("x", "-x", Points(-1, 1, 3))
	if len(pts) != 2 {
		t.Fatalf("got %d points, want 2", len(pts))
	}
	for _, p := range pts {
		if p.X != 0 || p.Y != 0 {
			t.Fatalf("point=%v, want (0,0)", p)
		}
	}
}

func TestIntersections_SkipsInvalidPoints(t *testing.T) {
	g := New(calc.New())
	// sqrt(x)-1 is undefined for x<0; those samples are skipped, and the
	// crossing with zero at x=1 is still found. The sample at exactly x=1
	// hits zero, so the following sign change re-brackets the same point.
	xs := Points(-2, 2, 9)
	pts := g.Intersections("sqrt(x)-1", "0", xs)
	if len(pts) == 0 {
		t.Fatal("no intersections found")
	}
	for _, p := range pts {
		if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y) > 1e-12 {
			t.Fatalf("point=%v, want (1,0)", p)
		}
	}
}

func TestIntersections_NoCrossing(t *testing.T) {
	g := New(calc.New())
	xs := Points(-10, 10, 100)
	if pts := g.Intersections("x", "x+1", xs); len(pts) != 0 {
		t.Fatalf("parallel lines: %v", pts)
	}
	if pts := g.Intersections("x^2+1", "0", xs); len(pts) != 0 {
		t.Fatalf("same-side curves: %v", pts)
	}
}

func TestIntersections_InterpolatesAlongFirstCurve(t *testing.T) {
	g := New(calc.New())
	// y=2x and y=2 cross at (1,2); interpolation follows the first curve.
	// The domain avoids sampling x=1 exactly so the crossing is bracketed.
	xs := Points(0, 2, 4)
	pts := g.Intersections("2*x", "2", xs)
	if len(pts) != 1 {
		t.Fatalf("got %d points, want 1", len(pts))
	}
	if math.Abs(pts[0].X-1) > 1e-9 || math.Abs(pts[0].Y-2) > 1e-9 {
		t.Fatalf("point=%v, want (1,2)", pts[0])
	}
}
