package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(40, -20), Pt(50, 10)}
	left, right := c.Subdivide()
	diff(t, c.Start(), left.Start())
	diff(t, c.End(), right.End())
	diff(t, left.End(), right.Start())
	for i := range 11 {
		u := float64(i) / 10
		assertNear(t, left.Eval(u), c.Eval(u/2), 1e-12)
		assertNear(t, right.Eval(u), c.Eval(0.5+u/2), 1e-12)
	}
}

func TestCubicBezExtrema(t *testing.T) {
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	extrema, n := q.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema, expected 1", n)
	}
	if want := 0.5; math.Abs(extrema[0]-want) > 1e-6 {
		t.Errorf("got extrema %v, want %v", extrema[0], want)
	}

	q = CubicBez{Pt(0.4, 0.5), Pt(0.0, 1.0), Pt(1.0, 0.0), Pt(0.5, 0.4)}
	extrema, n = q.Extrema()
	if n != 4 {
		t.Fatalf("got %d extrema, expected 4", n)
	}
	for i := 1; i < n; i++ {
		if extrema[i] < extrema[i-1] {
			t.Errorf("extrema aren't sorted: %v", extrema[:n])
		}
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	q := CubicBez{Pt(0.0, 0.0), Pt(0.0, 1.0), Pt(1.0, 1.0), Pt(1.0, 0.0)}
	diff(t, Rect{0, 0, 1, 0.75}, q.BoundingBox())

	// A straight cubic's box is spanned by its endpoints.
	line := CubicBez{Pt(3, 4), Pt(2, 3), Pt(1, 2), Pt(0, 1)}
	diff(t, Rect{0, 1, 3, 4}, line.BoundingBox())
}

func TestCubicBezArclen(t *testing.T) {
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	trueArclen := 0.5*math.Sqrt(5.0) + 0.25*math.Log(2.0+math.Sqrt(5.0))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, trueArclen, c.Arclen(accuracy), cmpopts.EquateApprox(0, accuracy))
	}

	line := CubicBez{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}
	diff(t, 30.0, line.Arclen(DefaultAccuracy), cmpopts.EquateApprox(0, DefaultAccuracy))
}

func TestCubicBezNonFinite(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(math.NaN(), 0), Pt(1, 1), Pt(2, 2)}
	if !c.IsNaN() || c.IsInf() {
		t.Errorf("got IsNaN %t and IsInf %t, want true and false", c.IsNaN(), c.IsInf())
	}
	c = CubicBez{Pt(0, 0), Pt(1, 0), Pt(1, math.Inf(1)), Pt(2, 2)}
	if c.IsNaN() || !c.IsInf() {
		t.Errorf("got IsNaN %t and IsInf %t, want false and true", c.IsNaN(), c.IsInf())
	}
}
