package spline

import (
	"math"
	"slices"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
}

func TestMapRect(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{-50, -10, 50, 10}
	dst := Rect{0, 0, 200, 40}
	aff := MapRect(src, dst)
	assertNear(t, Pt(-50, -10).Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, Pt(50, 10).Transform(aff), Pt(200, 40), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(100, 20), epsilon)
}

func TestTransformSeq(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(3, 4)}
	got := slices.Collect(Transform(slices.Values(pts), Scale(2, -1)))
	diff(t, []Point{Pt(2, -2), Pt(6, -4)}, got)
}
