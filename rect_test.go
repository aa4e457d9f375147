package spline

import "testing"

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 20))
	diff(t, Rect{0, 0, 10, 20}, r)
	diff(t, 10.0, r.Width())
	diff(t, 20.0, r.Height())
	diff(t, Pt(5, 10), r.Center())

	flipped := Rect{10, 20, 0, 0}
	diff(t, -10.0, flipped.Width())
	diff(t, r, flipped.Abs())
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(0, 10), false},
		{Pt(10, 0), false},
		{Pt(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{-5, 0, 10, 15}, r.Union(Rect{-5, 5, 5, 15}))
	diff(t, Rect{0, -3, 12, 10}, r.UnionPoint(Pt(12, -3)))
	diff(t, r, r.UnionPoint(Pt(5, 5)))
}

func TestRectInflateExpand(t *testing.T) {
	r := Rect{0.5, 1.5, 9.2, 9.9}
	diff(t, Rect{-0.5, -0.5, 10.2, 11.9}, r.Inflate(1, 2))
	diff(t, Rect{0, 1, 10, 10}, r.Expand())
	diff(t, Rect{-2, -2, 3, 3}, Rect{-1.5, -1.1, 2.1, 3}.Expand())
}
