package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Errorf("got %s, expected %s (off by %g)", got, want, d)
	}
}

func TestDecimals(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1, 0},
		{0.1, 1},
		{0.25, 2},
		{0.0625, 4},
		{1e-7, 7},
		{1.0 / 3.0, 16},
	}
	for _, tt := range tests {
		if got := decimals(tt.in); got != tt.want {
			t.Errorf("decimals(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRoundTo(t *testing.T) {
	if got := roundTo(0.1+0.2, 1); got != 0.3 {
		t.Errorf("got %v, want 0.3", got)
	}
	if got := roundTo(0.7+0.1, 1); got != 0.8 {
		t.Errorf("got %v, want 0.8", got)
	}
	if got := roundTo(1.0625, 4); got != 1.0625 {
		t.Errorf("got %v, want 1.0625", got)
	}
}

func TestClamp(t *testing.T) {
	diff(t, []float64{0, 0.5, 1, 1, 0}, []float64{
		clamp(0, 1, -1),
		clamp(0, 1, 0.5),
		clamp(0, 1, 2),
		clamp(1, 0, 2),
		clamp(1, 0, -2),
	})
}

func TestLerp(t *testing.T) {
	diff(t, []float64{2, 4, 3}, []float64{lerp(2, 4, 0), lerp(2, 4, 1), lerp(2, 4, 0.5)})
}
