package spline

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	path := slices.Values([]PathElement{
		MoveTo(Pt(1.5, 2)),
		LineTo(Pt(3, 4)),
		CubicTo(Pt(1.0/3.0, 0), Pt(0.26, -1), Pt(10, 10)),
		ClosePath(),
	})
	tests := []struct {
		precision int
		want      string
	}{
		{0, "M1.5,2 L3,4 C0.3333333333333333,0 0.26,-1 10,10 Z"},
		{2, "M1.5,2 L3,4 C0.33,0 0.26,-1 10,10 Z"},
		{1, "M1.5,2 L3,4 C0.3,0 0.3,-1 10,10 Z"},
	}
	for _, tt := range tests {
		diff(t, tt.want, SVG(path, SVGOptions{MaxPrecision: tt.precision}))
	}
	diff(t, "", SVG(slices.Values([]PathElement(nil)), SVGOptions{}))
}

func TestCatmullRomSVG(t *testing.T) {
	line := mustCatmullRom(t, []Point{Pt(-50, 0), Pt(50, 0)}, DefaultCatmullRomOptions)
	diff(t, "M-50,0 C-16.667,0 16.667,0 50,0", SVG(line.PathElements(), SVGOptions{MaxPrecision: 3}))

	open := mustCatmullRom(t, diamondPoints, DefaultCatmullRomOptions)
	closed := mustCatmullRom(t, diamondPoints, closedOpts())
	if s := SVG(open.PathElements(), SVGOptions{}); strings.HasSuffix(s, "Z") {
		t.Errorf("open curve got closed: %q", s)
	}
	s := SVG(closed.PathElements(), SVGOptions{})
	if !strings.HasPrefix(s, "M100,0 C") || !strings.HasSuffix(s, " 100,0 Z") {
		t.Errorf("unexpected path for closed curve: %q", s)
	}
	if n := strings.Count(s, "C"); n != 4 {
		t.Errorf("got %d cubics, want 4", n)
	}
}

func TestPathElements(t *testing.T) {
	c := mustCatmullRom(t, wavePoints, closedOpts())
	els := slices.Collect(c.PathElements())
	if len(els) != c.Segments()+2 {
		t.Fatalf("got %d elements, want %d", len(els), c.Segments()+2)
	}
	diff(t, MoveTo(wavePoints[0]), els[0])
	diff(t, ClosePath(), els[len(els)-1])
	for i, el := range els[1 : len(els)-1] {
		seg := c.Segment(i)
		diff(t, CubicTo(seg.P1, seg.P2, seg.P3), el)
	}

	// Stopping early doesn't yield any further elements.
	n := 0
	for range c.PathElements() {
		n++
		if n == 2 {
			break
		}
	}
}

func TestPathElementTransform(t *testing.T) {
	aff := Translate(Vec(10, 20)).ThenScale(2, 2)
	tests := []struct {
		in, want PathElement
	}{
		{MoveTo(Pt(1, 2)), MoveTo(Pt(22, 44))},
		{LineTo(Pt(0, 0)), LineTo(Pt(20, 40))},
		{CubicTo(Pt(1, 1), Pt(2, 2), Pt(-10, -20)), CubicTo(Pt(22, 42), Pt(24, 44), Pt(0, 0))},
		{ClosePath(), ClosePath()},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.in.Transform(aff))
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	c := mustCatmullRom(t, wavePoints, DefaultCatmullRomOptions)
	err := WriteSVG(&failingWriter{n: 2}, c.PathElements(), SVGOptions{})
	if err == nil || err.Error() != "disk full" {
		t.Errorf("got error %v, want disk full", err)
	}
}

func TestWriteSVGInvalidKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("invalid element didn't panic")
		}
	}()
	SVG(slices.Values([]PathElement{{}}), SVGOptions{})
}
