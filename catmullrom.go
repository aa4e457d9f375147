package spline

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Parameterization is the exponent applied to the distances between
// neighbouring control points when estimating the tangents of a
// [CatmullRom]. Values between the named constants are allowed.
type Parameterization float64

const (
	// Uniform ignores the spacing of control points. It may produce cusps
	// and self-intersections for unevenly spaced points.
	Uniform Parameterization = 0
	// Centripetal avoids cusps and self-intersections within segments.
	Centripetal Parameterization = 0.5
	// Chordal weighs tangents by the full distance between points.
	Chordal Parameterization = 1
)

// DefaultSamplesPerSegment is the average number of arc length samples taken
// per segment when building a curve's arc length table.
const DefaultSamplesPerSegment = 10

var (
	// ErrTooFewPoints is returned when constructing a curve from fewer points
	// than it needs: 2 for open and 3 for closed curves.
	ErrTooFewPoints = errors.New("too few control points")
	// ErrInvalidPoint is returned when a control point is NaN or infinite.
	ErrInvalidPoint = errors.New("control point is not finite")
)

// CatmullRomOptions configures the construction of a [CatmullRom].
type CatmullRomOptions struct {
	// Closed makes the curve cyclic, connecting the last control point back to
	// the first one.
	Closed bool
	// Tension scales the tangents by 1 - Tension. 0 is the classic
	// Catmull-Rom spline, 1 yields straight lines between control points.
	Tension float64
	// Alpha selects the parameterization.
	Alpha Parameterization
	// SamplesPerSegment is the average number of arc length samples per
	// segment. Values <= 0 mean [DefaultSamplesPerSegment].
	SamplesPerSegment int
}

// DefaultCatmullRomOptions are the options used by [NewCatmullRom]: an open,
// centripetal curve with no tension.
var DefaultCatmullRomOptions = CatmullRomOptions{
	Alpha:             Centripetal,
	SamplesPerSegment: DefaultSamplesPerSegment,
}

// CatmullRom is a generalized Catmull-Rom spline through a sequence of
// control points, with an arc length table for moving along the curve at a
// constant speed.
//
// The curve is parametrized by t ∈ [0, n], where n is the number of segments
// as returned by [CatmullRom.Segments]. Integer values of t land exactly on
// control points. Open curves have one segment less than they have control
// points; closed curves have one segment per control point, the last one
// connecting the last point to the first.
//
// A CatmullRom is immutable and safe for concurrent use. The zero value is not
// usable; use [NewCatmullRom] or [NewCatmullRomOpt].
type CatmullRom struct {
	points   []Point
	closed   bool
	tension  float64
	alpha    Parameterization
	segments int
	table    arclenTable
}

// NewCatmullRom returns a centripetal Catmull-Rom spline through points, using
// [DefaultCatmullRomOptions].
func NewCatmullRom(points []Point, closed bool) (*CatmullRom, error) {
	opts := DefaultCatmullRomOptions
	opts.Closed = closed
	return NewCatmullRomOpt(points, opts)
}

// NewCatmullRomOpt returns a Catmull-Rom spline through points. The points are
// copied.
//
// Construction samples the whole curve to build its arc length table, which
// costs roughly opts.SamplesPerSegment point evaluations per segment.
func NewCatmullRomOpt(points []Point, opts CatmullRomOptions) (*CatmullRom, error) {
	segments := len(points) - 1
	if opts.Closed {
		segments = len(points)
		if len(points) < 3 {
			return nil, fmt.Errorf("closed spline needs at least 3 points, got %d: %w", len(points), ErrTooFewPoints)
		}
	}
	if segments < 1 {
		return nil, fmt.Errorf("spline needs at least 2 points, got %d: %w", len(points), ErrTooFewPoints)
	}
	for i, pt := range points {
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("point %d is %s: %w", i, pt, ErrInvalidPoint)
		}
	}
	samples := opts.SamplesPerSegment
	if samples <= 0 {
		samples = DefaultSamplesPerSegment
	}

	c := &CatmullRom{
		points:   slices.Clone(points),
		closed:   opts.Closed,
		tension:  opts.Tension,
		alpha:    opts.Alpha,
		segments: segments,
	}
	// Point evaluation doesn't use the table, so sampling can use it here.
	c.table = sampleArclen(c, samples)
	return c, nil
}

// Points returns a copy of the control points.
func (c *CatmullRom) Points() []Point { return slices.Clone(c.points) }

// Closed reports whether the curve is cyclic.
func (c *CatmullRom) Closed() bool { return c.closed }

func (c *CatmullRom) Tension() float64        { return c.tension }
func (c *CatmullRom) Alpha() Parameterization { return c.alpha }

// Segments returns the number of segments, which is also the largest value of
// the curve's parameter.
func (c *CatmullRom) Segments() int { return c.segments }

// Normalize maps the global parameter t to a segment and the parameter
// u ∈ [0, 1] within that segment.
//
// The end of the curve, t == Segments(), maps to the end of the last
// segment. Other values of t outside [0, Segments()) wrap around, for open
// curves as well as closed ones. Non-finite values of t map to segment 0 and
// a NaN parameter.
//
// For a curve with 3 segments:
//
//	    t: 0 --- 0.5 --- 1 --- 2 --- 3 --- 3.1 --- 4
//	  seg: 0 --- 0   --- 1 --- 2 --- 2 --- 0   --- 1
//	    u: 0 --- 0.5 --- 0 --- 0 --- 1 --- 0.1 --- 0
func (c *CatmullRom) Normalize(t float64) (segment int, u float64) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, math.NaN()
	}
	if t == float64(c.segments) {
		return c.segments - 1, 1
	}
	fl := math.Floor(t)
	segment = int(math.Mod(fl, float64(c.segments)))
	if segment < 0 {
		segment += c.segments
	}
	return segment, t - fl
}

// ControlPoints returns the four points that define segment i. The segment
// interpolates between the second and third point; the outer two shape its
// tangents.
//
// Open curves lack a leading neighbour for their first segment and a trailing
// one for their last segment. These are extrapolated by mirroring the
// segment's far end through its near end. Closed curves wrap around.
//
// ControlPoints panics if i is not in [0, Segments()).
func (c *CatmullRom) ControlPoints(i int) [4]Point {
	if i < 0 || i >= c.segments {
		panic(fmt.Sprintf("segment %d is out of range [0, %d)", i, c.segments))
	}
	pts := c.points
	n := len(pts)
	if c.closed {
		return [4]Point{pts[(i+n-1)%n], pts[i], pts[(i+1)%n], pts[(i+2)%n]}
	}

	p1, p2 := pts[i], pts[i+1]
	var p0, p3 Point
	if i > 0 {
		p0 = pts[i-1]
	} else {
		p0 = Point(Vec2(p1).Mul(2).Sub(Vec2(p2)))
	}
	if i+2 < n {
		p3 = pts[i+2]
	} else {
		p3 = Point(Vec2(p2).Mul(2).Sub(Vec2(p1)))
	}
	return [4]Point{p0, p1, p2, p3}
}

// tangents computes the derivatives at the start and end of the segment
// defined by cp, using the alpha-weighted knot intervals of the
// Barry-Goldman formulation.
//
// See https://qroph.github.io/2018/07/30/smooth-paths-using-catmull-rom-splines.html
func (c *CatmullRom) tangents(cp [4]Point) (m1, m2 Vec2) {
	alpha := float64(c.alpha)
	t01 := math.Pow(cp[0].Distance(cp[1]), alpha)
	t12 := math.Pow(cp[1].Distance(cp[2]), alpha)
	t23 := math.Pow(cp[2].Distance(cp[3]), alpha)
	// A neighbour coincident with its endpoint contributes nothing to the
	// tangent, but would divide 0 by 0.
	if t01 == 0 {
		t01 = 1
	}
	if t23 == 0 {
		t23 = 1
	}

	p0, p1, p2, p3 := Vec2(cp[0]), Vec2(cp[1]), Vec2(cp[2]), Vec2(cp[3])
	scale := 1 - c.tension
	chord := p2.Sub(p1)
	m1 = chord.Add(p1.Sub(p0).Div(t01).Sub(p2.Sub(p0).Div(t01 + t12)).Mul(t12)).Mul(scale)
	m2 = chord.Add(p3.Sub(p2).Div(t23).Sub(p3.Sub(p1).Div(t12 + t23)).Mul(t12)).Mul(scale)
	return m1, m2
}

// poly is a segment in polynomial form, a·u³ + b·u² + c·u + d.
type poly struct {
	a, b, c, d Vec2
}

func (c *CatmullRom) coefficients(cp [4]Point) poly {
	m1, m2 := c.tangents(cp)
	p1, p2 := Vec2(cp[1]), Vec2(cp[2])
	d12 := p1.Sub(p2)
	return poly{
		a: d12.Mul(2).Add(m1).Add(m2),
		b: d12.Mul(-3).Sub(m1).Sub(m1).Sub(m2),
		c: m1,
		d: p1,
	}
}

func (p poly) eval(u float64) Vec2 {
	return p.a.Mul(u).Add(p.b).Mul(u).Add(p.c).Mul(u).Add(p.d)
}

func (p poly) deriv(u float64) Vec2 {
	return p.a.Mul(3 * u).Add(p.b.Mul(2)).Mul(u).Add(p.c)
}

// PointAt evaluates the curve at t. Integer values of t return control
// points exactly.
func (c *CatmullRom) PointAt(t float64) Point {
	i, u := c.Normalize(t)
	cp := c.ControlPoints(i)
	switch u {
	case 0:
		return cp[1]
	case 1:
		return cp[2]
	}
	return Point(c.coefficients(cp).eval(u))
}

// Deriv returns the derivative of the curve with respect to t. Its magnitude
// is the speed at which the curve is traversed.
func (c *CatmullRom) Deriv(t float64) Vec2 {
	i, u := c.Normalize(t)
	return c.coefficients(c.ControlPoints(i)).deriv(u)
}

// TangentAt returns the unit tangent of the curve at t. It returns the zero
// vector where the derivative vanishes, such as on segments between
// coincident control points.
func (c *CatmullRom) TangentAt(t float64) Vec2 {
	return c.Deriv(t).NormalizeOrZero()
}

// NormalAt returns the unit normal of the curve at t, which is the tangent
// turned by π/2, see [Vec2.Turn90].
func (c *CatmullRom) NormalAt(t float64) Vec2 {
	return c.TangentAt(t).Turn90()
}

// Length returns the length of the curve, as measured by its arc length
// table. See [CatmullRom.Arclen] for a more accurate measurement.
func (c *CatmullRom) Length() float64 {
	return c.table.total()
}

// ParamForDistance returns the parameter t at which the curve has travelled
// distance d from its start.
//
// Distances beyond the length of the curve, and negative ones, wrap around,
// so that a caller can move along the curve in a loop by accumulating
// distance. This is true for open curves as well. A distance equal to the
// length of the curve returns the end of the curve.
//
// The second return value is false if d is NaN or infinite. It is never
// false for finite distances.
func (c *CatmullRom) ParamForDistance(d float64) (float64, bool) {
	return c.table.param(d)
}

// PointForDistance returns the point at distance d along the curve. See
// [CatmullRom.ParamForDistance] for how d is interpreted.
func (c *CatmullRom) PointForDistance(d float64) (Point, bool) {
	t, ok := c.ParamForDistance(d)
	if !ok {
		return Point{}, false
	}
	return c.PointAt(t), true
}

// TangentForDistance returns the unit tangent at distance d along the curve.
// See [CatmullRom.ParamForDistance] for how d is interpreted.
func (c *CatmullRom) TangentForDistance(d float64) (Vec2, bool) {
	t, ok := c.ParamForDistance(d)
	if !ok {
		return Vec2{}, false
	}
	return c.TangentAt(t), true
}

// Segment returns segment i as a cubic Bézier. The Bézier traces exactly the
// same curve as the segment, with the same parameterization.
//
// Segment panics if i is not in [0, Segments()).
func (c *CatmullRom) Segment(i int) CubicBez {
	cp := c.ControlPoints(i)
	m1, m2 := c.tangents(cp)
	return CubicBez{
		P0: cp[1],
		P1: cp[1].Translate(m1.Mul(1.0 / 3.0)),
		P2: cp[2].Translate(m2.Mul(-1.0 / 3.0)),
		P3: cp[2],
	}
}

var _ Arclener = (*CatmullRom)(nil)

// Arclen returns the length of the curve, computed by integrating each
// segment to the given accuracy. Unlike [CatmullRom.Length], this doesn't use
// the arc length table.
func (c *CatmullRom) Arclen(accuracy float64) float64 {
	acc := accuracy / float64(c.segments)
	var sum float64
	for i := range c.segments {
		sum += c.Segment(i).Arclen(acc)
	}
	return sum
}

// BoundingBox returns the smallest rectangle that encloses the curve.
func (c *CatmullRom) BoundingBox() Rect {
	bbox := c.Segment(0).BoundingBox()
	for i := 1; i < c.segments; i++ {
		bbox = bbox.Union(c.Segment(i).BoundingBox())
	}
	return bbox
}

// PathElements returns the curve as a path of cubic Béziers, one per
// segment. Closed curves end with [ClosePath].
func (c *CatmullRom) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(c.points[0])) {
			return
		}
		for i := range c.segments {
			seg := c.Segment(i)
			if !yield(CubicTo(seg.P1, seg.P2, seg.P3)) {
				return
			}
		}
		if c.closed {
			yield(ClosePath())
		}
	}
}

// Polyline returns points along the curve, sweeping t from 0 to Segments()
// in steps of 1/perSegment. The last point is the end of the curve. This is
// the cheapest way to draw a curve, at a resolution chosen by the caller.
func (c *CatmullRom) Polyline(perSegment int) iter.Seq[Point] {
	perSegment = max(perSegment, 1)
	return func(yield func(Point) bool) {
		for i := range c.segments {
			for j := range perSegment {
				t := float64(i) + float64(j)/float64(perSegment)
				if !yield(c.PointAt(t)) {
					return
				}
			}
		}
		yield(c.PointAt(float64(c.segments)))
	}
}
