package spline

import (
	"math"
	"sort"
)

// endTolerance is the relative amount by which a distance may exceed the
// sampled length of a curve and still be treated as its end, rather than
// wrapping around to its start.
const endTolerance = 1e-9

// arclenTable stores samples of a curve's cumulative arc length, allowing to
// find the parameter for a distance along the curve without integrating.
//
// t and length are parallel slices. Both start at 0 and are increasing; t
// ends at the number of segments and length at the length of the curve.
type arclenTable struct {
	t      []float64
	length []float64
}

// sampleArclen builds the arc length table of c by walking the curve and
// summing the distances between consecutive samples.
//
// Segments can have very different lengths. Sampling all of them with the
// same step would make the table precise on short segments and coarse on
// long ones, and linear interpolation between coarse samples shows up as
// uneven speed. Instead, every segment gets a share of the
// perSegment × segments samples that is proportional to its share of the
// distance between control points.
func sampleArclen(c *CatmullRom, perSegment int) arclenTable {
	segments := c.segments
	end := float64(segments)

	dists := make([]float64, segments)
	var total float64
	for i := range segments {
		dists[i] = c.PointAt(float64(i + 1)).Distance(c.PointAt(float64(i)))
		total += dists[i]
	}
	samples := float64(perSegment * segments)
	steps := make([]float64, segments)
	for i, d := range dists {
		// Every segment gets at least one sample. Otherwise, a short segment's
		// step would be infinite and skip the remainder of the curve.
		n := 1.0
		if total > 0 {
			n = max(1, math.Floor(samples*(d/total)))
		}
		steps[i] = 1 / n
	}

	size := perSegment*segments + segments + 1
	tab := arclenTable{
		t:      append(make([]float64, 0, size), 0),
		length: append(make([]float64, 0, size), 0),
	}
	var length float64
	prev := c.PointAt(0)
	t := steps[0]
	for {
		seg, _ := c.Normalize(t)
		cur := c.PointAt(t)
		length += prev.Distance(cur)
		tab.t = append(tab.t, t)
		tab.length = append(tab.length, length)
		if t >= end {
			break
		}

		step := steps[seg]
		// Repeatedly adding a fraction like 0.1 drifts away from the values
		// we want to hit, such as segment boundaries. Rounding to the
		// step's precision keeps t on the step's grid. Steps like 1/7 have
		// no short decimal form, so we also snap to the segment's end.
		next := roundTo(t+step, decimals(step))
		if boundary := math.Floor(t) + 1; next > boundary-step/2 {
			next = boundary
		}
		t = clamp(0, end, next)
		prev = cur
	}

	Logger().Debug("built arc length table",
		"segments", segments,
		"samples", len(tab.t),
		"length", length)
	return tab
}

func (tab *arclenTable) total() float64 {
	if len(tab.length) == 0 {
		return 0
	}
	return tab.length[len(tab.length)-1]
}

// normalize brings d into [0, total]. Distances beyond the end of the curve
// wrap around to its start. Distances at the end, within endTolerance, are
// kept at the end.
func (tab *arclenTable) normalize(d float64) float64 {
	total := tab.total()
	if d >= 0 && d <= total*(1+endTolerance) {
		return min(d, total)
	}
	d = math.Mod(d, total)
	if d < 0 {
		d += total
	}
	return d
}

// param returns the parameter at distance d, linearly interpolating between
// the two samples that bracket d. This assumes that the curve's speed is
// roughly constant between samples.
func (tab *arclenTable) param(d float64) (float64, bool) {
	n := len(tab.length)
	if n == 0 {
		Logger().Warn("arc length lookup in empty table", "distance", d)
		return -1, false
	}
	total := tab.length[n-1]
	if total == 0 && !math.IsNaN(d) && !math.IsInf(d, 0) {
		// All samples are at the same point.
		return 0, true
	}

	d = tab.normalize(d)
	if d >= total {
		return tab.t[n-1], true
	}
	// Find lo, hi such that length[lo] <= d < length[hi].
	hi := sort.Search(n, func(i int) bool { return tab.length[i] > d })
	if hi == 0 || hi == n {
		// Only NaN gets here, as normalize produced d ∈ [0, total).
		Logger().Warn("arc length lookup found no samples", "distance", d, "length", total)
		return -1, false
	}
	lo := hi - 1

	al, bl := tab.length[lo], tab.length[hi]
	return lerp(tab.t[lo], tab.t[hi], (d-al)/(bl-al)), true
}
