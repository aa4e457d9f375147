// Package spline provides Catmull-Rom splines for moving objects along smooth
// 2D paths at a controlled speed, as well as for drawing those paths.
//
// # Catmull-Rom splines
//
// A [CatmullRom] is a curve that passes through all of its control points.
// It consists of one cubic segment per pair of consecutive control points;
// each segment's tangents are estimated from its neighbouring points.
//
// How the distances between points influence the tangents is controlled by
// a single exponent, the [Parameterization]:
//   - [Uniform] ignores distances, which can produce cusps and loops when
//     points are unevenly spaced.
//   - [Centripetal] is the default and avoids cusps and self-intersections.
//   - [Chordal] follows the distances more strongly, producing rounder
//     curves.
//
// The tension scales all tangents. Closed curves connect their last control
// point back to the first one.
//
// # Parameters and distances
//
// Curves are parametrized by t ∈ [0, n] for n segments. The integer part of t
// selects a segment, the fractional part the position within the segment.
// Equal steps of t don't cover equal distances, however: segments have
// different lengths and the curve's speed varies within segments.
//
// To move along a curve at a constant speed, use distances instead.
// [CatmullRom.ParamForDistance] converts a distance from the start of the
// curve into a parameter, using an arc length table that is sampled once, when
// the curve is constructed. Distances wrap around at the end of the curve, so
// accumulating distance loops over the curve. [Follower] does that
// bookkeeping.
//
// # Rendering
//
// Every segment has an exact cubic Bézier form ([CatmullRom.Segment]), so
// curves can be handed to anything that draws Bézier paths: as
// [PathElement]s via [CatmullRom.PathElements], as SVG path data via [SVG],
// or to a [golang.org/x/image/vector.Rasterizer] via [Rasterize]. For simple
// renderers, [CatmullRom.Polyline] samples points at a chosen resolution.
// [Affine] maps curve space to the renderer's coordinate system.
//
// # Logging
//
// The package logs nothing by default. See [SetLogger].
//
// # Literature
//
//   - [Smooth paths using Catmull-Rom splines] by Mika Rantanen
//   - [On the parameterization of Catmull-Rom curves] by Yuksel, Schaefer and Keyser
//
// [Smooth paths using Catmull-Rom splines]: https://qroph.github.io/2018/07/30/smooth-paths-using-catmull-rom-splines.html
// [On the parameterization of Catmull-Rom curves]: https://www.cemyuksel.com/research/catmullrom_param/catmullrom.pdf
package spline
