package spline

import (
	"iter"

	"golang.org/x/image/vector"
)

// Rasterize adds the path to the rasterizer. Path coordinates are used as
// pixel coordinates; use [Transform] to map them first.
//
// Every subpath is closed, as the rasterizer accumulates filled area. Open
// curves are therefore filled as if their ends were joined by a line.
func Rasterize(r *vector.Rasterizer, seq iter.Seq[PathElement]) {
	open := false
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			open = true
		case LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case CubicToKind:
			r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case ClosePathKind:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}
