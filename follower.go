package spline

import (
	"math"
	"time"
)

// Follower moves along a curve at a constant speed, such as an object
// following a path in a game. The curve itself is stateless; Follower keeps
// track of the distance travelled.
//
// Followers loop: once they reach the end of the curve, they continue at its
// start. A negative speed moves backwards.
type Follower struct {
	Curve *CatmullRom
	// Speed is in curve units per second.
	Speed float64
	// Distance is the distance travelled from the start of the curve.
	Distance float64
}

// Advance moves the follower by the distance covered in dt and returns its
// new position and direction of travel along the curve. The direction is the
// curve's tangent, regardless of the sign of Speed.
func (f *Follower) Advance(dt time.Duration) (Point, Vec2, bool) {
	f.Distance += f.Speed * dt.Seconds()
	// Keep the distance small so it doesn't lose precision over time.
	if total := f.Curve.Length(); total > 0 && (f.Distance < 0 || f.Distance > total) {
		f.Distance = math.Mod(f.Distance, total)
		if f.Distance < 0 {
			f.Distance += total
		}
	}
	return f.Position()
}

// Position returns the follower's current position and direction without
// moving it.
func (f *Follower) Position() (Point, Vec2, bool) {
	t, ok := f.Curve.ParamForDistance(f.Distance)
	if !ok {
		return Point{}, Vec2{}, false
	}
	return f.Curve.PointAt(t), f.Curve.TangentAt(t), true
}
