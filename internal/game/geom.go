package game

import "math"

// Vec2 is a point or displacement in world or screen space.
type Vec2 struct {
	X, Y float64
}

// Size is a width/height pair in pixels or world units.
type Size struct {
	W, H float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Dist2 returns the squared distance. Hit tests compare squared
// distances to avoid the sqrt in the inner loop.
func (v Vec2) Dist2(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

func sqr(v float64) float64 { return v * v }

// clampF clamps v to [lo, hi]. When lo > hi the result degenerates to
// lo, which is the camera policy for maps smaller than the visible
// rectangle.
func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
