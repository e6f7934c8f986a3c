package game

import "math"

// FindPOI returns the POI nearest to world within tolerance, or nil
// when none qualifies. Distance is Euclidean from the POI centre; a
// hit at exactly tolerance counts. Ties are broken by iteration order:
// the strict < comparison keeps the first POI encountered, which makes
// overlapping-POI taps deterministic. Linear scan — POI counts are in
// the tens.
func FindPOI(pois []*POI, world Vec2, tolerance float64) *POI {
	if tolerance < 0 {
		return nil
	}
	tol2 := sqr(tolerance)
	best2 := math.MaxFloat64
	var hit *POI
	for _, p := range pois {
		d2 := p.Position.Dist2(world)
		if d2 <= tol2 && d2 < best2 {
			best2 = d2
			hit = p
		}
	}
	return hit
}
