package geoaxis

// projectPoints applies the transform pointwise to a batched polyline,
// preserving order and count. Break sentinels pass through untouched; the
// sentinel is never fed to the transform. A point the transform rejects, or
// that projects to a non-finite result (a projection seam or pole), becomes
// a break itself so the surrounding line segments stay drawable.
//
// Safe to call with zero points: returns an empty result.
func projectPoints(tr Transform, pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		if p.IsBreak() {
			out[i] = Break()
			continue
		}
		x, y, err := tr.Forward(p.X, p.Y)
		if err != nil || !Pt(x, y).IsFinite() {
			out[i] = Break()
			continue
		}
		out[i] = Pt(x, y)
	}
	return out
}

// projectPoint projects a single point, reporting whether it survived.
func projectPoint(tr Transform, p Point) (Point, bool) {
	x, y, err := tr.Forward(p.X, p.Y)
	if err != nil || !Pt(x, y).IsFinite() {
		return Break(), false
	}
	return Pt(x, y), true
}
