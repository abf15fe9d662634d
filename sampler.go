package geoaxis

// Sample density bounds. Densities above the cap buy nothing visually and
// slow the batch projector down; the overlap pass operates at label
// granularity only, so the cap needs no extra label filtering.
const (
	defaultDensity = 100
	maxDensity     = 1000
)

// clampDensity normalizes a requested sample density. Zero or negative
// requests fall back to the default.
func clampDensity(d int) int {
	if d <= 0 {
		return defaultDensity
	}
	return min(d, maxDensity)
}

// gridGeometry is the sampled (input-space) graticule for one recompute.
// xGrid and yGrid are batched polylines with break sentinels between
// consecutive tick lines; spines are four independent lines.
type gridGeometry struct {
	xGrid  []Point
	yGrid  []Point
	spines [4][]Point // bottom, top, left, right
}

// Spine indices into gridGeometry.spines and ProjectedGeometry.Spines.
const (
	SpineBottom = iota
	SpineTop
	SpineLeft
	SpineRight
)

// sampleGrid builds the input-space graticule: one vertical line of density
// points per x tick, one horizontal line per y tick, and the four rectangle
// edges of the view limits as spines. All lines in one call share the same
// density.
//
// Batching convention: for K ticks and density D the batched polyline holds
// exactly K*(D+1)-1 points (D samples per line plus one break between
// consecutive lines, no trailing break). K=0 yields an empty slice, not a
// lone break.
func sampleGrid(lims ViewLimits, xticks, yticks []float64, density int) gridGeometry {
	d := clampDensity(density)

	var g gridGeometry
	g.xGrid = sampleTickLines(xticks, d, func(x float64) (Point, Point) {
		return Pt(x, lims.YMin), Pt(x, lims.YMax)
	})
	g.yGrid = sampleTickLines(yticks, d, func(y float64) (Point, Point) {
		return Pt(lims.XMin, y), Pt(lims.XMax, y)
	})

	g.spines[SpineBottom] = sampleLine(Pt(lims.XMin, lims.YMin), Pt(lims.XMax, lims.YMin), d, nil)
	g.spines[SpineTop] = sampleLine(Pt(lims.XMin, lims.YMax), Pt(lims.XMax, lims.YMax), d, nil)
	g.spines[SpineLeft] = sampleLine(Pt(lims.XMin, lims.YMin), Pt(lims.XMin, lims.YMax), d, nil)
	g.spines[SpineRight] = sampleLine(Pt(lims.XMax, lims.YMin), Pt(lims.XMax, lims.YMax), d, nil)
	return g
}

// sampleTickLines concatenates one sampled line per tick into a single
// batched polyline, separating consecutive lines with a break sentinel.
func sampleTickLines(ticks []float64, density int, endpoints func(v float64) (Point, Point)) []Point {
	if len(ticks) == 0 {
		return nil
	}
	out := make([]Point, 0, len(ticks)*(density+1)-1)
	for i, v := range ticks {
		if i > 0 {
			out = append(out, Break())
		}
		from, to := endpoints(v)
		out = sampleLine(from, to, density, out)
	}
	return out
}

// sampleLine appends density points evenly spaced from from to to onto dst.
// density 1 yields just the start point.
func sampleLine(from, to Point, density int, dst []Point) []Point {
	if dst == nil {
		dst = make([]Point, 0, density)
	}
	if density == 1 {
		return append(dst, from)
	}
	for i := 0; i < density; i++ {
		dst = append(dst, from.Lerp(to, float64(i)/float64(density-1)))
	}
	return dst
}
