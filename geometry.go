package geoaxis

// ProjectedGeometry is the screen-ready output of one recompute cycle:
// everything the render adapter needs to draw the axis decorations. It is
// rebuilt from scratch and published atomically on every cycle; consumers
// must treat it as immutable.
//
// Gridlines use the break-sentinel batching convention (see package docs):
// each of XGrid and YGrid is a single flat polyline in which disjoint curves
// are separated by Break() points. Spines are four separate polylines,
// indexed by SpineBottom..SpineRight.
//
// Tick anchors, labels, and visibility flags are index-aligned per axis:
// XTickPoints[i] anchors XTickLabels[i], shown iff XTickVisible[i]. Overlap
// filtering only flips visibility; it never removes entries, so the
// alignment survives for consumers that bind text to anchors by index.
type ProjectedGeometry struct {
	// Gridlines in projected plane space, batched with breaks.
	XGrid []Point
	YGrid []Point

	// Spines in projected plane space.
	Spines [4][]Point

	// Tick anchors in pixel space, label text, per-label offset away from
	// the plot interior, and visibility after overlap resolution.
	XTickPoints  []Point
	XTickLabels  []string
	XTickOffsets []Point
	XTickVisible []bool

	YTickPoints  []Point
	YTickLabels  []string
	YTickOffsets []Point
	YTickVisible []bool

	// Coastlines in projected plane space (batched with breaks), empty
	// unless a CoastlineSource is configured.
	Coast []Point

	// Pass-through styling.
	GridStyle  LineStyle
	SpineStyle LineStyle
	CoastStyle LineStyle

	// PlaneBounds is the projected-plane rect the pixel mapping was derived
	// from, and Pixels the viewport it maps onto. Renderers that draw the
	// plane-space polylines themselves need the same mapping.
	PlaneBounds Rect
	Pixels      Viewport
}

// CoastlineSource supplies coastline polylines in lon/lat degrees, already
// batched with break sentinels between segments. Loading and simplifying
// the dataset is the source's business; the axis only projects what it is
// given, once per recompute.
type CoastlineSource interface {
	Coastlines() []Point
}
