package geoaxis

import (
	"log/slog"

	"gonum.org/v1/plot"
)

// GeoAxis is a projection-aware plotting axis. It owns the current
// transform and view limits, derives tick sets and projected grid/spine
// geometry from them, and republishes the whole bundle to its GeometrySink
// whenever any input changes.
//
// A GeoAxis is owned by a single goroutine (the one driving the host's
// reactive system); it is not safe for concurrent use. Every axis in a
// scene runs its own independent instance of the whole pipeline.
type GeoAxis struct {
	opts   axisOptions
	sink   GeometrySink
	holder transformHolder

	sched *scheduler

	// Input nodes. Mutating the corresponding configuration invalidates
	// the node, which schedules a (coalesced) recompute.
	inLimits   *node
	inTicks    *node
	inViewport *node
	inStyle    *node

	// Derived nodes, for diagnostics and explicit dependency wiring.
	dvLimits   *node
	dvTicks    *node
	dvGeometry *node

	// Published state: replaced atomically at the end of each successful
	// cycle, never mutated field by field.
	limits ViewLimits
	xTicks TickSet
	yTicks TickSet
	geom   *ProjectedGeometry

	// Registered data polylines in lon/lat space, for DataBounds only.
	data []Point
}

// New constructs a GeoAxis publishing to sink. The projection is built from
// the configured proj4 strings unless WithTransform injected one; a
// malformed definition string fails construction with
// *InvalidProjectionError. One recompute runs before New returns, so the
// sink holds valid geometry immediately.
func New(sink GeometrySink, opts ...AxisOption) (*GeoAxis, error) {
	o := defaultAxisOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.density = clampDensity(o.density)

	tr := o.transform
	if tr == nil {
		pt, err := NewProjTransform(o.source, o.dest)
		if err != nil {
			return nil, err
		}
		tr = pt
	}

	a := &GeoAxis{opts: o, sink: sink}
	a.sched = newScheduler(a.recompute)

	inTransform := a.sched.newNode("transform")
	a.inLimits = a.sched.newNode("limits")
	a.inTicks = a.sched.newNode("ticks")
	a.inViewport = a.sched.newNode("viewport")
	a.inStyle = a.sched.newNode("style")

	a.dvLimits = a.sched.newNode("viewLimits", inTransform, a.inLimits)
	a.dvTicks = a.sched.newNode("tickSets", a.dvLimits, a.inTicks)
	a.dvGeometry = a.sched.newNode("geometry",
		a.dvTicks, inTransform, a.inViewport, a.inStyle)

	a.holder = transformHolder{tr: tr, node: inTransform}

	// Initial recompute before anything is drawn.
	inTransform.invalidate()
	return a, nil
}

// SetProjection swaps the projection for a new source/dest CRS pair. Unlike
// at construction, an unparseable definition is surfaced to the caller and
// the axis keeps its current transform.
func (a *GeoAxis) SetProjection(source, dest string) error {
	tr, err := NewProjTransform(source, dest)
	if err != nil {
		return err
	}
	a.opts.source, a.opts.dest = source, dest
	a.holder.set(tr)
	return nil
}

// SetTransform swaps in a prebuilt transform. Identity is tracked by
// reference: passing the current transform is a no-op.
func (a *GeoAxis) SetTransform(tr Transform) {
	a.holder.set(tr)
}

// Transform returns the current projection transform.
func (a *GeoAxis) Transform() Transform { return a.holder.get() }

// SetLimits replaces the lon/lat limit requests (pan/zoom).
func (a *GeoAxis) SetLimits(lon, lat LimitSpec) {
	a.opts.lonLims, a.opts.latLims = lon, lat
	a.inLimits.invalidate()
}

// SetTicker replaces the tick placement policy for both axes.
func (a *GeoAxis) SetTicker(t plot.Ticker) {
	a.opts.ticker = t
	a.inTicks.invalidate()
}

// SetFormatters replaces the tick label formatters.
func (a *GeoAxis) SetFormatters(lon, lat Formatter) {
	a.opts.lonFormat, a.opts.latFormat = lon, lat
	a.inTicks.invalidate()
}

// SetDensity changes the gridline sample density (clamped to [1, 1000]).
func (a *GeoAxis) SetDensity(d int) {
	a.opts.density = clampDensity(d)
	a.inStyle.invalidate()
}

// SetOverlapRemoval toggles hiding of overlapping tick labels.
func (a *GeoAxis) SetOverlapRemoval(on bool) {
	a.opts.removeOverlaps = on
	a.inStyle.invalidate()
}

// SetViewport tells the axis its pixel area changed.
func (a *GeoAxis) SetViewport(w, h float64) {
	a.opts.viewport = Viewport{Width: w, Height: h}
	a.inViewport.invalidate()
}

// Limits returns the resolved view limits of the last successful recompute.
func (a *GeoAxis) Limits() ViewLimits { return a.limits }

// Ticks returns the tick sets of the last successful recompute.
func (a *GeoAxis) Ticks() (x, y TickSet) { return a.xTicks, a.yTicks }

// Geometry returns the most recently published geometry. Nil only if every
// recompute so far failed.
func (a *GeoAxis) Geometry() *ProjectedGeometry { return a.geom }

// AddData registers plotted-data polylines (lon/lat degrees, break
// sentinels allowed) so DataBounds can see them. Drawing the data itself is
// the host's business; decorations are unaffected.
func (a *GeoAxis) AddData(pts ...Point) {
	a.data = append(a.data, pts...)
}

// DataBounds computes the bounding rectangle of currently registered data,
// excluding non-data decorations. ok is false when no finite data point is
// registered.
func (a *GeoAxis) DataBounds() (bounds Rect, ok bool) {
	return boundsOf(a.data)
}

// ApplyDataBounds sets the view limits to the bounding rectangle of the
// registered data. No-op when there is no data.
func (a *GeoAxis) ApplyDataBounds() {
	b, ok := a.DataBounds()
	if !ok {
		return
	}
	a.SetLimits(Lims(b.X, b.X+b.Width), Lims(b.Y, b.Y+b.Height))
}

// recompute runs the full pipeline: resolve limits, generate ticks, sample
// the graticule, project, place labels, publish. Always the whole pipeline,
// in that order; the scheduler guarantees at most one pass is running and
// coalesces triggers that arrive mid-pass. A failing step aborts the cycle
// without publishing, leaving the last good geometry in place.
func (a *GeoAxis) recompute() {
	tr := a.holder.get()
	if tr == nil {
		Logger().Warn("geoaxis: recompute without a transform")
		return
	}

	lims := resolveLimits(a.opts.lonLims, a.opts.latLims, tr, a.limits)
	if !lims.isFinite() {
		Logger().Warn("geoaxis: non-finite limits, cycle aborted")
		return
	}

	xTicks := generateTicks(lims.XMin, lims.XMax, a.opts.ticker, a.opts.lonFormat)
	yTicks := generateTicks(lims.YMin, lims.YMax, a.opts.ticker, a.opts.latFormat)

	grid := sampleGrid(lims, xTicks.Values, yTicks.Values, a.opts.density)

	g := &ProjectedGeometry{
		XGrid:      projectPoints(tr, grid.xGrid),
		YGrid:      projectPoints(tr, grid.yGrid),
		GridStyle:  a.opts.gridStyle,
		SpineStyle: a.opts.spineStyle,
		CoastStyle: a.opts.coastStyle,
		Pixels:     a.opts.viewport,
	}
	for i, spine := range grid.spines {
		g.Spines[i] = projectPoints(tr, spine)
	}
	if a.opts.coast != nil {
		g.Coast = projectPoints(tr, a.opts.coast.Coastlines())
	}

	// Pixel mapping covers everything the axis draws. Bounds are taken over
	// the raw spine points rather than per-spine rects: a straight spine has
	// a zero-extent rect, which Rect.Union would discard as empty.
	all := make([]Point, 0, 4*len(g.Spines[SpineBottom]))
	for _, s := range g.Spines {
		all = append(all, s...)
	}
	bounds, ok := boundsOf(all)
	if !ok {
		Logger().Warn("geoaxis: no projectable spine point, cycle aborted")
		return
	}
	g.PlaneBounds = bounds
	toPixel := pixelMapper(bounds, a.opts.viewport)

	a.placeTicks(g, tr, lims, xTicks, yTicks, toPixel)

	// Atomic publish: swap all derived state at once, then notify.
	a.limits = lims
	a.xTicks, a.yTicks = xTicks, yTicks
	a.geom = g
	if a.sink != nil {
		a.sink.ReplaceGeometry(g)
	}
	Logger().Debug("geoaxis: published",
		slog.Int("xTicks", len(xTicks.Values)),
		slog.Int("yTicks", len(yTicks.Values)))
}

// placeTicks fills in tick anchors, labels, offsets, and visibility.
// Anchors live on the spine the ticks hang off; an anchor whose tick point
// fails to project stays index-aligned but hidden.
func (a *GeoAxis) placeTicks(g *ProjectedGeometry, tr Transform, lims ViewLimits,
	xTicks, yTicks TickSet, toPixel func(Point) Point) {

	xAnchorLat := lims.YMin
	if a.opts.xSide == SideTop {
		xAnchorLat = lims.YMax
	}
	yAnchorLon := lims.XMin
	if a.opts.ySide == SideRight {
		yAnchorLon = lims.XMax
	}

	xBoxes := a.buildLabels(g, tr, xTicks, a.opts.xSide, toPixel,
		func(v float64) Point { return Pt(v, xAnchorLat) }, true)
	yBoxes := a.buildLabels(g, tr, yTicks, a.opts.ySide, toPixel,
		func(v float64) Point { return Pt(yAnchorLon, v) }, false)

	// In a zero viewport every anchor maps to the same pixel, so overlap
	// removal would hide all labels but one. Leave candidate visibility
	// untouched until the host supplies a real size.
	if a.opts.removeOverlaps && a.opts.measurer != nil && !a.opts.viewport.isZero() {
		st := resolveOverlap(xBoxes, yBoxes)
		g.XTickVisible = st.X
		g.YTickVisible = st.Y
	}
}

// buildLabels projects tick anchors to pixel space, measures the label
// extents, and records offsets and candidate visibility on g. Returns the
// label boxes (at their final padded pixel positions) for overlap checking.
func (a *GeoAxis) buildLabels(g *ProjectedGeometry, tr Transform, ticks TickSet,
	side Side, toPixel func(Point) Point, anchor func(v float64) Point, isX bool) []LabelBox {

	n := len(ticks.Values)
	points := make([]Point, n)
	offsets := make([]Point, n)
	visible := make([]bool, n)
	boxes := make([]LabelBox, n)

	for i, v := range ticks.Values {
		p, ok := projectPoint(tr, anchor(v))
		if !ok {
			points[i] = Break()
			boxes[i] = LabelBox{Visible: false}
			continue
		}
		px := toPixel(p)

		var w, h float64
		if a.opts.measurer != nil {
			w, h = a.opts.measurer.Measure(ticks.Labels[i], a.opts.fontSize, a.opts.labelRotation)
		}
		off := labelOffset(side, w, h, a.opts.tickPad)

		points[i] = px
		offsets[i] = off
		visible[i] = true
		boxes[i] = LabelBox{Anchor: px.Add(off), W: w, H: h, Visible: true}
	}

	if isX {
		g.XTickPoints, g.XTickLabels = points, ticks.Labels
		g.XTickOffsets, g.XTickVisible = offsets, visible
	} else {
		g.YTickPoints, g.YTickLabels = points, ticks.Labels
		g.YTickOffsets, g.YTickVisible = offsets, visible
	}
	return boxes
}

// pixelMapper returns the affine mapping from the projected-plane rect onto
// the pixel viewport, flipping Y (plane Y up, pixel Y down). Degenerate
// plane extents collapse to pixel 0 on that axis rather than dividing by
// zero.
func pixelMapper(plane Rect, vp Viewport) func(Point) Point {
	sx, sy := 0.0, 0.0
	if plane.Width > 0 {
		sx = vp.Width / plane.Width
	}
	if plane.Height > 0 {
		sy = vp.Height / plane.Height
	}
	return func(p Point) Point {
		return Pt(
			(p.X-plane.X)*sx,
			vp.Height-(p.Y-plane.Y)*sy,
		)
	}
}
