package geoaxis

import "gonum.org/v1/plot"

// Projection defaults. Mercator keeps the default axis usable without any
// configuration; callers with other needs pass their own proj4 strings or a
// prebuilt Transform.
const (
	DefaultSourceCRS = "+proj=longlat +datum=WGS84"
	DefaultDestCRS   = "+proj=merc"

	defaultTickCount = 7
	defaultFontSize  = 12.0
	defaultTickPad   = 4.0
)

// AxisOption configures a GeoAxis during creation.
// Use functional options to customize axis behavior.
//
// Example:
//
//	ax, err := geoaxis.New(sink,
//	    geoaxis.WithProjection("+proj=longlat +datum=WGS84", "+proj=merc"),
//	    geoaxis.WithLonLims(-30, 60),
//	    geoaxis.WithDensity(200),
//	)
type AxisOption func(*axisOptions)

// axisOptions holds the axis configuration assembled from options.
type axisOptions struct {
	source, dest string
	transform    Transform

	lonLims LimitSpec
	latLims LimitSpec

	density   int
	ticker    plot.Ticker
	lonFormat Formatter
	latFormat Formatter

	xSide Side
	ySide Side

	measurer       TextMeasurer
	fontSize       float64
	tickPad        float64
	labelRotation  float64
	removeOverlaps bool

	viewport Viewport

	coast      CoastlineSource
	gridStyle  LineStyle
	spineStyle LineStyle
	coastStyle LineStyle
}

func defaultAxisOptions() axisOptions {
	return axisOptions{
		source:         DefaultSourceCRS,
		dest:           DefaultDestCRS,
		lonLims:        AutoLims(),
		latLims:        AutoLims(),
		density:        defaultDensity,
		ticker:         LinearTicks{N: defaultTickCount},
		lonFormat:      FormatLon,
		latFormat:      FormatLat,
		xSide:          SideBottom,
		ySide:          SideLeft,
		fontSize:       defaultFontSize,
		tickPad:        defaultTickPad,
		removeOverlaps: true,
		viewport:       Viewport{Width: 800, Height: 600},
		gridStyle:      defaultGridStyle(),
		spineStyle:     defaultSpineStyle(),
	}
}

// WithProjection sets the source and destination CRS as proj4 definition
// strings. An unparseable string surfaces as *InvalidProjectionError from
// New.
func WithProjection(source, dest string) AxisOption {
	return func(o *axisOptions) {
		o.source, o.dest = source, dest
		o.transform = nil
	}
}

// WithTransform injects a prebuilt Transform, bypassing proj4 parsing.
// Useful for custom projections and for testing.
func WithTransform(tr Transform) AxisOption {
	return func(o *axisOptions) { o.transform = tr }
}

// WithLonLims sets literal longitude view limits in degrees.
func WithLonLims(min, max float64) AxisOption {
	return func(o *axisOptions) { o.lonLims = Lims(min, max) }
}

// WithLatLims sets literal latitude view limits in degrees.
func WithLatLims(min, max float64) AxisOption {
	return func(o *axisOptions) { o.latLims = Lims(min, max) }
}

// WithAutoLims derives view limits from the projection's domain (the
// default).
func WithAutoLims() AxisOption {
	return func(o *axisOptions) {
		o.lonLims = AutoLims()
		o.latLims = AutoLims()
	}
}

// WithDensity sets the gridline/spine sample density: the number of points
// per sampled line. Clamped to [1, 1000]; zero restores the default (100).
func WithDensity(d int) AxisOption {
	return func(o *axisOptions) { o.density = d }
}

// WithTicker replaces the tick placement policy for both axes. Any
// gonum.org/v1/plot Ticker works, e.g. plot.DefaultTicks{}.
func WithTicker(t plot.Ticker) AxisOption {
	return func(o *axisOptions) { o.ticker = t }
}

// WithTickCount sets the target tick count for the default linear ticker.
func WithTickCount(n int) AxisOption {
	return func(o *axisOptions) { o.ticker = LinearTicks{N: n} }
}

// WithFormatters replaces the default degree/compass tick label formatters.
func WithFormatters(lon, lat Formatter) AxisOption {
	return func(o *axisOptions) {
		o.lonFormat, o.latFormat = lon, lat
	}
}

// WithTickSides places the x-axis ticks on the top or bottom edge and the
// y-axis ticks on the left or right edge. Label padding direction follows.
func WithTickSides(x, y Side) AxisOption {
	return func(o *axisOptions) { o.xSide, o.ySide = x, y }
}

// WithTextMeasurer wires the render layer's text measurement. Without one,
// labels are placed with the base pad only and overlap removal is skipped.
func WithTextMeasurer(m TextMeasurer) AxisOption {
	return func(o *axisOptions) { o.measurer = m }
}

// WithFontSize sets the tick label font size in points.
func WithFontSize(size float64) AxisOption {
	return func(o *axisOptions) { o.fontSize = size }
}

// WithTickPad sets the base distance, in pixels, between a tick anchor and
// its label box.
func WithTickPad(pad float64) AxisOption {
	return func(o *axisOptions) { o.tickPad = pad }
}

// WithLabelRotation rotates tick labels by the given angle in radians.
func WithLabelRotation(rad float64) AxisOption {
	return func(o *axisOptions) { o.labelRotation = rad }
}

// WithOverlapRemoval toggles hiding of overlapping tick labels (on by
// default).
func WithOverlapRemoval(on bool) AxisOption {
	return func(o *axisOptions) { o.removeOverlaps = on }
}

// WithViewport sets the initial pixel viewport; the host updates it later
// via GeoAxis.SetViewport.
func WithViewport(w, h float64) AxisOption {
	return func(o *axisOptions) { o.viewport = Viewport{Width: w, Height: h} }
}

// WithCoastlines overlays coastlines from the given source, drawn with the
// given style.
func WithCoastlines(src CoastlineSource, style LineStyle) AxisOption {
	return func(o *axisOptions) {
		o.coast = src
		o.coastStyle = style
	}
}

// WithGridStyle sets pass-through styling for gridlines.
func WithGridStyle(s LineStyle) AxisOption {
	return func(o *axisOptions) { o.gridStyle = s }
}

// WithSpineStyle sets pass-through styling for the four spines.
func WithSpineStyle(s LineStyle) AxisOption {
	return func(o *axisOptions) { o.spineStyle = s }
}
