package geoaxis

import "image/color"

// The render layer is out of scope for this package: geoaxis computes
// geometry and the host drawing layer puts it on screen. These interfaces
// are the full contract between the two.

// GeometrySink consumes the axis's published geometry. ReplaceGeometry is
// called exactly once per successful recompute with a freshly built value;
// the sink must treat it as immutable and replace its previous geometry
// wholesale.
type GeometrySink interface {
	ReplaceGeometry(g *ProjectedGeometry)
}

// TextMeasurer measures rendered text extents so the label placement
// resolver can size bounding boxes. Implementations live in the render
// layer; the text subpackage provides one backed by go-text/typesetting.
type TextMeasurer interface {
	// Measure returns the width and height, in pixels, of s rendered at
	// the given font size (points) and rotation (radians).
	Measure(s string, size, rotation float64) (w, h float64)
}

// Viewport reports the current pixel area of the axis. The host notifies
// the axis via GeoAxis.SetViewport when this changes.
type Viewport struct {
	Width, Height float64
}

func (v Viewport) isZero() bool { return v.Width <= 0 || v.Height <= 0 }

// LineStyle is pass-through styling for a decoration polyline. geoaxis does
// not interpret it beyond carrying it to the published geometry.
type LineStyle struct {
	Width float64
	Color color.Color
}

// defaultGridStyle is a thin translucent black, the usual graticule look.
func defaultGridStyle() LineStyle {
	return LineStyle{Width: 0.5, Color: color.NRGBA{A: 128}}
}

func defaultSpineStyle() LineStyle {
	return LineStyle{Width: 1, Color: color.Black}
}
