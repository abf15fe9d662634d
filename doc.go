// Package geoaxis provides a projection-aware 2D plotting axis for Go.
//
// # Overview
//
// geoaxis extends a generic plotting axis into a geospatial one: it accepts
// longitude/latitude data in degrees, pushes everything through a
// cartographic projection, and generates projection-aware gridlines, tick
// marks, tick labels, and axis spines. Because gridlines are sampled densely
// in lon/lat space and projected point by point, they come out curved in
// most projections.
//
// # Quick Start
//
//	import "github.com/gogpu/geoaxis"
//
//	// Create an axis projecting WGS84 lon/lat to Mercator
//	ax, err := geoaxis.New(sink,
//	    geoaxis.WithProjection("+proj=longlat +datum=WGS84", "+proj=merc"),
//	    geoaxis.WithTickCount(7),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Pan/zoom: the axis recomputes its decorations reactively
//	ax.SetLimits(geoaxis.Lims(-30, 60), geoaxis.Lims(20, 70))
//
// # Architecture
//
// The library is organized into:
//   - Public API: GeoAxis, Transform, ViewLimits, TickSet, ProjectedGeometry
//   - Pipeline: limits resolution, tick generation, grid/spine sampling,
//     batch projection, label placement and overlap removal
//   - text/: font loading and text extent measurement for label boxes
//
// Projection mathematics is delegated to github.com/ctessum/geom/proj; tick
// placement follows the gonum.org/v1/plot Ticker contract. Rendering is out
// of scope: the axis publishes geometry to a GeometrySink and the host
// drawing layer decides how to put it on screen.
//
// # Polyline Batching
//
// All gridlines for one axis are published as a single flat polyline in
// which disjoint curves are separated by a break sentinel (a NaN point, see
// [Break]). A renderer that understands the convention can draw the whole
// graticule in one call; one that does not can split on [Point.IsBreak].
//
// # Coordinate System
//
// Input space is geographic degrees: X is longitude, Y is latitude.
// Projected space is whatever plane the projection defines. Pixel space
// follows standard computer graphics convention: origin top-left,
// Y increases down.
package geoaxis

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
