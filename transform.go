package geoaxis

import (
	"fmt"
	"math"

	"github.com/ctessum/geom/proj"
)

// Transform is an opaque forward mapping from geographic degrees to the
// projected plane. Identity is tracked by reference: swapping in a new
// Transform triggers a recompute even if it is numerically equivalent.
type Transform interface {
	// Forward maps a single lon/lat point (degrees) to plane coordinates.
	// An error marks the point as unprojectable (outside the projection's
	// meaningful range); callers turn such points into polyline breaks.
	Forward(lon, lat float64) (x, y float64, err error)

	// Domain returns the geographic range for which the transform is
	// defined, as (lonMin, lonMax, latMin, latMax) in degrees.
	Domain() (lonMin, lonMax, latMin, latMax float64)
}

// InverseTransform is implemented by transforms that can also map plane
// coordinates back to geographic degrees.
type InverseTransform interface {
	Transform
	Inverse(x, y float64) (lon, lat float64, err error)
}

// InvalidProjectionError is returned when a projection definition string
// cannot be parsed. It is fatal at axis construction time.
type InvalidProjectionError struct {
	Def string // the offending proj4 definition string
	Err error  // the underlying parse error
}

func (e *InvalidProjectionError) Error() string {
	return fmt.Sprintf("geoaxis: invalid projection %q: %v", e.Def, e.Err)
}

func (e *InvalidProjectionError) Unwrap() error { return e.Err }

// ProjTransform is a Transform backed by github.com/ctessum/geom/proj,
// built from a pair of proj4 definition strings. It supports the inverse
// direction as well.
type ProjTransform struct {
	source, dest string
	fwd, inv     proj.Transformer

	lonMin, lonMax float64
	latMin, latMax float64
}

// NewProjTransform builds a transform between two coordinate reference
// systems given as proj4 strings, e.g.
//
//	tr, err := geoaxis.NewProjTransform("+proj=longlat +datum=WGS84", "+proj=merc")
//
// Either string failing to parse yields an *InvalidProjectionError.
// The domain defaults to the whole globe; use SetDomain to narrow it for
// projections that are only meaningful over a region.
func NewProjTransform(source, dest string) (*ProjTransform, error) {
	srcSR, err := proj.Parse(source)
	if err != nil {
		return nil, &InvalidProjectionError{Def: source, Err: err}
	}
	dstSR, err := proj.Parse(dest)
	if err != nil {
		return nil, &InvalidProjectionError{Def: dest, Err: err}
	}

	// proj.Parse is lenient about projection names: "+proj=doesnotexist"
	// parses fine and only fails once a transformer runs. Probe each CRS
	// here so a bad definition is rejected at construction instead of
	// surfacing later as an axis whose every point is unprojectable.
	if err := probeSR(srcSR); err != nil {
		return nil, &InvalidProjectionError{Def: source, Err: err}
	}
	if err := probeSR(dstSR); err != nil {
		return nil, &InvalidProjectionError{Def: dest, Err: err}
	}

	fwd, err := srcSR.NewTransform(dstSR)
	if err != nil {
		return nil, &InvalidProjectionError{Def: dest, Err: err}
	}
	inv, err := dstSR.NewTransform(srcSR)
	if err != nil {
		return nil, &InvalidProjectionError{Def: source, Err: err}
	}

	return &ProjTransform{
		source: source,
		dest:   dest,
		fwd:    fwd,
		inv:    inv,
		lonMin: -180, lonMax: 180,
		latMin: -90, latMax: 90,
	}, nil
}

// probeSR transforms the origin from a plain longlat reference into sr and
// reports any failure, exercising the transformer lookup that proj defers
// until the first call.
func probeSR(sr *proj.SR) error {
	ref, err := proj.Parse(DefaultSourceCRS)
	if err != nil {
		return err
	}
	tf, err := ref.NewTransform(sr)
	if err != nil {
		return err
	}
	x, y, err := tf(0, 0)
	if err != nil {
		return err
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("projecting the origin gave (%v, %v)", x, y)
	}
	return nil
}

// Forward implements Transform.
func (t *ProjTransform) Forward(lon, lat float64) (x, y float64, err error) {
	return t.fwd(lon, lat)
}

// Inverse implements InverseTransform.
func (t *ProjTransform) Inverse(x, y float64) (lon, lat float64, err error) {
	return t.inv(x, y)
}

// Domain implements Transform.
func (t *ProjTransform) Domain() (lonMin, lonMax, latMin, latMax float64) {
	return t.lonMin, t.lonMax, t.latMin, t.latMax
}

// SetDomain narrows the geographic range the transform claims to cover.
// Automatic view limits are derived from this range.
func (t *ProjTransform) SetDomain(lonMin, lonMax, latMin, latMax float64) {
	t.lonMin, t.lonMax = min(lonMin, lonMax), max(lonMin, lonMax)
	t.latMin, t.latMax = min(latMin, latMax), max(latMin, latMax)
}

// Source returns the source CRS definition string.
func (t *ProjTransform) Source() string { return t.source }

// Dest returns the destination CRS definition string.
func (t *ProjTransform) Dest() string { return t.dest }

// transformHolder wraps the axis's current Transform. Swapping the transform
// marks the holder's graph node dirty so dependents recompute.
type transformHolder struct {
	tr   Transform
	node *node
}

func (h *transformHolder) get() Transform { return h.tr }

func (h *transformHolder) set(tr Transform) {
	if tr == nil || tr == h.tr {
		return
	}
	h.tr = tr
	if h.node != nil {
		h.node.invalidate()
	}
}
