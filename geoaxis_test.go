package geoaxis

import "errors"

// Shared test doubles.

// flatTransform is a plate-carree style transform: lon/lat scaled onto the
// plane. Predictable, invertible, and domain-configurable.
type flatTransform struct {
	scale                          float64
	lonMin, lonMax, latMin, latMax float64
	failAll                        bool
}

var errUnprojectable = errors.New("unprojectable")

func newFlatTransform() *flatTransform {
	return &flatTransform{scale: 1, lonMin: -180, lonMax: 180, latMin: -90, latMax: 90}
}

func (t *flatTransform) Forward(lon, lat float64) (x, y float64, err error) {
	if t.failAll {
		return 0, 0, errUnprojectable
	}
	return lon * t.scale, lat * t.scale, nil
}

func (t *flatTransform) Inverse(x, y float64) (lon, lat float64, err error) {
	if t.failAll || t.scale == 0 {
		return 0, 0, errUnprojectable
	}
	return x / t.scale, y / t.scale, nil
}

func (t *flatTransform) Domain() (lonMin, lonMax, latMin, latMax float64) {
	return t.lonMin, t.lonMax, t.latMin, t.latMax
}

// fixedMeasurer sizes labels proportionally to their rune count, ignoring
// rotation. Deterministic boxes for overlap tests.
type fixedMeasurer struct {
	perRune float64
	height  float64
}

func (m fixedMeasurer) Measure(s string, size, rotation float64) (w, h float64) {
	return float64(len([]rune(s))) * m.perRune, m.height
}

// recordingSink counts geometry publications and keeps the latest one.
type recordingSink struct {
	calls int
	last  *ProjectedGeometry
}

func (r *recordingSink) ReplaceGeometry(g *ProjectedGeometry) {
	r.calls++
	r.last = g
}
