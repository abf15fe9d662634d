package geoaxis

import (
	"errors"
	"math"
	"testing"
)

func TestNewProjTransform_Mercator(t *testing.T) {
	tr, err := NewProjTransform(DefaultSourceCRS, DefaultDestCRS)
	if err != nil {
		t.Fatalf("NewProjTransform: %v", err)
	}

	x0, y0, err := tr.Forward(0, 0)
	if err != nil {
		t.Fatalf("Forward(0,0): %v", err)
	}
	if math.Abs(x0) > 1e-6 || math.Abs(y0) > 1e-6 {
		t.Errorf("Forward(0,0) = (%v, %v), want origin", x0, y0)
	}

	// Mercator stretches north: equal lon/lat step spans more y than x.
	x1, y1, err := tr.Forward(45, 45)
	if err != nil {
		t.Fatalf("Forward(45,45): %v", err)
	}
	if !(y1 > x1) {
		t.Errorf("Forward(45,45) = (%v, %v); expected Mercator y > x", x1, y1)
	}
}

func TestProjTransform_RoundTrip(t *testing.T) {
	tr, err := NewProjTransform(DefaultSourceCRS, DefaultDestCRS)
	if err != nil {
		t.Fatalf("NewProjTransform: %v", err)
	}

	pts := []Point{
		{10, 45}, {-120, -33}, {0, 0}, {179, 80}, {-179, -80},
	}
	for _, p := range pts {
		x, y, err := tr.Forward(p.X, p.Y)
		if err != nil {
			t.Errorf("Forward(%v): %v", p, err)
			continue
		}
		lon, lat, err := tr.Inverse(x, y)
		if err != nil {
			t.Errorf("Inverse of %v: %v", p, err)
			continue
		}
		const tol = 1e-6
		if math.Abs(lon-p.X) > tol || math.Abs(lat-p.Y) > tol {
			t.Errorf("round trip %v -> (%v, %v)", p, lon, lat)
		}
	}
}

func TestNewProjTransform_InvalidDefinition(t *testing.T) {
	tests := []struct {
		name         string
		source, dest string
		wantDef      string
	}{
		{"garbage source", "complete nonsense", DefaultDestCRS, "complete nonsense"},
		// Well-formed proj4 strings with an unknown projection name parse
		// fine; the constructor must still reject them rather than hand
		// back a transform that fails on every point.
		{"garbage dest", DefaultSourceCRS, "+proj=doesnotexist", "+proj=doesnotexist"},
		{"unknown source projection", "+proj=nosuchproj", DefaultDestCRS, "+proj=nosuchproj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProjTransform(tt.source, tt.dest)
			if err == nil {
				t.Fatal("parse succeeded on malformed definition")
			}
			var perr *InvalidProjectionError
			if !errors.As(err, &perr) {
				t.Fatalf("error type = %T, want *InvalidProjectionError", err)
			}
			if perr.Def != tt.wantDef {
				t.Errorf("Def = %q, want %q", perr.Def, tt.wantDef)
			}
		})
	}
}

func TestProjTransform_Domain(t *testing.T) {
	tr, err := NewProjTransform(DefaultSourceCRS, DefaultDestCRS)
	if err != nil {
		t.Fatalf("NewProjTransform: %v", err)
	}

	lonMin, lonMax, latMin, latMax := tr.Domain()
	if lonMin != -180 || lonMax != 180 || latMin != -90 || latMax != 90 {
		t.Errorf("default domain = (%v..%v, %v..%v), want whole globe",
			lonMin, lonMax, latMin, latMax)
	}

	tr.SetDomain(40, -40, 85, -85) // unordered on purpose
	lonMin, lonMax, latMin, latMax = tr.Domain()
	if lonMin != -40 || lonMax != 40 || latMin != -85 || latMax != 85 {
		t.Errorf("SetDomain did not normalize ordering: (%v..%v, %v..%v)",
			lonMin, lonMax, latMin, latMax)
	}
}

func TestTransformHolder_ReferenceIdentity(t *testing.T) {
	var flushes int
	s := newScheduler(func() { flushes++ })
	h := transformHolder{node: s.newNode("transform")}

	tr := newFlatTransform()
	h.set(tr)
	if flushes != 1 {
		t.Fatalf("flushes after first set = %d, want 1", flushes)
	}

	h.set(tr) // same reference
	if flushes != 1 {
		t.Error("setting identical reference invalidated")
	}

	h.set(nil) // nil is ignored
	if flushes != 1 || h.get() != tr {
		t.Error("nil transform was accepted")
	}

	h.set(newFlatTransform())
	if flushes != 2 {
		t.Error("fresh reference did not invalidate")
	}
}
