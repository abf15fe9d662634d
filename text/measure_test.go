package text

import (
	"math"
	"testing"
)

func newTestMeasurer(t *testing.T) *Measurer {
	t.Helper()
	m, err := NewMeasurer(nil)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	return m
}

func TestDefault(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if s.Name() == "" {
		t.Error("embedded default font has no family name")
	}

	// Default is shared.
	s2, _ := Default()
	if s != s2 {
		t.Error("Default returned distinct sources")
	}
}

func TestNewSource_Empty(t *testing.T) {
	if _, err := NewSource(nil); err == nil {
		t.Error("NewSource accepted empty data")
	}
	if _, err := NewSource([]byte("not a font")); err == nil {
		t.Error("NewSource accepted garbage data")
	}
}

func TestMeasurer_Measure(t *testing.T) {
	m := newTestMeasurer(t)

	w1, h1 := m.Measure("30°N", 12, 0)
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure = (%v, %v), want positive extents", w1, h1)
	}

	// Longer text is wider, same height.
	w2, h2 := m.Measure("30°N30°N", 12, 0)
	if w2 <= w1 {
		t.Errorf("longer text not wider: %v vs %v", w2, w1)
	}
	if math.Abs(h2-h1) > 1e-9 {
		t.Errorf("single-line height changed with content: %v vs %v", h2, h1)
	}

	// Bigger font, bigger extents.
	w3, h3 := m.Measure("30°N", 24, 0)
	if w3 <= w1 || h3 <= h1 {
		t.Errorf("larger size not larger: (%v, %v) vs (%v, %v)", w3, h3, w1, h1)
	}
}

func TestMeasurer_Empty(t *testing.T) {
	m := newTestMeasurer(t)
	if w, h := m.Measure("", 12, 0); w != 0 || h != 0 {
		t.Errorf("empty string measured (%v, %v), want (0, 0)", w, h)
	}
}

func TestMeasurer_Rotation(t *testing.T) {
	m := newTestMeasurer(t)

	w, h := m.Measure("120°W", 12, 0)
	rw, rh := m.Measure("120°W", 12, math.Pi/2)

	const tol = 1e-9
	if math.Abs(rw-h) > tol || math.Abs(rh-w) > tol {
		t.Errorf("quarter turn should swap extents: (%v, %v) vs (%v, %v)", rw, rh, w, h)
	}

	// A 45 degree rotation covers a larger axis-aligned box than either.
	dw, dh := m.Measure("120°W", 12, math.Pi/4)
	if dw <= h || dh <= h {
		t.Errorf("diagonal box too small: (%v, %v)", dw, dh)
	}

	// Deterministic: same inputs, same extents.
	rw2, rh2 := m.Measure("120°W", 12, math.Pi/2)
	if rw != rw2 || rh != rh2 {
		t.Error("measurement not deterministic")
	}
}
