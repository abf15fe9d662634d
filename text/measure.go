package text

import (
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Measurer measures text extents for one font Source. It implements the
// geoaxis TextMeasurer interface.
//
// Measurer is not safe for concurrent use: the underlying HarfbuzzShaper
// keeps internal buffers. The geoaxis pipeline is single-goroutine, so one
// Measurer per axis is the intended setup.
type Measurer struct {
	source *Source
	shaper shaping.HarfbuzzShaper
}

// NewMeasurer creates a Measurer for the given Source. A nil source uses
// the embedded default font; an error there means the embedded font data is
// corrupt and is worth a panic at setup time, so it is returned instead of
// deferred.
func NewMeasurer(source *Source) (*Measurer, error) {
	if source == nil {
		var err error
		source, err = Default()
		if err != nil {
			return nil, err
		}
	}
	return &Measurer{source: source}, nil
}

// Measure returns the width and height, in pixels, of s rendered at the
// given font size (points) and rotation (radians). The extent of a rotated
// label is the axis-aligned bounding box of the rotated text box.
//
// Empty strings measure zero so invisible labels claim no space in overlap
// resolution.
func (m *Measurer) Measure(s string, size, rotation float64) (w, h float64) {
	if s == "" {
		return 0, 0
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.source.face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := m.shaper.Shape(input)

	w = fixedToFloat(out.Advance)
	h = fixedToFloat(out.LineBounds.Ascent) - fixedToFloat(out.LineBounds.Descent)

	if rotation != 0 {
		sin, cos := math.Sincos(rotation)
		w, h = math.Abs(w*cos)+math.Abs(h*sin), math.Abs(w*sin)+math.Abs(h*cos)
	}
	return w, h
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Tick labels are single-script in practice.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
