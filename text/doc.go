// Package text provides font loading and text extent measurement for
// geoaxis tick labels.
//
// It is deliberately small: the axis core only needs to know how big a
// label will be on screen, not how to draw it. Shaping is delegated to
// go-text/typesetting (HarfBuzz-level, so kerning and ligatures are
// reflected in the measured width), and a default face backed by the
// embedded Go Regular font is available so measurement works without any
// font configuration.
package text
