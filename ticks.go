package geoaxis

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// TickSet holds the tick positions and display labels for one axis.
// Values and Labels are always the same length and index-aligned. A TickSet
// is regenerated wholesale on every recompute, never patched in place.
type TickSet struct {
	Values []float64
	Labels []string
}

// Formatter maps a tick value to its display string.
type Formatter func(v float64) string

// LinearTicks is a plot.Ticker that places N ticks linearly spaced across
// the axis bounds, endpoints included. It is the default tick policy for
// geographic axes, where the bounds themselves are already round
// (whole-degree) values; plug in plot.DefaultTicks via WithTicker for
// nice-number placement on arbitrary ranges.
type LinearTicks struct {
	N int // number of ticks; values below 2 are treated as 2
}

// Ticks implements plot.Ticker.
func (lt LinearTicks) Ticks(min, max float64) []plot.Tick {
	n := lt.N
	if n < 2 {
		n = 2
	}
	ticks := make([]plot.Tick, n)
	for i := range ticks {
		v := min + (max-min)*float64(i)/float64(n-1)
		ticks[i] = plot.Tick{Value: v, Label: formatDegrees(v)}
	}
	return ticks
}

// generateTicks produces the tick set for one axis. Placement is delegated
// to the ticker; format maps each value to its label. Pure: no hidden state.
//
// Ticks the ticker leaves unlabeled are treated as minor ticks and dropped,
// matching the gonum/plot convention. Inverted or zero-width bounds degrade
// to a single tick at the boundary value.
func generateTicks(minV, maxV float64, ticker plot.Ticker, format Formatter) TickSet {
	if format == nil {
		format = formatDegrees
	}
	if ticker == nil {
		ticker = LinearTicks{N: defaultTickCount}
	}
	if !(minV < maxV) {
		return TickSet{
			Values: []float64{minV},
			Labels: []string{format(minV)},
		}
	}

	raw := ticker.Ticks(minV, maxV)
	ts := TickSet{
		Values: make([]float64, 0, len(raw)),
		Labels: make([]string, 0, len(raw)),
	}
	for _, t := range raw {
		if t.Label == "" {
			continue // minor tick
		}
		ts.Values = append(ts.Values, t.Value)
		ts.Labels = append(ts.Labels, format(t.Value))
	}
	return ts
}

// FormatLon formats a longitude in degrees with a hemisphere suffix:
// "120°W", "60°E", "0°", "180°".
func FormatLon(v float64) string {
	a := math.Abs(v)
	switch {
	case v == 0 || a == 180:
		return formatDegrees(a)
	case v < 0:
		return formatDegrees(a) + "W"
	default:
		return formatDegrees(a) + "E"
	}
}

// FormatLat formats a latitude in degrees with a hemisphere suffix:
// "30°N", "45°S", "0°".
func FormatLat(v float64) string {
	switch {
	case v == 0:
		return formatDegrees(0)
	case v < 0:
		return formatDegrees(-v) + "S"
	default:
		return formatDegrees(v) + "N"
	}
}

// formatDegrees renders a degree value with the ° suffix, trimming float
// noise to six decimal places.
func formatDegrees(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64) + "°"
}
