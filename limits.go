package geoaxis

import "log/slog"

// ViewLimits holds the current view bounds in input (lon/lat degree) space.
// Always kept ordered: min <= max on both axes.
type ViewLimits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// ordered returns the limits with each axis sorted so min <= max.
func (l ViewLimits) ordered() ViewLimits {
	if l.XMin > l.XMax {
		l.XMin, l.XMax = l.XMax, l.XMin
	}
	if l.YMin > l.YMax {
		l.YMin, l.YMax = l.YMax, l.YMin
	}
	return l
}

// isFinite reports whether all four bounds are finite.
func (l ViewLimits) isFinite() bool {
	return Pt(l.XMin, l.YMin).IsFinite() && Pt(l.XMax, l.YMax).IsFinite()
}

// LimitSpec requests bounds for one axis: either a literal range or
// "automatic", in which case the range is derived from the transform's
// domain.
type LimitSpec struct {
	Min, Max float64
	Auto     bool
}

// Lims requests literal bounds. The caller is expected to pass them ordered.
func Lims(min, max float64) LimitSpec {
	return LimitSpec{Min: min, Max: max}
}

// AutoLims requests bounds derived from the projection's domain.
func AutoLims() LimitSpec {
	return LimitSpec{Auto: true}
}

// domainBoundarySamples is the number of samples taken per domain edge when
// resolving automatic limits.
const domainBoundarySamples = 90

// resolveLimits derives the view limits from the requested specs. Literal
// requests pass through unchanged. Automatic requests sample the boundary
// of the transform's domain, project each sample, and take the per-axis
// extent of the samples that survive projection, so a projection that is
// undefined over part of its nominal domain shrinks the automatic range
// accordingly. If nothing survives (or the transform is nil) the previous
// limits are kept; the result is always finite and ordered.
func resolveLimits(lon, lat LimitSpec, tr Transform, prev ViewLimits) ViewLimits {
	out := prev
	if !lon.Auto {
		out.XMin, out.XMax = lon.Min, lon.Max
	}
	if !lat.Auto {
		out.YMin, out.YMax = lat.Min, lat.Max
	}
	if !lon.Auto && !lat.Auto {
		return out.ordered()
	}

	xmin, xmax, ymin, ymax, ok := projectableExtent(tr)
	if !ok {
		Logger().Warn("geoaxis: automatic limits unresolvable, keeping previous",
			slog.Bool("lonAuto", lon.Auto), slog.Bool("latAuto", lat.Auto))
		return out.ordered()
	}
	if lon.Auto {
		out.XMin, out.XMax = xmin, xmax
	}
	if lat.Auto {
		out.YMin, out.YMax = ymin, ymax
	}
	return out.ordered()
}

// projectableExtent walks the domain boundary and reports the lon/lat extent
// of the samples the transform accepts. A degenerate domain (single point)
// yields a zero-width extent, which is still well formed.
func projectableExtent(tr Transform) (xmin, xmax, ymin, ymax float64, ok bool) {
	if tr == nil {
		return 0, 0, 0, 0, false
	}
	lonMin, lonMax, latMin, latMax := tr.Domain()
	corners := [4]Point{
		{lonMin, latMin}, {lonMax, latMin},
		{lonMax, latMax}, {lonMin, latMax},
	}

	first := true
	for e := 0; e < 4; e++ {
		from, to := corners[e], corners[(e+1)%4]
		for i := 0; i <= domainBoundarySamples; i++ {
			p := from.Lerp(to, float64(i)/float64(domainBoundarySamples))
			x, y, err := tr.Forward(p.X, p.Y)
			if err != nil || !Pt(x, y).IsFinite() {
				continue
			}
			if first {
				xmin, xmax = p.X, p.X
				ymin, ymax = p.Y, p.Y
				first = false
				continue
			}
			xmin = min(xmin, p.X)
			xmax = max(xmax, p.X)
			ymin = min(ymin, p.Y)
			ymax = max(ymax, p.Y)
		}
	}
	return xmin, xmax, ymin, ymax, !first
}
