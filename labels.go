package geoaxis

// Side identifies which edge of the plot an axis's ticks hang off.
type Side int

const (
	SideBottom Side = iota
	SideTop
	SideLeft
	SideRight
)

// LabelBox is one tick label's placement input: its anchor in pixel space,
// its measured extent, and whether it is a candidate for display at all
// (an anchor whose tick point failed to project is not).
type LabelBox struct {
	Anchor  Point
	W, H    float64
	Visible bool
}

// rect returns the label's pixel bounding box, centered on its anchor.
func (b LabelBox) rect() Rect {
	return RectAround(b.Anchor, b.W, b.H)
}

// OverlapState is the per-label visibility verdict for one recompute cycle.
// Derived, never persisted: index-aligned with the tick sets, so hiding a
// label never disturbs the value/label/anchor correspondence.
type OverlapState struct {
	X []bool
	Y []bool
}

// labelOffset computes the pixel offset that pushes a tick label away from
// the plot interior, given the label's measured extent and a base pad.
// Pixel space has Y increasing downward, so the bottom side pads toward
// positive Y. The offset places the label's center pad pixels clear of the
// axis line.
func labelOffset(side Side, w, h, pad float64) Point {
	switch side {
	case SideBottom:
		return Pt(0, pad+h/2)
	case SideTop:
		return Pt(0, -(pad + h/2))
	case SideLeft:
		return Pt(-(pad + w/2), 0)
	default: // SideRight
		return Pt(pad+w/2, 0)
	}
}

// resolveOverlap decides which tick labels stay visible.
//
// Two rules, applied in order:
//
//  1. Same-axis: labels are checked in tick order and the earlier index
//     wins: a label is hidden if its box intersects any earlier same-axis
//     label that remains visible.
//  2. Cross-axis: y-axis labels have priority. Any x label whose box
//     intersects a visible y label's box is hidden.
//
// The input Visible flags are respected: a label hidden upstream never
// claims space. The function is a pure derivation of its inputs, so running
// it twice on the same geometry yields the same visibility sets. Zero
// labels on either axis is a no-op for that axis.
func resolveOverlap(xLabels, yLabels []LabelBox) OverlapState {
	st := OverlapState{
		X: make([]bool, len(xLabels)),
		Y: make([]bool, len(yLabels)),
	}

	// Y labels first: they only compete among themselves.
	for i, lb := range yLabels {
		if !lb.Visible {
			continue
		}
		st.Y[i] = !collides(lb.rect(), yLabels[:i], st.Y[:i])
	}

	// X labels: compete among themselves, then yield to visible y labels.
	for i, lb := range xLabels {
		if !lb.Visible {
			continue
		}
		r := lb.rect()
		if collides(r, xLabels[:i], st.X[:i]) {
			continue
		}
		st.X[i] = !collides(r, yLabels, st.Y)
	}
	return st
}

// collides reports whether r intersects any label that is marked visible.
func collides(r Rect, labels []LabelBox, visible []bool) bool {
	for i, lb := range labels {
		if visible[i] && r.Intersects(lb.rect()) {
			return true
		}
	}
	return false
}
