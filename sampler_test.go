package geoaxis

import "testing"

func worldLimits() ViewLimits {
	return ViewLimits{XMin: -180, XMax: 180, YMin: -90, YMax: 90}
}

func TestSampleGrid_BatchedLength(t *testing.T) {
	// For K ticks and density D the batched polyline holds K*(D+1)-1
	// points: D per line plus one break between lines, no trailing break.
	tests := []struct {
		name    string
		xticks  []float64
		yticks  []float64
		density int
		wantX   int
		wantY   int
	}{
		{"7x7 world", sevenTicks(-180, 180), sevenTicks(-90, 90), 100, 7*101 - 1, 7*101 - 1},
		{"one x none y", []float64{0}, nil, 1000, 1000, 0},
		{"none at all", nil, nil, 100, 0, 0},
		{"two each density 2", []float64{-10, 10}, []float64{-5, 5}, 2, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := sampleGrid(worldLimits(), tt.xticks, tt.yticks, tt.density)
			if len(g.xGrid) != tt.wantX {
				t.Errorf("xGrid length = %d, want %d", len(g.xGrid), tt.wantX)
			}
			if len(g.yGrid) != tt.wantY {
				t.Errorf("yGrid length = %d, want %d", len(g.yGrid), tt.wantY)
			}
		})
	}
}

func TestSampleGrid_BreakPlacement(t *testing.T) {
	g := sampleGrid(worldLimits(), []float64{-60, 0, 60}, nil, 10)

	// Breaks at exactly the seams between consecutive lines.
	for i, p := range g.xGrid {
		atSeam := i == 10 || i == 21
		if p.IsBreak() != atSeam {
			t.Errorf("point %d: IsBreak = %v, want %v", i, p.IsBreak(), atSeam)
		}
	}
}

func TestSampleGrid_LineGeometry(t *testing.T) {
	lims := ViewLimits{XMin: -30, XMax: 60, YMin: 20, YMax: 70}
	g := sampleGrid(lims, []float64{15}, []float64{45}, 5)

	// Vertical line: constant x at the tick, y spanning the limits.
	for i, p := range g.xGrid {
		if p.X != 15 {
			t.Errorf("xGrid[%d].X = %v, want 15", i, p.X)
		}
	}
	if g.xGrid[0].Y != 20 || g.xGrid[4].Y != 70 {
		t.Errorf("xGrid spans (%v, %v), want (20, 70)", g.xGrid[0].Y, g.xGrid[4].Y)
	}

	// Horizontal line: constant y, x spanning the limits.
	for i, p := range g.yGrid {
		if p.Y != 45 {
			t.Errorf("yGrid[%d].Y = %v, want 45", i, p.Y)
		}
	}
	if g.yGrid[0].X != -30 || g.yGrid[4].X != 60 {
		t.Errorf("yGrid spans (%v, %v), want (-30, 60)", g.yGrid[0].X, g.yGrid[4].X)
	}
}

func TestSampleGrid_Spines(t *testing.T) {
	const density = 37
	lims := worldLimits()
	g := sampleGrid(lims, nil, nil, density)

	for i, spine := range g.spines {
		if len(spine) != density {
			t.Errorf("spine %d: %d points, want %d", i, len(spine), density)
		}
		for j, p := range spine {
			if p.IsBreak() {
				t.Errorf("spine %d point %d is a break", i, j)
			}
		}
	}

	// Each spine runs along its rectangle edge.
	if g.spines[SpineBottom][0] != Pt(-180, -90) || g.spines[SpineBottom][density-1] != Pt(180, -90) {
		t.Error("bottom spine endpoints wrong")
	}
	if g.spines[SpineTop][0] != Pt(-180, 90) || g.spines[SpineTop][density-1] != Pt(180, 90) {
		t.Error("top spine endpoints wrong")
	}
	if g.spines[SpineLeft][0] != Pt(-180, -90) || g.spines[SpineLeft][density-1] != Pt(-180, 90) {
		t.Error("left spine endpoints wrong")
	}
	if g.spines[SpineRight][0] != Pt(180, -90) || g.spines[SpineRight][density-1] != Pt(180, 90) {
		t.Error("right spine endpoints wrong")
	}
}

func TestClampDensity(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, defaultDensity},
		{-5, defaultDensity},
		{1, 1},
		{100, 100},
		{maxDensity, maxDensity},
		{maxDensity + 1, maxDensity},
		{1 << 20, maxDensity},
	}

	for _, tt := range tests {
		if got := clampDensity(tt.in); got != tt.want {
			t.Errorf("clampDensity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func sevenTicks(min, max float64) []float64 {
	out := make([]float64, 7)
	for i := range out {
		out[i] = min + (max-min)*float64(i)/6
	}
	return out
}
