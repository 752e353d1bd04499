package batch

import (
	"math"
	"testing"
)

func TestArcPoints_Count(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		want     int
	}{
		{name: "one segment", segments: 1, want: 2},
		{name: "typical", segments: 16, want: 17},
		{name: "below one clamps", segments: 0, want: 2},
		{name: "negative clamps", segments: -3, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := ArcPoints(Pt(0, 0), 1, 0, float32(math.Pi), tt.segments)
			if len(pts) != tt.want {
				t.Errorf("len = %d, want %d", len(pts), tt.want)
			}
		})
	}
}

func TestArcPoints_OnCircle(t *testing.T) {
	center := Pt(10, -5)
	const radius float32 = 7
	pts := ArcPoints(center, radius, 0.3, 4.2, 24)
	for i, p := range pts {
		if d := p.Distance(center); !nearf(d, radius) {
			t.Errorf("point %d at distance %g, want %g", i, d, radius)
		}
	}
}

func TestArcPoints_FullTurnCloses(t *testing.T) {
	pts := ArcPoints(Pt(3, 4), 2, 0.5, 0.5+2*math.Pi, 32)
	first, last := pts[0], pts[len(pts)-1]
	if !nearPt(first, last) {
		t.Errorf("full turn open: first %v, last %v", first, last)
	}
}

func TestArcPoints_Endpoints(t *testing.T) {
	// 0 points right, pi/2 points down (+y down screen space).
	pts := ArcPoints(Pt(0, 0), 1, 0, float32(math.Pi/2), 8)
	if !nearPt(pts[0], Pt(1, 0)) {
		t.Errorf("start = %v, want (1,0)", pts[0])
	}
	if !nearPt(pts[len(pts)-1], Pt(0, 1)) {
		t.Errorf("end = %v, want (0,1)", pts[len(pts)-1])
	}
}

func TestRemapUV(t *testing.T) {
	src := RectWH(0, 0, 100, 50)
	dst := RectWH(0.5, 0.25, 0.25, 0.5)
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{name: "min corner", p: Pt(0, 0), want: Pt(0.5, 0.25)},
		{name: "max corner", p: Pt(100, 50), want: Pt(0.75, 0.75)},
		{name: "center", p: Pt(50, 25), want: Pt(0.625, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemapUV(tt.p, src, dst); !nearPt(got, tt.want) {
				t.Errorf("RemapUV(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRemapUV_ZeroExtent(t *testing.T) {
	src := Rect{Min: Pt(5, 5), Max: Pt(5, 10)} // zero width
	dst := UnitRect()
	got := RemapUV(Pt(5, 10), src, dst)
	if got.X != 0 {
		t.Errorf("zero-width axis mapped to %g, want dst min 0", got.X)
	}
	if !nearf(got.Y, 1) {
		t.Errorf("Y = %g, want 1", got.Y)
	}
}

func TestRemapRect(t *testing.T) {
	src := RectWH(0, 0, 10, 10)
	dst := RectWH(0, 0, 1, 1)
	got := RemapRect(RectWH(2, 4, 6, 2), src, dst)
	want := Rect{Min: Pt(0.2, 0.4), Max: Pt(0.8, 0.6)}
	if !nearPt(got.Min, want.Min) || !nearPt(got.Max, want.Max) {
		t.Errorf("RemapRect = %v, want %v", got, want)
	}
}

func TestQuadBezierPoints(t *testing.T) {
	p0, c, p1 := Pt(0, 0), Pt(50, 100), Pt(100, 0)
	pts := QuadBezierPoints(p0, c, p1, 10)
	if len(pts) < 2 {
		t.Fatalf("too few points: %d", len(pts))
	}
	if !nearPt(pts[0], p0) || !nearPt(pts[len(pts)-1], p1) {
		t.Errorf("endpoints %v..%v, want %v..%v", pts[0], pts[len(pts)-1], p0, p1)
	}
	// Curve midpoint of a symmetric quadratic is halfway up to the control.
	mid := quadBezierAt(p0, c, p1, 0.5)
	if !nearPt(mid, Pt(50, 50)) {
		t.Errorf("midpoint = %v, want (50,50)", mid)
	}
}

func TestCubicBezierPoints(t *testing.T) {
	p0, c0, c1, p1 := Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)
	pts := CubicBezierPoints(p0, c0, c1, p1, 10)
	if !nearPt(pts[0], p0) || !nearPt(pts[len(pts)-1], p1) {
		t.Errorf("endpoints %v..%v, want %v..%v", pts[0], pts[len(pts)-1], p0, p1)
	}
}

func TestCurveSegments_Clamps(t *testing.T) {
	tests := []struct {
		name   string
		length float32
		step   float32
		want   int
	}{
		{name: "zero step", length: 100, step: 0, want: 1},
		{name: "negative step", length: 100, step: -1, want: 1},
		{name: "zero length", length: 0, step: 10, want: 1},
		{name: "tiny step capped", length: 1000, step: 0.001, want: maxCurveSegments},
		{name: "typical", length: 100, step: 10, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := curveSegments(tt.length, tt.step); got != tt.want {
				t.Errorf("curveSegments(%g, %g) = %d, want %d", tt.length, tt.step, got, tt.want)
			}
		})
	}
}
