package batch

import "math"

// Pure tessellation helpers: parametric shapes in, point sequences out.
// Counts are small and bounded, so sequences are materialized eagerly.

// maxCurveSegments caps the segment count derived from curve length, so a
// degenerate step value cannot explode the buffers.
const maxCurveSegments = 64

// ArcPoints returns segments+1 points on the arc around center, from
// angle a0 to a1 inclusive, by linear angular interpolation. Angles are
// in radians, 0 pointing right and increasing clockwise in screen space
// (+y down). A full turn yields a closed loop (first and last point
// coincide up to floating-point error); anything less yields an open arc.
//
// segments below 1 is treated as 1.
func ArcPoints(center Point, radius, a0, a1 float32, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		sin, cos := math.Sincos(float64(a0 + (a1-a0)*t))
		pts[i] = Point{
			X: center.X + radius*float32(cos),
			Y: center.Y + radius*float32(sin),
		}
	}
	return pts
}

// RemapUV maps p from the coordinate space of src into dst: p's relative
// position inside src (0..1 per axis) is linearly interpolated into dst.
// This is the one function behind all UV assignment, so a sprite region
// stretches consistently across every piece of a composite shape.
//
// A zero-extent src axis maps to dst's minimum on that axis.
func RemapUV(p Point, src, dst Rect) Point {
	var u, v float32
	if w := src.Width(); w != 0 {
		u = (p.X - src.Min.X) / w
	}
	if h := src.Height(); h != 0 {
		v = (p.Y - src.Min.Y) / h
	}
	return Point{
		X: dst.Min.X + u*dst.Width(),
		Y: dst.Min.Y + v*dst.Height(),
	}
}

// RemapRect maps r from the coordinate space of src into dst.
func RemapRect(r, src, dst Rect) Rect {
	return Rect{
		Min: RemapUV(r.Min, src, dst),
		Max: RemapUV(r.Max, src, dst),
	}
}

// QuadBezierPoints tessellates the quadratic Bezier curve p0-c-p1 at
// uniform parameter steps. The segment count is the curve's estimated
// length divided by step, so step is approximately the length of each
// emitted segment. The estimate is the control polygon length, an upper
// bound on the true arc length.
func QuadBezierPoints(p0, c, p1 Point, step float32) []Point {
	est := p0.Distance(c) + c.Distance(p1)
	n := curveSegments(est, step)
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		t := float32(i) / float32(n)
		pts[i] = quadBezierAt(p0, c, p1, t)
	}
	return pts
}

// CubicBezierPoints tessellates the cubic Bezier curve p0-c0-c1-p1 the
// same way QuadBezierPoints does.
func CubicBezierPoints(p0, c0, c1, p1 Point, step float32) []Point {
	est := p0.Distance(c0) + c0.Distance(c1) + c1.Distance(p1)
	n := curveSegments(est, step)
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		t := float32(i) / float32(n)
		pts[i] = cubicBezierAt(p0, c0, c1, p1, t)
	}
	return pts
}

// curveSegments derives a segment count from an estimated length and a
// per-segment step, clamped to [1, maxCurveSegments].
func curveSegments(length, step float32) int {
	if step <= 0 || length <= 0 {
		return 1
	}
	n := int(length/step) + 1
	if n > maxCurveSegments {
		n = maxCurveSegments
	}
	return n
}

// quadBezierAt evaluates the quadratic Bernstein form at t.
func quadBezierAt(p0, c, p1 Point, t float32) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicBezierAt evaluates the cubic Bernstein form at t.
func cubicBezierAt(p0, c0, c1, p1 Point, t float32) Point {
	u := 1 - t
	uu := u * u
	tt := t * t
	return Point{
		X: uu*u*p0.X + 3*uu*t*c0.X + 3*u*tt*c1.X + tt*t*p1.X,
		Y: uu*u*p0.Y + 3*uu*t*c0.Y + 3*u*tt*c1.Y + tt*t*p1.Y,
	}
}
