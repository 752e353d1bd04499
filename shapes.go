package batch

import (
	"fmt"
	"math"
)

// Quarter-turn angle constants in screen space (+y down, angles growing
// clockwise from the +x axis).
const (
	angleRight     = float32(0)
	angleBottom    = float32(0.5 * math.Pi)
	angleLeft      = float32(math.Pi)
	angleTop       = float32(1.5 * math.Pi)
	angleRightFull = float32(2 * math.Pi)
)

// vertexAt builds a vertex at p with its UV remapped from bounds into the
// active sprite region, so the region stretches consistently across every
// piece of a composite shape.
func (b *Batcher) vertexAt(p Point, bounds Rect, col Color) Vertex {
	return V(p, RemapUV(p, bounds, b.sprite.Region), col)
}

// FillRect fills a rectangle with a single color, mapping the active
// sprite region across it.
func (b *Batcher) FillRect(r Rect, col Color) error {
	return b.FillRectColors(r, col, col, col, col)
}

// FillRectColors fills a rectangle with one color per corner (top-left,
// top-right, bottom-right, bottom-left), interpolated across the two
// triangles.
func (b *Batcher) FillRectColors(r Rect, tl, tr, br, bl Color) error {
	region := b.sprite.Region
	return b.FillQuad(
		V(r.Min, region.Min, tl),
		V(Pt(r.Max.X, r.Min.Y), Pt(region.Max.X, region.Min.Y), tr),
		V(r.Max, region.Max, br),
		V(Pt(r.Min.X, r.Max.Y), Pt(region.Min.X, region.Max.Y), bl),
	)
}

// DrawRect outlines a rectangle with four stroke lines of the given
// width. Corners are not mitered; adjacent strokes overlap there.
func (b *Batcher) DrawRect(r Rect, col Color, width float32) error {
	if err := b.ensure(16, 24); err != nil {
		return err
	}
	tr := Pt(r.Max.X, r.Min.Y)
	bl := Pt(r.Min.X, r.Max.Y)
	if err := b.DrawLine(r.Min, tr, col, width); err != nil {
		return err
	}
	if err := b.DrawLine(tr, r.Max, col, width); err != nil {
		return err
	}
	if err := b.DrawLine(r.Max, bl, col, width); err != nil {
		return err
	}
	return b.DrawLine(bl, r.Min, col, width)
}

// DrawLine strokes the segment p1-p2 as a width-wide quad, with the unit
// UV rectangle stretched along it.
func (b *Batcher) DrawLine(p1, p2 Point, col Color, width float32) error {
	return b.DrawLineRegion(p1, p2, col, width, UnitRect())
}

// DrawLineRegion strokes the segment p1-p2 as a width-wide quad. The
// stroke rectangle spans half the width to each side of the segment;
// region supplies the UV corners, its min edge on the p1 side.
func (b *Batcher) DrawLineRegion(p1, p2 Point, col Color, width float32, region Rect) error {
	off := p2.Sub(p1).Normalize().Perp().Mul(width / 2)
	return b.FillQuad(
		V(p1.Add(off), region.Min, col),
		V(p2.Add(off), Pt(region.Max.X, region.Min.Y), col),
		V(p2.Sub(off), region.Max, col),
		V(p1.Sub(off), Pt(region.Min.X, region.Max.Y), col),
	)
}

// DrawLineStrip strokes a line between every consecutive pair of points.
// Joints are not mitered: consecutive segments simply overlap at the
// shared endpoint. Requires at least 2 points.
func (b *Batcher) DrawLineStrip(points []Point, col Color, width float32) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: line strip needs 2 points, got %d", ErrInsufficientVertices, len(points))
	}
	n := len(points) - 1
	if err := b.ensure(n*4, n*6); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := b.DrawLine(points[i], points[i+1], col, width); err != nil {
			return err
		}
	}
	return nil
}

// FillTriangle fills the triangle p0-p1-p2, mapping the active sprite
// region across the triangle's bounding rectangle.
func (b *Batcher) FillTriangle(p0, p1, p2 Point, col Color) error {
	bounds := NewRect(p0, p1)
	bounds.Min.X = min32(bounds.Min.X, p2.X)
	bounds.Min.Y = min32(bounds.Min.Y, p2.Y)
	bounds.Max.X = max32(bounds.Max.X, p2.X)
	bounds.Max.Y = max32(bounds.Max.Y, p2.Y)
	return b.FillTriangleStrip([]Vertex{
		b.vertexAt(p0, bounds, col),
		b.vertexAt(p1, bounds, col),
		b.vertexAt(p2, bounds, col),
	})
}

// FillCircle fills a circle as a triangle fan with the given number of
// perimeter segments (at least 2).
func (b *Batcher) FillCircle(center Point, radius float32, col Color, segments int) error {
	return b.FillCircleSegment(center, radius, angleRight, angleRightFull, col, segments)
}

// FillCircleSegment fills a pie slice of a circle from angle a0 to a1
// (radians, clockwise, +y down) as a triangle fan around the center.
// UVs are remapped from the full circle's bounding square, so a sprite
// stays put while the slice sweeps. Requires at least 2 segments.
func (b *Batcher) FillCircleSegment(center Point, radius, a0, a1 float32, col Color, segments int) error {
	if segments < 2 {
		return fmt.Errorf("%w: circle fill needs 2 segments, got %d", ErrInsufficientVertices, segments)
	}
	bounds := Rect{
		Min: center.Sub(Pt(radius, radius)),
		Max: center.Add(Pt(radius, radius)),
	}
	pts := ArcPoints(center, radius, a0, a1, segments)
	verts := make([]Vertex, len(pts))
	for i, p := range pts {
		verts[i] = b.vertexAt(p, bounds, col)
	}
	return b.FillTriangleFan(b.vertexAt(center, bounds, col), verts)
}

// DrawCircle outlines a circle as a closed line strip.
func (b *Batcher) DrawCircle(center Point, radius float32, col Color, width float32, segments int) error {
	return b.DrawCircleSegment(center, radius, angleRight, angleRightFull, col, width, segments)
}

// DrawCircleSegment outlines a circle arc from angle a0 to a1 as a line
// strip.
func (b *Batcher) DrawCircleSegment(center Point, radius, a0, a1 float32, col Color, width float32, segments int) error {
	return b.DrawLineStrip(ArcPoints(center, radius, a0, a1, segments), col, width)
}

// Corner describes one rounded-rectangle corner: its radius and the
// number of arc segments used to tessellate it. Radius 0 degenerates to
// a sharp corner; segment counts below 2 are raised to 2.
type Corner struct {
	Radius   float32
	Segments int
}

// Corners holds the four corner descriptions of a rounded rectangle.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft Corner
}

// UniformCorners returns Corners with the same radius and segment count
// on all four corners.
func UniformCorners(radius float32, segments int) Corners {
	c := Corner{Radius: radius, Segments: segments}
	return Corners{TopLeft: c, TopRight: c, BottomRight: c, BottomLeft: c}
}

// sharp returns true if every corner radius is zero.
func (c Corners) sharp() bool {
	return c.TopLeft.Radius == 0 && c.TopRight.Radius == 0 &&
		c.BottomRight.Radius == 0 && c.BottomLeft.Radius == 0
}

// maxRadius returns the largest corner radius.
func (c Corners) maxRadius() float32 {
	return max32(max32(c.TopLeft.Radius, c.TopRight.Radius),
		max32(c.BottomRight.Radius, c.BottomLeft.Radius))
}

// normalized returns the corners with segment counts raised to 2.
func (c Corners) normalized() Corners {
	bump := func(k Corner) Corner {
		if k.Segments < 2 {
			k.Segments = 2
		}
		return k
	}
	return Corners{
		TopLeft:     bump(c.TopLeft),
		TopRight:    bump(c.TopRight),
		BottomRight: bump(c.BottomRight),
		BottomLeft:  bump(c.BottomLeft),
	}
}

// validate checks every radius against the rectangle's half-extents.
func (c Corners) validate(r Rect) error {
	halfW, halfH := r.Width()/2, r.Height()/2
	for _, k := range [4]Corner{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft} {
		if k.Radius < 0 || k.Radius > halfW || k.Radius > halfH {
			return fmt.Errorf("%w: radius %g in %gx%g rectangle", ErrInvalidRadius, k.Radius, r.Width(), r.Height())
		}
	}
	return nil
}

// FillRoundedRect fills a rectangle with rounded corners. The shape
// tiles exactly: an inner rectangle inset by the largest radius, four
// edge bands running between the corner cells, and per corner a quarter-
// circle fan plus up to two filler rectangles squaring off its cell.
// Pieces meet edge to edge and never overlap, so translucent and
// additive fills blend each covered pixel once even when the radii
// differ. All radii zero produces output identical to FillRect. A radius
// exceeding half the rectangle's width or height fails with
// ErrInvalidRadius before any geometry is emitted.
func (b *Batcher) FillRoundedRect(r Rect, corners Corners, col Color) error {
	if err := corners.validate(r); err != nil {
		return err
	}
	if corners.sharp() {
		return b.FillRect(r, col)
	}
	c := corners.normalized()
	maxR := c.maxRadius()
	tl, tr, br, bl := c.TopLeft.Radius, c.TopRight.Radius, c.BottomRight.Radius, c.BottomLeft.Radius

	inner := Rect{
		Min: r.Min.Add(Pt(maxR, maxR)),
		Max: r.Max.Sub(Pt(maxR, maxR)),
	}
	rects := make([]Rect, 0, 13)
	for _, e := range [13]Rect{
		inner,
		NewRect(Pt(r.Min.X+maxR, r.Min.Y), Pt(r.Max.X-maxR, r.Min.Y+maxR)), // top band
		NewRect(Pt(r.Min.X+maxR, r.Max.Y-maxR), Pt(r.Max.X-maxR, r.Max.Y)), // bottom band
		NewRect(Pt(r.Min.X, r.Min.Y+maxR), Pt(r.Min.X+maxR, r.Max.Y-maxR)), // left band
		NewRect(Pt(r.Max.X-maxR, r.Min.Y+maxR), Pt(r.Max.X, r.Max.Y-maxR)), // right band
		// Corner cell fillers: each maxR-sized cell minus its corner's
		// own radius-sized square, which the fan rounds off.
		NewRect(Pt(r.Min.X+tl, r.Min.Y), Pt(r.Min.X+maxR, r.Min.Y+tl)),
		NewRect(Pt(r.Min.X, r.Min.Y+tl), Pt(r.Min.X+maxR, r.Min.Y+maxR)),
		NewRect(Pt(r.Max.X-maxR, r.Min.Y), Pt(r.Max.X-tr, r.Min.Y+tr)),
		NewRect(Pt(r.Max.X-maxR, r.Min.Y+tr), Pt(r.Max.X, r.Min.Y+maxR)),
		NewRect(Pt(r.Max.X-maxR, r.Max.Y-br), Pt(r.Max.X-br, r.Max.Y)),
		NewRect(Pt(r.Max.X-maxR, r.Max.Y-maxR), Pt(r.Max.X, r.Max.Y-br)),
		NewRect(Pt(r.Min.X+bl, r.Max.Y-bl), Pt(r.Min.X+maxR, r.Max.Y)),
		NewRect(Pt(r.Min.X, r.Max.Y-maxR), Pt(r.Min.X+maxR, r.Max.Y-bl)),
	} {
		if !e.Empty() {
			rects = append(rects, e)
		}
	}

	fans := cornerFans(r, c)
	nv, ni := len(rects)*4, len(rects)*6
	for _, f := range fans {
		nv += f.corner.Segments + 2
		ni += f.corner.Segments * 3
	}
	if err := b.ensure(nv, ni); err != nil {
		return err
	}

	for _, sub := range rects {
		if err := b.FillQuad(
			b.vertexAt(sub.Min, r, col),
			b.vertexAt(Pt(sub.Max.X, sub.Min.Y), r, col),
			b.vertexAt(sub.Max, r, col),
			b.vertexAt(Pt(sub.Min.X, sub.Max.Y), r, col),
		); err != nil {
			return err
		}
	}
	for _, f := range fans {
		pts := ArcPoints(f.center, f.corner.Radius, f.a0, f.a1, f.corner.Segments)
		verts := make([]Vertex, len(pts))
		for i, p := range pts {
			verts[i] = b.vertexAt(p, r, col)
		}
		if err := b.FillTriangleFan(b.vertexAt(f.center, r, col), verts); err != nil {
			return err
		}
	}
	return nil
}

// cornerFan is one quarter-circle fan of a rounded rectangle.
type cornerFan struct {
	corner Corner
	center Point
	a0, a1 float32
}

// cornerFans returns the non-degenerate quarter-circle fans for the
// rectangle's corners: each corner's arc runs between its side's
// quarter-turn angles (left=pi, top=1.5pi, right=0/2pi, bottom=0.5pi).
func cornerFans(r Rect, c Corners) []cornerFan {
	fans := make([]cornerFan, 0, 4)
	if k := c.TopLeft; k.Radius > 0 {
		fans = append(fans, cornerFan{k, Pt(r.Min.X+k.Radius, r.Min.Y+k.Radius), angleLeft, angleTop})
	}
	if k := c.TopRight; k.Radius > 0 {
		fans = append(fans, cornerFan{k, Pt(r.Max.X-k.Radius, r.Min.Y+k.Radius), angleTop, angleRightFull})
	}
	if k := c.BottomRight; k.Radius > 0 {
		fans = append(fans, cornerFan{k, Pt(r.Max.X-k.Radius, r.Max.Y-k.Radius), angleRight, angleBottom})
	}
	if k := c.BottomLeft; k.Radius > 0 {
		fans = append(fans, cornerFan{k, Pt(r.Min.X+k.Radius, r.Max.Y-k.Radius), angleBottom, angleLeft})
	}
	return fans
}

// DrawRoundedRect outlines a rectangle with rounded corners: four
// straight edges shortened by the adjacent corner radii plus four corner
// arcs. All radii zero produces output identical to DrawRect.
func (b *Batcher) DrawRoundedRect(r Rect, corners Corners, col Color, width float32) error {
	if err := corners.validate(r); err != nil {
		return err
	}
	if corners.sharp() {
		return b.DrawRect(r, col, width)
	}
	c := corners.normalized()

	type edge struct{ p1, p2 Point }
	edges := make([]edge, 0, 4)
	for _, e := range [4]edge{
		{Pt(r.Min.X+c.TopLeft.Radius, r.Min.Y), Pt(r.Max.X-c.TopRight.Radius, r.Min.Y)},       // top
		{Pt(r.Max.X, r.Min.Y+c.TopRight.Radius), Pt(r.Max.X, r.Max.Y-c.BottomRight.Radius)},   // right
		{Pt(r.Min.X+c.BottomLeft.Radius, r.Max.Y), Pt(r.Max.X-c.BottomRight.Radius, r.Max.Y)}, // bottom
		{Pt(r.Min.X, r.Min.Y+c.TopLeft.Radius), Pt(r.Min.X, r.Max.Y-c.BottomLeft.Radius)},     // left
	} {
		if e.p1 != e.p2 {
			edges = append(edges, e)
		}
	}

	fans := cornerFans(r, c)
	nv, ni := len(edges)*4, len(edges)*6
	for _, f := range fans {
		nv += f.corner.Segments * 4
		ni += f.corner.Segments * 6
	}
	if err := b.ensure(nv, ni); err != nil {
		return err
	}

	for _, e := range edges {
		if err := b.DrawLine(e.p1, e.p2, col, width); err != nil {
			return err
		}
	}
	for _, f := range fans {
		pts := ArcPoints(f.center, f.corner.Radius, f.a0, f.a1, f.corner.Segments)
		if err := b.DrawLineStrip(pts, col, width); err != nil {
			return err
		}
	}
	return nil
}

// DrawQuadraticBezier strokes a quadratic Bezier curve as a line strip.
// step is the approximate length of each tessellated segment.
func (b *Batcher) DrawQuadraticBezier(p0, c, p1 Point, col Color, width, step float32) error {
	return b.DrawLineStrip(QuadBezierPoints(p0, c, p1, step), col, width)
}

// DrawCubicBezier strokes a cubic Bezier curve as a line strip.
// step is the approximate length of each tessellated segment.
func (b *Batcher) DrawCubicBezier(p0, c0, c1, p1 Point, col Color, width, step float32) error {
	return b.DrawLineStrip(CubicBezierPoints(p0, c0, c1, p1, step), col, width)
}
