package batch

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
//
// The zero Rect is empty and, used as a scissor rectangle, means
// "no scissor".
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	r := Rect{Min: p1, Max: p2}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// RectWH creates a rectangle from a top-left corner and dimensions.
func RectWH(x, y, w, h float32) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// UnitRect returns the rectangle from (0,0) to (1,1).
func UnitRect() Rect {
	return Rect{Max: Point{X: 1, Y: 1}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

// Empty returns true if the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersect returns the intersection of two rectangles.
// Returns the zero Rect if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Min: Point{X: max32(r.Min.X, other.Min.X), Y: max32(r.Min.Y, other.Min.Y)},
		Max: Point{X: min32(r.Max.X, other.Max.X), Y: min32(r.Max.Y, other.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Inset returns the rectangle shrunk by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		Min: Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
