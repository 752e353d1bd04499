package batch

// Vertex is a single vertex as stored in the vertex buffer: a 3D position,
// a UV coordinate and a packed ABGR color.
//
// Z is kept at 0 by the 2D shape operations but is present so positions
// survive 4x4 transforms unchanged. A Vertex is immutable once appended:
// its position is transformed by the active transform at append time, and
// later transform changes do not affect it.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
	Color   uint32
}

// V creates a vertex at position p with UV coordinate uv and color col.
func V(p Point, uv Point, col Color) Vertex {
	return Vertex{X: p.X, Y: p.Y, U: uv.X, V: uv.Y, Color: col.Pack()}
}

// Pos returns the vertex position as a 2D point, dropping Z.
func (v Vertex) Pos() Point {
	return Point{X: v.X, Y: v.Y}
}

// UV returns the vertex UV coordinate.
func (v Vertex) UV() Point {
	return Point{X: v.U, Y: v.V}
}
