package batch

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// VertexBuffer is a sequential buffer of vertices. Fixed-capacity unless
// created growable; in either case Reset reuses the allocation, so a
// steady-state frame performs no allocations.
type VertexBuffer struct {
	data []Vertex
	grow bool
}

// NewVertexBuffer creates a vertex buffer with the given capacity.
// Growable buffers treat the capacity as an initial allocation; both
// flavors are capped at MaxVertexCapacity because indices are 16-bit.
func NewVertexBuffer(capacity int, growable bool) *VertexBuffer {
	if capacity < 1 {
		capacity = 1
	}
	if capacity > MaxVertexCapacity {
		capacity = MaxVertexCapacity
	}
	return &VertexBuffer{
		data: make([]Vertex, 0, capacity),
		grow: growable,
	}
}

// Len returns the number of vertices appended since the last Reset.
func (b *VertexBuffer) Len() int { return len(b.data) }

// Cap returns the current capacity.
func (b *VertexBuffer) Cap() int { return cap(b.data) }

// Fits reports whether n more vertices can be appended.
func (b *VertexBuffer) Fits(n int) bool {
	if b.grow {
		return len(b.data)+n <= MaxVertexCapacity
	}
	return len(b.data)+n <= cap(b.data)
}

// Append appends a vertex and returns its index.
func (b *VertexBuffer) Append(v Vertex) (uint16, error) {
	if !b.Fits(1) {
		return 0, ErrBufferOverflow
	}
	b.data = append(b.data, v)
	return uint16(len(b.data) - 1), nil
}

// Reset empties the buffer, keeping the allocation. Previously returned
// views become invalid.
func (b *VertexBuffer) Reset() { b.data = b.data[:0] }

// Vertices returns a read-only view of the appended vertices. The view is
// valid until the next Reset.
func (b *VertexBuffer) Vertices() []Vertex { return b.data }

// PositionBytes returns the x/y/z positions as a packed little-endian
// float32 byte stream, suitable for uploading as a planar vertex
// attribute array.
func (b *VertexBuffer) PositionBytes() []byte {
	vals := make([]float32, 0, len(b.data)*3)
	for _, v := range b.data {
		vals = append(vals, v.X, v.Y, v.Z)
	}
	return f32.Bytes(binary.LittleEndian, vals...)
}

// TexCoordBytes returns the UV coordinates as a packed little-endian
// float32 byte stream.
func (b *VertexBuffer) TexCoordBytes() []byte {
	vals := make([]float32, 0, len(b.data)*2)
	for _, v := range b.data {
		vals = append(vals, v.U, v.V)
	}
	return f32.Bytes(binary.LittleEndian, vals...)
}

// ColorBytes returns the packed vertex colors as a little-endian byte
// stream, one RGBA8 value per vertex.
func (b *VertexBuffer) ColorBytes() []byte {
	out := make([]byte, len(b.data)*4)
	for i, v := range b.data {
		binary.LittleEndian.PutUint32(out[i*4:], v.Color)
	}
	return out
}

// IndexBuffer is a sequential buffer of 16-bit vertex indices.
type IndexBuffer struct {
	data []uint16
	grow bool
}

// NewIndexBuffer creates an index buffer with the given capacity.
func NewIndexBuffer(capacity int, growable bool) *IndexBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &IndexBuffer{
		data: make([]uint16, 0, capacity),
		grow: growable,
	}
}

// Len returns the number of indices appended since the last Reset.
func (b *IndexBuffer) Len() int { return len(b.data) }

// Cap returns the current capacity.
func (b *IndexBuffer) Cap() int { return cap(b.data) }

// Fits reports whether n more indices can be appended.
func (b *IndexBuffer) Fits(n int) bool {
	if b.grow {
		return true
	}
	return len(b.data)+n <= cap(b.data)
}

// Append appends an index.
func (b *IndexBuffer) Append(i uint16) error {
	if !b.Fits(1) {
		return ErrBufferOverflow
	}
	b.data = append(b.data, i)
	return nil
}

// Reset empties the buffer, keeping the allocation.
func (b *IndexBuffer) Reset() { b.data = b.data[:0] }

// Indices returns a read-only view of the appended indices. The view is
// valid until the next Reset.
func (b *IndexBuffer) Indices() []uint16 { return b.data }

// Bytes returns the indices as a little-endian byte stream, matching
// IndexFormat.
func (b *IndexBuffer) Bytes() []byte {
	out := make([]byte, len(b.data)*2)
	for i, v := range b.data {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}
