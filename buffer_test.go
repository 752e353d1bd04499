package batch

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestVertexBuffer_FixedCapacity(t *testing.T) {
	b := NewVertexBuffer(2, false)
	if b.Cap() != 2 {
		t.Fatalf("Cap = %d, want 2", b.Cap())
	}

	i0, err := b.Append(Vertex{X: 1})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	i1, err := b.Append(Vertex{X: 2})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if i0 != 0 || i1 != 1 {
		t.Errorf("indices %d, %d, want 0, 1", i0, i1)
	}

	if _, err := b.Append(Vertex{X: 3}); !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("overflow err = %v, want ErrBufferOverflow", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len after overflow = %d, want 2", b.Len())
	}
}

func TestVertexBuffer_Growable(t *testing.T) {
	b := NewVertexBuffer(1, true)
	for i := 0; i < 10; i++ {
		if _, err := b.Append(Vertex{X: float32(i)}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	if b.Len() != 10 {
		t.Errorf("Len = %d, want 10", b.Len())
	}
	if !b.Fits(MaxVertexCapacity - 10) {
		t.Error("growable buffer should fit up to MaxVertexCapacity")
	}
	if b.Fits(MaxVertexCapacity - 9) {
		t.Error("growable buffer must not exceed MaxVertexCapacity")
	}
}

func TestVertexBuffer_CapacityClamped(t *testing.T) {
	b := NewVertexBuffer(MaxVertexCapacity*2, false)
	if b.Cap() != MaxVertexCapacity {
		t.Errorf("Cap = %d, want %d", b.Cap(), MaxVertexCapacity)
	}
	if NewVertexBuffer(0, false).Cap() != 1 {
		t.Error("zero capacity should clamp to 1")
	}
}

func TestVertexBuffer_Reset(t *testing.T) {
	b := NewVertexBuffer(4, false)
	b.Append(Vertex{})
	b.Append(Vertex{})
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset = %d", b.Len())
	}
	if i, _ := b.Append(Vertex{}); i != 0 {
		t.Errorf("index after Reset = %d, want 0", i)
	}
}

func TestVertexBuffer_ByteStreams(t *testing.T) {
	b := NewVertexBuffer(4, false)
	b.Append(V(Pt(1, 2), Pt(0.5, 0.25), Red))
	b.Append(V(Pt(3, 4), Pt(1, 1), Blue))

	pos := b.PositionBytes()
	if len(pos) != 2*3*4 {
		t.Fatalf("PositionBytes len = %d, want 24", len(pos))
	}
	uv := b.TexCoordBytes()
	if len(uv) != 2*2*4 {
		t.Fatalf("TexCoordBytes len = %d, want 16", len(uv))
	}
	col := b.ColorBytes()
	if len(col) != 2*4 {
		t.Fatalf("ColorBytes len = %d, want 8", len(col))
	}
	if got := binary.LittleEndian.Uint32(col); got != Red.Pack() {
		t.Errorf("first color = %#08x, want %#08x", got, Red.Pack())
	}
}

func TestIndexBuffer_FixedCapacity(t *testing.T) {
	b := NewIndexBuffer(3, false)
	for i := 0; i < 3; i++ {
		if err := b.Append(uint16(i)); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}
	if err := b.Append(3); !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("overflow err = %v, want ErrBufferOverflow", err)
	}
	if b.Len() != 3 {
		t.Errorf("Len = %d, want 3", b.Len())
	}
}

func TestIndexBuffer_Bytes(t *testing.T) {
	b := NewIndexBuffer(4, false)
	b.Append(0x1234)
	b.Append(0x0002)
	got := b.Bytes()
	want := []byte{0x34, 0x12, 0x02, 0x00}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}
