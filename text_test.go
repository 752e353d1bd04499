package batch

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

// testFont returns a 16-column ASCII grid font on a 128x96 atlas with
// 8x12 cells, covering ' ' (0x20) through '~' (0x7E).
func testFont(t *testing.T) *GridFont {
	t.Helper()
	f, err := NewGridFont(GridFontConfig{
		Texture:     9,
		First:       ' ',
		Count:       95,
		Columns:     16,
		CellWidth:   8,
		CellHeight:  12,
		AtlasWidth:  128,
		AtlasHeight: 96,
		Ascent:      10,
	})
	if err != nil {
		t.Fatalf("NewGridFont: %v", err)
	}
	return f
}

func TestNewGridFont_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  GridFontConfig
	}{
		{name: "zero count", cfg: GridFontConfig{Columns: 16, CellWidth: 8, CellHeight: 8, AtlasWidth: 128, AtlasHeight: 128}},
		{name: "zero columns", cfg: GridFontConfig{Count: 95, CellWidth: 8, CellHeight: 8, AtlasWidth: 128, AtlasHeight: 128}},
		{name: "zero cell", cfg: GridFontConfig{Count: 95, Columns: 16, AtlasWidth: 128, AtlasHeight: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGridFont(tt.cfg); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}

func TestGridFont_Glyph(t *testing.T) {
	f := testFont(t)

	// ' ' is the first cell: top-left of the atlas.
	g, ok := f.Glyph(' ')
	if !ok {
		t.Fatal("no glyph for space")
	}
	if g.Region.Min != Pt(0, 0) {
		t.Errorf("space region min = %v, want (0,0)", g.Region.Min)
	}
	// Cell UV extent is cell size over atlas size.
	if !nearf(g.Region.Width(), 8.0/128) || !nearf(g.Region.Height(), 12.0/96) {
		t.Errorf("region extent = %gx%g", g.Region.Width(), g.Region.Height())
	}
	if g.Advance != 8 {
		t.Errorf("advance = %g, want 8", g.Advance)
	}
	// The quad spans from ascent above the baseline.
	if g.Bounds.Min.Y != -10 || g.Bounds.Max.Y != 2 {
		t.Errorf("bounds y = [%g, %g], want [-10, 2]", g.Bounds.Min.Y, g.Bounds.Max.Y)
	}

	// '0' is index 16: first cell of the second row.
	g, ok = f.Glyph('0')
	if !ok {
		t.Fatal("no glyph for '0'")
	}
	if !nearPt(g.Region.Min, Pt(0, 12.0/96)) {
		t.Errorf("'0' region min = %v, want (0, 0.125)", g.Region.Min)
	}

	if _, ok := f.Glyph('é'); ok {
		t.Error("glyph outside the atlas run should be missing")
	}
}

func TestDrawText(t *testing.T) {
	b := New()
	f := testFont(t)

	if err := b.DrawText(f, "AB", Pt(100, 50), White); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if b.VertexCount() != 8 || b.IndexCount() != 12 {
		t.Errorf("counts = %dv/%di, want 8/12", b.VertexCount(), b.IndexCount())
	}

	verts := b.verts.Vertices()
	// First glyph quad starts at the pen, ascent above the baseline.
	if verts[0].Pos() != Pt(100, 40) {
		t.Errorf("first glyph origin = %v, want (100, 40)", verts[0].Pos())
	}
	// Second glyph is advanced by one cell width.
	if verts[4].Pos() != Pt(108, 40) {
		t.Errorf("second glyph origin = %v, want (108, 40)", verts[4].Pos())
	}
	// All glyphs share the atlas texture in one batch.
	b.Flush()
	if got := b.BatchCount(); got != 1 {
		t.Errorf("BatchCount = %d, want 1", got)
	}
	if tex := b.Batches()[0].State.Texture; tex != 9 {
		t.Errorf("batch texture = %d, want 9", tex)
	}
}

func TestDrawText_NewlineAndMissingRunes(t *testing.T) {
	b := New()
	f := testFont(t)

	if err := b.DrawText(f, "A\nBéC", Pt(0, 0), White); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	// 3 drawable glyphs: A, B, C.
	if b.VertexCount() != 12 {
		t.Errorf("vertices = %d, want 12", b.VertexCount())
	}
	verts := b.verts.Vertices()
	// B starts a new line at x=0, one line height down.
	if verts[4].Pos() != Pt(0, 2) { // -10 ascent + 12 line height
		t.Errorf("second line origin = %v, want (0, 2)", verts[4].Pos())
	}
	// C follows B on the same line despite the skipped rune.
	if verts[8].Pos() != Pt(8, 2) {
		t.Errorf("third glyph origin = %v, want (8, 2)", verts[8].Pos())
	}
}

func TestDrawText_RestoresSprite(t *testing.T) {
	b := New()
	f := testFont(t)

	region := RectWH(0.1, 0.2, 0.3, 0.4)
	b.SetSprite(3, region)
	if err := b.DrawText(f, "hi", Pt(0, 0), White); err != nil {
		t.Fatalf("DrawText: %v", err)
	}
	if sp := b.Sprite(); sp.Texture != 3 || sp.Region != region {
		t.Errorf("sprite after DrawText = %+v", sp)
	}
}

func TestMeasureText(t *testing.T) {
	f := testFont(t)
	tests := []struct {
		name string
		text string
		want Point
	}{
		{name: "empty", text: "", want: Pt(0, 12)},
		{name: "single line", text: "abc", want: Pt(24, 12)},
		{name: "two lines", text: "abcd\nab", want: Pt(32, 24)},
		{name: "trailing newline", text: "ab\n", want: Pt(16, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeasureText(f, tt.text); got != tt.want {
				t.Errorf("MeasureText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFaceMetrics(t *testing.T) {
	advance, lineHeight, ascent := FaceMetrics(basicfont.Face7x13)
	if advance != 7 {
		t.Errorf("advance = %g, want 7", advance)
	}
	if lineHeight != 13 {
		t.Errorf("line height = %g, want 13", lineHeight)
	}
	if ascent != 11 {
		t.Errorf("ascent = %g, want 11", ascent)
	}
}
