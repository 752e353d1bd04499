package batch

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one renderable glyph of a font atlas.
type Glyph struct {
	// Advance is the horizontal pen advance after drawing the glyph.
	Advance float32

	// Bounds is the glyph quad relative to the pen position, +y down.
	Bounds Rect

	// Region is the glyph's UV region inside the font's atlas texture.
	Region Rect
}

// Font maps runes to atlas glyphs. Implementations must be safe for
// concurrent readers.
type Font interface {
	// Texture returns the atlas texture id.
	Texture() int32

	// Glyph returns the glyph for r, false if the font has no glyph
	// for it.
	Glyph(r rune) (Glyph, bool)

	// LineHeight returns the vertical pen advance between lines.
	LineHeight() float32
}

// GridFont is a fixed-grid atlas font: a contiguous run of runes laid
// out row-major in equally sized cells. Every glyph shares the same
// advance and quad, which fits bitmap and terminal style fonts.
type GridFont struct {
	texture    int32
	first      rune
	count      int
	columns    int
	cell       Point
	cellW      float32
	cellH      float32
	advance    float32
	lineHeight float32
	ascent     float32
}

// GridFontConfig configures NewGridFont.
type GridFontConfig struct {
	// Texture is the atlas texture id.
	Texture int32

	// First is the first rune in the atlas; Count runes follow it.
	First rune
	Count int

	// Columns is the number of cells per atlas row.
	Columns int

	// CellWidth and CellHeight are the cell size in texels.
	CellWidth, CellHeight float32

	// AtlasWidth and AtlasHeight are the full atlas size in texels.
	AtlasWidth, AtlasHeight float32

	// Advance is the pen advance per glyph; CellWidth if zero.
	Advance float32

	// LineHeight is the pen advance per line; CellHeight if zero.
	LineHeight float32

	// Ascent is the distance from the baseline up to the cell top;
	// CellHeight if zero (glyphs sit entirely above the baseline).
	Ascent float32
}

// NewGridFont creates a grid font from its atlas layout.
func NewGridFont(cfg GridFontConfig) (*GridFont, error) {
	if cfg.Count < 1 || cfg.Columns < 1 {
		return nil, fmt.Errorf("batch: grid font needs positive count and columns, got %d and %d", cfg.Count, cfg.Columns)
	}
	if cfg.CellWidth <= 0 || cfg.CellHeight <= 0 || cfg.AtlasWidth <= 0 || cfg.AtlasHeight <= 0 {
		return nil, fmt.Errorf("batch: grid font needs positive cell and atlas sizes")
	}
	f := &GridFont{
		texture:    cfg.Texture,
		first:      cfg.First,
		count:      cfg.Count,
		columns:    cfg.Columns,
		advance:    cfg.Advance,
		lineHeight: cfg.LineHeight,
		ascent:     cfg.Ascent,
		cell: Pt(
			cfg.CellWidth/cfg.AtlasWidth,
			cfg.CellHeight/cfg.AtlasHeight,
		),
	}
	if f.advance == 0 {
		f.advance = cfg.CellWidth
	}
	if f.lineHeight == 0 {
		f.lineHeight = cfg.CellHeight
	}
	if f.ascent == 0 {
		f.ascent = cfg.CellHeight
	}
	f.cellW, f.cellH = cfg.CellWidth, cfg.CellHeight
	return f, nil
}

// Texture returns the atlas texture id.
func (f *GridFont) Texture() int32 { return f.texture }

// LineHeight returns the vertical pen advance between lines.
func (f *GridFont) LineHeight() float32 { return f.lineHeight }

// Glyph returns the glyph for r, false if r falls outside the atlas run.
func (f *GridFont) Glyph(r rune) (Glyph, bool) {
	i := int(r - f.first)
	if i < 0 || i >= f.count {
		return Glyph{}, false
	}
	col, row := i%f.columns, i/f.columns
	uv := Pt(float32(col)*f.cell.X, float32(row)*f.cell.Y)
	return Glyph{
		Advance: f.advance,
		Bounds:  RectWH(0, -f.ascent, f.cellW, f.cellH),
		Region:  Rect{Min: uv, Max: uv.Add(f.cell)},
	}, true
}

// FaceMetrics extracts grid font advance, line height and ascent from an
// x/image font face, for atlases rasterized from such a face. Values are
// rounded from the face's 26.6 fixed-point metrics.
func FaceMetrics(face font.Face) (advance, lineHeight, ascent float32) {
	m := face.Metrics()
	adv, _ := face.GlyphAdvance('M')
	return fixedToFloat(adv), fixedToFloat(m.Height), fixedToFloat(m.Ascent)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// DrawText draws text with the given font at pos, which is the baseline
// origin of the first glyph. Newlines advance to the next line; runes the
// font has no glyph for are skipped. The batcher's sprite is switched to
// the font's atlas for the duration of the call and restored afterwards.
func (b *Batcher) DrawText(f Font, text string, pos Point, col Color) error {
	nv, ni := 0, 0
	for _, r := range text {
		if r == '\n' {
			continue
		}
		if _, ok := f.Glyph(r); ok {
			nv += 4
			ni += 6
		}
	}
	if err := b.ensure(nv, ni); err != nil {
		return err
	}

	saved := b.sprite
	defer func() { b.sprite = saved }()

	pen := pos
	for _, r := range text {
		if r == '\n' {
			pen = Pt(pos.X, pen.Y+f.LineHeight())
			continue
		}
		g, ok := f.Glyph(r)
		if !ok {
			continue
		}
		b.SetSprite(f.Texture(), g.Region)
		quad := Rect{
			Min: pen.Add(g.Bounds.Min),
			Max: pen.Add(g.Bounds.Max),
		}
		if err := b.FillRect(quad, col); err != nil {
			return err
		}
		pen.X += g.Advance
	}
	return nil
}

// MeasureText returns the size of the rectangle DrawText would cover:
// the widest line by advance, and the number of lines times the line
// height.
func MeasureText(f Font, text string) Point {
	var width, lineWidth float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			lines++
			lineWidth = 0
			continue
		}
		if g, ok := f.Glyph(r); ok {
			lineWidth += g.Advance
			width = max32(width, lineWidth)
		}
	}
	return Pt(width, float32(lines)*f.LineHeight())
}
