// Package soft provides a CPU rasterizer backend: batches render onto an
// in-memory image.RGBA with no GPU involved. It is the reference sink
// for batch output and always available.
package soft

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/batch"
	"github.com/gogpu/batch/backend"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithSupersampling renders at factor times the output resolution and
// downsamples in EndRender. Factors below 1 are treated as 1.
func WithSupersampling(factor int) Option {
	return func(r *Renderer) {
		if factor < 1 {
			factor = 1
		}
		r.scale = factor
	}
}

// Renderer rasterizes batches onto an RGBA image. Positions arriving in
// DrawBatch are interpreted as pixel coordinates, so a Batcher with the
// identity transform draws 1:1; a Batcher using SetScreenProjection
// should not target this renderer.
//
// Not safe for concurrent use.
type Renderer struct {
	out   *image.RGBA
	work  *image.RGBA
	depth []float32
	scale int

	textures []*image.RGBA
	names    map[string]int32
	fonts    map[string]int32
}

// NewRenderer creates a soft renderer targeting a width x height image.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r := &Renderer{scale: 1, names: make(map[string]int32), fonts: make(map[string]int32)}
	for _, opt := range opts {
		opt(r)
	}
	r.out = image.NewRGBA(image.Rect(0, 0, width, height))
	if r.scale > 1 {
		r.work = image.NewRGBA(image.Rect(0, 0, width*r.scale, height*r.scale))
	} else {
		r.work = r.out
	}
	wb := r.work.Bounds()
	r.depth = make([]float32, wb.Dx()*wb.Dy())
	return r
}

// Image returns the output image. Valid after EndRender.
func (r *Renderer) Image() *image.RGBA { return r.out }

// Clear fills the render target with a solid color and resets depth.
func (r *Renderer) Clear(col batch.Color) {
	c := color.RGBA{R: col.R, G: col.G, B: col.B, A: col.A}
	draw.Draw(r.work, r.work.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	r.clearDepth()
}

// AddTexture registers a named texture and returns its id. The image is
// copied into RGBA form.
func (r *Renderer) AddTexture(name string, img image.Image) int32 {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	id := int32(len(r.textures))
	r.textures = append(r.textures, rgba)
	r.names[name] = id
	return id
}

// AddFont registers a font name resolving to the given texture id.
func (r *Renderer) AddFont(name string, texture int32) {
	r.fonts[name] = texture
}

// Viewport returns the output bounds in pixels.
func (r *Renderer) Viewport() batch.Rect {
	b := r.out.Bounds()
	return batch.RectWH(0, 0, float32(b.Dx()), float32(b.Dy()))
}

// TextureSize returns the size of a texture in texels, 1x1 if unknown.
func (r *Renderer) TextureSize(id int32) batch.Point {
	if t := r.texture(id); t != nil {
		b := t.Bounds()
		return batch.Pt(float32(b.Dx()), float32(b.Dy()))
	}
	return batch.Pt(1, 1)
}

// Texture resolves a texture name, batch.TextureNone if unregistered.
func (r *Renderer) Texture(name string) int32 {
	if id, ok := r.names[name]; ok {
		return id
	}
	return batch.TextureNone
}

// Font resolves a font name, batch.TextureNone if unregistered.
func (r *Renderer) Font(name string) int32 {
	if id, ok := r.fonts[name]; ok {
		return id
	}
	return batch.TextureNone
}

// BeginRender resets the depth buffer for a new frame. The color target
// is kept; call Clear to wipe it.
func (r *Renderer) BeginRender() {
	r.clearDepth()
}

// DrawBatch rasterizes the batch's triangles onto the work image.
func (r *Renderer) DrawBatch(state batch.GraphicsState, verts []batch.Vertex, indices []uint16, start, count int, tag any) error {
	tri := triangleFill{
		dst:   r.work,
		depth: r.depth,
		state: state,
		tex:   r.texture(state.Texture),
		scale: float32(r.scale),
		clip:  r.clipRect(state.Scissor),
	}
	for i := start; i+2 < start+count; i += 3 {
		tri.fill(verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]])
	}
	return nil
}

// EndRender downsamples the supersampled work image into the output.
func (r *Renderer) EndRender() {
	if r.scale > 1 {
		xdraw.ApproxBiLinear.Scale(r.out, r.out.Bounds(), r.work, r.work.Bounds(), xdraw.Src, nil)
	}
}

func (r *Renderer) texture(id int32) *image.RGBA {
	if id < 0 || int(id) >= len(r.textures) {
		return nil
	}
	return r.textures[id]
}

// clipRect converts a scissor rect to work-image pixel bounds. A zero
// scissor means no clipping.
func (r *Renderer) clipRect(scissor batch.Rect) image.Rectangle {
	b := r.work.Bounds()
	if (scissor == batch.Rect{}) {
		return b
	}
	s := float32(r.scale)
	clip := image.Rect(
		int(math.Floor(float64(scissor.Min.X*s))),
		int(math.Floor(float64(scissor.Min.Y*s))),
		int(math.Ceil(float64(scissor.Max.X*s))),
		int(math.Ceil(float64(scissor.Max.Y*s))),
	)
	return b.Intersect(clip)
}

func (r *Renderer) clearDepth() {
	for i := range r.depth {
		r.depth[i] = math.MaxFloat32
	}
}

// Backend exposes soft renderers through the backend registry.
type Backend struct {
	initialized bool
}

func init() {
	backend.Register(backend.BackendSoft, func() backend.RenderBackend {
		return &Backend{}
	})
}

// NewBackend creates a new soft backend.
func NewBackend() *Backend { return &Backend{} }

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendSoft }

// Init initializes the backend.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *Backend) Close() { b.initialized = false }

// NewRenderer creates a soft renderer for the given size.
func (b *Backend) NewRenderer(width, height int) batch.Renderer {
	return NewRenderer(width, height)
}
