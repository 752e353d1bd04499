// Package headless provides a renderer that records draw calls without
// producing any output. It backs tests, batch-count tooling and dry runs.
package headless

import (
	"github.com/gogpu/batch"
	"github.com/gogpu/batch/backend"
)

// Call is one recorded DrawBatch invocation.
type Call struct {
	// State is the graphics state the batch was submitted under.
	State batch.GraphicsState

	// Start and Count locate the batch's indices in the frame's
	// index stream.
	Start, Count int

	// VertexCount is the total vertex count of the frame at submit
	// time.
	VertexCount int

	// Indices is a copy of the batch's index range.
	Indices []uint16

	// Tag is the per-batch value set via SetBatchTag, nil if none.
	Tag any
}

// Renderer records every draw call it receives. Texture and font names
// registered up front resolve to stable ids; texture sizes default to
// 1x1 so full-texture sprite regions stay the unit rectangle.
type Renderer struct {
	viewport batch.Rect
	names    map[string]int32
	fonts    map[string]int32
	sizes    map[int32]batch.Point
	next     int32

	// Frames counts BeginRender calls.
	Frames int

	// Calls holds the draw calls of the current frame, reset by
	// BeginRender.
	Calls []Call
}

// NewRenderer creates a headless renderer with the given viewport size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		viewport: batch.RectWH(0, 0, float32(width), float32(height)),
		names:    make(map[string]int32),
		fonts:    make(map[string]int32),
		sizes:    make(map[int32]batch.Point),
	}
}

// AddTexture registers a named texture of the given size and returns
// its id.
func (r *Renderer) AddTexture(name string, size batch.Point) int32 {
	id := r.next
	r.next++
	r.names[name] = id
	r.sizes[id] = size
	return id
}

// AddFont registers a named font backed by the given texture id.
func (r *Renderer) AddFont(name string, texture int32) {
	r.fonts[name] = texture
}

// Viewport returns the renderer's viewport bounds.
func (r *Renderer) Viewport() batch.Rect { return r.viewport }

// TextureSize returns the registered size of a texture, 1x1 if unknown.
func (r *Renderer) TextureSize(id int32) batch.Point {
	if s, ok := r.sizes[id]; ok {
		return s
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

// BeginRender starts a new frame, discarding the previous recording.
func (r *Renderer) BeginRender() {
	r.Frames++
	r.Calls = r.Calls[:0]
}

// DrawBatch records the call. The index range is copied; vertex data is
// not retained.
func (r *Renderer) DrawBatch(state batch.GraphicsState, verts []batch.Vertex, indices []uint16, start, count int, tag any) error {
	idx := make([]uint16, count)
	copy(idx, indices[start:start+count])
	r.Calls = append(r.Calls, Call{
		State:       state,
		Start:       start,
		Count:       count,
		VertexCount: len(verts),
		Indices:     idx,
		Tag:         tag,
	})
	return nil
}

// EndRender finishes the frame. Headless rendering has nothing to
// present.
func (r *Renderer) EndRender() {}

// Backend exposes headless renderers through the backend registry.
type Backend struct {
	initialized bool
}

func init() {
	backend.Register(backend.BackendHeadless, func() backend.RenderBackend {
		return &Backend{}
	})
}

// NewBackend creates a new headless backend.
func NewBackend() *Backend { return &Backend{} }

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendHeadless }

// Init initializes the backend.
func (b *Backend) Init() error {
	b.initialized = true
	return nil
}

// Close releases backend resources.
func (b *Backend) Close() { b.initialized = false }

// NewRenderer creates a recording renderer for the given size.
func (b *Backend) NewRenderer(width, height int) batch.Renderer {
	return NewRenderer(width, height)
}
