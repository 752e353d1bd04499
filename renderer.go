package batch

// Renderer is the backend abstraction that consumes finished batches.
//
// A renderer owns textures, fonts and the output target; the Batcher only
// ever refers to them by id. During Finish the renderer receives read-only
// views of the vertex and index buffers; it must not retain them beyond
// the call, as their contents are overwritten by the next Start.
//
// The caller brackets a frame's submissions with BeginRender and
// EndRender; Batcher.Finish must run between them.
type Renderer interface {
	// Viewport returns the current render target bounds in pixels.
	Viewport() Rect

	// TextureSize returns the dimensions of the given texture. Used to
	// size full-texture sprite regions in texel space.
	TextureSize(id int32) Point

	// Texture resolves a texture name to its id, TextureNone if unknown.
	Texture(name string) int32

	// Font resolves a font name to its id, TextureNone if unknown.
	Font(name string) int32

	// BeginRender prepares the target for a frame of DrawBatch calls.
	BeginRender()

	// DrawBatch issues one draw call: count indices starting at start,
	// indexing into verts, under the given state. tag is the opaque
	// per-batch value set via SetBatchTag, nil if none. Called once per
	// batch, in batch creation order.
	DrawBatch(state GraphicsState, verts []Vertex, indices []uint16, start, count int, tag any) error

	// EndRender finalizes the frame (present, resolve, encode).
	EndRender()
}
