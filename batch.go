package batch

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Batch describes one closed batch: a state-homogeneous run of indices.
// Batches are immutable once created and submitted to the renderer in
// creation order.
type Batch struct {
	// State is the graphics state captured when the batch closed.
	State GraphicsState

	// Start is the offset of the batch's first index in the index buffer.
	Start int

	// Count is the number of indices in the batch.
	Count int

	// Tag is the opaque per-batch value set via SetBatchTag, nil if none.
	Tag any
}

// Batcher accumulates draw calls into shared vertex/index buffers and
// coalesces state-stable runs of geometry into batches.
//
// A Batcher is not safe for concurrent use: all drawing calls for a frame
// must come from one goroutine. No operation blocks.
//
// The frame lifecycle is Start, draw calls, Finish. Start resets the
// buffers and the tracked graphics state; Finish closes the trailing
// batch and submits everything to a Renderer. Buffer contents are
// overwritten, not freed, by the next Start.
type Batcher struct {
	verts *VertexBuffer
	idx   *IndexBuffer

	// transform is applied to vertex positions as they are appended.
	transform mgl32.Mat4

	// Pending draw settings, folded into a GraphicsState by computeState
	// at the top of every geometry-adding operation.
	sprite  Sprite
	blend   BlendMode
	depth   DepthMode
	raster  RasterMode
	sampler SamplerMode
	scissor Rect

	// Open batch bookkeeping.
	state        GraphicsState // state the open batch was started under
	batchStart   int           // index offset of the open batch
	batchIndices int           // indices appended to the open batch
	batchTag     any           // user tag bound to the open batch
	pendingTag   any           // user tag awaiting its first geometry

	batches []Batch
}

// New creates a Batcher. With no options the buffers are fixed-capacity
// (DefaultVertexCapacity/DefaultIndexCapacity) and a draw call that would
// overflow them fails with ErrBufferOverflow.
func New(opts ...Option) *Batcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.vertexCapacity > MaxVertexCapacity {
		Logger().Warn("batch: vertex capacity clamped to index range",
			slog.Int("requested", o.vertexCapacity),
			slog.Int("max", MaxVertexCapacity))
	}
	b := &Batcher{
		verts:     NewVertexBuffer(o.vertexCapacity, o.growable),
		idx:       NewIndexBuffer(o.indexCapacity, o.growable),
		transform: mgl32.Ident4(),
	}
	b.Start()
	return b
}

// Start resets the buffers, the batch list and the tracked graphics state
// for a new frame. It must be called before each frame's draw calls and
// is idempotent. The transform is deliberately not reset; it usually
// outlives a frame.
func (b *Batcher) Start() {
	b.verts.Reset()
	b.idx.Reset()
	b.batches = b.batches[:0]
	b.batchStart = 0
	b.batchIndices = 0
	b.sprite = NoSprite()
	b.blend = BlendAlpha
	b.depth = DepthNone
	b.raster = RasterCullNone
	b.sampler = SamplerLinearClamp
	b.scissor = Rect{}
	b.state = DefaultState()
	b.batchTag = nil
	b.pendingTag = nil
}

// Clear is an alias for Start.
func (b *Batcher) Clear() { b.Start() }

// SetTransform sets the matrix applied to vertex positions as they are
// appended. It does not affect geometry already in the buffers.
func (b *Batcher) SetTransform(m mgl32.Mat4) { b.transform = m }

// Transform returns the active transform matrix.
func (b *Batcher) Transform() mgl32.Mat4 { return b.transform }

// SetScreenProjection sets an orthographic projection covering the
// renderer's current viewport, for standard 2D screen-space rendering:
// the viewport's top-left maps to NDC (-1,1) and its bottom-right to
// (1,-1), keeping +y down in input coordinates.
func (b *Batcher) SetScreenProjection(r Renderer) {
	vp := r.Viewport()
	b.transform = mgl32.Ortho(vp.Min.X, vp.Max.X, vp.Max.Y, vp.Min.Y, -1, 1)
}

// SetTexture sets the active texture with a full unit UV region.
// Setting the same id again is a no-op for batching purposes.
func (b *Batcher) SetTexture(id int32) {
	b.sprite = Sprite{Texture: id, Region: UnitRect()}
}

// SetSprite sets the active texture and the sub-region used for UV
// mapping. Changing only the region (same texture) never breaks a batch.
func (b *Batcher) SetSprite(id int32, region Rect) {
	b.sprite = Sprite{Texture: id, Region: region}
}

// SetTextureNamed resolves name through the renderer and activates the
// texture with a full texel-space region sized via TextureSize. An
// unknown name yields TextureNone, which is a valid (untextured) state,
// not an error. Returns the resolved id.
func (b *Batcher) SetTextureNamed(r Renderer, name string) int32 {
	id := r.Texture(name)
	if id == TextureNone {
		b.SetTexture(id)
		return id
	}
	size := r.TextureSize(id)
	b.SetSprite(id, NewRect(Point{}, size))
	return id
}

// Sprite returns the active sprite.
func (b *Batcher) Sprite() Sprite { return b.sprite }

// SetBlendMode sets the blend mode for subsequent geometry.
func (b *Batcher) SetBlendMode(m BlendMode) { b.blend = m }

// SetDepthMode sets the depth mode for subsequent geometry.
func (b *Batcher) SetDepthMode(m DepthMode) { b.depth = m }

// SetRasterMode sets the rasterizer mode for subsequent geometry.
func (b *Batcher) SetRasterMode(m RasterMode) { b.raster = m }

// SetSamplerMode sets the sampler mode for subsequent geometry.
func (b *Batcher) SetSamplerMode(m SamplerMode) { b.sampler = m }

// SetScissor sets the scissor rectangle for subsequent geometry.
// The zero Rect disables scissoring.
func (b *Batcher) SetScissor(r Rect) { b.scissor = r }

// SetBatchTag attaches an opaque value to the batch that receives the
// next geometry: a tag set between draw calls travels with the following
// batch even when a state change closes the current one first. Calling
// Flush or Finish while the tag is still unbound attaches it to the
// batch being closed instead, emitting a zero-geometry batch descriptor
// if that batch is empty — which lets clients mark a point in the
// submission stream (say, to force a backend state change the tracked
// attributes do not cover).
func (b *Batcher) SetBatchTag(tag any) { b.pendingTag = tag }

// VertexCount returns the number of vertices appended since Start.
func (b *Batcher) VertexCount() int { return b.verts.Len() }

// IndexCount returns the number of indices appended since Start.
func (b *Batcher) IndexCount() int { return b.idx.Len() }

// BatchCount returns the number of closed batches since Start.
func (b *Batcher) BatchCount() int { return len(b.batches) }

// Batches returns a read-only view of the closed batches. Valid until
// the next Start.
func (b *Batcher) Batches() []Batch { return b.batches }

// computeState folds the pending draw settings into the GraphicsState
// they imply. This is the single predicate deciding batch breaks.
func (b *Batcher) computeState() GraphicsState {
	return GraphicsState{
		Texture: b.sprite.Texture,
		Blend:   b.blend,
		Depth:   b.depth,
		Raster:  b.raster,
		Sampler: b.sampler,
		Scissor: b.scissor,
	}
}

// applyState runs the state-change check: if the pending settings imply a
// state different from the open batch's, the open batch is closed and the
// new state becomes current. A pending user tag then binds to the batch
// the incoming geometry lands in, never to the one a state change just
// closed. Called at the top of every geometry-adding operation, after
// validation, so failed calls never close a batch.
func (b *Batcher) applyState() {
	s := b.computeState()
	if s != b.state {
		b.closeBatch()
		b.state = s
	}
	if b.pendingTag != nil {
		b.batchTag = b.pendingTag
		b.pendingTag = nil
	}
}

// ensure verifies that nv vertices and ni indices fit the buffers.
// Capacity is checked up front so a failing draw call appends nothing.
func (b *Batcher) ensure(nv, ni int) error {
	if !b.verts.Fits(nv) || !b.idx.Fits(ni) {
		return ErrBufferOverflow
	}
	return nil
}

// appendVertex transforms v by the active matrix and appends it.
// Callers must have reserved capacity via ensure.
func (b *Batcher) appendVertex(v Vertex) uint16 {
	p := b.transform.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
	v.X, v.Y, v.Z = p.X(), p.Y(), p.Z()
	i, _ := b.verts.Append(v)
	return i
}

// appendIndices appends indices to the buffer and the open batch.
// Callers must have reserved capacity via ensure.
func (b *Batcher) appendIndices(indices ...uint16) {
	for _, i := range indices {
		_ = b.idx.Append(i)
	}
	b.batchIndices += len(indices)
}

// AddVertex appends a single vertex after the state-change check and
// returns its buffer index, for callers assembling custom indexed
// geometry together with AddIndex.
func (b *Batcher) AddVertex(v Vertex) (uint16, error) {
	if err := b.ensure(1, 0); err != nil {
		return 0, err
	}
	b.applyState()
	return b.appendVertex(v), nil
}

// AddIndex appends a single index into previously added vertices.
// Indices must refer to vertices already in the buffer.
func (b *Batcher) AddIndex(i uint16) error {
	if int(i) >= b.verts.Len() {
		return fmt.Errorf("%w: index %d, %d vertices", ErrIndexOutOfRange, i, b.verts.Len())
	}
	if err := b.ensure(0, 1); err != nil {
		return err
	}
	b.applyState()
	b.appendIndices(i)
	return nil
}

// FillQuad appends the four vertices and the six indices of two triangles
// covering the quadrilateral v0-v1-v2-v3 (corners in order around the
// perimeter). The triangles are 0-1-3 and 3-1-2, sharing the v1-v3
// diagonal.
func (b *Batcher) FillQuad(v0, v1, v2, v3 Vertex) error {
	if err := b.ensure(4, 6); err != nil {
		return err
	}
	b.applyState()
	base := b.appendVertex(v0)
	b.appendVertex(v1)
	b.appendVertex(v2)
	b.appendVertex(v3)
	b.appendIndices(base, base+1, base+3, base+3, base+1, base+2)
	return nil
}

// FillTriangleStrip appends the vertices and strip indices for a triangle
// strip: once three vertices are present, each new vertex forms one
// triangle with the preceding two. Requires at least 3 vertices.
func (b *Batcher) FillTriangleStrip(verts []Vertex) error {
	if len(verts) < 3 {
		return fmt.Errorf("%w: triangle strip needs 3 vertices, got %d", ErrInsufficientVertices, len(verts))
	}
	if err := b.ensure(len(verts), (len(verts)-2)*3); err != nil {
		return err
	}
	b.applyState()
	base := b.appendVertex(verts[0])
	for _, v := range verts[1:] {
		b.appendVertex(v)
	}
	for i := 2; i < len(verts); i++ {
		n := base + uint16(i)
		b.appendIndices(n-2, n-1, n)
	}
	return nil
}

// FillTriangleFan appends a triangle fan: every triangle shares center
// plus a pair of adjacent perimeter vertices. Requires at least 3
// perimeter vertices.
func (b *Batcher) FillTriangleFan(center Vertex, verts []Vertex) error {
	if len(verts) < 3 {
		return fmt.Errorf("%w: triangle fan needs 3 perimeter vertices, got %d", ErrInsufficientVertices, len(verts))
	}
	if err := b.ensure(len(verts)+1, (len(verts)-1)*3); err != nil {
		return err
	}
	b.applyState()
	c := b.appendVertex(center)
	for _, v := range verts {
		b.appendVertex(v)
	}
	for i := 1; i < len(verts); i++ {
		b.appendIndices(c, c+uint16(i), c+uint16(i)+1)
	}
	return nil
}

// Flush closes the open batch, capturing its state, index start offset
// and index count. A tag still awaiting geometry binds to the closing
// batch, so a tag alone emits a zero-geometry marker batch. With zero
// indices and no tag at all, Flush is a no-op, so state changes between
// draw calls never produce empty batches.
func (b *Batcher) Flush() {
	if b.batchTag == nil {
		b.batchTag = b.pendingTag
		b.pendingTag = nil
	}
	b.closeBatch()
}

// closeBatch emits the open batch's descriptor if it holds indices or a
// bound tag. A pending (unbound) tag is left for the next batch.
func (b *Batcher) closeBatch() {
	if b.batchIndices == 0 && b.batchTag == nil {
		return
	}
	b.batches = append(b.batches, Batch{
		State: b.state,
		Start: b.batchStart,
		Count: b.batchIndices,
		Tag:   b.batchTag,
	})
	Logger().Debug("batch: flush",
		slog.Int("start", b.batchStart),
		slog.Int("indices", b.batchIndices),
		slog.Int("texture", int(b.state.Texture)))
	b.batchStart += b.batchIndices
	b.batchIndices = 0
	b.batchTag = nil
}

// Finish closes the trailing batch and submits every batch, in creation
// order, to the renderer together with read-only views of the buffers.
// The renderer must not retain the views beyond the call.
func (b *Batcher) Finish(r Renderer) error {
	b.Flush()
	verts := b.verts.Vertices()
	indices := b.idx.Indices()
	for i, bt := range b.batches {
		if err := r.DrawBatch(bt.State, verts, indices, bt.Start, bt.Count, bt.Tag); err != nil {
			return fmt.Errorf("batch: submit batch %d: %w", i, err)
		}
	}
	Logger().Debug("batch: finish",
		slog.Int("batches", len(b.batches)),
		slog.Int("vertices", b.verts.Len()),
		slog.Int("indices", b.idx.Len()))
	return nil
}
