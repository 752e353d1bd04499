// Package batch provides a platform-agnostic 2D draw-call batcher.
//
// # Overview
//
// batch accumulates shape and primitive draw requests (lines, triangles,
// quads, circles, rounded rectangles, curves, text) into shared vertex and
// index buffers. Consecutive requests that share rendering state are
// coalesced into a single batch, so a frame of many draw calls reaches the
// GPU as few draw calls as possible. Finished batches are handed to a
// Renderer, the backend abstraction that issues the actual draw calls.
//
// # Quick Start
//
//	import "github.com/gogpu/batch"
//
//	b := batch.New()
//	r := soft.NewRenderer(640, 480) // or any other batch.Renderer
//
//	// Per frame:
//	b.Start()
//	b.SetTexture(7)
//	b.FillRect(batch.RectWH(10, 10, 100, 50), batch.White)
//	b.FillCircle(batch.Pt(320, 240), 64, batch.Red, 48)
//
//	r.BeginRender()
//	if err := b.Finish(r); err != nil {
//		log.Fatal(err)
//	}
//	r.EndRender()
//
// # Batching Model
//
// A batch is a maximal run of geometry sharing one GraphicsState: texture,
// blend mode, depth mode, rasterizer mode, sampler mode and scissor
// rectangle. Every geometry-adding operation first compares the state
// implied by the current settings against the state of the open batch; on
// any difference the open batch is closed and a new one begins. Changing
// only the active sprite's UV region never breaks a batch; changing its
// texture does.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Angles in radians, 0 is right, increasing clockwise
//
// Vertex positions are transformed by the current transform matrix at the
// moment they are appended; later transform changes do not affect geometry
// already in the buffers.
//
// # Buffers
//
// The vertex and index buffers are fixed-capacity by default. Capacity is
// checked before any geometry is appended, so a draw call that would
// overflow fails with ErrBufferOverflow without partial writes. Use
// WithGrowableBuffers to opt into amortized growth instead.
//
// # Renderers
//
// The backend/headless package provides no-op and recording renderers for
// tests and tooling. The backend/soft package provides a CPU reference
// rasterizer. A GPU backend builds its pipeline state directly from
// GraphicsState via the gputypes mappings in this package.
package batch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
