// Package backend provides a pluggable rendering backend abstraction.
//
// The backend package lets finished batches from batch.Batcher.Finish
// flow to different sinks: a CPU rasterizer, a recording renderer for
// tests and tools, or a GPU via gogpu/wgpu.
//
// # Backend Registration
//
// Backends register themselves via init() functions and are selected at
// runtime. Importing a backend package registers it:
//
//	import _ "github.com/gogpu/batch/backend/soft"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("soft")
//
// # Usage with Batcher
//
// Backends hand out renderers that implement batch.Renderer:
//
//	b := backend.Default()
//	if err := b.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	r := b.NewRenderer(800, 600)
//
//	bt := batch.New()
//	bt.SetScreenProjection(r)
//	bt.FillRect(batch.RectWH(10, 10, 100, 50), batch.Red)
//
//	r.BeginRender()
//	if err := bt.Finish(r); err != nil {
//		log.Fatal(err)
//	}
//	r.EndRender()
//
// # Available Backends
//
// - "soft": CPU triangle rasterizer onto an image.RGBA (always available)
// - "headless": records draw calls, produces no output (always available)
// - "wgpu": GPU-accelerated via gogpu/wgpu (future)
package backend
