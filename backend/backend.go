package backend

import (
	"errors"

	"github.com/gogpu/batch"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoft is the name of the CPU rasterizer backend.
	BackendSoft = "soft"
	// BackendHeadless is the name of the recording backend with no output.
	BackendHeadless = "headless"
	// BackendWGPU is the name of the GPU backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)

// RenderBackend is the interface for rendering backends.
// It abstracts where batches end up, allowing the library to target
// multiple sinks (CPU rasterizer, GPU via wgpu, recording for tests).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "soft", "wgpu").
	Name() string

	// Init initializes the backend.
	// This should be called before creating renderers.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewRenderer creates a renderer targeting a width x height
	// surface. The renderer consumes batches via batch.Batcher.Finish.
	NewRenderer(width, height int) batch.Renderer
}
