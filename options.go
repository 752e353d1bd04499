package batch

// Default buffer capacities. The 4:6 ratio matches quad-heavy workloads,
// where each quad consumes 4 vertices and 6 indices.
const (
	DefaultVertexCapacity = 8192
	DefaultIndexCapacity  = 12288

	// MaxVertexCapacity is the largest vertex capacity addressable by the
	// 16-bit index buffer.
	MaxVertexCapacity = 1 << 16
)

// Option configures a Batcher during creation.
//
// Example:
//
//	// Default fixed-capacity buffers
//	b := batch.New()
//
//	// Larger buffers for geometry-heavy frames
//	b := batch.New(
//		batch.WithVertexCapacity(32768),
//		batch.WithIndexCapacity(49152),
//	)
type Option func(*options)

// options holds optional configuration for Batcher creation.
type options struct {
	vertexCapacity int
	indexCapacity  int
	growable       bool
}

// defaultOptions returns the default batcher options.
func defaultOptions() options {
	return options{
		vertexCapacity: DefaultVertexCapacity,
		indexCapacity:  DefaultIndexCapacity,
	}
}

// WithVertexCapacity sets the vertex buffer capacity. Values above
// MaxVertexCapacity are clamped, since indices are 16-bit.
func WithVertexCapacity(n int) Option {
	return func(o *options) {
		o.vertexCapacity = n
	}
}

// WithIndexCapacity sets the index buffer capacity.
func WithIndexCapacity(n int) Option {
	return func(o *options) {
		o.indexCapacity = n
	}
}

// WithGrowableBuffers makes the buffers grow instead of failing with
// ErrBufferOverflow. The configured capacities become initial
// allocations; the vertex buffer still cannot exceed MaxVertexCapacity.
func WithGrowableBuffers() Option {
	return func(o *options) {
		o.growable = true
	}
}
