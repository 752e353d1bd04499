package batch

// TextureNone is the texture identifier meaning "no/default texture".
// It is a valid GraphicsState value, not an error: renderers resolve it
// to whatever their untextured pipeline uses.
const TextureNone int32 = -1

// BlendMode selects how incoming fragments combine with the target.
type BlendMode uint32

// Blend modes.
const (
	// BlendAlpha is standard premultiplied alpha blending. The default.
	BlendAlpha BlendMode = iota

	// BlendAdditive adds source and destination colors.
	BlendAdditive

	// BlendMultiply multiplies destination by source.
	BlendMultiply

	// BlendOpaque overwrites the destination.
	BlendOpaque
)

// DepthMode selects depth buffer interaction.
type DepthMode uint32

// Depth modes.
const (
	// DepthNone disables the depth test. The default for 2D rendering.
	DepthNone DepthMode = iota

	// DepthRead tests against the depth buffer without writing it.
	DepthRead

	// DepthReadWrite tests against and writes the depth buffer.
	DepthReadWrite
)

// RasterMode selects rasterizer face culling.
type RasterMode uint32

// Rasterizer modes.
const (
	// RasterCullNone renders both faces. The default.
	RasterCullNone RasterMode = iota

	// RasterCullBack culls back faces.
	RasterCullBack
)

// SamplerMode selects texture filtering and addressing.
type SamplerMode uint32

// Sampler modes.
const (
	// SamplerLinearClamp is bilinear filtering with clamp-to-edge
	// addressing. The default.
	SamplerLinearClamp SamplerMode = iota

	// SamplerLinearRepeat is bilinear filtering with repeat addressing.
	SamplerLinearRepeat

	// SamplerNearestClamp is nearest filtering with clamp-to-edge
	// addressing.
	SamplerNearestClamp

	// SamplerNearestRepeat is nearest filtering with repeat addressing.
	SamplerNearestRepeat
)

// GraphicsState is the tuple of attributes that determines whether two
// pieces of geometry can share one draw call. Two states are equal iff
// every field is equal; the engine compares them with ==.
type GraphicsState struct {
	// Texture is the active texture id, TextureNone for untextured draws.
	Texture int32

	// Blend, Depth, Raster and Sampler are the active pipeline modes.
	Blend   BlendMode
	Depth   DepthMode
	Raster  RasterMode
	Sampler SamplerMode

	// Scissor is the scissor rectangle. The zero Rect means no scissor.
	Scissor Rect
}

// DefaultState returns the state tracked after Start: no texture, all
// modes at their zero value, no scissor.
func DefaultState() GraphicsState {
	return GraphicsState{Texture: TextureNone}
}
