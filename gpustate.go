package batch

import "github.com/gogpu/gputypes"

// Translation of the abstract graphics state into WebGPU-style pipeline
// descriptors. Backends that sit on gputypes-shaped APIs build their
// pipelines and samplers from these; software backends interpret the
// abstract enums directly and never touch this file.

// VertexStride is the byte size of one Vertex as laid out for upload:
// three float32 positions, two float32 UVs, one packed RGBA8 color.
const VertexStride = 24

// BlendState returns the color blend state for a blend mode. Colors are
// premultiplied alpha throughout.
func (m BlendMode) BlendState() *gputypes.BlendState {
	switch m {
	case BlendAdditive:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendMultiply:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDst,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDstAlpha,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendOpaque:
		return nil
	default: // BlendAlpha
		s := gputypes.BlendStatePremultiplied()
		return &s
	}
}

// DepthCompare returns the depth test function and whether depth writes
// are enabled for a depth mode.
func (m DepthMode) DepthCompare() (gputypes.CompareFunction, bool) {
	switch m {
	case DepthRead:
		return gputypes.CompareFunctionLessEqual, false
	case DepthReadWrite:
		return gputypes.CompareFunctionLessEqual, true
	default: // DepthNone
		return gputypes.CompareFunctionAlways, false
	}
}

// PrimitiveState returns the primitive assembly state for a raster mode.
// Geometry is emitted with counter-clockwise front faces in screen space
// (+y down).
func (m RasterMode) PrimitiveState() gputypes.PrimitiveState {
	cull := gputypes.CullModeNone
	if m == RasterCullBack {
		cull = gputypes.CullModeBack
	}
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  cull,
	}
}

// Filter returns the min/mag filter for a sampler mode.
func (m SamplerMode) Filter() gputypes.FilterMode {
	switch m {
	case SamplerNearestClamp, SamplerNearestRepeat:
		return gputypes.FilterModeNearest
	default:
		return gputypes.FilterModeLinear
	}
}

// AddressMode returns the UV address mode for a sampler mode.
func (m SamplerMode) AddressMode() gputypes.AddressMode {
	switch m {
	case SamplerLinearRepeat, SamplerNearestRepeat:
		return gputypes.AddressModeRepeat
	default:
		return gputypes.AddressModeClampToEdge
	}
}

// VertexLayout returns the interleaved vertex buffer layout matching
// Vertex: position at shader location 0, UV at 1, color at 2.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: gputypes.VertexFormatUnorm8x4, Offset: 20, ShaderLocation: 2},
		},
	}
}

// IndexFormat returns the index buffer format matching IndexBuffer.
func IndexFormat() gputypes.IndexFormat {
	return gputypes.IndexFormatUint16
}

// ColorTarget returns a color target state for the given texture format
// and blend mode.
func (m BlendMode) ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     m.BlendState(),
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}
