// Package wgpu will provide a GPU backend using gogpu/wgpu.
//
// The backend will build its render pipeline from the descriptors the
// batch package exposes: batch.VertexLayout for the vertex fetch stage,
// BlendMode.BlendState and BlendMode.ColorTarget for the color target,
// DepthMode.DepthCompare for the depth stencil state and
// RasterMode.PrimitiveState for primitive assembly. One pipeline is
// cached per distinct batch.GraphicsState; DrawBatch uploads the frame's
// vertex and index buffers once and issues one indexed draw per batch.
//
// Not yet implemented.
package wgpu
