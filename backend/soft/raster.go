package soft

import (
	"image"
	"math"

	"github.com/gogpu/batch"
)

// triangleFill rasterizes one batch's triangles under a fixed state.
// Coverage is point sampling at pixel centers; half-space edge functions
// decide inclusion, barycentric weights interpolate depth, UV and color.
type triangleFill struct {
	dst   *image.RGBA
	depth []float32
	state batch.GraphicsState
	tex   *image.RGBA
	scale float32
	clip  image.Rectangle
}

// rgba is a color in normalized float form.
type rgba [4]float32

func unpackf(packed uint32) rgba {
	c := batch.Unpack(packed)
	return rgba{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (t *triangleFill) fill(v0, v1, v2 batch.Vertex) {
	x0, y0 := v0.X*t.scale, v0.Y*t.scale
	x1, y1 := v1.X*t.scale, v1.Y*t.scale
	x2, y2 := v2.X*t.scale, v2.Y*t.scale

	// Positive area means front-facing: batch geometry winds clockwise
	// in +y-down pixel space, which the y-flipping screen projection
	// turns into CCW front faces on a GPU.
	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		if t.state.Raster == batch.RasterCullBack {
			return
		}
		v1, v2 = v2, v1
		x1, y1, x2, y2 = x2, y2, x1, y1
		area = -area
	}

	minX := int(math.Floor(float64(min3(x0, x1, x2))))
	minY := int(math.Floor(float64(min3(y0, y1, y2))))
	maxX := int(math.Ceil(float64(max3(x0, x1, x2))))
	maxY := int(math.Ceil(float64(max3(y0, y1, y2))))
	if minX < t.clip.Min.X {
		minX = t.clip.Min.X
	}
	if minY < t.clip.Min.Y {
		minY = t.clip.Min.Y
	}
	if maxX > t.clip.Max.X {
		maxX = t.clip.Max.X
	}
	if maxY > t.clip.Max.Y {
		maxY = t.clip.Max.Y
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	c0, c1, c2 := unpackf(v0.Color), unpackf(v1.Color), unpackf(v2.Color)
	stride := t.dst.Bounds().Dx()

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			cx, cy := float32(px)+0.5, float32(py)+0.5
			w0 := edge(x1, y1, x2, y2, cx, cy)
			w1 := edge(x2, y2, x0, y0, cx, cy)
			w2 := edge(x0, y0, x1, y1, cx, cy)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			b0, b1, b2 := w0/area, w1/area, w2/area

			if t.state.Depth != batch.DepthNone {
				z := b0*v0.Z + b1*v1.Z + b2*v2.Z
				di := py*stride + px
				if z > t.depth[di] {
					continue
				}
				if t.state.Depth == batch.DepthReadWrite {
					t.depth[di] = z
				}
			}

			src := rgba{
				b0*c0[0] + b1*c1[0] + b2*c2[0],
				b0*c0[1] + b1*c1[1] + b2*c2[1],
				b0*c0[2] + b1*c1[2] + b2*c2[2],
				b0*c0[3] + b1*c1[3] + b2*c2[3],
			}
			if t.tex != nil {
				u := b0*v0.U + b1*v1.U + b2*v2.U
				v := b0*v0.V + b1*v1.V + b2*v2.V
				texel := t.sample(u, v)
				src[0] *= texel[0]
				src[1] *= texel[1]
				src[2] *= texel[2]
				src[3] *= texel[3]
			}

			t.blend(px, py, src)
		}
	}
}

// sample fetches a texel at normalized UV per the state's sampler mode.
func (t *triangleFill) sample(u, v float32) rgba {
	b := t.tex.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	switch t.state.Sampler {
	case batch.SamplerLinearRepeat, batch.SamplerNearestRepeat:
		u -= float32(math.Floor(float64(u)))
		v -= float32(math.Floor(float64(v)))
	}

	switch t.state.Sampler {
	case batch.SamplerNearestClamp, batch.SamplerNearestRepeat:
		return t.texel(int(u*w), int(v*h))
	}

	// Bilinear: sample the four texels around the UV point.
	fx := u*w - 0.5
	fy := v*h - 0.5
	ix := int(math.Floor(float64(fx)))
	iy := int(math.Floor(float64(fy)))
	dx := fx - float32(ix)
	dy := fy - float32(iy)

	t00 := t.texel(ix, iy)
	t10 := t.texel(ix+1, iy)
	t01 := t.texel(ix, iy+1)
	t11 := t.texel(ix+1, iy+1)

	var out rgba
	for i := 0; i < 4; i++ {
		top := t00[i]*(1-dx) + t10[i]*dx
		bot := t01[i]*(1-dx) + t11[i]*dx
		out[i] = top*(1-dy) + bot*dy
	}
	return out
}

// texel fetches one texel with indices clamped to the texture bounds.
// Repeat addressing wraps UVs before the fetch, so clamping here only
// guards the edges.
func (t *triangleFill) texel(x, y int) rgba {
	b := t.tex.Bounds()
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x > b.Dx()-1 {
		x = b.Dx() - 1
	}
	if y > b.Dy()-1 {
		y = b.Dy() - 1
	}
	i := t.tex.PixOffset(b.Min.X+x, b.Min.Y+y)
	p := t.tex.Pix[i : i+4 : i+4]
	return rgba{float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255}
}

// blend combines src into the destination pixel per the state's blend
// mode. Source colors are straight alpha.
func (t *triangleFill) blend(px, py int, src rgba) {
	i := t.dst.PixOffset(px, py)
	p := t.dst.Pix[i : i+4 : i+4]
	dst := rgba{float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255}

	var out rgba
	switch t.state.Blend {
	case batch.BlendAdditive:
		for c := 0; c < 3; c++ {
			out[c] = dst[c] + src[c]*src[3]
		}
		out[3] = dst[3] + src[3]
	case batch.BlendMultiply:
		for c := 0; c < 3; c++ {
			out[c] = dst[c] * src[c]
		}
		out[3] = dst[3]
	case batch.BlendOpaque:
		out = src
	default: // BlendAlpha
		a := src[3]
		for c := 0; c < 3; c++ {
			out[c] = src[c]*a + dst[c]*(1-a)
		}
		out[3] = a + dst[3]*(1-a)
	}

	for c := 0; c < 4; c++ {
		p[c] = uint8(clamp01(out[c])*255 + 0.5)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
