package batch

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBlendMode_BlendState(t *testing.T) {
	if got := BlendOpaque.BlendState(); got != nil {
		t.Errorf("opaque blend state = %+v, want nil", got)
	}

	add := BlendAdditive.BlendState()
	if add == nil {
		t.Fatal("additive blend state is nil")
	}
	if add.Color.SrcFactor != gputypes.BlendFactorOne || add.Color.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("additive color factors = %v/%v, want one/one", add.Color.SrcFactor, add.Color.DstFactor)
	}

	alpha := BlendAlpha.BlendState()
	if alpha == nil {
		t.Fatal("alpha blend state is nil")
	}
	want := gputypes.BlendStatePremultiplied()
	if *alpha != want {
		t.Errorf("alpha blend state = %+v, want premultiplied", *alpha)
	}

	mul := BlendMultiply.BlendState()
	if mul.Color.SrcFactor != gputypes.BlendFactorDst || mul.Color.DstFactor != gputypes.BlendFactorZero {
		t.Errorf("multiply color factors = %v/%v, want dst/zero", mul.Color.SrcFactor, mul.Color.DstFactor)
	}
}

func TestDepthMode_DepthCompare(t *testing.T) {
	tests := []struct {
		name      string
		mode      DepthMode
		wantCmp   gputypes.CompareFunction
		wantWrite bool
	}{
		{name: "none", mode: DepthNone, wantCmp: gputypes.CompareFunctionAlways, wantWrite: false},
		{name: "read", mode: DepthRead, wantCmp: gputypes.CompareFunctionLessEqual, wantWrite: false},
		{name: "read write", mode: DepthReadWrite, wantCmp: gputypes.CompareFunctionLessEqual, wantWrite: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp, write := tt.mode.DepthCompare()
			if cmp != tt.wantCmp || write != tt.wantWrite {
				t.Errorf("DepthCompare() = %v/%v, want %v/%v", cmp, write, tt.wantCmp, tt.wantWrite)
			}
		})
	}
}

func TestRasterMode_PrimitiveState(t *testing.T) {
	none := RasterCullNone.PrimitiveState()
	if none.CullMode != gputypes.CullModeNone {
		t.Errorf("cull = %v, want none", none.CullMode)
	}
	back := RasterCullBack.PrimitiveState()
	if back.CullMode != gputypes.CullModeBack {
		t.Errorf("cull = %v, want back", back.CullMode)
	}
	if back.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("topology = %v, want triangle list", back.Topology)
	}
	if back.FrontFace != gputypes.FrontFaceCCW {
		t.Errorf("front face = %v, want CCW", back.FrontFace)
	}
}

func TestSamplerMode_Mapping(t *testing.T) {
	tests := []struct {
		name        string
		mode        SamplerMode
		wantFilter  gputypes.FilterMode
		wantAddress gputypes.AddressMode
	}{
		{name: "linear clamp", mode: SamplerLinearClamp, wantFilter: gputypes.FilterModeLinear, wantAddress: gputypes.AddressModeClampToEdge},
		{name: "linear repeat", mode: SamplerLinearRepeat, wantFilter: gputypes.FilterModeLinear, wantAddress: gputypes.AddressModeRepeat},
		{name: "nearest clamp", mode: SamplerNearestClamp, wantFilter: gputypes.FilterModeNearest, wantAddress: gputypes.AddressModeClampToEdge},
		{name: "nearest repeat", mode: SamplerNearestRepeat, wantFilter: gputypes.FilterModeNearest, wantAddress: gputypes.AddressModeRepeat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.Filter(); got != tt.wantFilter {
				t.Errorf("Filter() = %v, want %v", got, tt.wantFilter)
			}
			if got := tt.mode.AddressMode(); got != tt.wantAddress {
				t.Errorf("AddressMode() = %v, want %v", got, tt.wantAddress)
			}
		})
	}
}

func TestVertexLayout(t *testing.T) {
	l := VertexLayout()
	if l.ArrayStride != VertexStride {
		t.Errorf("stride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if len(l.Attributes) != 3 {
		t.Fatalf("attributes = %d, want 3", len(l.Attributes))
	}
	wantOffsets := []uint64{0, 12, 20}
	for i, a := range l.Attributes {
		if uint64(a.Offset) != wantOffsets[i] {
			t.Errorf("attribute %d offset = %d, want %d", i, a.Offset, wantOffsets[i])
		}
		if int(a.ShaderLocation) != i {
			t.Errorf("attribute %d location = %d", i, a.ShaderLocation)
		}
	}
}

func TestIndexFormat(t *testing.T) {
	if IndexFormat() != gputypes.IndexFormatUint16 {
		t.Errorf("IndexFormat = %v, want uint16", IndexFormat())
	}
}
