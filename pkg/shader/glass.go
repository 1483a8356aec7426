package shader

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/trace"
)

// Glass is a dielectric surface blending a refracted and a reflected trace
// by the Fresnel term. Both secondary rays recurse with derived contexts.
type Glass struct {
	Filter core.Color // Tint applied to the transmitted color
	IOR    float64
}

// NewGlass creates a clear glass shader
func NewGlass() *Glass {
	return &Glass{Filter: core.NewColor(1, 1, 1), IOR: 1.5}
}

// Evaluate implements core.Shader
func (sh *Glass) Evaluate(cxt *core.TraceContext, in *core.SurfaceInput, out *core.SurfaceOutput) {
	if in.Object == nil {
		out.Cs = sh.Filter
		out.Os = 0
		return
	}

	kr := trace.Fresnel(in.I, in.N, sh.IOR)

	refrCxt := cxt.Refract(in.Object)
	refrDir := trace.Refract(in.I, in.N, sh.IOR)
	transmitted, _, _ := trace.Trace(&refrCxt, in.P, refrDir, 0.001, math.MaxFloat64)

	reflCxt := cxt.Reflect(in.Object)
	reflDir := trace.Reflect(in.I, trace.Faceforward(in.I, in.N))
	reflected, _, _ := trace.Trace(&reflCxt, in.P, reflDir, 0.001, math.MaxFloat64)

	out.Cs = sh.Filter.Modulate(core.NewColor(
		transmitted.R*(1-kr)+reflected.R*kr,
		transmitted.G*(1-kr)+reflected.G*kr,
		transmitted.B*(1-kr)+reflected.B*kr,
	))
	out.Os = 1
}
