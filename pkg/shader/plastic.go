package shader

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/trace"
)

// Plastic is a classic diffuse+specular surface with optional mirror
// reflection. Reflection rays recurse through the trace engine with a
// derived reflect context.
type Plastic struct {
	Diffuse   core.Color
	Specular  core.Color
	Ambient   core.Color
	Roughness float64
	Reflect   float64
	IOR       float64
	Opacity   float64
}

// NewPlastic creates a plastic shader with neutral defaults
func NewPlastic(diffuse core.Color) *Plastic {
	return &Plastic{
		Diffuse:   diffuse,
		Specular:  core.NewColor(1, 1, 1),
		Roughness: 0.1,
		Reflect:   0.0,
		IOR:       1.4,
		Opacity:   1,
	}
}

// Evaluate implements core.Shader
func (sh *Plastic) Evaluate(cxt *core.TraceContext, in *core.SurfaceInput, out *core.SurfaceOutput) {
	nf := trace.Faceforward(in.I, in.N)

	var diff, spec core.Color
	samples := trace.NewLightSamples(in)
	for i := range samples {
		lout, ok := trace.Illuminate(cxt, &samples[i], in.P, nf, math.Pi/2, in)
		if !ok {
			continue
		}

		kd := math.Max(0, nf.Dot(lout.Ln))
		diff = diff.Add(lout.Cl.Scale(kd))

		if sh.Roughness > 0 {
			ks := trace.Phong(in.I, nf, lout.Ln.Negate(), sh.Roughness)
			spec = spec.Add(lout.Cl.Scale(ks))
		}
	}
	if len(samples) > 0 {
		inv := 1 / float64(len(samples))
		diff = diff.Scale(inv)
		spec = spec.Scale(inv)
	}

	out.Cs = sh.Ambient.
		Add(sh.Diffuse.Modulate(diff)).
		Add(sh.Specular.Modulate(spec))

	if sh.Reflect > 0 && in.Object != nil {
		reflCxt := cxt.Reflect(in.Object)
		reflDir := trace.Reflect(in.I, nf)

		refl, _, hit := trace.Trace(&reflCxt, in.P, reflDir, 0.001, math.MaxFloat64)
		if hit {
			kr := sh.Reflect * trace.Fresnel(in.I, nf, sh.IOR)
			out.Cs = out.Cs.Add(core.NewColor(refl.R, refl.G, refl.B).Scale(kr))
		}
	}

	out.Os = sh.Opacity
}
