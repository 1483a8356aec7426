package trace

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Light color below this on every channel is treated as unlit
const lightIntensityThreshold = 0.0001

// Shadow rays start slightly off the shading point to avoid
// self-intersection
const shadowRayTMin = 0.0001

// LightOutput is the result of one successful Illuminate query
type LightOutput struct {
	Ln       core.Vec3 // Normalized direction toward the light sample
	Cl       core.Color
	Distance float64
}

// Illuminate computes the illumination reaching position from one light
// sample. The cone (axis, half-angle) restricts which samples count.
// Samples outside the cone, lights with near-zero emitted color, and
// queries made by shadow rays all report ok=false. With shadow casting
// enabled the light color is attenuated by the occluder's alpha
// complement, giving partial opacity-weighted shadows.
func Illuminate(cxt *core.TraceContext, sample *core.LightSample, position core.Vec3,
	axis core.Vec3, angle float64, in *core.SurfaceInput) (LightOutput, bool) {

	var out LightOutput

	out.Ln = sample.P.Subtract(position)
	out.Distance = out.Ln.Length()
	if out.Distance > 0 {
		out.Ln = out.Ln.Multiply(1 / out.Distance)
	}

	cosAngle := axis.Normalize().Dot(out.Ln)
	if cosAngle < math.Cos(angle) {
		return out, false
	}

	lightColor := sample.Light.Illuminate(sample, position)
	if lightColor.R < lightIntensityThreshold &&
		lightColor.G < lightIntensityThreshold &&
		lightColor.B < lightIntensityThreshold {
		return out, false
	}

	// A shadow ray never casts further light queries
	if cxt.RayClass == core.ShadowRay {
		return out, false
	}

	if cxt.CastShadow {
		shadCxt := cxt.Shadow(in.Object)
		occlusion, _, hit := Trace(&shadCxt, position, out.Ln, shadowRayTMin, out.Distance)
		if hit {
			lightColor = lightColor.Scale(1 - occlusion.A)
		}
	}

	out.Cl = lightColor
	return out, true
}

// LightSampleCount returns the total sample budget over the shaded
// object's lights
func LightSampleCount(in *core.SurfaceInput) int {
	if in.Object == nil {
		return 0
	}

	count := 0
	for _, light := range in.Object.Lights() {
		count += light.SampleCount()
	}
	return count
}

// NewLightSamples gathers one batch of samples from every light bound to
// the shaded object. Returns nil when no samples are available.
func NewLightSamples(in *core.SurfaceInput) []core.LightSample {
	total := LightSampleCount(in)
	if total == 0 {
		return nil
	}

	samples := make([]core.LightSample, total)
	filled := 0
	for _, light := range in.Object.Lights() {
		filled += light.GetSamples(samples[filled : filled+light.SampleCount()])
	}

	return samples[:filled]
}
