// Package trace implements the recursive shading engine: surface tracing,
// volumetric raymarching and light queries, orchestrated per ray by Trace.
package trace

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// NoShaderColor is the diagnostic color substituted when a hit object has
// no shader bound. It is a deliberate visible marker, not an error.
var NoShaderColor = core.NewColor(0.5, 1.0, 0.0)

// Trace evaluates one ray: nearest surface hit, shader evaluation,
// volumetric raymarch, and over-compositing of volume in front of surface.
// It returns the composited RGBA sample, the surface hit distance, and
// whether anything (surface or volume) was hit. A terminal context returns
// a fully transparent sample with no hit; this is the recursion base case.
func Trace(cxt *core.TraceContext, origin, direction core.Vec3, tMin, tMax float64) (core.Color4, float64, bool) {
	if cxt.ReachedBounceLimit() {
		return core.Color4{}, math.MaxFloat64, false
	}

	ray := core.NewRay(origin, direction, tMin, tMax)

	surfaceColor, tHit, hitSurface := traceSurface(cxt, ray)

	// Bound shadow-ray cost on deeply opaque occluders: skip volumetrics
	// once the surface alone exceeds the opacity threshold
	if cxt.RayClass == core.ShadowRay && surfaceColor.A > cxt.OpacityThreshold {
		return surfaceColor, tHit, true
	}

	// Integrate volume in front of the surface but nothing behind it
	if hitSurface {
		ray.TMax = tHit
	}

	volumeColor, hitVolume := raymarchVolume(cxt, ray)

	return volumeColor.Over(surfaceColor), tHit, hitSurface || hitVolume
}

// SurfaceRayIntersect is a geometric-only probe for shaders that need the
// hit position, normal and distance without any shading evaluation
func SurfaceRayIntersect(cxt *core.TraceContext, origin, direction core.Vec3, tMin, tMax float64) (core.Vec3, core.Vec3, float64, bool) {
	ray := core.NewRay(origin, direction, tMin, tMax)

	acc := cxt.Target.SurfaceAccelerator()
	isect, hit := acc.Intersect(ray, cxt.Time)
	if !hit {
		return core.Vec3{}, core.Vec3{}, 0, false
	}

	return isect.P, isect.N, isect.THit, true
}

// traceSurface queries the surface accelerator for the nearest hit and
// evaluates its shader
func traceSurface(cxt *core.TraceContext, ray core.Ray) (core.Color4, float64, bool) {
	acc := cxt.Target.SurfaceAccelerator()
	isect, hit := acc.Intersect(ray, cxt.Time)
	if !hit {
		return core.Color4{}, math.MaxFloat64, false
	}

	in := surfaceInput(&isect, ray)
	var out core.SurfaceOutput

	if shader := isect.HitShader(); shader != nil {
		shader.Evaluate(cxt, &in, &out)
	} else {
		out.Cs = NoShaderColor
		out.Os = 1
	}

	out.Os = core.Clamp01(out.Os)
	rgba := core.Color4{R: out.Cs.R, G: out.Cs.G, B: out.Cs.B, A: out.Os}

	return rgba, isect.THit, true
}

func surfaceInput(isect *core.Intersection, ray core.Ray) core.SurfaceInput {
	return core.SurfaceInput{
		Object: isect.Object,
		P:      isect.P,
		N:      isect.N,
		I:      ray.Direction,
		Cd:     isect.Cd,
		UV:     isect.UV,
		DPdu:   isect.DPdu,
		DPdv:   isect.DPdv,
	}
}
