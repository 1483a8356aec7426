package trace

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// raymarchVolume integrates the volume intervals overlapping the ray by
// fixed-step marching. Overlapping volumes merge by maximum opacity, not by
// sum, to avoid over-darkening in overlap regions. The march terminates
// once accumulated alpha reaches the opacity threshold (alpha then snaps
// to exactly 1) or once it passes the interval or ray limit.
func raymarchVolume(cxt *core.TraceContext, ray core.Ray) (core.Color4, bool) {
	acc := cxt.Target.VolumeAccelerator()
	if acc == nil {
		return core.Color4{}, false
	}

	intervals, hit := acc.Intersect(ray, cxt.Time)
	if !hit {
		return core.Color4{}, false
	}

	tDelta := cxt.StepSize()
	opacityThreshold := cxt.OpacityThreshold

	tLimit := math.Min(intervals.MaxT(), ray.TMax)

	// First step-aligned position at or after the entry point; an origin
	// inside a volume starts one step in
	tStart := intervals.MinT()
	if tStart < 0 {
		tStart = tDelta
	} else {
		tStart = tStart - math.Mod(tStart, tDelta) + tDelta
	}

	p := ray.At(tStart)
	rayDelta := ray.Direction.Multiply(tDelta)
	t := tStart

	var out core.Color4
	for t <= tLimit && out.A < opacityThreshold {
		var color core.Color
		opacity := 0.0

		for _, interval := range intervals.Intervals() {
			if t < interval.TMin || t > interval.TMax {
				continue
			}

			sample, ok := interval.Object.VolumeSample(p, cxt.Time)
			if !ok {
				continue
			}

			opacity = math.Max(opacity, tDelta*sample.Density)

			// Shadow rays compute opacity only
			if cxt.RayClass == core.ShadowRay {
				continue
			}

			in := core.SurfaceInput{P: p}
			var sout core.SurfaceOutput
			if shader := interval.Object.Shader(); shader != nil {
				shader.Evaluate(cxt, &in, &sout)
			} else {
				sout.Cs = NoShaderColor
				sout.Os = 1
			}

			color = sout.Cs.Scale(opacity)
		}

		w := 1 - out.A
		out.R += color.R * w
		out.G += color.G * w
		out.B += color.B * w
		out.A += core.Clamp01(opacity) * w

		p = p.Add(rayDelta)
		t += tDelta
	}

	if out.A >= opacityThreshold {
		out.A = 1
	}
	out.A = core.Clamp01(out.A)

	return out, true
}
