package trace

import (
	"math"
	"testing"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// stubLight for testing
type stubLight struct {
	color    core.Color
	position core.Vec3
	count    int
}

func (l *stubLight) Illuminate(sample *core.LightSample, position core.Vec3) core.Color {
	return l.color
}

func (l *stubLight) SampleCount() int {
	return l.count
}

func (l *stubLight) GetSamples(samples []core.LightSample) int {
	n := len(samples)
	if l.count < n {
		n = l.count
	}
	for i := 0; i < n; i++ {
		samples[i] = core.LightSample{Light: l, P: l.position, Color: l.color}
	}
	return n
}

func openCxt() core.TraceContext {
	cxt := core.NewCameraContext(&stubTarget{})
	cxt.CastShadow = false
	return cxt
}

func TestIlluminateBasicQuery(t *testing.T) {
	light := &stubLight{color: core.NewColor(1, 0.9, 0.8), position: core.NewVec3(0, 10, 0), count: 1}
	sample := core.LightSample{Light: light, P: light.position}

	cxt := openCxt()
	position := core.NewVec3(0, 0, 0)
	axis := core.NewVec3(0, 1, 0)

	out, ok := Illuminate(&cxt, &sample, position, axis, math.Pi/2, &core.SurfaceInput{})
	if !ok {
		t.Fatal("Expected illumination")
	}
	if out.Cl != light.color {
		t.Errorf("Expected unattenuated light color, got %v", out.Cl)
	}
	if math.Abs(out.Distance-10) > 1e-9 {
		t.Errorf("Expected distance 10, got %f", out.Distance)
	}
	if math.Abs(out.Ln.Y-1) > 1e-9 {
		t.Errorf("Expected direction (0,1,0), got %v", out.Ln)
	}
}

func TestIlluminateConeRejection(t *testing.T) {
	light := &stubLight{color: core.NewColor(1, 1, 1), position: core.NewVec3(0, 10, 0), count: 1}
	sample := core.LightSample{Light: light, P: light.position}

	cxt := openCxt()
	position := core.NewVec3(0, 0, 0)

	// Light sits directly behind the cone axis
	axis := core.NewVec3(0, -1, 0)
	if _, ok := Illuminate(&cxt, &sample, position, axis, math.Pi/2, &core.SurfaceInput{}); ok {
		t.Error("Expected sample outside the cone to be rejected")
	}

	// A full-sphere cone accepts it again
	if _, ok := Illuminate(&cxt, &sample, position, axis, math.Pi, &core.SurfaceInput{}); !ok {
		t.Error("Expected sample inside the full-sphere cone")
	}
}

func TestIlluminateDimLightRejected(t *testing.T) {
	light := &stubLight{color: core.NewColor(1e-5, 1e-5, 1e-5), position: core.NewVec3(0, 10, 0), count: 1}
	sample := core.LightSample{Light: light, P: light.position}

	cxt := openCxt()
	if _, ok := Illuminate(&cxt, &sample, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), math.Pi/2, &core.SurfaceInput{}); ok {
		t.Error("Expected near-zero light to be rejected")
	}
}

func TestIlluminateShadowRayRefused(t *testing.T) {
	light := &stubLight{color: core.NewColor(1, 1, 1), position: core.NewVec3(0, 10, 0), count: 1}
	sample := core.LightSample{Light: light, P: light.position}

	target := &stubTarget{}
	obj := &stubObject{shadowTarget: target}
	cxt := core.NewCameraContext(target).Shadow(obj)

	if _, ok := Illuminate(&cxt, &sample, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), math.Pi/2, &core.SurfaceInput{}); ok {
		t.Error("Shadow rays must not run light queries")
	}
}

// TestIlluminatePartialShadow verifies opacity-weighted shadow attenuation:
// a 60% opaque occluder leaves 40% of the light
func TestIlluminatePartialShadow(t *testing.T) {
	occluder := &stubObject{shader: &stubShader{fn: func(cxt *core.TraceContext, in *core.SurfaceInput, out *core.SurfaceOutput) {
		out.Cs = core.NewColor(0, 0, 0)
		out.Os = 0.6
	}}}

	shadowTarget := &stubTarget{
		surface: &stubAccel{hit: true, isect: core.Intersection{Object: occluder, THit: 5}},
	}
	shaded := &stubObject{shadowTarget: shadowTarget}

	light := &stubLight{color: core.NewColor(1, 0.5, 0.25), position: core.NewVec3(0, 10, 0), count: 1}
	sample := core.LightSample{Light: light, P: light.position}

	cxt := core.NewCameraContext(&stubTarget{})
	in := core.SurfaceInput{Object: shaded}

	out, ok := Illuminate(&cxt, &sample, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), math.Pi/2, &in)
	if !ok {
		t.Fatal("Expected partially shadowed illumination")
	}

	want := light.color.Scale(0.4)
	const eps = 1e-9
	if math.Abs(out.Cl.R-want.R) > eps || math.Abs(out.Cl.G-want.G) > eps || math.Abs(out.Cl.B-want.B) > eps {
		t.Errorf("Expected %v, got %v", want, out.Cl)
	}
}

func TestIlluminateUnoccluded(t *testing.T) {
	shadowTarget := &stubTarget{surface: &stubAccel{hit: false}}
	shaded := &stubObject{shadowTarget: shadowTarget}

	light := &stubLight{color: core.NewColor(0.8, 0.8, 0.8), position: core.NewVec3(0, 10, 0), count: 1}
	sample := core.LightSample{Light: light, P: light.position}

	cxt := core.NewCameraContext(&stubTarget{})
	in := core.SurfaceInput{Object: shaded}

	out, ok := Illuminate(&cxt, &sample, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), math.Pi/2, &in)
	if !ok {
		t.Fatal("Expected illumination")
	}
	if out.Cl != light.color {
		t.Errorf("Expected full light color, got %v", out.Cl)
	}
}

func TestNewLightSamplesGathersAllLights(t *testing.T) {
	key := &stubLight{color: core.NewColor(1, 1, 1), position: core.NewVec3(0, 10, 0), count: 3}
	fill := &stubLight{color: core.NewColor(0.2, 0.2, 0.2), position: core.NewVec3(5, 5, 0), count: 1}
	obj := &stubObject{lights: []core.Light{key, fill}}

	in := core.SurfaceInput{Object: obj}
	if got := LightSampleCount(&in); got != 4 {
		t.Errorf("Expected sample budget 4, got %d", got)
	}

	samples := NewLightSamples(&in)
	if len(samples) != 4 {
		t.Fatalf("Expected 4 samples, got %d", len(samples))
	}
	for i, sample := range samples {
		if sample.Light == nil {
			t.Errorf("Sample %d missing its light", i)
		}
	}
	if samples[3].Light != core.Light(fill) {
		t.Error("Expected the last sample to come from the second light")
	}
}

func TestNewLightSamplesNoLights(t *testing.T) {
	if got := NewLightSamples(&core.SurfaceInput{}); got != nil {
		t.Errorf("Expected nil for an unlit object, got %v", got)
	}

	obj := &stubObject{}
	if got := NewLightSamples(&core.SurfaceInput{Object: obj}); got != nil {
		t.Errorf("Expected nil for an object with no lights, got %v", got)
	}
}
