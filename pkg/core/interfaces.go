package core

// PrimitiveSet abstracts any geometry collection exposing per-primitive
// bounds and a ray/primitive intersection test. The time parameter selects
// the motion-blur sample position within the shutter interval.
type PrimitiveSet interface {
	PrimitiveCount() int
	PrimitiveBounds(index int) AABB
	RayIntersect(index int, time float64, ray Ray) (Intersection, bool)
}

// SurfaceInput carries the geometric inputs of one shader evaluation
type SurfaceInput struct {
	Object Object
	P      Vec3 // Shading position
	N      Vec3 // Shading normal
	I      Vec3 // Incident ray direction
	Cd     Color
	UV     TexCoord
	DPdu   Vec3
	DPdv   Vec3
}

// SurfaceOutput receives the color and opacity computed by a shader
type SurfaceOutput struct {
	Cs Color
	Os float64
}

// Shader evaluates surface or volume color at a shading point. Shaders may
// spawn recursive rays through the trace package using derived contexts.
type Shader interface {
	Evaluate(cxt *TraceContext, in *SurfaceInput, out *SurfaceOutput)
}

// LightSample is one illumination sample taken on a light source
type LightSample struct {
	Light Light
	P     Vec3
	N     Vec3
	Color Color
}

// Light supplies illumination samples and per-sample emitted color
type Light interface {
	// Illuminate returns the emitted color of the sample as seen from
	// the shading position
	Illuminate(sample *LightSample, position Vec3) Color
	SampleCount() int
	// GetSamples fills up to len(samples) entries and returns the count
	GetSamples(samples []LightSample) int
}

// TraceTarget is the group of scene objects a ray is traced against
type TraceTarget interface {
	SurfaceAccelerator() Accelerator
	VolumeAccelerator() VolumeAccelerator
}

// Object resolves the per-object trace targets and shading bindings.
// Diffuse rays share the reflection target group.
type Object interface {
	Shader() Shader
	Lights() []Light
	ReflectTarget() TraceTarget
	RefractTarget() TraceTarget
	ShadowTarget() TraceTarget
	SelfHitTarget() TraceTarget
}

// VolumeSample is a single density sample inside a volumetric object
type VolumeSample struct {
	Density float64
}

// VolumeObject is a volumetric primitive that can be raymarched
type VolumeObject interface {
	Bounds() AABB
	Shader() Shader
	// VolumeSample reports the density at p, or ok=false outside the volume
	VolumeSample(p Vec3, time float64) (VolumeSample, bool)
}

// Accelerator answers nearest-hit ray queries over a PrimitiveSet.
// Build must succeed before Intersect is called; a failed build leaves the
// accelerator unusable.
type Accelerator interface {
	Build(set PrimitiveSet) error
	Intersect(ray Ray, time float64) (Intersection, bool)
	Bounds() AABB
}

// VolumeAccelerator answers ray-interval queries over volumetric objects
type VolumeAccelerator interface {
	Intersect(ray Ray, time float64) (IntervalList, bool)
}
