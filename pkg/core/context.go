package core

// RayClass classifies the ray a TraceContext is driving
type RayClass int

const (
	CameraRay RayClass = iota
	ShadowRay
	DiffuseRay
	ReflectRay
	RefractRay
)

// String returns the ray class name
func (c RayClass) String() string {
	switch c {
	case CameraRay:
		return "camera"
	case ShadowRay:
		return "shadow"
	case DiffuseRay:
		return "diffuse"
	case ReflectRay:
		return "reflect"
	case RefractRay:
		return "refract"
	default:
		return "unknown"
	}
}

// Default trace context settings
const (
	DefaultMaxDepth         = 5
	DefaultOpacityThreshold = 0.995
	DefaultRaymarchStep     = 0.05
)

// TraceContext carries the per-ray recursion state through one ray's
// evaluation. Contexts are value types: every derivation copies the parent
// and mutates exactly one depth counter, so sibling ray trees never share
// depth state.
type TraceContext struct {
	RayClass RayClass

	DiffuseDepth int
	ReflectDepth int
	RefractDepth int

	MaxDiffuseDepth int
	MaxReflectDepth int
	MaxRefractDepth int

	CastShadow       bool
	Time             float64
	OpacityThreshold float64

	RaymarchStep        float64
	RaymarchShadowStep  float64
	RaymarchDiffuseStep float64
	RaymarchReflectStep float64
	RaymarchRefractStep float64

	Target TraceTarget
}

// NewCameraContext creates the root context for a camera ray aimed at the
// given target group
func NewCameraContext(target TraceTarget) TraceContext {
	return TraceContext{
		RayClass: CameraRay,

		MaxDiffuseDepth: DefaultMaxDepth,
		MaxReflectDepth: DefaultMaxDepth,
		MaxRefractDepth: DefaultMaxDepth,

		CastShadow:       true,
		Time:             0,
		OpacityThreshold: DefaultOpacityThreshold,

		RaymarchStep:        DefaultRaymarchStep,
		RaymarchShadowStep:  DefaultRaymarchStep,
		RaymarchDiffuseStep: DefaultRaymarchStep,
		RaymarchReflectStep: DefaultRaymarchStep,
		RaymarchRefractStep: DefaultRaymarchStep,

		Target: target,
	}
}

// Diffuse derives the context for a diffuse ray spawned at obj
func (cxt TraceContext) Diffuse(obj Object) TraceContext {
	diffCxt := cxt
	diffCxt.DiffuseDepth++
	diffCxt.RayClass = DiffuseRay
	diffCxt.Target = obj.ReflectTarget()
	return diffCxt
}

// Reflect derives the context for a reflection ray spawned at obj
func (cxt TraceContext) Reflect(obj Object) TraceContext {
	reflCxt := cxt
	reflCxt.ReflectDepth++
	reflCxt.RayClass = ReflectRay
	reflCxt.Target = obj.ReflectTarget()
	return reflCxt
}

// Refract derives the context for a refraction ray spawned at obj
func (cxt TraceContext) Refract(obj Object) TraceContext {
	refrCxt := cxt
	refrCxt.RefractDepth++
	refrCxt.RayClass = RefractRay
	refrCxt.Target = obj.RefractTarget()
	return refrCxt
}

// Shadow derives the context for a shadow ray spawned at obj.
// Secondary traces are turned off on occluding objects.
func (cxt TraceContext) Shadow(obj Object) TraceContext {
	shadCxt := cxt
	shadCxt.RayClass = ShadowRay
	shadCxt.MaxDiffuseDepth = 0
	shadCxt.MaxReflectDepth = 0
	shadCxt.MaxRefractDepth = 0
	shadCxt.Target = obj.ShadowTarget()
	return shadCxt
}

// SelfHit derives a context that re-queries obj's own geometry without
// changing the ray classification
func (cxt TraceContext) SelfHit(obj Object) TraceContext {
	selfCxt := cxt
	selfCxt.Target = obj.SelfHitTarget()
	return selfCxt
}

// ReachedBounceLimit reports whether the context is terminal for its ray
// class. Camera and shadow rays are always allowed exactly once.
func (cxt *TraceContext) ReachedBounceLimit() bool {
	var currentDepth, maxDepth int

	switch cxt.RayClass {
	case CameraRay, ShadowRay:
		currentDepth = 0
		maxDepth = 1
	case DiffuseRay:
		currentDepth = cxt.DiffuseDepth
		maxDepth = cxt.MaxDiffuseDepth
	case ReflectRay:
		currentDepth = cxt.ReflectDepth
		maxDepth = cxt.MaxReflectDepth
	case RefractRay:
		currentDepth = cxt.RefractDepth
		maxDepth = cxt.MaxRefractDepth
	default:
		panic("invalid ray class")
	}

	return currentDepth > maxDepth
}

// StepSize returns the raymarch step for the context's ray class
func (cxt *TraceContext) StepSize() float64 {
	switch cxt.RayClass {
	case CameraRay:
		return cxt.RaymarchStep
	case ShadowRay:
		return cxt.RaymarchShadowStep
	case DiffuseRay:
		return cxt.RaymarchDiffuseStep
	case ReflectRay:
		return cxt.RaymarchReflectStep
	case RefractRay:
		return cxt.RaymarchRefractStep
	default:
		panic("invalid ray class")
	}
}
