// Package scene assembles primitive sets, shaders and lights into object
// instances and trace-target groups.
package scene

import (
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Object is a renderable instance binding geometry to a shader, lights and
// the target groups its secondary rays are traced against. Objects are
// built once during setup and read-only afterwards.
type Object struct {
	geometry core.PrimitiveSet
	accel    *core.BVH
	bounds   core.AABB

	shader core.Shader
	lights []core.Light

	reflectTarget core.TraceTarget
	refractTarget core.TraceTarget
	shadowTarget  core.TraceTarget
	selfHitTarget core.TraceTarget
}

// NewObject creates an object over the given geometry and builds its
// acceleration structure
func NewObject(geometry core.PrimitiveSet) (*Object, error) {
	accel := core.NewBVH()
	if err := accel.Build(geometry); err != nil {
		return nil, err
	}

	return &Object{
		geometry: geometry,
		accel:    accel,
		bounds:   accel.Bounds(),
	}, nil
}

// SetShader binds the surface shader
func (o *Object) SetShader(shader core.Shader) {
	o.shader = shader
}

// AddLight appends a light illuminating this object
func (o *Object) AddLight(light core.Light) {
	o.lights = append(o.lights, light)
}

// SetTargets binds all four target groups at once. Passing the scene root
// group for each is the common configuration.
func (o *Object) SetTargets(reflect, refract, shadow, selfHit core.TraceTarget) {
	o.reflectTarget = reflect
	o.refractTarget = refract
	o.shadowTarget = shadow
	o.selfHitTarget = selfHit
}

// Bounds returns the object's bounding box
func (o *Object) Bounds() core.AABB {
	return o.bounds
}

// Shader returns the bound surface shader, or nil when none is bound
func (o *Object) Shader() core.Shader { return o.shader }

// Lights returns the lights illuminating this object
func (o *Object) Lights() []core.Light { return o.lights }

// ReflectTarget returns the group reflection and diffuse rays trace against
func (o *Object) ReflectTarget() core.TraceTarget { return o.reflectTarget }

// RefractTarget returns the group refraction rays trace against
func (o *Object) RefractTarget() core.TraceTarget { return o.refractTarget }

// ShadowTarget returns the group shadow rays trace against
func (o *Object) ShadowTarget() core.TraceTarget { return o.shadowTarget }

// SelfHitTarget returns the group used to re-query this object's geometry
func (o *Object) SelfHitTarget() core.TraceTarget { return o.selfHitTarget }

// intersect queries the object's own accelerator and stamps the hit with
// this object
func (o *Object) intersect(ray core.Ray, time float64) (core.Intersection, bool) {
	isect, hit := o.accel.Intersect(ray, time)
	if !hit {
		return core.Intersection{}, false
	}
	isect.Object = o
	return isect, true
}

// objectSet exposes a group's object instances as a PrimitiveSet so the
// group-level accelerator can be built over whole objects
type objectSet struct {
	objects []*Object
}

func (s *objectSet) PrimitiveCount() int {
	return len(s.objects)
}

func (s *objectSet) PrimitiveBounds(index int) core.AABB {
	return s.objects[index].bounds
}

func (s *objectSet) RayIntersect(index int, time float64, ray core.Ray) (core.Intersection, bool) {
	if index < 0 || index >= len(s.objects) {
		return core.Intersection{}, false
	}
	return s.objects[index].intersect(ray, time)
}
