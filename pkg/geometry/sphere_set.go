// Package geometry provides primitive-set implementations for the surface
// accelerator: sphere collections and triangle meshes, both with linear
// velocity motion blur.
package geometry

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

type sphere struct {
	center   core.Vec3
	radius   float64
	velocity core.Vec3
}

// SphereSet is a collection of spheres exposed as a PrimitiveSet
type SphereSet struct {
	spheres []sphere
}

// NewSphereSet creates an empty sphere set
func NewSphereSet() *SphereSet {
	return &SphereSet{}
}

// Add appends a static sphere
func (s *SphereSet) Add(center core.Vec3, radius float64) {
	s.spheres = append(s.spheres, sphere{center: center, radius: radius})
}

// AddMoving appends a sphere translating by velocity over the shutter
// interval [0, 1]
func (s *SphereSet) AddMoving(center core.Vec3, radius float64, velocity core.Vec3) {
	s.spheres = append(s.spheres, sphere{center: center, radius: radius, velocity: velocity})
}

// PrimitiveCount returns the number of spheres
func (s *SphereSet) PrimitiveCount() int {
	return len(s.spheres)
}

// PrimitiveBounds returns a box covering the sphere over the whole shutter
// interval
func (s *SphereSet) PrimitiveBounds(index int) core.AABB {
	sp := s.spheres[index]
	r := core.NewVec3(sp.radius, sp.radius, sp.radius)

	at0 := core.NewAABB(sp.center.Subtract(r), sp.center.Add(r))
	end := sp.center.Add(sp.velocity)
	at1 := core.NewAABB(end.Subtract(r), end.Add(r))

	return at0.Union(at1)
}

// RayIntersect tests the ray against the sphere at the given time
func (s *SphereSet) RayIntersect(index int, time float64, ray core.Ray) (core.Intersection, bool) {
	if index < 0 || index >= len(s.spheres) {
		return core.Intersection{}, false
	}

	sp := s.spheres[index]
	center := sp.center.Add(sp.velocity.Multiply(time))

	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - sp.radius*sp.radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !ray.InRange(root) {
		root = (-halfB + sqrtD) / a
		if !ray.InRange(root) {
			return core.Intersection{}, false
		}
	}

	p := ray.At(root)
	n := p.Subtract(center).Multiply(1 / sp.radius)

	// Spherical parameterization for texture coordinates and derivatives
	theta := math.Acos(math.Max(-1, math.Min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi

	isect := core.Intersection{
		P:    p,
		N:    n,
		UV:   core.TexCoord{U: phi / (2 * math.Pi), V: theta / math.Pi},
		DPdu: core.NewVec3(-n.Z, 0, n.X).Normalize(),
		THit: root,
	}
	isect.DPdv = n.Cross(isect.DPdu)

	return isect, true
}
