package geometry

import (
	"fmt"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// TriangleMesh is an indexed triangle mesh exposed as a PrimitiveSet.
// Optional per-vertex velocities give linear motion blur over the shutter
// interval [0, 1].
type TriangleMesh struct {
	vertices   []core.Vec3
	velocities []core.Vec3
	faces      [][3]int
}

// NewTriangleMesh creates a mesh from vertex positions and face indices
func NewTriangleMesh(vertices []core.Vec3, faces [][3]int) *TriangleMesh {
	return &TriangleMesh{vertices: vertices, faces: faces}
}

// SetVelocities attaches one velocity per vertex
func (m *TriangleMesh) SetVelocities(velocities []core.Vec3) error {
	if len(velocities) != len(m.vertices) {
		return fmt.Errorf("geometry: %d velocities for %d vertices", len(velocities), len(m.vertices))
	}
	m.velocities = velocities
	return nil
}

// PrimitiveCount returns the number of faces
func (m *TriangleMesh) PrimitiveCount() int {
	return len(m.faces)
}

// vertexAt returns the vertex position at the given shutter time
func (m *TriangleMesh) vertexAt(index int, time float64) core.Vec3 {
	v := m.vertices[index]
	if m.velocities != nil {
		v = v.Add(m.velocities[index].Multiply(time))
	}
	return v
}

// PrimitiveBounds returns a box covering the face over the whole shutter
// interval
func (m *TriangleMesh) PrimitiveBounds(index int) core.AABB {
	face := m.faces[index]

	bounds := core.NewAABBFromPoints(
		m.vertexAt(face[0], 0),
		m.vertexAt(face[1], 0),
		m.vertexAt(face[2], 0),
	)
	if m.velocities != nil {
		bounds = bounds.Union(core.NewAABBFromPoints(
			m.vertexAt(face[0], 1),
			m.vertexAt(face[1], 1),
			m.vertexAt(face[2], 1),
		))
	}

	return bounds
}

// RayIntersect tests the ray against the face at the given time using the
// Moller-Trumbore algorithm
func (m *TriangleMesh) RayIntersect(index int, time float64, ray core.Ray) (core.Intersection, bool) {
	if index < 0 || index >= len(m.faces) {
		return core.Intersection{}, false
	}

	const epsilon = 1e-8

	face := m.faces[index]
	v0 := m.vertexAt(face[0], time)
	v1 := m.vertexAt(face[1], time)
	v2 := m.vertexAt(face[2], time)

	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return core.Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return core.Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return core.Intersection{}, false
	}

	t := f * edge2.Dot(q)
	if !ray.InRange(t) {
		return core.Intersection{}, false
	}

	return core.Intersection{
		P:    ray.At(t),
		N:    edge1.Cross(edge2).Normalize(),
		UV:   core.TexCoord{U: u, V: v},
		DPdu: edge1,
		DPdv: edge2,
		THit: t,
	}, true
}
