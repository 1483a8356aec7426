package geometry

import (
	"math"
	"testing"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

func unitTriangle() *TriangleMesh {
	return NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(-1, -1, 0),
			core.NewVec3(1, -1, 0),
			core.NewVec3(0, 1, 0),
		},
		[][3]int{{0, 1, 2}},
	)
}

func TestTriangleMeshRayIntersect(t *testing.T) {
	mesh := unitTriangle()

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0.001, 1000)
	isect, hit := mesh.RayIntersect(0, 0, ray)
	if !hit {
		t.Fatal("Expected hit")
	}
	if math.Abs(isect.THit-5) > 1e-9 {
		t.Errorf("Expected t=5, got %f", isect.THit)
	}
	if math.Abs(math.Abs(isect.N.Z)-1) > 1e-9 {
		t.Errorf("Expected normal along z, got %v", isect.N)
	}
	if isect.UV.U < 0 || isect.UV.V < 0 || isect.UV.U+isect.UV.V > 1 {
		t.Errorf("Barycentric UV out of range: %v", isect.UV)
	}
}

func TestTriangleMeshEdgeMiss(t *testing.T) {
	mesh := unitTriangle()

	// Inside the bounding box but outside the triangle
	ray := core.NewRay(core.NewVec3(0.9, 0.9, -5), core.NewVec3(0, 0, 1), 0.001, 1000)
	if _, hit := mesh.RayIntersect(0, 0, ray); hit {
		t.Error("Expected miss outside the face")
	}
}

func TestTriangleMeshParallelRayMiss(t *testing.T) {
	mesh := unitTriangle()

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), 0.001, 1000)
	if _, hit := mesh.RayIntersect(0, 0, ray); hit {
		t.Error("Expected miss for a ray in the triangle's plane")
	}
}

func TestTriangleMeshSetVelocitiesLengthCheck(t *testing.T) {
	mesh := unitTriangle()

	if err := mesh.SetVelocities([]core.Vec3{{X: 1}}); err == nil {
		t.Error("Expected error for mismatched velocity count")
	}

	velocities := []core.Vec3{{Z: 2}, {Z: 2}, {Z: 2}}
	if err := mesh.SetVelocities(velocities); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestTriangleMeshMotionBlur(t *testing.T) {
	mesh := unitTriangle()
	if err := mesh.SetVelocities([]core.Vec3{{Z: 2}, {Z: 2}, {Z: 2}}); err != nil {
		t.Fatalf("SetVelocities failed: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0.001, 1000)

	atStart, hit := mesh.RayIntersect(0, 0, ray)
	if !hit || math.Abs(atStart.THit-5) > 1e-9 {
		t.Errorf("Expected t=5 at time 0, got %v %v", atStart.THit, hit)
	}

	atEnd, hit := mesh.RayIntersect(0, 1, ray)
	if !hit || math.Abs(atEnd.THit-7) > 1e-9 {
		t.Errorf("Expected t=7 at time 1, got %v %v", atEnd.THit, hit)
	}

	bounds := mesh.PrimitiveBounds(0)
	if !bounds.Contains(core.NewVec3(0, 0, 0)) || !bounds.Contains(core.NewVec3(0, 0, 2)) {
		t.Error("Bounds must cover the face over the whole shutter interval")
	}
}

func TestTriangleMeshPrimitiveCount(t *testing.T) {
	mesh := NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(0, 0, 0),
			core.NewVec3(1, 0, 0),
			core.NewVec3(1, 1, 0),
			core.NewVec3(0, 1, 0),
		},
		[][3]int{{0, 1, 2}, {0, 2, 3}},
	)
	if mesh.PrimitiveCount() != 2 {
		t.Errorf("Expected 2 faces, got %d", mesh.PrimitiveCount())
	}
}
