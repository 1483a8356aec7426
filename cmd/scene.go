package cmd

import (
	"fmt"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/geometry"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/lights"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/renderer"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/scene"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/shader"
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/volume"
)

// buildScene assembles one of the built-in demo scenes
func buildScene(name string, aspectRatio float64) (*scene.Group, *renderer.Camera, error) {
	switch name {
	case "default":
		return buildDefaultScene(aspectRatio)
	case "volume":
		return buildVolumeScene(aspectRatio)
	default:
		return nil, nil, fmt.Errorf("unknown scene %q", name)
	}
}

// buildDefaultScene: ground plane, three spheres (one reflective, one
// glass, one moving), a smoke volume, and area + point lighting
func buildDefaultScene(aspectRatio float64) (*scene.Group, *renderer.Camera, error) {
	group := scene.NewGroup()

	keyLight := lights.NewSphereLight(core.NewVec3(-3, 6, 4), 1.2, core.NewColor(1, 0.96, 0.9), 1.1, 8)
	fillLight := lights.NewPointLight(core.NewVec3(5, 3, 3), core.NewColor(0.8, 0.85, 1), 0.25)

	ground, err := groundObject()
	if err != nil {
		return nil, nil, err
	}

	spheres := geometry.NewSphereSet()
	spheres.Add(core.NewVec3(0, 1, 0), 1)
	spheresObj, err := scene.NewObject(spheres)
	if err != nil {
		return nil, nil, err
	}
	center := shader.NewPlastic(core.NewColor(0.8, 0.2, 0.2))
	center.Reflect = 0.3
	spheresObj.SetShader(center)

	glassSpheres := geometry.NewSphereSet()
	glassSpheres.Add(core.NewVec3(-2.2, 1, 0.3), 1)
	glassObj, err := scene.NewObject(glassSpheres)
	if err != nil {
		return nil, nil, err
	}
	glassObj.SetShader(shader.NewGlass())

	movingSpheres := geometry.NewSphereSet()
	movingSpheres.AddMoving(core.NewVec3(1.9, 0.5, 1.4), 0.5, core.NewVec3(0.6, 0, 0))
	movingObj, err := scene.NewObject(movingSpheres)
	if err != nil {
		return nil, nil, err
	}
	movingObj.SetShader(shader.NewPlastic(core.NewColor(0.2, 0.3, 0.8)))

	smoke := volume.New()
	smoke.Resize(32, 32, 32)
	smoke.SetBounds(core.NewAABB(core.NewVec3(-1.5, 0, -4), core.NewVec3(1.5, 3, -1)))
	volume.FillRadial(smoke, 8)
	group.AddVolume(scene.NewVolumeInstance(smoke, shader.NewDensityColor(core.NewColor(0.9, 0.9, 0.95))))

	for _, obj := range []*scene.Object{ground, spheresObj, glassObj, movingObj} {
		obj.AddLight(keyLight)
		obj.AddLight(fillLight)
		obj.SetTargets(group, group, group, group)
		group.Add(obj)
	}

	if err := group.Build(); err != nil {
		return nil, nil, err
	}

	camera := renderer.NewCamera(
		core.NewVec3(0, 2.2, 6.5),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		40, aspectRatio,
	)

	return group, camera, nil
}

// buildVolumeScene: a single radial volume over a ground plane
func buildVolumeScene(aspectRatio float64) (*scene.Group, *renderer.Camera, error) {
	group := scene.NewGroup()

	ground, err := groundObject()
	if err != nil {
		return nil, nil, err
	}
	ground.AddLight(lights.NewPointLight(core.NewVec3(0, 8, 4), core.NewColor(1, 1, 1), 1))
	ground.SetTargets(group, group, group, group)
	group.Add(ground)

	pyro := volume.New()
	pyro.Resize(64, 64, 64)
	pyro.SetBounds(core.NewAABB(core.NewVec3(-2, 0, -2), core.NewVec3(2, 4, 2)))
	volume.FillRadial(pyro, 12)
	group.AddVolume(scene.NewVolumeInstance(pyro, shader.NewDensityColor(core.NewColor(1, 0.6, 0.2))))

	if err := group.Build(); err != nil {
		return nil, nil, err
	}

	camera := renderer.NewCamera(
		core.NewVec3(0, 2.5, 8),
		core.NewVec3(0, 1.5, 0),
		core.NewVec3(0, 1, 0),
		45, aspectRatio,
	)

	return group, camera, nil
}

func groundObject() (*scene.Object, error) {
	mesh := geometry.NewTriangleMesh(
		[]core.Vec3{
			core.NewVec3(-12, 0, -12),
			core.NewVec3(12, 0, -12),
			core.NewVec3(12, 0, 12),
			core.NewVec3(-12, 0, 12),
		},
		[][3]int{{0, 2, 1}, {0, 3, 2}},
	)

	obj, err := scene.NewObject(mesh)
	if err != nil {
		return nil, err
	}
	obj.SetShader(shader.NewPlastic(core.NewColor(0.65, 0.65, 0.65)))
	return obj, nil
}
