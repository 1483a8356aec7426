package scene

import (
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Group is a trace target: a set of object instances behind a shared
// surface accelerator plus a volume accelerator over its volumetric
// members. Build after all members are added; read-only afterwards.
type Group struct {
	objects []*Object
	volumes []core.VolumeObject

	surfaceAccel *core.BVH
	volumeAccel  core.VolumeAccelerator
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{}
}

// Add appends an object instance to the group
func (g *Group) Add(obj *Object) {
	g.objects = append(g.objects, obj)
}

// AddVolume appends a volumetric object to the group
func (g *Group) AddVolume(volume core.VolumeObject) {
	g.volumes = append(g.volumes, volume)
}

// Build constructs the group accelerators over the current members
func (g *Group) Build() error {
	accel := core.NewBVH()
	if err := accel.Build(&objectSet{objects: g.objects}); err != nil {
		return err
	}

	g.surfaceAccel = accel
	g.volumeAccel = core.NewVolumeSet(g.volumes)
	return nil
}

// Bounds returns the bounding box of the group's surface members
func (g *Group) Bounds() core.AABB {
	if g.surfaceAccel == nil {
		return core.AABB{}
	}
	return g.surfaceAccel.Bounds()
}

// ObjectCount returns the number of surface members
func (g *Group) ObjectCount() int { return len(g.objects) }

// VolumeCount returns the number of volumetric members
func (g *Group) VolumeCount() int { return len(g.volumes) }

// SurfaceAccelerator returns the group's surface accelerator
func (g *Group) SurfaceAccelerator() core.Accelerator { return g.surfaceAccel }

// VolumeAccelerator returns the group's volume accelerator
func (g *Group) VolumeAccelerator() core.VolumeAccelerator { return g.volumeAccel }

// DensityField is a sampleable density region, typically a voxel buffer
type DensityField interface {
	Bounds() core.AABB
	Sample(p core.Vec3, time float64) (core.VolumeSample, bool)
}

// VolumeInstance binds a density field to a shader as a raymarchable
// volumetric object
type VolumeInstance struct {
	field  DensityField
	shader core.Shader
}

// NewVolumeInstance creates a volumetric object over the given field
func NewVolumeInstance(field DensityField, shader core.Shader) *VolumeInstance {
	return &VolumeInstance{field: field, shader: shader}
}

// Bounds returns the density field's bounds
func (v *VolumeInstance) Bounds() core.AABB {
	return v.field.Bounds()
}

// Shader returns the volume shader, or nil when none is bound
func (v *VolumeInstance) Shader() core.Shader {
	return v.shader
}

// VolumeSample samples the density field at p
func (v *VolumeInstance) VolumeSample(p core.Vec3, time float64) (core.VolumeSample, bool) {
	return v.field.Sample(p, time)
}
