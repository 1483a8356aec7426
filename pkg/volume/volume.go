// Package volume provides a voxel-buffer density field for raymarching.
package volume

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Volume is a resizable voxel buffer mapped onto a world-space bounding
// box. A zero-resolution volume is valid and samples as empty.
type Volume struct {
	data []float64
	xres int
	yres int
	zres int

	bounds core.AABB
	size   core.Vec3
}

// New creates an empty volume
func New() *Volume {
	return &Volume{}
}

// Resize allocates the voxel buffer at the given resolution and clears it.
// Resolutions below 1 on any axis are ignored.
func (v *Volume) Resize(xres, yres, zres int) {
	if xres < 1 || yres < 1 || zres < 1 {
		return
	}

	v.data = make([]float64, xres*yres*zres)
	v.xres = xres
	v.yres = yres
	v.zres = zres
}

// SetBounds places the voxel buffer in world space
func (v *Volume) SetBounds(bounds core.AABB) {
	v.bounds = bounds
	v.size = bounds.Size()
}

// Bounds returns the world-space bounds
func (v *Volume) Bounds() core.AABB {
	return v.bounds
}

// Resolution returns the voxel resolution per axis
func (v *Volume) Resolution() (int, int, int) {
	return v.xres, v.yres, v.zres
}

// SetValue writes one voxel; out-of-range coordinates are ignored
func (v *Volume) SetValue(x, y, z int, value float64) {
	if x < 0 || x >= v.xres || y < 0 || y >= v.yres || z < 0 || z >= v.zres {
		return
	}
	v.data[z*v.xres*v.yres+y*v.xres+x] = value
}

// Value reads one voxel; out-of-range coordinates read as zero
func (v *Volume) Value(x, y, z int) float64 {
	if x < 0 || x >= v.xres || y < 0 || y >= v.yres || z < 0 || z >= v.zres {
		return 0
	}
	return v.data[z*v.xres*v.yres+y*v.xres+x]
}

// Sample returns the trilinearly interpolated density at world position p.
// Points outside the bounds or an unallocated buffer report ok=false.
func (v *Volume) Sample(p core.Vec3, time float64) (core.VolumeSample, bool) {
	if !v.bounds.Contains(p) {
		return core.VolumeSample{}, false
	}
	if v.data == nil {
		return core.VolumeSample{}, false
	}

	voxel := core.Vec3{
		X: (p.X - v.bounds.Min.X) / v.size.X * float64(v.xres),
		Y: (p.Y - v.bounds.Min.Y) / v.size.Y * float64(v.yres),
		Z: (p.Z - v.bounds.Min.Z) / v.size.Z * float64(v.zres),
	}

	return core.VolumeSample{Density: v.trilinearValue(voxel)}, true
}

// trilinearValue interpolates the eight voxels around the sample position
func (v *Volume) trilinearValue(p core.Vec3) float64 {
	sx := p.X - 0.5
	sy := p.Y - 0.5
	sz := p.Z - 0.5

	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	z0 := int(math.Floor(sz))

	value := 0.0
	for i := 0; i < 2; i++ {
		x := x0 + i
		wx := 1 - math.Abs(sx-float64(x))
		for j := 0; j < 2; j++ {
			y := y0 + j
			wy := 1 - math.Abs(sy-float64(y))
			for k := 0; k < 2; k++ {
				z := z0 + k
				wz := 1 - math.Abs(sz-float64(z))
				value += wx * wy * wz * v.Value(x, y, z)
			}
		}
	}

	return value
}
