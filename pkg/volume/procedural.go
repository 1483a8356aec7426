package volume

import "math"

// FillConstant writes the same density into every voxel
func FillConstant(v *Volume, density float64) {
	density = math.Max(0, density)

	xres, yres, zres := v.Resolution()
	for k := 0; k < zres; k++ {
		for j := 0; j < yres; j++ {
			for i := 0; i < xres; i++ {
				v.SetValue(i, j, k, density)
			}
		}
	}
}

// FillRadial writes a spherical density falloff centered in the buffer:
// full density at the center fading linearly to zero at the buffer edge
func FillRadial(v *Volume, density float64) {
	density = math.Max(0, density)

	xres, yres, zres := v.Resolution()
	cx := float64(xres) / 2
	cy := float64(yres) / 2
	cz := float64(zres) / 2
	radius := math.Min(cx, math.Min(cy, cz))
	if radius <= 0 {
		return
	}

	for k := 0; k < zres; k++ {
		for j := 0; j < yres; j++ {
			for i := 0; i < xres; i++ {
				dx := float64(i) + 0.5 - cx
				dy := float64(j) + 0.5 - cy
				dz := float64(k) + 0.5 - cz
				dist := math.Sqrt(dx*dx + dy*dy + dz*dz)

				falloff := 1 - dist/radius
				if falloff < 0 {
					falloff = 0
				}
				v.SetValue(i, j, k, density*falloff)
			}
		}
	}
}
