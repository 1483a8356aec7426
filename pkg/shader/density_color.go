package shader

import (
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// DensityColor is the volume shader used during raymarching: a flat color
// whose visible weight comes entirely from the marcher's density-derived
// opacity
type DensityColor struct {
	C core.Color
}

// NewDensityColor creates a volume shader with the given color
func NewDensityColor(c core.Color) *DensityColor {
	return &DensityColor{C: c}
}

// Evaluate implements core.Shader
func (sh *DensityColor) Evaluate(cxt *core.TraceContext, in *core.SurfaceInput, out *core.SurfaceOutput) {
	out.Cs = sh.C
	out.Os = 1
}
