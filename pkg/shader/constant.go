// Package shader provides the built-in surface and volume shaders.
package shader

import (
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Constant shades every point with a fixed color and opacity
type Constant struct {
	C       core.Color
	Opacity float64
}

// NewConstant creates a fully opaque constant shader
func NewConstant(c core.Color) *Constant {
	return &Constant{C: c, Opacity: 1}
}

// Evaluate implements core.Shader
func (sh *Constant) Evaluate(cxt *core.TraceContext, in *core.SurfaceInput, out *core.SurfaceOutput) {
	out.Cs = sh.C
	out.Os = sh.Opacity
}
