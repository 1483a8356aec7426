package renderer

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Camera generates primary rays for rendering
type Camera struct {
	position        core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a perspective camera at position looking at lookAt
func NewCamera(position, lookAt, up core.Vec3, fovDegrees, aspectRatio float64) *Camera {
	theta := fovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	w := position.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeftCorner := position.
		Subtract(u.Multiply(halfWidth)).
		Subtract(v.Multiply(halfHeight)).
		Subtract(w)

	return &Camera{
		position:        position,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth),
		vertical:        v.Multiply(2 * halfHeight),
	}
}

// GenerateRay returns the origin and direction for normalized screen
// coordinates (s, t) in [0, 1]
func (c *Camera) GenerateRay(s, t float64) (core.Vec3, core.Vec3) {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.position).
		Normalize()

	return c.position, direction
}
