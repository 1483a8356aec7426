package core

// Ray represents a ray with an origin, direction and active parametric range
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMin      float64
	TMax      float64
}

// NewRay creates a new ray over the range [tMin, tMax]
func NewRay(origin, direction Vec3, tMin, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point along the ray at parameter t
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InRange reports whether t falls within the ray's active range
func (r Ray) InRange(t float64) bool {
	return r.TMin <= t && t <= r.TMax
}
