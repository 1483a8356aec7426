package core

// TexCoord represents a 2D texture coordinate
type TexCoord struct {
	U, V float64
}

// Intersection holds the result of a ray/primitive query. It is created
// fresh per query and never outlives the trace call that produced it.
type Intersection struct {
	P    Vec3 // Hit point
	N    Vec3 // Shading normal
	Cd   Color
	UV   TexCoord
	DPdu Vec3
	DPdv Vec3

	Object Object
	THit   float64
}

// HitShader returns the shader bound to the hit object, or nil when the
// hit carries no object or the object has no shader
func (isect *Intersection) HitShader() Shader {
	if isect.Object == nil {
		return nil
	}
	return isect.Object.Shader()
}
