package trace

import (
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Faceforward flips n to face against the incident direction i
func Faceforward(i, n core.Vec3) core.Vec3 {
	if i.Dot(n) < 0 {
		return n
	}
	return n.Negate()
}

// Reflect returns the reflection of incident direction i about normal n
func Reflect(i, n core.Vec3) core.Vec3 {
	cos := -i.Dot(n)
	return i.Add(n.Multiply(2 * cos))
}

// Refract returns the refraction of i through a surface with normal n and
// relative index of refraction ior. Total internal reflection falls back
// to the reflected direction.
func Refract(i, n core.Vec3, ior float64) core.Vec3 {
	cos1 := -i.Dot(n)
	var eta float64
	if cos1 < 0 {
		// Exiting the medium
		cos1 = -cos1
		eta = ior
		n = n.Negate()
	} else {
		eta = 1 / ior
	}

	radicand := 1 - eta*eta*(1-cos1*cos1)
	if radicand < 0 {
		return Reflect(i, n.Negate())
	}

	nCoeff := eta*cos1 - math.Sqrt(radicand)
	return i.Multiply(eta).Add(n.Multiply(nCoeff))
}

// Fresnel returns the Schlick approximation of the Fresnel reflectance for
// incident direction i, normal n and index of refraction ior
func Fresnel(i, n core.Vec3, ior float64) float64 {
	cos := -i.Dot(n)
	var eta float64
	if cos > 0 {
		eta = ior
	} else {
		eta = 1 / ior
		cos = -cos
	}

	f0 := ((1 - eta) * (1 - eta)) / ((1 + eta) * (1 + eta))
	return f0 + (1-f0)*math.Pow(1-cos, 5)
}

// Phong returns the Phong specular term for incident direction i, normal n
// and light direction l
func Phong(i, n, l core.Vec3, roughness float64) float64 {
	lRefl := Reflect(l, n)
	spec := math.Max(0, i.Dot(lRefl))
	return math.Pow(spec, 1/math.Max(0.001, roughness))
}
