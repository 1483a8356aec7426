// Package lights provides the light sources consumed by the shading
// engine's illumination queries.
package lights

import (
	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// PointLight emits from a single position with no area
type PointLight struct {
	position  core.Vec3
	color     core.Color
	intensity float64
}

// NewPointLight creates a point light
func NewPointLight(position core.Vec3, color core.Color, intensity float64) *PointLight {
	return &PointLight{position: position, color: color, intensity: intensity}
}

// Illuminate returns the emitted color toward the shading position
func (l *PointLight) Illuminate(sample *core.LightSample, position core.Vec3) core.Color {
	return l.color.Scale(l.intensity)
}

// SampleCount returns 1: a point light needs a single sample
func (l *PointLight) SampleCount() int {
	return 1
}

// GetSamples fills at most one sample at the light's position
func (l *PointLight) GetSamples(samples []core.LightSample) int {
	if len(samples) == 0 {
		return 0
	}
	samples[0] = core.LightSample{
		Light: l,
		P:     l.position,
		Color: l.color.Scale(l.intensity),
	}
	return 1
}
