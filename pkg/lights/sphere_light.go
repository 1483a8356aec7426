package lights

import (
	"math"
	"math/rand"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// SphereLight is an area light sampled at fixed points on a sphere
// surface. The sample set is generated once at construction with a
// deterministic seed, so concurrent shading reads it without locks and
// renders are repeatable.
type SphereLight struct {
	center    core.Vec3
	radius    float64
	color     core.Color
	intensity float64
	samples   []core.LightSample
}

// NewSphereLight creates a sphere area light with the given sample budget
func NewSphereLight(center core.Vec3, radius float64, color core.Color, intensity float64, sampleCount int) *SphereLight {
	if sampleCount < 1 {
		sampleCount = 1
	}

	l := &SphereLight{
		center:    center,
		radius:    radius,
		color:     color,
		intensity: intensity,
	}

	// Each sample carries an equal share of the light's intensity
	sampleColor := color.Scale(intensity / float64(sampleCount))

	random := rand.New(rand.NewSource(int64(sampleCount)*7919 + 1))
	l.samples = make([]core.LightSample, sampleCount)
	for i := range l.samples {
		n := uniformSphereDirection(random)
		l.samples[i] = core.LightSample{
			Light: l,
			P:     center.Add(n.Multiply(radius)),
			N:     n,
			Color: sampleColor,
		}
	}

	return l
}

// Illuminate returns the sample's share of the emitted color
func (l *SphereLight) Illuminate(sample *core.LightSample, position core.Vec3) core.Color {
	return sample.Color
}

// SampleCount returns the light's sample budget
func (l *SphereLight) SampleCount() int {
	return len(l.samples)
}

// GetSamples copies up to len(samples) of the light's sample set
func (l *SphereLight) GetSamples(samples []core.LightSample) int {
	n := copy(samples, l.samples)
	return n
}

// uniformSphereDirection returns a uniformly distributed unit vector
func uniformSphereDirection(random *rand.Rand) core.Vec3 {
	z := 2*random.Float64() - 1
	phi := 2 * math.Pi * random.Float64()
	r := math.Sqrt(math.Max(0, 1-z*z))
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}
