package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/hotaru-render/go-hybrid-raytracer/pkg/core"
)

// Framebuffer accumulates RGBA samples in float precision. Tiles write to
// disjoint pixel ranges, so no locking is needed during rendering.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Color4
}

// NewFramebuffer creates a cleared framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color4, width*height),
	}
}

// SetPixel stores the final color of one pixel
func (fb *Framebuffer) SetPixel(x, y int, c core.Color4) {
	fb.pixels[y*fb.width+x] = c
}

// Pixel returns the stored color of one pixel
func (fb *Framebuffer) Pixel(x, y int) core.Color4 {
	return fb.pixels[y*fb.width+x]
}

// Image converts the framebuffer to an 8-bit RGBA image with gamma 2.2
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))

	const invGamma = 1.0 / 2.2
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.pixels[y*fb.width+x]
			img.Set(x, fb.height-1-y, color.RGBA{
				R: toByte(math.Pow(core.Clamp01(c.R), invGamma)),
				G: toByte(math.Pow(core.Clamp01(c.G), invGamma)),
				B: toByte(math.Pow(core.Clamp01(c.B), invGamma)),
				A: toByte(core.Clamp01(c.A)),
			})
		}
	}

	return img
}

func toByte(v float64) uint8 {
	return uint8(v*255 + 0.5)
}
