package core

// Color represents an RGB color
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Modulate returns the component-wise product of two colors
func (c Color) Modulate(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Color4 represents an RGBA color with straight alpha
type Color4 struct {
	R, G, B, A float64
}

// NewColor4 creates a new Color4
func NewColor4(r, g, b, a float64) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// Over composites c over far using the standard over formula per channel
func (c Color4) Over(far Color4) Color4 {
	w := 1 - c.A
	return Color4{
		R: c.R + far.R*w,
		G: c.G + far.G*w,
		B: c.B + far.B*w,
		A: c.A + far.A*w,
	}
}

// Clamp01 clamps x to [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
