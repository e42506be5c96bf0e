package raster

import "solar-renderer/internal/mathutil"

// Color is an 8-bit RGB color (value type).
type Color struct {
	R, G, B uint8
}

// NewColor clamps nothing; callers pass in-range components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromVec3 converts a linear [0,1] RGB vector, clamping each channel.
func FromVec3(v mathutil.Vec3) Color {
	return Color{
		R: clamp255(v[0] * 255),
		G: clamp255(v[1] * 255),
		B: clamp255(v[2] * 255),
	}
}

// Vec3 converts to a [0,1] RGB vector for blending math.
func (c Color) Vec3() mathutil.Vec3 {
	return mathutil.Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Lerp blends toward other by t in [0,1]. t outside the range is clamped.
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: clamp255(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: clamp255(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: clamp255(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// Mul scales all channels by s, clamping to [0, 255].
func (c Color) Mul(s float64) Color {
	return Color{
		R: clamp255(float64(c.R) * s),
		G: clamp255(float64(c.G) * s),
		B: clamp255(float64(c.B) * s),
	}
}

// LimitMin raises every channel to at least min, keeping unlit hemispheres
// from collapsing to pure black.
func (c Color) LimitMin(min uint8) Color {
	r, g, b := c.R, c.G, c.B
	if r < min {
		r = min
	}
	if g < min {
		g = min
	}
	if b < min {
		b = min
	}
	return Color{R: r, G: g, B: b}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
