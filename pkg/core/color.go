package core

import (
	"image/color"
	"math"
)

// Color is a linear RGBA colour. Channels are left unclamped while samples
// are accumulated and only clamped on output.
type Color struct {
	R, G, B, A float64
}

var (
	Black   = Color{0, 0, 0, 1}
	White   = Color{1, 1, 1, 1}
	SkyBlue = Color{0.5, 0.7, 1.0, 1}
	// ErrorColor marks samples that produced nothing at all, so scheduler
	// or tracer bugs show up as magenta instead of silent black.
	ErrorColor = Color{1, 0, 1, 1}
)

// NewColor creates an opaque colour
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ColorFromVec3 creates an opaque colour from a vector's components
func ColorFromVec3(v Vec3) Color {
	return NewColor(v.X, v.Y, v.Z)
}

// Add sums the rgb channels and composites opacity: a' = a + (1-a)*other.a
func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + (1-c.A)*other.A,
	}
}

// Scale multiplies the rgb channels by a scalar, alpha is kept
func (c Color) Scale(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A}
}

// Multiply returns the component-wise product of the rgb channels
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A}
}

// Lerp blends from c (t=0) to other (t=1)
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R*(1-t) + other.R*t,
		G: c.G*(1-t) + other.G*t,
		B: c.B*(1-t) + other.B*t,
		A: c.A*(1-t) + other.A*t,
	}
}

// Clamp returns a colour with every channel clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
		A: max(minVal, min(maxVal, c.A)),
	}
}

// Gamma applies gamma 2 encoding: the square root of each channel clamped to
// be non-negative. Alpha is left linear.
func (c Color) Gamma() Color {
	return Color{
		R: math.Sqrt(max(0, c.R)),
		G: math.Sqrt(max(0, c.G)),
		B: math.Sqrt(max(0, c.B)),
		A: c.A,
	}
}

// ToRGBA converts to 8-bit sRGB-ish output with clamping
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}
}
