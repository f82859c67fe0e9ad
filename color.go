package icongen

import (
	"image/color"
	"math"
)

// RGBA represents a straight (non-premultiplied) color with red, green,
// blue, and alpha components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// RGBA implements the color.Color interface, returning alpha-premultiplied
// 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	v := RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
	if v.A > 0 {
		v.R /= v.A
		v.G /= v.A
		v.B /= v.A
	}
	return v
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premul is a premultiplied color: each channel is already scaled by the
// alpha channel, so R, G, B ≤ A always holds. The zero value is fully
// transparent. Construct values with PM rather than literals so the
// invariant holds by construction.
type Premul struct {
	R, G, B, A float64
}

// PM converts a straight color and a coverage alpha into premultiplied
// form. The alpha is clamped to [0, 1] before scaling; the color's own
// alpha component is ignored.
func PM(c RGBA, alpha float64) Premul {
	a := Clamp(alpha, 0, 1)
	return Premul{R: c.R * a, G: c.G * a, B: c.B * a, A: a}
}

// Over composites src on top of dst using premultiplied source-over:
// result = src + dst·(1−src.A), applied to every channel including alpha.
// Applying Over left-to-right over an ordered layer list gives strict
// back-to-front compositing.
func Over(dst, src Premul) Premul {
	inv := 1.0 - src.A
	return Premul{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}

// Unpremultiply converts back to a straight color. Channels of a fully
// transparent color are defined as zero.
func (p Premul) Unpremultiply() RGBA {
	if p.A == 0 {
		return RGBA{}
	}
	return RGBA{R: p.R / p.A, G: p.G / p.A, B: p.B / p.A, A: p.A}
}

// quantize maps a [0, 1] channel intensity to the nearest 8-bit value.
func quantize(v float64) uint8 {
	return uint8(Clamp(math.Round(v*255), 0, 255))
}

// Common colors used by the scene and its tests.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
