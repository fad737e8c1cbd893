package anim

import (
	"image/color"
	"math"
)

// hueToRgb converts a hue (0-360) with chroma c and offset m to RGB.
func hueToRgb(h, c, m float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return to8(r + m), to8(g + m), to8(b + m)
}

func to8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}

// HSL converts hue (0-360), saturation and lightness (0-1) to an opaque colour.
func HSL(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	r, g, b := hueToRgb(h, c, l-c/2)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// HSV converts hue (0-360), saturation and value (0-1) to an opaque colour.
func HSV(h, s, v float64) color.RGBA {
	c := v * s
	r, g, b := hueToRgb(h, c, v-c)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Fade scales a colour's alpha by opacity, keeping it non-premultiplied.
func Fade(c color.RGBA, opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * Clamp01(opacity))}
}
