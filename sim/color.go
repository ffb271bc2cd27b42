package sim

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueColor returns the fully saturated color for hue (degrees) at the given
// HSL lightness. Alpha is always 255.
func HueColor(hue, lightness float64) color.RGBA {
	c := colorful.Hsl(normalizeHue(hue), 1, lightness).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 || math.IsNaN(h) {
		return 0
	}
	return h
}
