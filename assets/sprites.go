package assets

import (
	"image"
	"math"
)

// Falloff gives sprite coverage at normalized distance d from the center
type Falloff func(d, radius float64) float64

// RadialSprite renders a white premultiplied disc of the given radius
func RadialSprite(radius int, falloff Falloff) *image.RGBA {
	size := max(radius*2, 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			a := falloff(math.Hypot(dx, dy)/r, r)
			if a <= 0 {
				continue
			}
			v := uint8(math.Round(math.Min(a, 1) * 255))
			i := img.PixOffset(x, y)
			img.Pix[i+0] = v
			img.Pix[i+1] = v
			img.Pix[i+2] = v
			img.Pix[i+3] = v
		}
	}
	return img
}

// DotFalloff is a solid disc with a one pixel antialiased rim
func DotFalloff(d, radius float64) float64 {
	return (1 - d) * radius
}

// GlowFalloff approximates a canvas shadow blur, brightest at the center
func GlowFalloff(d, _ float64) float64 {
	if d >= 1 {
		return 0
	}
	f := 1 - d
	return f * f
}
