package sim

import (
	"image"

	"github.com/automoto/fireworks/config"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// GlyphSource turns text into burst target points. An empty result means the
// glyph burst should degrade to a sphere.
type GlyphSource interface {
	Rasterize(text string) []Vec3
}

// Rasterizer draws text onto a single off-screen alpha surface and samples it
// on a fixed stride. The surface is allocated once and reused for every call;
// it is not safe for concurrent use.
type Rasterizer struct {
	cfg     config.GlyphConfig
	font    *truetype.Font
	faces   map[float64]font.Face
	surface *image.Alpha
	rng     Rand
}

// NewRasterizer returns a rasterizer for the parsed font. A nil font yields a
// rasterizer whose surface is unavailable; every Rasterize call then returns
// no points.
func NewRasterizer(cfg config.GlyphConfig, f *truetype.Font, rng Rand) *Rasterizer {
	r := &Rasterizer{
		cfg:   cfg,
		font:  f,
		faces: map[float64]font.Face{},
		rng:   rng,
	}
	if f != nil && cfg.SurfaceWidth > 0 && cfg.SurfaceHeight > 0 {
		r.surface = image.NewAlpha(image.Rect(0, 0, cfg.SurfaceWidth, cfg.SurfaceHeight))
	}
	return r
}

// Available reports whether the off-screen surface can be drawn on
func (r *Rasterizer) Available() bool {
	return r != nil && r.surface != nil && r.font != nil
}

// Rasterize renders text centered on the surface and returns one point per
// sampled pixel whose coverage exceeds the threshold. Points are centered on
// the surface midline, magnified, and given a random depth so the glyph reads
// as an extruded volume.
func (r *Rasterizer) Rasterize(text string) []Vec3 {
	if !r.Available() || text == "" {
		return nil
	}

	w, h := r.cfg.SurfaceWidth, r.cfg.SurfaceHeight
	clear(r.surface.Pix)

	face := r.fitFace(text)
	m := face.Metrics()
	d := font.Drawer{
		Dst:  r.surface,
		Src:  image.Opaque,
		Face: face,
	}
	adv := d.MeasureString(text)
	// Horizontally centered, vertically centered on the em box
	d.Dot = fixed.Point26_6{
		X: fixed.I(w/2) - adv/2,
		Y: fixed.I(h/2) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)

	stride := r.cfg.Stride
	if stride < 1 {
		stride = 1
	}
	cx, cy := float64(w)/2, float64(h)/2
	mag := r.cfg.Magnification

	var points []Vec3
	for y := 0; y < h; y += stride {
		row := r.surface.Pix[y*r.surface.Stride:]
		for x := 0; x < w; x += stride {
			if row[x] <= r.cfg.Threshold {
				continue
			}
			points = append(points, Vec3{
				X: (float64(x) - cx) * mag,
				Y: (float64(y) - cy) * mag,
				Z: between(r.rng, -r.cfg.DepthJitter, r.cfg.DepthJitter),
			})
		}
	}
	return points
}

// Bounds returns the extent every rasterized point falls within
func (r *Rasterizer) Bounds() (minX, maxX, minY, maxY float64) {
	hw := float64(r.cfg.SurfaceWidth) / 2 * r.cfg.Magnification
	hh := float64(r.cfg.SurfaceHeight) / 2 * r.cfg.Magnification
	return -hw, hw, -hh, hh
}

// fitFace returns the configured face, shrunk when the text would not fit
// inside the surface width.
func (r *Rasterizer) fitFace(text string) font.Face {
	size := r.cfg.FontSize
	face := r.faceAt(size)

	limit := fixed.I(int(float64(r.cfg.SurfaceWidth) * (1 - r.cfg.FitMargin)))
	if adv := font.MeasureString(face, text); adv > limit && adv > 0 {
		size = size * float64(limit) / float64(adv)
		if size < r.cfg.MinFontSize {
			size = r.cfg.MinFontSize
		}
		// Keep the cache small: sizes are rounded to whole pixels
		size = float64(int(size))
		face = r.faceAt(size)
	}
	return face
}

func (r *Rasterizer) faceAt(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	r.faces[size] = f
	return f
}
