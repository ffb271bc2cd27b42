package factory

import (
	"log"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/automoto/fireworks/sim"
)

// NewGlyphSource builds the phrase rasterizer from the loaded glyph font.
// It returns nil when the font is missing; phrase shells then burst as spheres.
func NewGlyphSource(rng sim.Rand) sim.GlyphSource {
	tt, ok := fonts.Glyph.TrueType()
	if !ok {
		log.Printf("Warning: glyph font %q not loaded, phrase bursts fall back to spheres", fonts.Glyph)
		return nil
	}
	return sim.NewRasterizer(cfg.Glyph, tt, rng)
}
