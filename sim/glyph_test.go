package sim

import (
	"testing"

	"github.com/automoto/fireworks/config"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

func newTestRasterizer(t *testing.T, cfg config.GlyphConfig) *Rasterizer {
	t.Helper()
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		t.Fatalf("parse gobold: %v", err)
	}
	return NewRasterizer(cfg, f, NewRand(3))
}

// TestRasterizeWithinBounds checks a phrase yields points inside the
// magnified surface bounds, with bounded depth jitter.
func TestRasterizeWithinBounds(t *testing.T) {
	cfg := config.Glyph
	r := newTestRasterizer(t, cfg)

	points := r.Rasterize("CHEERS")
	if len(points) == 0 {
		t.Fatal("expected glyph points")
	}

	minX, maxX, minY, maxY := r.Bounds()
	var loX, hiX, loY, hiY float64
	for i, p := range points {
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			t.Fatalf("point %d %+v outside [%v,%v]x[%v,%v]", i, p, minX, maxX, minY, maxY)
		}
		if p.Z < -cfg.DepthJitter || p.Z > cfg.DepthJitter {
			t.Fatalf("point %d depth %v outside jitter", i, p.Z)
		}
		loX, hiX = min(loX, p.X), max(hiX, p.X)
		loY, hiY = min(loY, p.Y), max(hiY, p.Y)
	}
	// The text is centered, so it spans both sides of the midline
	if loX >= 0 || hiX <= 0 || loY >= 0 || hiY <= 0 {
		t.Errorf("glyph not centered: x [%v, %v] y [%v, %v]", loX, hiX, loY, hiY)
	}
}

// TestRasterizeStrideDensity checks a finer stride samples more points
func TestRasterizeStrideDensity(t *testing.T) {
	coarse := config.Glyph
	coarse.Stride = 4
	fine := config.Glyph
	fine.Stride = 2

	nc := len(newTestRasterizer(t, coarse).Rasterize("JOY"))
	nf := len(newTestRasterizer(t, fine).Rasterize("JOY"))
	if nc == 0 || nf <= nc*3 {
		t.Errorf("stride 2 gave %d points, stride 4 gave %d; expected about 4x", nf, nc)
	}
}

// TestRasterizeFitsLongText checks a phrase wider than the surface is shrunk
// rather than clipped at the edges.
func TestRasterizeFitsLongText(t *testing.T) {
	cfg := config.Glyph
	r := newTestRasterizer(t, cfg)

	points := r.Rasterize("HAPPY BIRTHDAY TO YOU")
	if len(points) == 0 {
		t.Fatal("expected glyph points")
	}
	minX, maxX, _, _ := r.Bounds()
	edge := float64(cfg.Stride) * cfg.Magnification * 2
	for _, p := range points {
		if p.X <= minX+edge || p.X >= maxX-edge {
			t.Fatalf("point at x=%v touches the surface edge", p.X)
		}
	}
}

// TestRasterizeReusesSurface checks a second call does not keep the first text
func TestRasterizeReusesSurface(t *testing.T) {
	r := newTestRasterizer(t, config.Glyph)

	wide := len(r.Rasterize("WWWWW"))
	narrow := len(r.Rasterize("I"))
	if narrow == 0 || narrow >= wide {
		t.Errorf("expected fewer points for I (%d) than WWWWW (%d)", narrow, wide)
	}
}

func TestRasterizeUnavailable(t *testing.T) {
	r := NewRasterizer(config.Glyph, nil, NewRand(1))
	if r.Available() {
		t.Fatal("rasterizer without a font should be unavailable")
	}
	if pts := r.Rasterize("JOY"); len(pts) != 0 {
		t.Errorf("expected no points, got %d", len(pts))
	}

	var nilR *Rasterizer
	if pts := nilR.Rasterize("JOY"); len(pts) != 0 {
		t.Errorf("nil rasterizer returned %d points", len(pts))
	}
}

func TestRasterizeEmptyText(t *testing.T) {
	r := newTestRasterizer(t, config.Glyph)
	if pts := r.Rasterize(""); len(pts) != 0 {
		t.Errorf("expected no points for empty text, got %d", len(pts))
	}
}

// TestConfiguredPhrasesRasterize checks the bundled glyph font can draw every
// phrase in the show.
func TestConfiguredPhrasesRasterize(t *testing.T) {
	r := newTestRasterizer(t, config.Glyph)
	for _, phrase := range config.Fireworks.Phrases {
		if n := len(r.Rasterize(phrase)); n == 0 {
			t.Errorf("phrase %q produced no glyph points", phrase)
		}
	}
}
