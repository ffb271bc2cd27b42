package sim

import (
	"image/color"
	"math"
	"slices"
)

// Explode appends a burst of particles at origin and returns how many were
// added. A glyph burst with no text, or whose text yields no points, is
// emitted as a sphere instead.
func (s *State) Explode(origin Vec3, hue float64, kind BurstKind, text string) int {
	c := HueColor(hue, s.cfg.ParticleLight)

	if kind == BurstGlyph {
		var points []Vec3
		if s.glyphs != nil && text != "" {
			points = s.glyphs.Rasterize(text)
		}
		if len(points) > 0 {
			return s.explodeGlyph(origin, c, points)
		}
		kind = BurstSphere
	}

	count := s.cfg.SphereCount
	if kind == BurstRing {
		count = s.cfg.RingCount
	}
	s.Particles = slices.Grow(s.Particles, count)

	gravity := Vec3{Y: s.cfg.Gravity}
	for i := 0; i < count; i++ {
		theta := between(s.rng, 0, 2*math.Pi)
		phi := between(s.rng, 0, math.Pi)

		mod := 1.0
		if kind == BurstRing {
			if math.Abs(math.Cos(phi)) < s.cfg.RingBand {
				mod = s.cfg.RingBoost
			} else {
				mod = s.cfg.RingDamp
			}
		}
		speed := between(s.rng, s.cfg.MinSpeed, s.cfg.MaxSpeed) * mod

		s.Particles = append(s.Particles, Particle{
			Pos: origin,
			Vel: Vec3{
				X: speed * math.Sin(phi) * math.Cos(theta),
				Y: speed * math.Sin(phi) * math.Sin(theta),
				Z: speed * math.Cos(phi),
			},
			Acc:   gravity,
			Color: c,
			Alpha: 1,
			Size:  between(s.rng, s.cfg.SparkMinSize, s.cfg.SparkMaxSize),
			Decay: between(s.rng, s.cfg.SparkMinDecay, s.cfg.SparkMaxDecay),
			Kind:  ParticleSpark,
		})
	}
	return count
}

// explodeGlyph launches one particle per glyph point. Velocity is proportional
// to the point's offset so the extra glyph damping brings each particle to
// rest near its place in the text.
func (s *State) explodeGlyph(origin Vec3, c color.RGBA, points []Vec3) int {
	s.Particles = slices.Grow(s.Particles, len(points))

	gravity := Vec3{Y: s.cfg.Gravity}
	k, j := s.cfg.GlyphVelScale, s.cfg.GlyphJitter
	for _, p := range points {
		s.Particles = append(s.Particles, Particle{
			Pos: origin,
			Vel: Vec3{
				X: p.X*k + between(s.rng, -j, j),
				Y: p.Y*k + between(s.rng, -j, j),
				Z: p.Z*k + between(s.rng, -j, j),
			},
			Acc:   gravity,
			Color: c,
			Alpha: 1,
			Size:  between(s.rng, s.cfg.GlyphMinSize, s.cfg.GlyphMaxSize),
			Decay: between(s.rng, s.cfg.GlyphMinDecay, s.cfg.GlyphMaxDecay),
			Kind:  ParticleGlyph,
		})
	}
	return len(points)
}

// burstKind picks the explosion shape for a shell
func (s *State) burstKind(sh *Shell) BurstKind {
	if sh.Text != "" {
		return BurstGlyph
	}
	if s.rng.Float64() < s.cfg.RingChance {
		return BurstRing
	}
	return BurstSphere
}
