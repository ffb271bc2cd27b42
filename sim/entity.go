package sim

import "image/color"

// Shell is an ascending projectile. It lives in State.Shells until the tick it
// bursts, when it is removed and replaced by a batch of particles.
type Shell struct {
	Pos     Vec3
	Vel     Vec3
	TargetY float64 // apex height; the shell bursts once it rises above this
	Hue     float64 // degrees
	Text    string  // non-empty for feature shells
	// Exploded is set on the copy handed to the burst; live shells never carry it.
	Exploded bool
}

// ParticleKind tags a particle's integration and draw style
type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleGlyph
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleSpark:
		return "spark"
	case ParticleGlyph:
		return "glyph"
	}
	return "unknown"
}

// Particle is an explosion fragment. Alpha runs from 1 down to 0; a particle
// at or below zero is dropped on the tick it gets there.
type Particle struct {
	Pos   Vec3
	Vel   Vec3
	Acc   Vec3       // constant per-tick acceleration (gravity)
	Color color.RGBA // opaque base color; Alpha is applied at draw time
	Alpha float64
	Size  float64
	Decay float64 // alpha lost per tick
	Kind  ParticleKind
}

// BurstKind selects the shape of an explosion
type BurstKind uint8

const (
	BurstSphere BurstKind = iota
	BurstRing
	BurstGlyph
)

func (k BurstKind) String() string {
	switch k {
	case BurstSphere:
		return "sphere"
	case BurstRing:
		return "ring"
	case BurstGlyph:
		return "glyph"
	}
	return "unknown"
}
