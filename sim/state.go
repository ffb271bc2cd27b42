// Package sim is the fireworks simulation core: launch scheduling, bursts,
// particle integration and perspective projection. It has no drawing
// dependency; hosts composite the render list themselves.
package sim

import "github.com/automoto/fireworks/config"

// State is the live simulation: every shell still rising and every particle
// still visible. The scheduler appends shells, Step advances both
// collections, and the projector reads them.
type State struct {
	Shells    []Shell
	Particles []Particle

	// Surface size in pixels, used for launch positions and the removal floor
	Width  float64
	Height float64

	cfg    config.FireworksConfig
	rng    Rand
	glyphs GlyphSource
}

// NewState returns an empty simulation. glyphs may be nil, in which case every
// glyph burst degrades to a sphere.
func NewState(cfg config.FireworksConfig, rng Rand, glyphs GlyphSource) *State {
	return &State{
		cfg:    cfg,
		rng:    rng,
		glyphs: glyphs,
	}
}

// Resize updates the surface dimensions
func (s *State) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// Launch enqueues a shell
func (s *State) Launch(sh Shell) {
	sh.Exploded = false
	s.Shells = append(s.Shells, sh)
}

// Saturated reports whether the particle count is above the soft cap
func (s *State) Saturated() bool {
	return s.cfg.MaxParticles > 0 && len(s.Particles) > s.cfg.MaxParticles
}

// Config returns the tuning the state was created with
func (s *State) Config() config.FireworksConfig {
	return s.cfg
}
