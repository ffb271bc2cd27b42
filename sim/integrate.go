package sim

// StepStats summarizes one integration tick
type StepStats struct {
	Bursts  int // shells that exploded this tick
	Phrases int // of those, shells that carried a phrase
	Spawned int // particles created by those bursts
	Expired int // particles removed this tick
}

// Step advances every shell and particle by one tick. Shells that reached
// their apex are replaced by bursts; faded or fallen particles are dropped.
// Both collections are compacted in place.
func (s *State) Step() StepStats {
	var stats StepStats
	g := s.cfg.Gravity

	live := s.Shells[:0]
	for _, sh := range s.Shells {
		sh.Pos = sh.Pos.Add(sh.Vel)
		sh.Vel.Y += g

		if sh.Vel.Y >= 0 || sh.Pos.Y < sh.TargetY {
			sh.Exploded = true
			stats.Spawned += s.Explode(sh.Pos, sh.Hue, s.burstKind(&sh), sh.Text)
			stats.Bursts++
			if sh.Text != "" {
				stats.Phrases++
			}
			continue
		}
		live = append(live, sh)
	}
	clear(s.Shells[len(live):])
	s.Shells = live

	floor := s.Height * s.cfg.FloorMultiplier
	drag := s.cfg.Drag
	damp := s.cfg.GlyphDamping

	kept := s.Particles[:0]
	for _, p := range s.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(drag).Add(p.Acc)

		if p.Kind == ParticleGlyph {
			p.Vel = p.Vel.Scale(damp)
			if s.rng.Float64() < s.cfg.TwinkleChance {
				p.Size = between(s.rng, s.cfg.TwinkleMinSize, s.cfg.TwinkleMaxSize)
			} else {
				p.Size = between(s.rng, s.cfg.RestingMinSize, s.cfg.RestingMaxSize)
			}
		}

		p.Alpha -= p.Decay
		if p.Alpha <= 0 || (floor > 0 && p.Pos.Y > floor) {
			stats.Expired++
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Particles[len(kept):])
	s.Particles = kept

	return stats
}
