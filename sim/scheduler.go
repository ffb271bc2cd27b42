package sim

import (
	"time"

	"github.com/automoto/fireworks/config"
)

// Clock is a monotonic time source measured from an arbitrary origin
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reports time elapsed since it was created
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// interval fires at most once per period. It fires on the first check.
type interval struct {
	period time.Duration
	last   time.Duration
	fired  bool
}

func (t *interval) due(now time.Duration) bool {
	if t.fired && now-t.last <= t.period {
		return false
	}
	t.last = now
	t.fired = true
	return true
}

// Launches reports which timers fired during a scheduler update
type Launches struct {
	Ambient bool
	Feature bool
	Phrase  string
}

// Scheduler drives the two launch timers. The ambient timer throws small
// shells at random columns; the feature timer throws a centered shell that
// carries the next phrase and palette hue.
type Scheduler struct {
	clock   Clock
	cfg     config.FireworksConfig
	ambient interval
	feature interval
	phrase  int
	forced  bool
}

func NewScheduler(cfg config.FireworksConfig, clock Clock) *Scheduler {
	return &Scheduler{
		clock:   clock,
		cfg:     cfg,
		ambient: interval{period: cfg.AmbientInterval},
		feature: interval{period: cfg.FeatureInterval},
	}
}

// Update checks both timers against the clock and enqueues their shells.
// Ambient shells are skipped while the particle count is above the soft cap.
func (s *Scheduler) Update(st *State) Launches {
	var l Launches
	now := s.clock.Now()

	if s.ambient.due(now) && !st.Saturated() {
		s.launchAmbient(st)
		l.Ambient = true
	}

	if s.forced {
		s.forced = false
		s.feature.last = now
		s.feature.fired = true
		l.Phrase = s.launchFeature(st)
		l.Feature = true
	} else if s.feature.due(now) {
		l.Phrase = s.launchFeature(st)
		l.Feature = true
	}
	return l
}

// TriggerFeature makes the feature timer fire on the next Update and restarts
// its interval from there.
func (s *Scheduler) TriggerFeature() {
	s.forced = true
}

// PhraseIndex returns the index of the next phrase to launch
func (s *Scheduler) PhraseIndex() int {
	return s.phrase
}

// NextPhrase returns the phrase the next feature shell will carry
func (s *Scheduler) NextPhrase() string {
	if len(s.cfg.Phrases) == 0 {
		return ""
	}
	return s.cfg.Phrases[s.phrase]
}

// LaunchAt enqueues a shell under a pointer position on the surface. The
// offset from center is exaggerated so manual shells spread wider in depth.
func (s *Scheduler) LaunchAt(st *State, screenX float64) {
	r := s.cfg.Manual
	x := (screenX - st.Width/2) * s.cfg.ManualSpread
	st.Launch(Shell{
		Pos:     Vec3{X: x, Y: st.Height + r.StartYOffset, Z: between(st.rng, r.MinZ, r.MaxZ)},
		Vel:     launchVelocity(st.rng, r),
		TargetY: between(st.rng, r.MinTargetY, r.MaxTargetY),
		Hue:     between(st.rng, 0, 360),
	})
}

func (s *Scheduler) launchAmbient(st *State) {
	r := s.cfg.Ambient
	spread := st.Width / s.cfg.AmbientSpread
	st.Launch(Shell{
		Pos:     Vec3{X: between(st.rng, -spread, spread), Y: st.Height + r.StartYOffset, Z: between(st.rng, r.MinZ, r.MaxZ)},
		Vel:     launchVelocity(st.rng, r),
		TargetY: between(st.rng, r.MinTargetY, r.MaxTargetY),
		Hue:     between(st.rng, 0, 360),
	})
}

func (s *Scheduler) launchFeature(st *State) string {
	if len(s.cfg.Phrases) == 0 {
		return ""
	}
	text := s.cfg.Phrases[s.phrase]
	hue := 0.0
	if n := len(s.cfg.Palette); n > 0 {
		hue = s.cfg.Palette[s.phrase%n].H
	}
	s.phrase = (s.phrase + 1) % len(s.cfg.Phrases)

	r := s.cfg.Feature
	st.Launch(Shell{
		Pos:     Vec3{X: 0, Y: st.Height + r.StartYOffset, Z: between(st.rng, r.MinZ, r.MaxZ)},
		Vel:     launchVelocity(st.rng, r),
		TargetY: between(st.rng, r.MinTargetY, r.MaxTargetY),
		Hue:     hue,
		Text:    text,
	})
	return text
}

func launchVelocity(rng Rand, r config.LaunchRange) Vec3 {
	return Vec3{
		X: between(rng, -r.MaxDrift, r.MaxDrift),
		Y: between(rng, r.MinVelY, r.MaxVelY),
		Z: between(rng, -r.MaxDrift, r.MaxDrift),
	}
}
