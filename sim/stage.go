package sim

import (
	"time"

	"github.com/automoto/fireworks/config"
)

// Stage bundles the per-frame phases for hosts that drive the loop
// themselves: scheduler check, integration, then camera drift.
type Stage struct {
	State     *State
	Scheduler *Scheduler
	Drift     *Drift
	Paused    bool

	Frames uint64
}

// NewStage wires a state, scheduler and drift from the given tuning.
// glyphs may be nil.
func NewStage(fw config.FireworksConfig, cam config.CameraConfig, rng Rand, clock Clock, glyphs GlyphSource) *Stage {
	return &Stage{
		State:     NewState(fw, rng, glyphs),
		Scheduler: NewScheduler(fw, clock),
		Drift:     NewDrift(cam.DriftAmplitude, cam.DriftPeriod),
	}
}

// Tick runs one frame. A paused stage neither launches nor integrates, and
// the camera drift holds still.
func (s *Stage) Tick(dt time.Duration) (Launches, StepStats) {
	if s.Paused {
		return Launches{}, StepStats{}
	}
	l := s.Scheduler.Update(s.State)
	stats := s.State.Step()
	if s.Drift != nil {
		s.Drift.Update(dt)
	}
	s.Frames++
	return l, stats
}

// Camera returns the view for a pointer position on the stage surface
func (s *Stage) Camera(cfg config.CameraConfig, pointerX, pointerY float64) Camera {
	drift := 0.0
	if s.Drift != nil {
		drift = s.Drift.Value()
	}
	return CameraFor(cfg, pointerX, pointerY, s.State.Width, s.State.Height, drift)
}
