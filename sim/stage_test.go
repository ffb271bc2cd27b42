package sim

import (
	"testing"
	"time"

	"github.com/automoto/fireworks/config"
)

func newTestStage(clock Clock) *Stage {
	st := newTestState(21, nil)
	return &Stage{
		State:     st,
		Scheduler: NewScheduler(config.Fireworks, clock),
		Drift:     NewDrift(config.Camera.DriftAmplitude, config.Camera.DriftPeriod),
	}
}

func TestStageTickRunsPhases(t *testing.T) {
	clock := &fakeClock{}
	s := newTestStage(clock)

	l, _ := s.Tick(time.Second / 60)
	if !l.Ambient || !l.Feature {
		t.Fatalf("expected both timers on the first tick, got %+v", l)
	}
	if len(s.State.Shells) != 2 {
		t.Fatalf("expected 2 shells, got %d", len(s.State.Shells))
	}
	if s.Frames != 1 {
		t.Errorf("frames = %d", s.Frames)
	}
	if s.Drift.Value() == 0 {
		t.Errorf("drift did not advance")
	}
}

func TestStagePausedHoldsState(t *testing.T) {
	clock := &fakeClock{}
	s := newTestStage(clock)
	s.Tick(time.Second / 60)
	before := s.State.Shells[0].Pos
	drift := s.Drift.Value()

	s.Paused = true
	clock.Advance(10 * time.Second)
	l, stats := s.Tick(time.Second / 60)

	if l.Ambient || l.Feature || stats.Bursts != 0 {
		t.Errorf("paused stage launched or burst: %+v %+v", l, stats)
	}
	if s.State.Shells[0].Pos != before {
		t.Errorf("paused stage moved a shell")
	}
	if s.Drift.Value() != drift || s.Frames != 1 {
		t.Errorf("paused stage advanced drift or frame count")
	}
}

func TestStageCameraUsesDrift(t *testing.T) {
	s := newTestStage(&fakeClock{})
	s.Tick(time.Second)
	cam := s.Camera(config.Camera, s.State.Width/2, s.State.Height/2)
	if cam.Yaw != s.Drift.Value() {
		t.Errorf("yaw %v, want drift %v", cam.Yaw, s.Drift.Value())
	}
}

func TestNewStageWiresPhases(t *testing.T) {
	s := NewStage(config.Fireworks, config.Camera, NewRand(5), &fakeClock{}, nil)
	if s.State == nil || s.Scheduler == nil || s.Drift == nil {
		t.Fatalf("incomplete stage: %+v", s)
	}
	s.State.Resize(640, 360)
	if l, _ := s.Tick(time.Second / 60); !l.Feature {
		t.Errorf("feature timer did not fire on the first tick")
	}
}

// TestPhraseBurstsStayUnderSoftCap runs the full show with real glyph bursts
// and checks the soft cap never throttles ambient launches in normal play.
func TestPhraseBurstsStayUnderSoftCap(t *testing.T) {
	run := func(maxParticles int) (ambient, saturated, peak int) {
		fw := config.Fireworks
		fw.MaxParticles = maxParticles
		clock := &fakeClock{}
		stage := NewStage(fw, config.Camera, NewRand(11), clock, newTestRasterizer(t, config.Glyph))
		stage.State.Resize(1280, 720)

		frame := time.Second / 60
		for i := 0; i < 60*20; i++ {
			if stage.State.Saturated() {
				saturated++
			}
			l, _ := stage.Tick(frame)
			if l.Ambient {
				ambient++
			}
			peak = max(peak, len(stage.State.Particles))
			clock.Advance(frame)
		}
		return ambient, saturated, peak
	}

	capped, saturated, peak := run(config.Fireworks.MaxParticles)
	uncapped, _, _ := run(0)

	if saturated != 0 {
		t.Errorf("soft cap hit on %d ticks, peak %d particles", saturated, peak)
	}
	if capped != uncapped {
		t.Errorf("ambient launches %d with the cap, %d without", capped, uncapped)
	}
	if peak < 5000 {
		t.Errorf("peak %d particles, expected phrase bursts to run", peak)
	}
}
