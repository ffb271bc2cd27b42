// Package headless runs the simulation without a window, ticking on a
// virtual clock so a seeded run is reproducible.
package headless

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/automoto/fireworks/sim"
)

// Config controls the no-window runner.
type Config struct {
	Enabled  bool
	Hz       int
	Ticks    uint64 // stop after N ticks (0 = run until cancelled)
	LogEvery uint64 // log a summary every N ticks (0 = never)
	Unpaced  bool   // tick as fast as possible instead of at Hz wall time
	Width    int
	Height   int
}

// Report totals a headless run
type Report struct {
	Ticks         uint64
	Bursts        int
	Phrases       int
	Spawned       int
	Expired       int
	PeakParticles int
	Elapsed       time.Duration // virtual time
}

func (r Report) String() string {
	return fmt.Sprintf("%d ticks (%s): %d bursts (%d phrases), %d particles spawned, %d expired, peak %d",
		r.Ticks, r.Elapsed, r.Bursts, r.Phrases, r.Spawned, r.Expired, r.PeakParticles)
}

// Clock is a virtual clock advanced one tick at a time
type Clock struct {
	now time.Duration
}

func (c *Clock) Now() time.Duration {
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.now += d
}

// Run ticks the stage built by newStage until ctx is done or cfg.Ticks is
// reached. The report is valid whether or not an error is returned.
func Run(ctx context.Context, newStage func(sim.Clock) *sim.Stage, cfg Config) (Report, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return Report{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	clock := &Clock{}
	stage := newStage(clock)
	if cfg.Width > 0 && cfg.Height > 0 {
		stage.State.Resize(float64(cfg.Width), float64(cfg.Height))
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var rep Report
	for {
		if err := wait(ctx, t.C, cfg.Unpaced); err != nil {
			return rep, err
		}

		clock.Advance(d)
		_, stats := stage.Tick(d)

		rep.Ticks++
		rep.Elapsed = clock.Now()
		rep.Bursts += stats.Bursts
		rep.Phrases += stats.Phrases
		rep.Spawned += stats.Spawned
		rep.Expired += stats.Expired
		rep.PeakParticles = max(rep.PeakParticles, len(stage.State.Particles))

		if cfg.LogEvery > 0 && rep.Ticks%cfg.LogEvery == 0 {
			log.Printf("tick %d: shells %d, particles %d, next %q",
				rep.Ticks, len(stage.State.Shells), len(stage.State.Particles), stage.Scheduler.NextPhrase())
		}
		if cfg.Ticks > 0 && rep.Ticks >= cfg.Ticks {
			return rep, nil
		}
	}
}

// wait blocks until the next tick is due, or only checks ctx when unpaced
func wait(ctx context.Context, tick <-chan time.Time, unpaced bool) error {
	if unpaced {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}
