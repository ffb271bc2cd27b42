package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/sim"
)

func seededStage(seed uint64) func(sim.Clock) *sim.Stage {
	return func(clock sim.Clock) *sim.Stage {
		return sim.NewStage(cfg.Fireworks, cfg.Camera, sim.NewRand(seed), clock, nil)
	}
}

func TestRunStopsAfterTicks(t *testing.T) {
	// 10s of virtual time at 1kHz: enough for three feature shells to burst
	rep, err := Run(context.Background(), seededStage(1), Config{Hz: 1000, Ticks: 10000, Width: 1280, Height: 720, Unpaced: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Ticks != 10000 {
		t.Errorf("ticks = %d", rep.Ticks)
	}
	if rep.Elapsed != 10*time.Second {
		t.Errorf("elapsed = %s", rep.Elapsed)
	}
	if rep.Bursts == 0 || rep.Spawned == 0 {
		t.Errorf("nothing burst: %s", rep)
	}
	if rep.Phrases < 2 {
		t.Errorf("expected at least 2 phrase bursts, got %d", rep.Phrases)
	}
}

func TestRunIsReproducible(t *testing.T) {
	c := Config{Hz: 2000, Ticks: 3000, Width: 800, Height: 600, Unpaced: true}
	a, err := Run(context.Background(), seededStage(42), c)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), seededStage(42), c)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same seed diverged:\n%s\n%s", a, b)
	}
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, seededStage(3), Config{Hz: 60, Unpaced: true})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestRunPacedTicks(t *testing.T) {
	rep, err := Run(context.Background(), seededStage(4), Config{Hz: 500, Ticks: 5})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Ticks != 5 || rep.Elapsed != 10*time.Millisecond {
		t.Errorf("report %s", rep)
	}
}

func TestRunRejectsHugeHz(t *testing.T) {
	if _, err := Run(context.Background(), seededStage(5), Config{Hz: 2_000_000_000}); err == nil {
		t.Fatal("expected error for sub-nanosecond tick")
	}
}
