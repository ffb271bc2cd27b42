package systems

import (
	"time"

	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStage runs one simulation frame: viewport sync, manual launches,
// then the scheduler, integration and camera drift.
// Must run AFTER UpdateInput and UpdatePause.
func UpdateStage(ecs *ecs.ECS) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	data := components.Stage.Get(entry)
	stage := data.Stage

	w, h := viewportSize(ecs)
	if w != stage.State.Width || h != stage.State.Height {
		stage.State.Resize(w, h)
	}

	pause := GetOrCreatePause(ecs)
	stage.Paused = pause.IsPaused
	if stage.Paused {
		return
	}

	input := getOrCreateInput(ecs)
	for _, x := range input.Launches {
		stage.Scheduler.LaunchAt(stage.State, x)
	}
	if GetAction(input, cfg.ActionFeatureNow).JustPressed {
		stage.Scheduler.TriggerFeature()
	}

	launches, stats := stage.Tick(frameDuration())
	data.LastStats = stats
	data.Bursts += stats.Bursts
	if launches.Feature {
		data.LastPhrase = launches.Phrase
	}

	if stats.Bursts > 0 {
		data.Sound.PlayBurst(stats.Phrases > 0)
	}
	if stats.Phrases > 0 {
		TriggerScreenShake(ecs, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
	}
}

// frameDuration is the simulated time covered by one Update call
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// viewportSize returns the surface size reported by Layout, falling back to
// the configured window size before the first layout.
func viewportSize(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return float64(cfg.C.Width), float64(cfg.C.Height)
	}
	vp := components.Viewport.Get(entry)
	if vp.Width <= 0 || vp.Height <= 0 {
		return float64(cfg.C.Width), float64(cfg.C.Height)
	}
	return float64(vp.Width), float64(vp.Height)
}

// SetViewport records the surface size; UpdateStage resizes the simulation
func SetViewport(ecs *ecs.ECS, width, height int) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(entry)
	vp.Width, vp.Height = width, height
}
