package factory

import (
	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/sim"
	"github.com/automoto/fireworks/sound"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage spawns the singleton stage entity owning the simulation.
// The stage is sized to the initial surface.
func CreateStage(ecs *ecs.ECS, stage *sim.Stage, snd *sound.SoundManager, width, height int) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)

	stage.State.Resize(float64(width), float64(height))
	components.Stage.SetValue(entry, components.StageData{Stage: stage, Sound: snd})
	components.Viewport.SetValue(entry, components.ViewportData{Width: width, Height: height})
	components.Pointer.SetValue(entry, components.PointerData{
		X: float64(width) / 2,
		Y: float64(height) / 2,
	})
	components.Settings.SetValue(entry, components.SettingsData{
		ShowHUD: true,
		Debug:   cfg.Debug.Overlay,
	})
	return entry
}
