package systems

import (
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause, HUD and debug toggles.
// This system should run AFTER UpdateInput but BEFORE UpdateStage.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// DrawPause dims the frozen scene and labels it
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	face := fonts.Title.Get()
	bounds := text.BoundString(face, cfg.Pause.Label) //nolint:staticcheck // TODO: migrate to text/v2
	x := (width - bounds.Dx()) / 2
	y := (height + bounds.Dy()) / 2
	text.Draw(screen, cfg.Pause.Label, face, x, y, cfg.Pause.TextColor)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			ShowHUD: true,
			Debug:   cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
