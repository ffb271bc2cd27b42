package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// SettingsData holds display toggles for the stage overlays
type SettingsData struct {
	ShowHUD bool
	Debug   bool
}

var Settings = donburi.NewComponentType[SettingsData]()
