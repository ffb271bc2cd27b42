package components

import (
	"github.com/automoto/fireworks/sim"
	"github.com/automoto/fireworks/sound"
	"github.com/yohamta/donburi"
)

// StageData owns the simulation for the scene. Systems reach it through the
// singleton entity rather than package state.
type StageData struct {
	Stage *sim.Stage
	Sound *sound.SoundManager // nil when sound is off

	// Reused between frames to avoid reallocating the render list
	RenderList []sim.RenderItem

	// Results of the most recent frame (for HUD and debug)
	LastStats  sim.StepStats
	LastPhrase string
	Bursts     int
}

var Stage = donburi.NewComponentType[StageData]()

// ViewportData is the drawing surface size reported by Layout
type ViewportData struct {
	Width  int
	Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()

// PointerData is the last known cursor or touch position in surface pixels
type PointerData struct {
	X, Y float64
	Seen bool // false until the first pointer event; camera uses center until then
}

var Pointer = donburi.NewComponentType[PointerData]()
