package components

import (
	"github.com/automoto/fireworks/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	View   sim.Camera // rotation used by the projector this frame
	Offset math.Vec2  // screen-space shake offset applied when presenting the canvas
}

var Camera = donburi.NewComponentType[CameraData]()
