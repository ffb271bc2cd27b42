package factory

import (
	"github.com/automoto/fireworks/archetypes"
	"github.com/automoto/fireworks/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera; UpdateCamera fills in the view each frame
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
