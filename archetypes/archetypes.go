package archetypes

import (
	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
		components.Viewport,
		components.Pointer,
		components.Input,
		components.Pause,
		components.Settings,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
