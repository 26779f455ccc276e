package archetypes

import (
	"github.com/softlock-games/viewfinder/components"
	cfg "github.com/softlock-games/viewfinder/config"
	"github.com/softlock-games/viewfinder/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.Label,
		components.Projection,
		components.Camera,
		components.Zoom,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Prop,
		components.Object,
		components.Visible,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Dolly = newArchetype(
		components.Dolly,
	)
	Viewport = newArchetype(
		components.Viewport,
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
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
