package factory

import (
	"github.com/softlock-games/viewfinder/archetypes"
	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateProp(ecs *ecs.ECS, name string, x, y, w, h, depth float64) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)
	components.Prop.SetValue(prop, components.PropData{Name: name, Depth: depth})
	components.Visible.SetValue(prop, components.VisibleData{})

	// Collision object for viewport culling
	obj := resolv.NewObject(x, y, w, h, tags.ResolvProp)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = prop // Link for O(1) lookup

	components.Object.SetValue(prop, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return prop
}
