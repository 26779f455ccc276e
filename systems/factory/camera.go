package factory

import (
	"github.com/softlock-games/viewfinder/archetypes"
	"github.com/softlock-games/viewfinder/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera entity with the matrix baked from the given
// projection. The projection is kept alongside the camera so the matrix can
// be rebuilt later (zoom, aspect changes, rig loads); the camera itself only
// ever holds the baked result.
func CreateCamera(ecs *ecs.ECS, name string, slot int, proj components.ProjectionData) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Label.SetValue(camera, components.LabelData{Name: name, Slot: slot})
	components.Projection.SetValue(camera, proj)
	components.Camera.SetValue(camera, components.CameraFrom(proj))
	components.Zoom.SetValue(camera, components.ZoomData{Factor: 1})
	return camera
}

// CreateStandard2D spawns the standard flat camera: a [-1, 1] viewport in
// both axes.
func CreateStandard2D(ecs *ecs.ECS, name string, slot int) *donburi.Entry {
	return CreateCamera(ecs, name, slot, components.NewOrthographic(-1, 1, 1, -1))
}

// CreateStandard3D spawns the standard 60 degree perspective camera for the
// given screen dimensions and marks it to track the viewport aspect.
func CreateStandard3D(ecs *ecs.ECS, name string, slot int, width, height float32) *donburi.Entry {
	camera := CreateCamera(ecs, name, slot, components.NewPerspective(width/height, 60))
	camera.AddComponent(components.AutoAspect)
	components.AutoAspect.SetValue(camera, components.AutoAspectData{
		LastWidth:  int(width),
		LastHeight: int(height),
	})
	return camera
}

// CreateDolly spawns the dolly singleton centered on the given position.
func CreateDolly(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	dolly := archetypes.Dolly.Spawn(ecs)
	components.Dolly.SetValue(dolly, components.DollyData{X: x, Y: y})
	return dolly
}

// CreateViewport spawns the viewport singleton.
func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	vp := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(vp, components.ViewportData{Width: width, Height: height})
	return vp
}
