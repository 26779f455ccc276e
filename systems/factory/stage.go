package factory

import (
	"github.com/softlock-games/viewfinder/archetypes"
	"github.com/softlock-games/viewfinder/components"
	"github.com/softlock-games/viewfinder/shared/stagedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage spawns the stage singleton and populates the world from the
// stage layout: the culling space sized to the stage, one prop entity per
// prop, and one camera per pre-placed camera spot. Camera slots continue
// from firstSlot so they sit after any cameras the caller created itself.
func CreateStage(ecs *ecs.ECS, stage *stagedata.Stage, firstSlot int) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{Current: stage})

	CreateSpace(ecs, stage.Width, stage.Height, 16, 16)

	for _, p := range stage.Props {
		CreateProp(ecs, p.Name, p.X, p.Y, p.W, p.H, p.Depth)
	}

	slot := firstSlot
	for _, spot := range stage.Cameras {
		CreateCamera(ecs, spot.Name, slot, CameraSpotProjection(spot))
		slot++
	}

	return entry
}

// CameraSpotProjection turns a stage camera spot into projection parameters:
// a rectangle becomes orthographic bounds centered on the spot, an fov
// property becomes a perspective camera.
func CameraSpotProjection(spot stagedata.CameraSpot) components.ProjectionData {
	if spot.IsPerspective() {
		aspect := spot.Aspect
		if aspect == 0 {
			aspect = 16.0 / 9.0
		}
		return components.NewPerspective(float32(aspect), float32(spot.Fov))
	}
	// Orthographic bounds in stage coordinates, so the camera frames exactly
	// the spot's rectangle. Stage y grows downward, so the rect's top edge is
	// the projection's top plane.
	return components.NewOrthographic(
		float32(spot.X), float32(spot.X+spot.W),
		float32(spot.Y), float32(spot.Y+spot.H),
	)
}
