package systems

import (
	"github.com/softlock-games/viewfinder/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAutoAspect rebuilds perspective cameras marked with AutoAspect when
// the viewport size changes. The baked matrix is never mutated in place: the
// stored projection gets a fresh aspect and the camera is rebaked from it.
func UpdateAutoAspect(e *ecs.ECS) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}

	components.AutoAspect.Each(e.World, func(entry *donburi.Entry) {
		aa := components.AutoAspect.Get(entry)
		if aa.LastWidth == vp.Width && aa.LastHeight == vp.Height {
			return
		}
		if !entry.HasComponent(components.Projection) || !entry.HasComponent(components.Camera) {
			return
		}
		proj := components.Projection.Get(entry)
		if proj.Kind != components.Perspective {
			return
		}

		proj.Aspect = float32(vp.Width) / float32(vp.Height)
		RebakeCamera(entry)

		aa.LastWidth = vp.Width
		aa.LastHeight = vp.Height
	})
}

// RebakeCamera rebuilds an entity's camera matrix from its stored projection
// and current zoom factor.
func RebakeCamera(entry *donburi.Entry) {
	proj := components.Projection.Get(entry)
	zoomed := *proj
	if entry.HasComponent(components.Zoom) {
		zoom := components.Zoom.Get(entry)
		if zoom.Factor > 0 {
			zoomed = proj.Zoomed(zoom.Factor)
		}
	}
	components.Camera.SetValue(entry, components.CameraFrom(zoomed))
}
