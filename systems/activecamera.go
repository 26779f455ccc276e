package systems

import (
	"github.com/softlock-games/viewfinder/components"
	"github.com/yohamta/donburi"
)

// SetActiveCamera designates the camera entity as the current viewpoint,
// creating the ActiveCamera singleton if it does not exist yet. The data type
// itself does not enforce a cardinality of one; this helper does, by always
// reusing the first singleton entry.
func SetActiveCamera(world donburi.World, camera donburi.Entity) {
	entry, ok := components.ActiveCamera.First(world)
	if !ok {
		entry = world.Entry(world.Create(components.ActiveCamera))
	}
	components.ActiveCamera.SetValue(entry, components.ActiveCameraData{Camera: camera})
}

// ClearActiveCamera removes the designation entirely, so resolution falls
// back to the first available camera.
func ClearActiveCamera(world donburi.World) {
	if entry, ok := components.ActiveCamera.First(world); ok {
		entry.Remove()
	}
}

// ResolveActiveCamera returns the entry of the camera to view through. The
// designated camera wins; if the designation is absent, stale, or points at
// an entity without a Camera component, the first entity carrying a Camera
// component is used instead. ok is false only when the world has no cameras
// at all.
func ResolveActiveCamera(world donburi.World) (*donburi.Entry, bool) {
	if acEntry, ok := components.ActiveCamera.First(world); ok {
		ac := components.ActiveCamera.Get(acEntry)
		if world.Valid(ac.Camera) {
			entry := world.Entry(ac.Camera)
			if entry.HasComponent(components.Camera) {
				return entry, true
			}
		}
	}
	return components.Camera.First(world)
}

// ActiveCameraSlot returns the slot of the resolved active camera, or -1 when
// no camera could be resolved or the camera carries no label.
func ActiveCameraSlot(world donburi.World) int {
	entry, ok := ResolveActiveCamera(world)
	if !ok || !entry.HasComponent(components.Label) {
		return -1
	}
	return components.Label.Get(entry).Slot
}

// CameraBySlot finds the camera entity labeled with the given slot.
func CameraBySlot(world donburi.World, slot int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Label.Each(world, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if entry.HasComponent(components.Camera) && components.Label.Get(entry).Slot == slot {
			found = entry
		}
	})
	return found, found != nil
}
