package components

import "github.com/yohamta/donburi"

// ActiveCameraData marks which camera entity is the current viewpoint. The
// reference is non-owning: the world manages the camera entity's lifetime,
// and the reference can go stale if that entity is removed. Consumers resolve
// it through systems.ResolveActiveCamera, which falls back to the first
// available camera when the designation is missing or stale.
type ActiveCameraData struct {
	Camera donburi.Entity
}

var ActiveCamera = donburi.NewComponentType[ActiveCameraData]()
