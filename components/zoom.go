package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ZoomData holds a camera's current zoom factor and an optional in-flight
// tween gliding it toward a target. Factor 1 means no zoom. The tween is
// runtime-only state and is not serialized with rigs.
type ZoomData struct {
	Factor float32
	Tween  *gween.Tween
}

var Zoom = donburi.NewComponentType[ZoomData](ZoomData{Factor: 1})
