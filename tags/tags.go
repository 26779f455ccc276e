package tags

import "github.com/yohamta/donburi"

var (
	Camera = donburi.NewTag().SetName("Camera")
	Prop   = donburi.NewTag().SetName("Prop")
)

// Resolv tags for the culling space
const (
	ResolvProp = "prop"
	ResolvView = "view"
)
