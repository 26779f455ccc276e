package components

import "github.com/yohamta/donburi"

// PropData describes a stage prop: a named rectangle with an optional depth
// used when viewed through a perspective camera.
type PropData struct {
	Name  string
	Depth float64
}

var Prop = donburi.NewComponentType[PropData]()

// VisibleData records whether a prop currently intersects the active
// orthographic camera's view rectangle.
type VisibleData struct {
	OnScreen bool
}

var Visible = donburi.NewComponentType[VisibleData]()
