package components

import "github.com/yohamta/donburi"

// DollyData is a singleton holding the world-space position the active
// camera's view is centered on. Moving the dolly shifts what the orthographic
// view rectangle covers; it is viewer-level sugar, not a transform hierarchy.
type DollyData struct {
	X, Y float64
}

var Dolly = donburi.NewComponentType[DollyData]()
