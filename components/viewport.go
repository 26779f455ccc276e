package components

import "github.com/yohamta/donburi"

// ViewportData is a singleton carrying the current screen dimensions in
// pixels, fed by the game's layout so aspect-tracking cameras can rebuild
// when the window changes.
type ViewportData struct {
	Width  int
	Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()
