package components

import "github.com/yohamta/donburi"

// AutoAspectData marks a perspective camera whose aspect ratio should track
// the viewport. LastWidth/LastHeight record the viewport the camera was last
// baked for so the rebuild only happens on change.
type AutoAspectData struct {
	LastWidth  int
	LastHeight int
}

var AutoAspect = donburi.NewComponentType[AutoAspectData]()
