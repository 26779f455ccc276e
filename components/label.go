package components

import "github.com/yohamta/donburi"

// LabelData names a camera and assigns it a rig slot so the HUD, the control
// panel, saved rigs and the network layer can all address it the same way.
type LabelData struct {
	Name string
	Slot int
}

var Label = donburi.NewComponentType[LabelData]()
