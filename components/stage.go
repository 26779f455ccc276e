package components

import (
	"github.com/softlock-games/viewfinder/shared/stagedata"
	"github.com/yohamta/donburi"
)

// StageData is a singleton holding the currently loaded stage layout.
type StageData struct {
	Current *stagedata.Stage
}

var Stage = donburi.NewComponentType[StageData]()
