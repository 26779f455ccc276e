package systems

import (
	"github.com/softlock-games/viewfinder/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every prop's resolv object in the space's cell
// grid so the culling broad phase sees positions moved since the last tick.
func UpdateObjects(e *ecs.ECS) {
	for entry := range components.Object.Iter(e.World) {
		components.Object.Get(entry).Update()
	}
}
