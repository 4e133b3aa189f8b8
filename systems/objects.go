package systems

import (
	"github.com/automoto/fpscontroller/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved footprints with their space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Footprint.Iter(ecs.World) {
		obj := components.Footprint.Get(e)
		obj.Update()
	}
}
