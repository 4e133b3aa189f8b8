package systems

import (
	"github.com/automoto/fpscontroller/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateController advances every attached controller by one physics tick.
func UpdateController(ecs *ecs.ECS) {
	delta := tickDelta()
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		if c.Controller == nil {
			return
		}
		c.LastVelocity = c.PhysicsTick(delta)
	})
}
