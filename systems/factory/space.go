package factory

import (
	"github.com/automoto/fpscontroller/archetypes"
	"github.com/automoto/fpscontroller/components"
	"github.com/automoto/fpscontroller/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, depth, cellSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{World: physics.NewWorld(width, depth, cellSize)})
	return space
}
