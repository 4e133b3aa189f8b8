package factory

import (
	"github.com/automoto/fpscontroller/archetypes"
	"github.com/automoto/fpscontroller/components"
	"github.com/automoto/fpscontroller/level"
	"github.com/automoto/fpscontroller/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid to the space and links its resolv object back to
// the new entity.
func CreateWall(ecs *ecs.ECS, w level.Wall) *donburi.Entry {
	wall := archetypes.Solid.Spawn(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("CreateWall: no collision space")
	}
	solid := components.Space.Get(spaceEntry).AddSolid(physics.Solid{
		Min:    w.Min,
		Max:    w.Max,
		Bottom: w.Bottom,
		Top:    w.Top,
	})

	components.Solid.SetValue(wall, components.SolidData{Solid: solid})
	components.Footprint.SetValue(wall, components.FootprintData{Object: solid.Object()})
	return wall
}
