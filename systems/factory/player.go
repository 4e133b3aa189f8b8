package factory

import (
	"github.com/automoto/fpscontroller/archetypes"
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/level"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the player body at spawn. The controller is attached
// separately once input and pointer exist.
func CreatePlayer(ecs *ecs.ECS, spawn level.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("CreatePlayer: no collision space")
	}
	ch := components.Space.Get(spaceEntry).AddCharacter(
		spawn.Position,
		cfg.Player.Radius,
		cfg.Player.StandingHeight,
		cfg.Player.CrouchingHeight,
	)

	components.Body.SetValue(player, components.BodyData{Character: ch, Yaw: spawn.Yaw})
	components.Head.SetValue(player, components.HeadData{
		Offset: mgl64.Vec3{0, cfg.Player.Controller.StandingHeight, 0},
	})
	components.Neck.SetValue(player, components.NeckData{})
	components.Footprint.SetValue(player, components.FootprintData{Object: ch.Object()})
	return player
}
