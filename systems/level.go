package systems

import (
	"github.com/automoto/fpscontroller/components"
	"github.com/automoto/fpscontroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn puts the player back on the level's first spawn when F5 is
// pressed. Look angles are reset; stance and speed are left to the controller.
func UpdateRespawn(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		return
	}
	Respawn(ecs)
}

// Respawn teleports every player to the first spawn point.
func Respawn(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry)
	if len(lvl.Spawns) == 0 {
		return
	}
	spawn := lvl.Spawns[0]

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.Character.Teleport(spawn.Position)
		body.Yaw = spawn.Yaw
		components.Head.Get(e).Pitch = 0
		if e.HasComponent(components.Neck) {
			components.Neck.Get(e).Yaw = 0
		}
		components.Footprint.Get(e).Update()
	})
}
