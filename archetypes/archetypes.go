package archetypes

import (
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Head,
		components.Neck,
		components.Footprint,
		components.Controller,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Solid,
		components.Footprint,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Overlay = newArchetype(
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
