package components

import (
	"github.com/automoto/fpscontroller/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the player's collision body plus its facing.
type BodyData struct {
	Character *physics.Character
	// Yaw in radians; 0 faces -Z.
	Yaw float64
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData holds the collision world shared by every entity in the scene.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()

// FootprintData links an entity to its resolv object.
type FootprintData struct {
	*resolv.Object
}

var Footprint = donburi.NewComponentType[FootprintData]()

// SolidData keeps the vertical span of a wall entity.
type SolidData struct {
	*physics.Solid
}

var Solid = donburi.NewComponentType[SolidData]()
