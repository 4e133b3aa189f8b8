package components

import (
	"github.com/automoto/fpscontroller/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// HeadData is the camera pivot. Offset is relative to the body's feet.
type HeadData struct {
	Pitch  float64
	Offset mgl64.Vec3
}

var Head = donburi.NewComponentType[HeadData]()

// NeckData is the free-look pivot between body and head.
type NeckData struct {
	Yaw float64
}

var Neck = donburi.NewComponentType[NeckData]()

type ControllerData struct {
	*controller.Controller
	// LastVelocity is what the controller handed to the body on the last tick.
	LastVelocity mgl64.Vec3
}

var Controller = donburi.NewComponentType[ControllerData]()
