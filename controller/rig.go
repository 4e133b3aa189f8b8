package controller

import "github.com/go-gl/mathgl/mgl64"

// Body is the yaw-rotatable character body. The host owns its position and
// resolves collisions in MoveAndSlide.
type Body interface {
	Yaw() float64
	RotateY(angle float64)
	IsOnFloor() bool
	// Velocity returns the velocity left by the previous MoveAndSlide.
	Velocity() mgl64.Vec3
	// MoveAndSlide integrates velocity and returns it after collision response.
	MoveAndSlide(velocity mgl64.Vec3) mgl64.Vec3
}

// Head is the pitch-rotatable camera mount.
type Head interface {
	Pitch() float64
	SetPitch(pitch float64)
	Offset() mgl64.Vec3
	SetOffset(offset mgl64.Vec3)
}

// Neck is the free-look pivot between body and head.
type Neck interface {
	Yaw() float64
	SetYaw(yaw float64)
}

// Shape is a collision shape that can be toggled.
type Shape interface {
	Disabled() bool
	SetDisabled(disabled bool)
}

// Probe is the upward clearance query that blocks standing up.
type Probe interface {
	IsColliding() bool
}

// Rig groups the host handles the controller drives. Neck is only required by
// the Extended variant.
type Rig struct {
	Body      Body
	Head      Head
	Neck      Neck
	Standing  Shape
	Crouching Shape
	Ceiling   Probe
}
