package controller

import "github.com/go-gl/mathgl/mgl64"

func (c *Controller) computeVelocity(delta float64) mgl64.Vec3 {
	body := c.rig.Body
	previous := body.Velocity()
	velocity := previous
	grounded := body.IsOnFloor()

	if !grounded {
		velocity[1] -= c.settings.Gravity * delta
	}
	if grounded && c.actions.JustPressed(ActionJump) {
		velocity[1] = c.jumpVelocity
	}

	input := inputVector(c.actions)
	local := mgl64.Vec3{input.X(), 0, input.Y()}
	target := normalizeOrZero(mgl64.Rotate3DY(body.Yaw()).Mul3x1(local))
	c.direction = approachVec3(c.direction, target, approachWeight(c.settings.LerpSpeed, delta))

	if c.direction.Len() > c.settings.StopThreshold {
		velocity[0] = c.direction.X() * c.speed
		velocity[2] = c.direction.Z() * c.speed
		return velocity
	}

	// The deceleration step is the held speed itself, so a faster controller
	// also stops faster.
	velocity[0] = moveToward(previous.X(), 0, c.speed)
	velocity[2] = moveToward(previous.Z(), 0, c.speed)
	return velocity
}

// inputVector composes the directional actions into a body-local vector:
// x is right, y is backward. The result is limited to unit length.
func inputVector(actions Actions) mgl64.Vec2 {
	v := mgl64.Vec2{
		strength(actions, ActionMoveRight) - strength(actions, ActionMoveLeft),
		strength(actions, ActionMoveBackward) - strength(actions, ActionMoveForward),
	}
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}

func strength(actions Actions, a Action) float64 {
	if actions.Pressed(a) {
		return 1
	}
	return 0
}
