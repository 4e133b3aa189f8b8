package controller

import "github.com/go-gl/mathgl/mgl64"

// updateStance runs before locomotion. Crouch wins over standing, and a
// blocked ceiling keeps the current stance untouched.
func (c *Controller) updateStance(delta float64) {
	weight := approachWeight(c.settings.LerpSpeed, delta)

	switch {
	case c.actions.Pressed(ActionCrouch):
		c.moveHead(c.settings.CrouchingHeight, weight)
		c.rig.Standing.SetDisabled(true)
		c.rig.Crouching.SetDisabled(false)
		c.state = StateCrouching
	case !c.rig.Ceiling.IsColliding():
		c.moveHead(c.settings.StandingHeight, weight)
		c.rig.Standing.SetDisabled(false)
		c.rig.Crouching.SetDisabled(true)
		c.state = standingState(c.actions.Pressed(ActionSprint), c.rig.Body.IsOnFloor())
	default:
		return
	}

	c.speed = c.resolveSpeed()
}

func (c *Controller) moveHead(height, weight float64) {
	target := mgl64.Vec3{0, height, 0}
	c.rig.Head.SetOffset(approachVec3(c.rig.Head.Offset(), target, weight))
}

// resolveSpeed keeps the held speed while airborne, so stance changes made in
// the air only take effect on landing.
func (c *Controller) resolveSpeed() float64 {
	if !c.rig.Body.IsOnFloor() {
		return c.speed
	}
	switch c.state {
	case StateCrouching:
		return c.settings.CrouchingSpeed
	case StateSprinting:
		return c.settings.SprintingSpeed
	default:
		return c.settings.WalkingSpeed
	}
}
