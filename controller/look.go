package controller

import "github.com/go-gl/mathgl/mgl64"

func (c *Controller) look(m PointerMotion) {
	yaw := mgl64.DegToRad(-m.DX * c.sensitivity)
	pitch := mgl64.DegToRad(-m.DY * c.sensitivity)

	if c.settings.Variant == Extended && c.freeLooking {
		limit := mgl64.DegToRad(c.settings.FreeLookLimit)
		c.rig.Neck.SetYaw(mgl64.Clamp(c.rig.Neck.Yaw()+yaw, -limit, limit))
		return
	}

	c.rig.Body.RotateY(yaw)
	limit := mgl64.DegToRad(c.settings.PitchLimit)
	c.rig.Head.SetPitch(mgl64.Clamp(c.rig.Head.Pitch()+pitch, -limit, limit))
}
