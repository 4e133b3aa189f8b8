package controller

// updateFreeLook latches the free-look action and recenters the neck once it
// is released.
func (c *Controller) updateFreeLook(delta float64) {
	c.freeLooking = c.actions.Pressed(ActionFreeLook)
	if c.freeLooking {
		return
	}
	neck := c.rig.Neck
	neck.SetYaw(approach(neck.Yaw(), 0, approachWeight(c.settings.LerpSpeed, delta)))
}
