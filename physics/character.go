package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Character is a kinematic body with a square footprint of half-extent
// Radius. Position is the centre of the feet.
type Character struct {
	Position mgl64.Vec3
	// Velocity is the last resolved velocity, with blocked components zeroed.
	Velocity mgl64.Vec3
	OnFloor  bool

	Radius       float64
	StandHeight  float64
	CrouchHeight float64

	crouched bool
	obj      *resolv.Object
}

func (c *Character) Object() *resolv.Object { return c.obj }
func (c *Character) Crouched() bool { return c.crouched }

// SetCrouched switches the active collision height.
func (c *Character) SetCrouched(crouched bool) { c.crouched = crouched }

// Height is the height of the active collision shape.
func (c *Character) Height() float64 {
	if c.crouched {
		return c.CrouchHeight
	}
	return c.StandHeight
}

func (c *Character) footprint(pos mgl64.Vec3) (lo, hi mgl64.Vec2) {
	return mgl64.Vec2{pos.X() - c.Radius, pos.Z() - c.Radius},
		mgl64.Vec2{pos.X() + c.Radius, pos.Z() + c.Radius}
}

// Teleport moves the character without resolving collisions.
func (c *Character) Teleport(pos mgl64.Vec3) {
	c.Position = pos
	c.Velocity = mgl64.Vec3{}
	c.place()
}

// place moves the resolv footprint to the current position. Cell membership
// is refreshed by obj.Update.
func (c *Character) place() {
	c.obj.X = (c.Position.X() - c.Radius) * UnitsPerMetre
	c.obj.Y = (c.Position.Z() - c.Radius) * UnitsPerMetre
}
