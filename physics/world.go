// Package physics resolves a capsule-like character against static solids.
// The horizontal plane (X, Z) is indexed by a resolv space in centimetres;
// heights are handled separately per solid.
package physics

import (
	"math"

	"github.com/automoto/fpscontroller/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// UnitsPerMetre converts world metres into resolv space units.
const UnitsPerMetre = 100.0

// Solid is a static volume: a rectangular XZ footprint extruded from Bottom
// to Top.
type Solid struct {
	Min, Max    mgl64.Vec2
	Bottom, Top float64

	obj *resolv.Object
}

// Object returns the footprint registered in the space.
func (s *Solid) Object() *resolv.Object { return s.obj }

func (s *Solid) overlaps(lo, hi mgl64.Vec2) bool {
	return s.Min.X() < hi.X() && s.Max.X() > lo.X() &&
		s.Min.Y() < hi.Y() && s.Max.Y() > lo.Y()
}

func (s *Solid) spans(lo, hi float64) bool {
	return s.Bottom < hi && s.Top > lo
}

type World struct {
	space  *resolv.Space
	solids []*Solid
	width  float64
	depth  float64
}

// NewWorld creates an empty world covering [0, width] x [0, depth] metres.
// cellSize is the broad-phase cell edge in metres.
func NewWorld(width, depth, cellSize float64) *World {
	cell := int(math.Max(1, math.Round(cellSize*UnitsPerMetre)))
	return &World{
		space: resolv.NewSpace(
			int(math.Ceil(width*UnitsPerMetre)),
			int(math.Ceil(depth*UnitsPerMetre)),
			cell, cell,
		),
		width: width,
		depth: depth,
	}
}

func (w *World) Space() *resolv.Space { return w.space }
func (w *World) Solids() []*Solid { return w.solids }
func (w *World) Size() (width, depth float64) {
	return w.width, w.depth
}

// AddSolid registers a copy of s and returns it.
func (w *World) AddSolid(s Solid) *Solid {
	solid := &s
	x, z := s.Min.X()*UnitsPerMetre, s.Min.Y()*UnitsPerMetre
	sw, sd := (s.Max.X()-s.Min.X())*UnitsPerMetre, (s.Max.Y()-s.Min.Y())*UnitsPerMetre
	solid.obj = resolv.NewObject(x, z, sw, sd, tags.ResolvSolid)
	solid.obj.SetShape(resolv.NewRectangle(0, 0, sw, sd))
	solid.obj.Data = solid
	w.space.Add(solid.obj)
	w.solids = append(w.solids, solid)
	return solid
}

// AddCharacter places a character with its feet at pos.
func (w *World) AddCharacter(pos mgl64.Vec3, radius, standHeight, crouchHeight float64) *Character {
	size := 2 * radius * UnitsPerMetre
	ch := &Character{
		Position:     pos,
		Radius:       radius,
		StandHeight:  standHeight,
		CrouchHeight: crouchHeight,
		obj:          resolv.NewObject(0, 0, size, size, tags.ResolvCharacter),
	}
	ch.obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	ch.obj.Data = ch
	ch.place()
	w.space.Add(ch.obj)
	return ch
}

// nearby returns the solids the broad phase reports around ch as if it had
// moved to pos.
func (w *World) nearby(ch *Character, pos mgl64.Vec3) []*Solid {
	dx := (pos.X()-ch.Radius)*UnitsPerMetre - ch.obj.X
	dz := (pos.Z()-ch.Radius)*UnitsPerMetre - ch.obj.Y
	check := ch.obj.Check(dx, dz, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tags.ResolvSolid)
	solids := make([]*Solid, 0, len(objs))
	for _, o := range objs {
		if s, ok := o.Data.(*Solid); ok {
			solids = append(solids, s)
		}
	}
	return solids
}
