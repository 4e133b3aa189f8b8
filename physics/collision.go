package physics

import "github.com/go-gl/mathgl/mgl64"

const (
	// skin is the gap left between a character and a wall it slides against.
	skin = 1e-4
	// stepTolerance lets a character rest on a solid top that sits this far
	// above its feet without the solid blocking horizontal movement.
	stepTolerance = 0.01
)

// MoveAndSlide moves ch by velocity*delta, resolving X, then Z, then Y. It
// returns the velocity with blocked components zeroed and whether ch ended up
// supported by the ground or a solid top.
func (w *World) MoveAndSlide(ch *Character, velocity mgl64.Vec3, delta float64) (mgl64.Vec3, bool) {
	motion := velocity.Mul(delta)

	for _, axis := range [2]int{0, 2} {
		d := motion[axis]
		if d == 0 {
			continue
		}
		pos, hit := w.sweep(ch, axis, d)
		ch.Position[axis] = pos
		if hit {
			velocity[axis] = 0
		}
		ch.place()
	}

	velocity[1], ch.OnFloor = w.moveVertical(ch, velocity.Y(), motion.Y())
	ch.Velocity = velocity
	return velocity, ch.OnFloor
}

// Obstructed reports whether a solid over ch's footprint intersects the
// height band [feet+from, feet+to].
func (w *World) Obstructed(ch *Character, from, to float64) bool {
	y := ch.Position.Y()
	lo, hi := ch.footprint(ch.Position)
	for _, s := range w.nearby(ch, ch.Position) {
		if s.overlaps(lo, hi) && s.spans(y+from, y+to) {
			return true
		}
	}
	return false
}

func (w *World) sweep(ch *Character, axis int, d float64) (float64, bool) {
	moved := ch.Position
	moved[axis] += d
	lo, hi := ch.footprint(moved)

	footAxis := 0
	if axis == 2 {
		footAxis = 1
	}

	y := ch.Position.Y()
	pos, hit := moved[axis], false
	for _, s := range w.nearby(ch, moved) {
		if !s.spans(y+stepTolerance, y+ch.Height()) || !s.overlaps(lo, hi) {
			continue
		}
		hit = true
		if d > 0 {
			if edge := s.Min[footAxis] - ch.Radius - skin; edge < pos {
				pos = edge
			}
			continue
		}
		if edge := s.Max[footAxis] + ch.Radius + skin; edge > pos {
			pos = edge
		}
	}
	return pos, hit
}

func (w *World) moveVertical(ch *Character, vy, dy float64) (float64, bool) {
	y := ch.Position.Y()
	next := y + dy
	lo, hi := ch.footprint(ch.Position)
	solids := w.nearby(ch, ch.Position)

	if dy > 0 {
		height := ch.Height()
		head := y + height
		for _, s := range solids {
			if s.overlaps(lo, hi) && s.Bottom >= head-stepTolerance && s.Bottom < next+height {
				next = s.Bottom - height
				vy = 0
			}
		}
		ch.Position[1] = next
		return vy, false
	}

	floor := 0.0
	for _, s := range solids {
		if s.overlaps(lo, hi) && s.Top <= y+stepTolerance && s.Top > floor {
			floor = s.Top
		}
	}
	if next <= floor {
		ch.Position[1] = floor
		return 0, true
	}
	ch.Position[1] = next
	return vy, false
}
