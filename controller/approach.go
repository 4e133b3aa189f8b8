package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// approachWeight is the per-tick interpolation weight for rate*delta, capped
// at 1 so a long frame cannot overshoot the target.
func approachWeight(rate, delta float64) float64 {
	return mgl64.Clamp(rate*delta, 0, 1)
}

func approach(current, target, weight float64) float64 {
	return current + (target-current)*weight
}

func approachVec3(current, target mgl64.Vec3, weight float64) mgl64.Vec3 {
	return current.Add(target.Sub(current).Mul(weight))
}

// moveToward steps from toward to by at most step.
func moveToward(from, to, step float64) float64 {
	if math.Abs(to-from) <= step {
		return to
	}
	return from + math.Copysign(step, to-from)
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
