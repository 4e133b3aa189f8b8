package controller

// State is the exclusive locomotion state. Free-look is tracked separately.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateSprinting
	StateCrouching
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateSprinting:
		return "sprinting"
	case StateCrouching:
		return "crouching"
	default:
		return "unknown"
	}
}

// standingState resolves the state entered when the stance settles on
// standing. Sprinting is only entered on the ground.
func standingState(sprintHeld, grounded bool) State {
	if sprintHeld && grounded {
		return StateSprinting
	}
	return StateWalking
}
