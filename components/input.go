package components

import (
	"github.com/automoto/fpscontroller/controller"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

func (m InputMethod) String() string {
	switch m {
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	default:
		return "keyboard"
	}
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current         [controller.ActionCount]bool
	Previous        [controller.ActionCount]bool
	LastInputMethod InputMethod
	// Look is the right stick deflection past the deadzone, -1..1 per axis.
	LookX, LookY float64
}

var Input = donburi.NewComponentType[InputData]()
