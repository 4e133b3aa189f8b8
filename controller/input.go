package controller

// Action identifies a logical input action the controller reads.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionSprint
	ActionFreeLook
	ActionCancel
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:  "move_forward",
	ActionMoveBackward: "move_backward",
	ActionMoveLeft:     "move_left",
	ActionMoveRight:    "move_right",
	ActionJump:         "move_jump",
	ActionCrouch:       "move_crouch",
	ActionSprint:       "move_sprint",
	ActionFreeLook:     "free_look",
	ActionCancel:       "ui_cancel",
}

// String returns the input-map name of the action.
func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction looks an action up by its input-map name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// Actions is the named-action query surface supplied by the host.
type Actions interface {
	// Pressed reports whether the action is currently held.
	Pressed(a Action) bool
	// JustPressed reports whether the action became held this tick.
	JustPressed(a Action) bool
}

// CaptureMode is the pointer capture state.
type CaptureMode int

const (
	CaptureVisible CaptureMode = iota
	CaptureCaptured
)

func (m CaptureMode) String() string {
	if m == CaptureCaptured {
		return "captured"
	}
	return "visible"
}

// Pointer exposes the host's pointer capture mode.
type Pointer interface {
	CaptureMode() CaptureMode
	SetCaptureMode(m CaptureMode)
}

// Event is an input event delivered through Controller.HandleInput.
type Event interface {
	isEvent()
}

// PointerMotion is a raw pointer delta in screen units.
type PointerMotion struct {
	DX, DY float64
}

// ActionPressed is delivered once on the tick an action becomes held.
type ActionPressed struct {
	Action Action
}

func (PointerMotion) isEvent() {}
func (ActionPressed) isEvent() {}
