package systems

import (
	"strings"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePointer and UpdateController in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := components.Input.Get(getOrCreateInputEntry(ecs))

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [controller.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[action] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[action] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge the left stick into the directional actions
	left, right, up, down, stickGpID := getAnalogStickState(gamepadIDs)
	stick := map[controller.Action]bool{
		controller.ActionMoveLeft:     left,
		controller.ActionMoveRight:    right,
		controller.ActionMoveForward:  up,
		controller.ActionMoveBackward: down,
	}
	for action, held := range stick {
		if held {
			input.Current[action] = true
			gamepadUsed = true
			activeGamepadID = stickGpID
		}
	}

	input.LookX, input.LookY = getLookStickState(gamepadIDs)
	if input.LookX != 0 || input.LookY != 0 {
		gamepadUsed = true
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := controllerTypeFromName(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = method
	return method
}

func controllerTypeFromName(name string) components.InputMethod {
	name = strings.ToLower(name)
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			return components.InputPlayStation
		}
	}
	// Default gamepad to Xbox-style
	return components.InputXbox
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getLookStickState returns the strongest right stick deflection across
// gamepads, zeroed inside the deadzone.
func getLookStickState(gamepads []ebiten.GamepadID) (x, y float64) {
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal))
		v := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical))
		if h*h+v*v > x*x+y*y {
			x, y = h, v
		}
	}
	return x, y
}

// applyDeadzone rescales |v| from [deadzone, 1] onto [0, 1].
func applyDeadzone(v float64) float64 {
	deadzone := cfg.Input.AnalogDeadzone
	switch {
	case v > deadzone:
		return (v - deadzone) / (1 - deadzone)
	case v < -deadzone:
		return (v + deadzone) / (1 - deadzone)
	default:
		return 0
	}
}

// getOrCreateInputEntry returns the singleton Input entry, creating if needed
func getOrCreateInputEntry(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		// Zero-value InputData is correct (all bools false)
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return entry
}

// GetAction returns the full ActionState for an action.
// JustPressed/JustReleased are derived from current vs previous tick.
func GetAction(input *components.InputData, id controller.Action) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
