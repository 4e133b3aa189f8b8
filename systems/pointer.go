package systems

import (
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer turns cursor and right-stick movement into look events and
// forwards the cancel action to the controller.
// Must run AFTER UpdateInput and BEFORE UpdateController.
func UpdatePointer(ecs *ecs.ECS) {
	pointer := components.Pointer.Get(getOrCreatePointer(ecs))
	input := components.Input.Get(getOrCreateInputEntry(ecs))

	entry, ok := components.Controller.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Controller.Get(entry)

	if GetAction(input, controller.ActionCancel).JustPressed {
		ctrl.HandleInput(controller.ActionPressed{Action: controller.ActionCancel})
	}

	x, y := ebiten.CursorPosition()
	dx, dy := pointerDelta(pointer, x, y)
	dx += input.LookX * cfg.Pointer.StickLookSpeed
	dy += input.LookY * cfg.Pointer.StickLookSpeed
	if pointer.InvertY {
		dy = -dy
	}
	if dx != 0 || dy != 0 {
		ctrl.HandleInput(controller.PointerMotion{DX: dx, DY: dy})
	}
}

// pointerDelta returns the cursor movement since the last sample. The first
// sample after a mode change only records the position.
func pointerDelta(p *components.PointerData, x, y int) (float64, float64) {
	if !p.Tracking {
		p.LastX, p.LastY = x, y
		p.Tracking = true
		return 0, 0
	}
	dx, dy := x-p.LastX, y-p.LastY
	p.LastX, p.LastY = x, y
	return float64(dx), float64(dy)
}

// pointerVisible reports whether the cursor is free for the UI.
func pointerVisible(ecs *ecs.ECS) bool {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return true
	}
	return components.Pointer.Get(entry).Mode == controller.CaptureVisible
}

func getOrCreatePointer(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
		components.Pointer.SetValue(entry, components.PointerData{
			Mode:    controller.CaptureVisible,
			InvertY: cfg.Pointer.InvertY,
		})
	}
	return entry
}
