package components

import (
	"github.com/automoto/fpscontroller/controller"
	"github.com/yohamta/donburi"
)

// PointerData tracks the cursor between ticks so motion can be reported as
// deltas.
type PointerData struct {
	Mode controller.CaptureMode
	// Tracking is false until the first sample after a capture, so the jump
	// from the old cursor position is not reported as motion.
	Tracking     bool
	LastX, LastY int
	InvertY      bool
}

var Pointer = donburi.NewComponentType[PointerData]()
