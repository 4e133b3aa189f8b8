package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData fades the "pointer released" overlay in and out.
type OverlayData struct {
	Tween *gween.Tween
	// Shown is the state the tween is heading to.
	Shown bool
	Alpha float32
}

var Overlay = donburi.NewComponentType[OverlayData]()
