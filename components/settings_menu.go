package components

import (
	"github.com/automoto/fpscontroller/controller"
	"github.com/automoto/fpscontroller/ui"
	"github.com/yohamta/donburi"
)

// SettingsPanelData stores the panel shown while the pointer is released
type SettingsPanelData struct {
	Panel *ui.SettingsUI

	// Current settings values
	MouseSensitivity float64
	InvertY          bool
	Fullscreen       bool
	ResolutionIndex  int
	// Variant is the preference for the next launch; the running controller
	// keeps the variant it was built with.
	Variant controller.Variant
}

// SettingsPanel is the component type for settings panel state
var SettingsPanel = donburi.NewComponentType[SettingsPanelData]()

// SettingsData holds scene-wide display switches
type SettingsData struct {
	Debug   bool
	ShowHUD bool
}

var Settings = donburi.NewComponentType[SettingsData]()
