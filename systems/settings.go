package systems

import (
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the display toggles: F1 for the HUD, F3 for
// collision footprints.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings.ShowHUD = !settings.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:   cfg.Debug.Enabled,
			ShowHUD: true,
		})
	}
	return components.Settings.Get(entry)
}
