package systems

import (
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/automoto/fpscontroller/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettingsPanel runs the panel's widgets while the pointer is released.
func UpdateSettingsPanel(e *ecs.ECS) {
	if !pointerVisible(e) {
		return
	}
	GetOrCreateSettingsPanel(e).Panel.Update()
}

// DrawSettingsPanel draws the panel over the overlay while the pointer is
// released.
func DrawSettingsPanel(e *ecs.ECS, screen *ebiten.Image) {
	if !pointerVisible(e) {
		return
	}
	GetOrCreateSettingsPanel(e).Panel.Draw(screen)
}

func playerController(e *ecs.ECS) *controller.Controller {
	entry, ok := components.Controller.First(e.World)
	if !ok {
		return nil
	}
	return components.Controller.Get(entry).Controller
}

func stepSensitivity(current float64, steps int) float64 {
	return clampSensitivity(current+float64(steps)*cfg.SettingsPanel.SensitivityStep, &cfg.SettingsPanel)
}

func nextResolution(index int) int {
	n := len(cfg.SettingsPanel.Resolutions)
	return ((index+1)%n + n) % n
}

func toggleVariant(v controller.Variant) controller.Variant {
	if v == controller.Basic {
		return controller.Extended
	}
	return controller.Basic
}

func settingsView(s *components.SettingsPanelData, active controller.Variant) ui.SettingsView {
	return ui.SettingsView{
		Sensitivity:   s.MouseSensitivity,
		InvertY:       s.InvertY,
		Fullscreen:    s.Fullscreen,
		Resolution:    cfg.SettingsPanel.Resolutions[s.ResolutionIndex].Label,
		Variant:       s.Variant.String(),
		ActiveVariant: active.String(),
	}
}

// GetOrCreateSettingsPanel returns the singleton SettingsPanel component, creating if needed.
func GetOrCreateSettingsPanel(e *ecs.ECS) *components.SettingsPanelData {
	if entry, ok := components.SettingsPanel.First(e.World); ok {
		return components.SettingsPanel.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.SettingsPanel))
	components.SettingsPanel.SetValue(entry, components.SettingsPanelData{
		Panel:            ui.NewSettingsUI(),
		MouseSensitivity: cfg.Player.Controller.MouseSensitivity,
		InvertY:          components.Pointer.Get(getOrCreatePointer(e)).InvertY,
		Fullscreen:       ebiten.IsFullscreen(),
		ResolutionIndex:  cfg.SettingsPanel.DefaultResolutionIndex,
		Variant:          cfg.Player.Controller.Variant,
	})
	s := components.SettingsPanel.Get(entry)

	active := cfg.Player.Controller.Variant
	if ctrl := playerController(e); ctrl != nil {
		active = ctrl.Variant()
		s.MouseSensitivity = ctrl.MouseSensitivity()
	}

	changed := func() {
		s.Panel.Refresh(settingsView(s, active))
		SaveCurrentPreferences(s)
	}

	s.Panel.OnSensitivity = func(steps int) {
		s.MouseSensitivity = stepSensitivity(s.MouseSensitivity, steps)
		if ctrl := playerController(e); ctrl != nil {
			ctrl.SetMouseSensitivity(s.MouseSensitivity)
		}
		changed()
	}
	s.Panel.OnInvertY = func() {
		s.InvertY = !s.InvertY
		components.Pointer.Get(getOrCreatePointer(e)).InvertY = s.InvertY
		changed()
	}
	s.Panel.OnVariant = func() {
		s.Variant = toggleVariant(s.Variant)
		changed()
	}
	s.Panel.OnFullscreen = func() {
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
		changed()
	}
	s.Panel.OnResolution = func() {
		s.ResolutionIndex = nextResolution(s.ResolutionIndex)
		if !s.Fullscreen {
			res := cfg.SettingsPanel.Resolutions[s.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
		changed()
	}
	s.Panel.OnResume = func() {
		if ctrl := playerController(e); ctrl != nil {
			ctrl.HandleInput(controller.ActionPressed{Action: controller.ActionCancel})
		}
	}

	s.Panel.Refresh(settingsView(s, active))
	return s
}
