package systems

import (
	"fmt"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/fonts"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the controller readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowHUD {
		return
	}
	entry, ok := components.Controller.First(ecs.World)
	if !ok || components.Controller.Get(entry).Controller == nil {
		return
	}

	face := fonts.HUD.Get()
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range hudLines(ecs, entry) {
		text.Draw(screen, line, face, cfg.HUD.Margin, y, cfg.HUD.TextColor) //nolint:staticcheck
		y += cfg.HUD.LineHeight
	}
}

func hudLines(ecs *ecs.ECS, entry *donburi.Entry) []string {
	ctrl := components.Controller.Get(entry)
	body := components.Body.Get(entry)
	head := components.Head.Get(entry)
	input := components.Input.Get(getOrCreateInputEntry(ecs))

	v := ctrl.LastVelocity
	lines := []string{
		fmt.Sprintf("%s  %.2f m/s", ctrl.State(), ctrl.CurrentSpeed()),
		fmt.Sprintf("velocity %.2f %.2f %.2f", v.X(), v.Y(), v.Z()),
		fmt.Sprintf("head %.2f m  pitch %.1f", head.Offset.Y(), mgl64.RadToDeg(head.Pitch)),
		fmt.Sprintf("yaw %.1f  floor %s", mgl64.RadToDeg(body.Yaw), yesNo(body.Character.OnFloor)),
	}
	if entry.HasComponent(components.Neck) && ctrl.FreeLooking() {
		lines = append(lines, fmt.Sprintf("free look %.1f", mgl64.RadToDeg(components.Neck.Get(entry).Yaw)))
	}
	lines = append(lines, fmt.Sprintf("%s controller  %s", ctrl.Variant(), input.LastInputMethod))
	return lines
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
