package systems

import (
	"image/color"

	"github.com/automoto/fpscontroller/archetypes"
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlay fades the dimming overlay toward the current pointer mode.
func UpdateOverlay(ecs *ecs.ECS) {
	overlay := getOrCreateOverlay(ecs)
	shown := pointerVisible(ecs)

	if overlay.Tween == nil || shown != overlay.Shown {
		overlay.Shown = shown
		var target float32
		if shown {
			target = cfg.Overlay.MaxAlpha
		}
		overlay.Tween = gween.New(overlay.Alpha, target, cfg.Overlay.FadeSeconds, ease.OutQuad)
	}

	overlay.Alpha, _ = overlay.Tween.Update(float32(tickDelta()))
}

// DrawOverlay dims the view and shows the capture hint while the pointer is
// released.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	if overlay.Alpha <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), fade(cfg.Overlay.Color, overlay.Alpha), false)

	if !overlay.Shown {
		return
	}
	face := fonts.Overlay.Get()
	bounds := text.BoundString(face, cfg.Overlay.Hint) //nolint:staticcheck
	x := (w - bounds.Dx()) / 2
	y := h - cfg.HUD.Margin*4
	text.Draw(screen, cfg.Overlay.Hint, face, x, y, fade(cfg.White, overlay.Alpha/cfg.Overlay.MaxAlpha)) //nolint:staticcheck
}

// fade scales c's alpha by a in [0, 1], keeping the colour premultiplied.
func fade(c color.RGBA, a float32) color.RGBA {
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func getOrCreateOverlay(ecs *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(ecs.World)
	if !ok {
		entry = archetypes.Overlay.Spawn(ecs)
	}
	return components.Overlay.Get(entry)
}
