package systems

import (
	"image/color"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/physics"
	"github.com/automoto/fpscontroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv footprint in the space and marks the
// ceiling probe when it is blocked.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	world := components.Space.Get(spaceEntry).World
	width, depth := world.Size()
	view := fitMap(width, depth, screen.Bounds().Dx(), screen.Bounds().Dy(), cfg.Map.Margin)

	for _, obj := range world.Space().Objects() {
		x, y := view.point(obj.X/physics.UnitsPerMetre, obj.Y/physics.UnitsPerMetre)
		w := view.length(obj.W / physics.UnitsPerMetre)
		h := view.length(obj.H / physics.UnitsPerMetre)

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{200, 200, 200, 255}
		} else if obj.HasTags(tags.ResolvCharacter) {
			c = color.RGBA{0, 0, 255, 255}
		}

		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	for entry := range components.Body.Iter(ecs.World) {
		ch := components.Body.Get(entry).Character
		if !world.Obstructed(ch, ch.CrouchHeight, ch.StandHeight) {
			continue
		}
		cx, cy := view.point(ch.Position.X(), ch.Position.Z())
		vector.StrokeCircle(screen, cx, cy, view.length(ch.Radius)+3, 2, color.RGBA{255, 60, 60, 255}, true)
	}
}
