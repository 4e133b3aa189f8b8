package systems

import (
	"image/color"
	"math"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// mapView projects the level's XZ plane onto the screen, +X right and +Z down.
type mapView struct {
	scale  float64
	ox, oy float64
}

// fitMap scales a width x depth metre level to fit the screen inside margin,
// centred on both axes.
func fitMap(width, depth float64, screenW, screenH int, margin float64) mapView {
	availW := math.Max(1, float64(screenW)-2*margin)
	availH := math.Max(1, float64(screenH)-2*margin)
	scale := math.Min(availW/width, availH/depth)
	return mapView{
		scale: scale,
		ox:    (float64(screenW) - width*scale) / 2,
		oy:    (float64(screenH) - depth*scale) / 2,
	}
}

func (v mapView) point(x, z float64) (float32, float32) {
	return float32(v.ox + x*v.scale), float32(v.oy + z*v.scale)
}

func (v mapView) length(metres float64) float32 {
	return float32(metres * v.scale)
}

func currentMapView(e *ecs.ECS, screen *ebiten.Image) (mapView, bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return mapView{}, false
	}
	width, depth := components.Space.Get(entry).Size()
	return fitMap(width, depth, screen.Bounds().Dx(), screen.Bounds().Dy(), cfg.Map.Margin), true
}

// wallColor picks the map colour for a solid relative to a standing body.
func wallColor(s *physics.Solid, standHeight float64) color.RGBA {
	switch {
	case s.Bottom > 0:
		return cfg.Map.OverheadColor
	case s.Top < standHeight:
		return cfg.Map.LowWallColor
	default:
		return cfg.Map.WallColor
	}
}

// DrawLevel renders the floor and every solid from above. Overhead solids
// are drawn last so the floor plan under them stays visible.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Map.BackgroundColor)

	entry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	width, depth := components.Space.Get(entry).Size()
	view := fitMap(width, depth, screen.Bounds().Dx(), screen.Bounds().Dy(), cfg.Map.Margin)
	x, y := view.point(0, 0)
	vector.FillRect(screen, x, y, view.length(width), view.length(depth), cfg.Map.FloorColor, false)

	var overhead []*physics.Solid
	for entry := range components.Solid.Iter(e.World) {
		solid := components.Solid.Get(entry).Solid
		if solid.Bottom > 0 {
			overhead = append(overhead, solid)
			continue
		}
		drawSolid(screen, view, solid)
	}
	for _, solid := range overhead {
		drawSolid(screen, view, solid)
	}
}

func drawSolid(screen *ebiten.Image, view mapView, s *physics.Solid) {
	x, y := view.point(s.Min.X(), s.Min.Y())
	w := view.length(s.Max.X() - s.Min.X())
	h := view.length(s.Max.Y() - s.Min.Y())
	vector.FillRect(screen, x, y, w, h, wallColor(s, cfg.Player.StandingHeight), false)
}

// forward is the unit heading for a yaw about +Y, where yaw 0 faces -Z.
func forward(yaw float64) mgl64.Vec2 {
	return mgl64.Vec2{-math.Sin(yaw), -math.Cos(yaw)}
}

// DrawPlayer renders the body, its facing, the free-look direction and the
// velocity handed to the body on the last tick.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentMapView(e, screen)
	if !ok {
		return
	}

	for entry := range components.Body.Iter(e.World) {
		body := components.Body.Get(entry)
		ch := body.Character
		cx, cy := view.point(ch.Position.X(), ch.Position.Z())

		bodyColor := cfg.Map.PlayerColor
		if ch.Crouched() {
			bodyColor = fade(bodyColor, 0.6)
		}
		vector.DrawFilledCircle(screen, cx, cy, view.length(ch.Radius), bodyColor, true)

		drawArrow(screen, view, ch.Position, forward(body.Yaw), cfg.Map.ArrowLength, cfg.Map.PlayerColor)

		if entry.HasComponent(components.Neck) {
			if neck := components.Neck.Get(entry); neck.Yaw != 0 {
				drawArrow(screen, view, ch.Position, forward(body.Yaw+neck.Yaw), cfg.Map.ArrowLength*1.5, cfg.Map.LookColor)
			}
		}

		if entry.HasComponent(components.Controller) {
			v := components.Controller.Get(entry).LastVelocity
			drawArrow(screen, view, ch.Position, mgl64.Vec2{v.X(), v.Z()}, 0.25, cfg.Yellow)
		}
	}
}

// drawArrow draws dir scaled by length metres starting at pos.
func drawArrow(screen *ebiten.Image, view mapView, pos mgl64.Vec3, dir mgl64.Vec2, length float64, clr color.RGBA) {
	if dir.Len() == 0 {
		return
	}
	end := dir.Mul(length)
	x0, y0 := view.point(pos.X(), pos.Z())
	x1, y1 := view.point(pos.X()+end.X(), pos.Z()+end.Y())
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
}
