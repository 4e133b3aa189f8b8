package systems

import (
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/automoto/fpscontroller/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the fixed physics step handed to the controller.
func tickDelta() float64 { return 1 / float64(cfg.C.TPS) }

type bodyHandle struct {
	entry *donburi.Entry
	world *physics.World
}

func (b bodyHandle) data() *components.BodyData { return components.Body.Get(b.entry) }

func (b bodyHandle) Yaw() float64 { return b.data().Yaw }
func (b bodyHandle) RotateY(angle float64) { b.data().Yaw += angle }
func (b bodyHandle) IsOnFloor() bool { return b.data().Character.OnFloor }
func (b bodyHandle) Velocity() mgl64.Vec3 { return b.data().Character.Velocity }
func (b bodyHandle) MoveAndSlide(v mgl64.Vec3) mgl64.Vec3 {
	resolved, _ := b.world.MoveAndSlide(b.data().Character, v, tickDelta())
	return resolved
}

type headHandle struct{ entry *donburi.Entry }

func (h headHandle) Pitch() float64 { return components.Head.Get(h.entry).Pitch }
func (h headHandle) SetPitch(pitch float64) { components.Head.Get(h.entry).Pitch = pitch }
func (h headHandle) Offset() mgl64.Vec3 { return components.Head.Get(h.entry).Offset }
func (h headHandle) SetOffset(offset mgl64.Vec3) { components.Head.Get(h.entry).Offset = offset }

type neckHandle struct{ entry *donburi.Entry }

func (n neckHandle) Yaw() float64 { return components.Neck.Get(n.entry).Yaw }
func (n neckHandle) SetYaw(yaw float64) { components.Neck.Get(n.entry).Yaw = yaw }

// shapeHandle maps the standing and crouching shapes onto the character's
// single crouched flag.
type shapeHandle struct {
	entry    *donburi.Entry
	crouched bool
}

func (s shapeHandle) character() *physics.Character {
	return components.Body.Get(s.entry).Character
}

func (s shapeHandle) Disabled() bool {
	return s.character().Crouched() != s.crouched
}

func (s shapeHandle) SetDisabled(disabled bool) {
	s.character().SetCrouched(disabled != s.crouched)
}

// ceilingProbe covers the band between crouching and standing height.
type ceilingProbe struct {
	entry *donburi.Entry
	world *physics.World
}

func (p ceilingProbe) IsColliding() bool {
	ch := components.Body.Get(p.entry).Character
	return p.world.Obstructed(ch, ch.CrouchHeight, ch.StandHeight)
}

type inputActions struct{ entry *donburi.Entry }

func (a inputActions) Pressed(act controller.Action) bool {
	return GetAction(components.Input.Get(a.entry), act).Pressed
}

func (a inputActions) JustPressed(act controller.Action) bool {
	return GetAction(components.Input.Get(a.entry), act).JustPressed
}

type cursorPointer struct{ entry *donburi.Entry }

func (p cursorPointer) CaptureMode() controller.CaptureMode {
	return components.Pointer.Get(p.entry).Mode
}

func (p cursorPointer) SetCaptureMode(m controller.CaptureMode) {
	data := components.Pointer.Get(p.entry)
	data.Mode = m
	data.Tracking = false
	if m == controller.CaptureCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// AttachController builds a controller over the player's components and
// stores it on the entry.
func AttachController(e *ecs.ECS, player *donburi.Entry, settings controller.Settings) error {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return controller.ErrMissingHandle
	}
	world := components.Space.Get(spaceEntry).World

	rig := controller.Rig{
		Body:      bodyHandle{entry: player, world: world},
		Head:      headHandle{entry: player},
		Neck:      neckHandle{entry: player},
		Standing:  shapeHandle{entry: player, crouched: false},
		Crouching: shapeHandle{entry: player, crouched: true},
		Ceiling:   ceilingProbe{entry: player, world: world},
	}

	ctrl, err := controller.New(rig, inputActions{entry: getOrCreateInputEntry(e)}, cursorPointer{entry: getOrCreatePointer(e)}, settings)
	if err != nil {
		return err
	}
	components.Controller.SetValue(player, components.ControllerData{Controller: ctrl})
	return nil
}
