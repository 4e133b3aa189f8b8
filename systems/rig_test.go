package systems

import (
	"testing"

	"github.com/automoto/fpscontroller/assets"
	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/automoto/fpscontroller/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newSandbox builds the embedded sandbox level with an attached player.
func newSandbox(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	levelEntry, err := factory.CreateLevel(e, assets.Levels(), assets.DefaultLevel)
	require.NoError(t, err)
	lvl := components.Level.Get(levelEntry)

	factory.CreateSpace(e, lvl.Width, lvl.Depth, cfg.Physics.CellSize)
	for _, w := range lvl.Walls {
		factory.CreateWall(e, w)
	}
	player := factory.CreatePlayer(e, lvl.Spawns[0])
	require.NoError(t, AttachController(e, player, cfg.Player.Controller))
	return e, player
}

func hold(e *ecs.ECS, actions ...controller.Action) {
	input := components.Input.Get(getOrCreateInputEntry(e))
	for _, a := range actions {
		input.Current[a] = true
	}
}

func runTicks(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateController(e)
		UpdateObjects(e)
	}
}

func TestAttachControllerCapturesPointer(t *testing.T) {
	e, player := newSandbox(t)

	ctrl := components.Controller.Get(player).Controller
	require.NotNil(t, ctrl)
	assert.Equal(t, cfg.Player.Controller.Variant, ctrl.Variant())
	assert.False(t, pointerVisible(e))
}

func TestAttachControllerNeedsSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	player := e.World.Entry(e.World.Create(components.Body, components.Controller))

	err := AttachController(e, player, cfg.Player.Controller)
	assert.ErrorIs(t, err, controller.ErrMissingHandle)
}

func TestWalkForwardStopsAtPillar(t *testing.T) {
	e, player := newSandbox(t)
	hold(e, controller.ActionMoveForward)

	runTicks(e, 3*cfg.C.TPS)

	ch := components.Body.Get(player).Character
	// The pillar's south face is at z = 8.
	assert.InDelta(t, 8+ch.Radius, ch.Position.Z(), 0.01)
	assert.InDelta(t, 10, ch.Position.X(), 1e-6)
	assert.True(t, ch.OnFloor)
	assert.Equal(t, controller.StateWalking, components.Controller.Get(player).State())
}

func TestPointerMotionTurnsBody(t *testing.T) {
	_, player := newSandbox(t)
	ctrl := components.Controller.Get(player)

	ctrl.HandleInput(controller.PointerMotion{DX: 10, DY: -5})

	sens := cfg.Player.Controller.MouseSensitivity
	assert.InDelta(t, mgl64.DegToRad(-10*sens), components.Body.Get(player).Yaw, 1e-9)
	assert.InDelta(t, mgl64.DegToRad(5*sens), components.Head.Get(player).Pitch, 1e-9)
}

func TestShapeHandlesShareCrouchedFlag(t *testing.T) {
	_, player := newSandbox(t)
	standing := shapeHandle{entry: player, crouched: false}
	crouching := shapeHandle{entry: player, crouched: true}

	assert.False(t, standing.Disabled())
	assert.True(t, crouching.Disabled())

	crouching.SetDisabled(false)
	assert.True(t, components.Body.Get(player).Character.Crouched())
	assert.True(t, standing.Disabled())
	assert.False(t, crouching.Disabled())

	standing.SetDisabled(false)
	assert.False(t, components.Body.Get(player).Character.Crouched())
}

func TestCeilingProbeUnderOverhang(t *testing.T) {
	e, player := newSandbox(t)
	world := components.Space.Get(mustSpace(t, e)).World
	probe := ceilingProbe{entry: player, world: world}
	ch := components.Body.Get(player).Character

	assert.False(t, probe.IsColliding())

	ch.SetCrouched(true)
	ch.Teleport(mgl64.Vec3{15, 0, 4.5})
	components.Footprint.Get(player).Update()
	assert.True(t, probe.IsColliding())
}

func TestRespawnResetsPose(t *testing.T) {
	e, player := newSandbox(t)
	hold(e, controller.ActionMoveLeft)
	runTicks(e, 30)
	components.Controller.Get(player).HandleInput(controller.PointerMotion{DX: 40, DY: 40})

	Respawn(e)

	body := components.Body.Get(player)
	assert.Equal(t, mgl64.Vec3{10, 0, 12.5}, body.Character.Position)
	assert.Zero(t, body.Yaw)
	assert.Zero(t, components.Head.Get(player).Pitch)
}

func mustSpace(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Space.First(e.World)
	require.True(t, ok)
	return entry
}
