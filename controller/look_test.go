package controller

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLook_YawAndPitch(t *testing.T) {
	h := newHarness(Basic)

	h.ctrl.HandleInput(PointerMotion{DX: 100, DY: 50})

	assert.InDelta(t, mgl64.DegToRad(-10), h.body.yaw, 1e-12)
	assert.InDelta(t, mgl64.DegToRad(-5), h.head.pitch, 1e-12)
}

func TestLook_PitchClamped(t *testing.T) {
	h := newHarness(Basic)

	h.ctrl.HandleInput(PointerMotion{DY: -5000})
	assert.InDelta(t, mgl64.DegToRad(89), h.head.pitch, 1e-12)

	h.ctrl.HandleInput(PointerMotion{DY: 10000})
	assert.InDelta(t, mgl64.DegToRad(-89), h.head.pitch, 1e-12)
}

func TestLook_IgnoredWhileVisible(t *testing.T) {
	h := newHarness(Basic)

	h.ctrl.HandleInput(ActionPressed{Action: ActionCancel})
	assert.Equal(t, CaptureVisible, h.pointer.mode)

	h.ctrl.HandleInput(PointerMotion{DX: 100, DY: 100})
	assert.Zero(t, h.body.yaw)
	assert.Zero(t, h.head.pitch)

	h.ctrl.HandleInput(ActionPressed{Action: ActionCancel})
	assert.Equal(t, CaptureCaptured, h.pointer.mode)

	h.ctrl.HandleInput(PointerMotion{DX: 100})
	assert.NotZero(t, h.body.yaw)
}

func TestLook_OtherActionsDoNotToggleCapture(t *testing.T) {
	h := newHarness(Basic)

	h.ctrl.HandleInput(ActionPressed{Action: ActionJump})

	assert.Equal(t, CaptureCaptured, h.pointer.mode)
}

func TestLook_FreeLookTurnsNeckOnly(t *testing.T) {
	h := newHarness(Extended)
	h.actions.hold(ActionFreeLook)
	h.step()

	h.ctrl.HandleInput(PointerMotion{DX: -300, DY: 200})

	assert.True(t, h.ctrl.FreeLooking())
	assert.InDelta(t, mgl64.DegToRad(30), h.neck.yaw, 1e-12)
	assert.Zero(t, h.body.yaw, "body yaw untouched during free-look")
	assert.Zero(t, h.head.pitch, "head pitch untouched during free-look")
}

func TestLook_FreeLookClamped(t *testing.T) {
	h := newHarness(Extended)
	h.actions.hold(ActionFreeLook)
	h.step()

	h.ctrl.HandleInput(PointerMotion{DX: -5000})
	assert.InDelta(t, mgl64.DegToRad(120), h.neck.yaw, 1e-12)

	h.ctrl.HandleInput(PointerMotion{DX: 10000})
	assert.InDelta(t, mgl64.DegToRad(-120), h.neck.yaw, 1e-12)
}

func TestLook_BasicIgnoresFreeLookAction(t *testing.T) {
	h := newHarness(Basic)
	h.actions.hold(ActionFreeLook)
	h.step()

	h.ctrl.HandleInput(PointerMotion{DX: -300})

	assert.False(t, h.ctrl.FreeLooking())
	assert.Zero(t, h.neck.yaw)
	assert.InDelta(t, mgl64.DegToRad(30), h.body.yaw, 1e-12)
}
