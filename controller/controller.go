// Package controller implements a first-person character controller: pointer
// look, crouch/stand stance, smoothed locomotion and the fixed-tick sequence
// that hands a velocity to the host's move-and-slide step.
//
// The controller never resolves collisions itself and owns no host objects.
// Every handle is injected through a Rig when the controller is attached.
package controller

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrMissingHandle is returned by New when a required rig handle is nil.
	ErrMissingHandle = errors.New("controller: missing handle")
	// ErrInvalidSettings is returned when settings cannot drive a controller.
	ErrInvalidSettings = errors.New("controller: invalid settings")
)

// Controller is a first-person character controller attached to one body.
// It is not safe for concurrent use; the host calls it from its update thread.
type Controller struct {
	rig      Rig
	actions  Actions
	pointer  Pointer
	settings Settings

	state       State
	freeLooking bool
	direction   mgl64.Vec3

	speed        float64
	sensitivity  float64
	jumpVelocity float64
}

// New attaches a controller to rig. The pointer is captured on attach.
func New(rig Rig, actions Actions, pointer Pointer, settings Settings) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := checkHandles(rig, actions, pointer, settings.Variant); err != nil {
		return nil, err
	}

	c := &Controller{
		rig:          rig,
		actions:      actions,
		pointer:      pointer,
		settings:     settings,
		state:        StateIdle,
		speed:        settings.InitialSpeed,
		sensitivity:  settings.MouseSensitivity,
		jumpVelocity: settings.JumpVelocity,
	}
	pointer.SetCaptureMode(CaptureCaptured)
	return c, nil
}

func checkHandles(rig Rig, actions Actions, pointer Pointer, variant Variant) error {
	handles := []struct {
		name    string
		missing bool
	}{
		{"body", rig.Body == nil},
		{"head", rig.Head == nil},
		{"standing shape", rig.Standing == nil},
		{"crouching shape", rig.Crouching == nil},
		{"ceiling probe", rig.Ceiling == nil},
		{"actions", actions == nil},
		{"pointer", pointer == nil},
		{"neck", variant == Extended && rig.Neck == nil},
	}
	for _, h := range handles {
		if h.missing {
			return fmt.Errorf("%w: %s", ErrMissingHandle, h.name)
		}
	}
	return nil
}

// PhysicsTick advances the controller by one fixed physics step and hands the
// resulting velocity to the body's MoveAndSlide. The velocity handed over is
// returned.
func (c *Controller) PhysicsTick(delta float64) mgl64.Vec3 {
	if c.settings.Variant == Extended {
		c.updateFreeLook(delta)
	}
	c.updateStance(delta)
	velocity := c.computeVelocity(delta)
	c.rig.Body.MoveAndSlide(velocity)
	return velocity
}

// HandleInput applies a single host input event.
func (c *Controller) HandleInput(ev Event) {
	switch e := ev.(type) {
	case ActionPressed:
		if e.Action == ActionCancel {
			c.toggleCapture()
		}
	case PointerMotion:
		if c.pointer.CaptureMode() == CaptureCaptured {
			c.look(e)
		}
	}
}

func (c *Controller) toggleCapture() {
	if c.pointer.CaptureMode() == CaptureCaptured {
		c.pointer.SetCaptureMode(CaptureVisible)
		return
	}
	c.pointer.SetCaptureMode(CaptureCaptured)
}

// ApplySettings swaps the tunables without resetting runtime state. The
// variant cannot change after attach.
func (c *Controller) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Variant != c.settings.Variant {
		return fmt.Errorf("%w: variant is fixed at attach", ErrInvalidSettings)
	}
	c.settings = s
	c.sensitivity = s.MouseSensitivity
	c.jumpVelocity = s.JumpVelocity
	return nil
}

func (c *Controller) Settings() Settings { return c.settings }
func (c *Controller) Variant() Variant { return c.settings.Variant }
func (c *Controller) State() State { return c.state }
func (c *Controller) Crouching() bool { return c.state == StateCrouching }
func (c *Controller) Sprinting() bool { return c.state == StateSprinting }
func (c *Controller) FreeLooking() bool { return c.freeLooking }
func (c *Controller) Direction() mgl64.Vec3 { return c.direction }
func (c *Controller) CurrentSpeed() float64 { return c.speed }
func (c *Controller) MouseSensitivity() float64 { return c.sensitivity }
func (c *Controller) JumpVelocity() float64 { return c.jumpVelocity }

// SetCurrentSpeed overrides the held speed. It is replaced on the next
// grounded stance update.
func (c *Controller) SetCurrentSpeed(speed float64) { c.speed = speed }

func (c *Controller) SetMouseSensitivity(sensitivity float64) { c.sensitivity = sensitivity }

func (c *Controller) SetJumpVelocity(velocity float64) { c.jumpVelocity = velocity }
