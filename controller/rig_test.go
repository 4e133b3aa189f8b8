package controller

import "github.com/go-gl/mathgl/mgl64"

type fakeBody struct {
	yaw      float64
	onFloor  bool
	velocity mgl64.Vec3
	moves    []mgl64.Vec3
}

func (b *fakeBody) Yaw() float64 { return b.yaw }
func (b *fakeBody) RotateY(angle float64) { b.yaw += angle }
func (b *fakeBody) IsOnFloor() bool { return b.onFloor }
func (b *fakeBody) Velocity() mgl64.Vec3 { return b.velocity }
func (b *fakeBody) MoveAndSlide(v mgl64.Vec3) mgl64.Vec3 {
	b.moves = append(b.moves, v)
	b.velocity = v
	return v
}

type fakeHead struct {
	pitch  float64
	offset mgl64.Vec3
}

func (h *fakeHead) Pitch() float64 { return h.pitch }
func (h *fakeHead) SetPitch(pitch float64) { h.pitch = pitch }
func (h *fakeHead) Offset() mgl64.Vec3 { return h.offset }
func (h *fakeHead) SetOffset(offset mgl64.Vec3) { h.offset = offset }

type fakeNeck struct{ yaw float64 }

func (n *fakeNeck) Yaw() float64 { return n.yaw }
func (n *fakeNeck) SetYaw(yaw float64) { n.yaw = yaw }

type fakeShape struct{ disabled bool }

func (s *fakeShape) Disabled() bool { return s.disabled }
func (s *fakeShape) SetDisabled(disabled bool) { s.disabled = disabled }

type fakeProbe struct{ colliding bool }

func (p *fakeProbe) IsColliding() bool { return p.colliding }

// fakeActions holds the current action state. JustPressed is derived from the
// previous tick, the same way the sandbox input system does it.
type fakeActions struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
}

func (a *fakeActions) Pressed(act Action) bool { return a.current[act] }
func (a *fakeActions) JustPressed(act Action) bool { return a.current[act] && !a.previous[act] }

func (a *fakeActions) hold(acts ...Action) {
	for _, act := range acts {
		a.current[act] = true
	}
}

func (a *fakeActions) release(acts ...Action) {
	for _, act := range acts {
		a.current[act] = false
	}
}

// advance makes the current state the previous one for the next tick.
func (a *fakeActions) advance() { a.previous = a.current }

type fakePointer struct{ mode CaptureMode }

func (p *fakePointer) CaptureMode() CaptureMode { return p.mode }
func (p *fakePointer) SetCaptureMode(m CaptureMode) { p.mode = m }

type harness struct {
	body      *fakeBody
	head      *fakeHead
	neck      *fakeNeck
	standing  *fakeShape
	crouching *fakeShape
	probe     *fakeProbe
	actions   *fakeActions
	pointer   *fakePointer
	ctrl      *Controller
}

const tick = 1.0 / 60.0

func newHarness(variant Variant) *harness {
	h := &harness{
		body:      &fakeBody{onFloor: true},
		head:      &fakeHead{offset: mgl64.Vec3{0, 1.8, 0}},
		neck:      &fakeNeck{},
		standing:  &fakeShape{},
		crouching: &fakeShape{disabled: true},
		probe:     &fakeProbe{},
		actions:   &fakeActions{},
		pointer:   &fakePointer{},
	}
	settings := DefaultSettings()
	settings.Variant = variant
	ctrl, err := New(h.rig(), h.actions, h.pointer, settings)
	if err != nil {
		panic(err)
	}
	h.ctrl = ctrl
	return h
}

func (h *harness) rig() Rig {
	return Rig{
		Body:      h.body,
		Head:      h.head,
		Neck:      h.neck,
		Standing:  h.standing,
		Crouching: h.crouching,
		Ceiling:   h.probe,
	}
}

// step runs one physics tick and rolls the action buffers forward.
func (h *harness) step() mgl64.Vec3 {
	v := h.ctrl.PhysicsTick(tick)
	h.actions.advance()
	return v
}

func (h *harness) steps(n int) {
	for i := 0; i < n; i++ {
		h.step()
	}
}
